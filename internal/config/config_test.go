package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/hangar/internal/logbook"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Defaults()
	if cfg != want {
		t.Fatalf("Load = %+v, want %+v", cfg, want)
	}
	if cfg.ExportName != defaultExportName {
		t.Fatalf("ExportName = %q, want %q", cfg.ExportName, defaultExportName)
	}
	if cfg.Locale != logbook.DefaultLocale {
		t.Fatalf("Locale = %q, want %q", cfg.Locale, logbook.DefaultLocale)
	}
	if !strings.HasSuffix(cfg.DataPath, filepath.Join("hangar", "heliAppData.json")) {
		t.Fatalf("DataPath = %q, want it to end with hangar/heliAppData.json", cfg.DataPath)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
data_path = "  ~/heli/data.json  "
export_name = " trex.json "
locale = "en-US"
log_dir = "~/heli/logs"
palette = "Slate"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataPath != filepath.Join(home, "heli", "data.json") {
		t.Fatalf("DataPath = %q, want %q", cfg.DataPath, filepath.Join(home, "heli", "data.json"))
	}
	if cfg.ExportName != "trex.json" {
		t.Fatalf("ExportName = %q, want %q", cfg.ExportName, "trex.json")
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("Locale = %q, want %q", cfg.Locale, "en-US")
	}
	if cfg.Palette != "Slate" {
		t.Fatalf("Palette = %q, want %q", cfg.Palette, "Slate")
	}
	if cfg.LogPath() != filepath.Join(home, "heli", "logs", "hangar.log") {
		t.Fatalf("LogPath = %q, want it under %q", cfg.LogPath(), filepath.Join(home, "heli", "logs"))
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
data_path = "   "
palette = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	def := Defaults()
	if cfg.DataPath != def.DataPath {
		t.Fatalf("DataPath = %q, want %q", cfg.DataPath, def.DataPath)
	}
	if cfg.Palette != defaultPalette {
		t.Fatalf("Palette = %q, want %q", cfg.Palette, defaultPalette)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`data_path = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestLogPath_DefaultsWhenLogDirEmpty(t *testing.T) {
	var cfg Config
	got := cfg.LogPath()
	if !strings.HasSuffix(got, filepath.Join("hangar", "hangar.log")) {
		t.Fatalf("LogPath = %q, want it to end with hangar/hangar.log", got)
	}
}
