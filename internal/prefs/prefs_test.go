package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "prefs.toml"))
	if p.Palette != "" {
		t.Fatalf("Palette = %q, want empty", p.Palette)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("palette = \" Slate \"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if p := Load(prefsFile); p.Palette != "Slate" {
		t.Fatalf("Palette = %q, want %q", p.Palette, "Slate")
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	if err := Save(prefsFile, Prefs{Palette: "Kanagawa"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if p := Load(prefsFile); p.Palette != "Kanagawa" {
		t.Fatalf("Palette = %q, want %q", p.Palette, "Kanagawa")
	}
}

func TestLoad_InvalidTOMLIsEmpty(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if p := Load(prefsFile); p.Palette != "" {
		t.Fatalf("Palette = %q, want empty", p.Palette)
	}
}

func TestDefaultPath(t *testing.T) {
	got := DefaultPath()
	if !strings.HasSuffix(got, filepath.Join("hangar", "prefs.toml")) {
		t.Fatalf("DefaultPath = %q", got)
	}
}
