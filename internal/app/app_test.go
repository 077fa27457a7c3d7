package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/hangar/internal/logbook"
)

func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data", "heliAppData.json")
	cfg := fmt.Sprintf("data_path = %q\nlog_dir = %q\nexport_name = %q\n",
		dataPath, filepath.Join(dir, "logs"), filepath.Join(dir, "backup.json"))
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path, dataPath
}

func TestOpen_UsesConfiguredPaths(t *testing.T) {
	cfgPath, dataPath := writeConfig(t)

	s, err := Open(Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if _, err := s.Store.AddModel("Goblin", ""); err != nil {
		t.Fatalf("AddModel: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := os.Stat(dataPath); err != nil {
		t.Fatalf("document not saved at %s: %v", dataPath, err)
	}
	if got := s.ExportPath(); got != filepath.Join(filepath.Dir(cfgPath), "backup.json") {
		t.Fatalf("ExportPath = %q", got)
	}
}

func TestOpen_ModelOverrideIsRestored(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	s, err := Open(Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	goblin, err := s.Store.AddModel("Goblin", "")
	if err != nil {
		t.Fatalf("AddModel: %v", err)
	}
	// back to the default model
	first := s.Store.Models()[0]
	if err := s.Store.SetActiveModel(first.ID); err != nil {
		t.Fatalf("SetActiveModel: %v", err)
	}
	_ = s.Close()

	s, err = Open(Options{ConfigPath: cfgPath, Model: "goblin"})
	if err != nil {
		t.Fatalf("Open with model: %v", err)
	}
	if got := s.Store.ActiveModel().ID; got != goblin.ID {
		t.Fatalf("active = %q, want %q", got, goblin.ID)
	}
	_ = s.Close()

	s, err = Open(Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = s.Close() }()
	if got := s.Store.ActiveModel().Name; got != logbook.DefaultModelName {
		t.Fatalf("active after restore = %q, want %q", got, logbook.DefaultModelName)
	}
}

func TestOpen_UnknownModel(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	_, err := Open(Options{ConfigPath: cfgPath, Model: "nope"})
	if !errors.Is(err, ErrUnknownModel) {
		t.Fatalf("err = %v, want ErrUnknownModel", err)
	}
}

func TestOpen_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("data_path = [\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Open(Options{ConfigPath: path}); err == nil {
		t.Fatalf("expected config error")
	}
}
