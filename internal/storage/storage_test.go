package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/hangar/internal/logbook"
)

func TestLoad_MissingFileUsesNewDocument(t *testing.T) {
	fs := New(filepath.Join(t.TempDir(), FileName))

	doc, err := fs.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(doc.Models) != 1 {
		t.Fatalf("len(Models) = %d, want 1", len(doc.Models))
	}
	if doc.Models[0].Name != logbook.DefaultModelName {
		t.Fatalf("Name = %q, want %q", doc.Models[0].Name, logbook.DefaultModelName)
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", FileName)
	fs := New(path)

	doc := logbook.NewDocument()
	doc.Models[0].Name = "Blade 230S"
	if err := fs.Save(doc); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}

	loaded, err := fs.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Models[0].Name != "Blade 230S" {
		t.Fatalf("Name = %q, want %q", loaded.Models[0].Name, "Blade 230S")
	}
	if loaded.ActiveModelID != doc.ActiveModelID {
		t.Fatalf("ActiveModelID = %q, want %q", loaded.ActiveModelID, doc.ActiveModelID)
	}
}

func TestLoad_MalformedFileFallsBackToNewDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("not json {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doc, err := New(path).Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(doc.Models) != 1 {
		t.Fatalf("len(Models) = %d, want 1", len(doc.Models))
	}
}

func TestLoad_LegacyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	legacy := `{"modelName":"Old Trex","flights":[{"id":"f1","date":"2023-01-01","duration":4}],"settings":{"themeColor":"#2a7b50"}}`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doc, err := New(path).Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	m := doc.Models[0]
	if m.Name != "Old Trex" {
		t.Fatalf("Name = %q, want %q", m.Name, "Old Trex")
	}
	if m.ThemeColor != "#2a7b50" {
		t.Fatalf("ThemeColor = %q, want %q", m.ThemeColor, "#2a7b50")
	}
	if len(m.Flights) != 1 {
		t.Fatalf("len(Flights) = %d, want 1", len(m.Flights))
	}
}

func TestEmptyPath(t *testing.T) {
	fs := New("  ")
	if _, err := fs.Load(); err == nil {
		t.Fatal("Load with empty path returned nil error")
	}
	if err := fs.Save(logbook.NewDocument()); err == nil {
		t.Fatal("Save with empty path returned nil error")
	}
}
