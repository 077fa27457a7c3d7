package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_RedirectsStandardLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	f, err := Init(dir)
	if err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	log.Printf("save document: %s", "disk full")
	if err := f.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "save document: disk full") {
		t.Fatalf("log file = %q, want it to contain the message", string(data))
	}
	if f.Path() != filepath.Join(dir, FileName) {
		t.Fatalf("Path = %q, want %q", f.Path(), filepath.Join(dir, FileName))
	}
}

func TestClose_Nil(t *testing.T) {
	var f *File
	if err := f.Close(); err != nil {
		t.Fatalf("Close on nil returned error: %v", err)
	}
}
