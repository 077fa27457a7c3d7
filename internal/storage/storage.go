// Package storage persists the Hangar document as a single JSON file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/hangar/internal/logbook"
)

// FileName is the persisted document's file name.
const FileName = "heliAppData.json"

// FileStore reads and writes the document at Path.
type FileStore struct {
	Path string
}

// New returns a FileStore for path.
func New(path string) *FileStore {
	return &FileStore{Path: strings.TrimSpace(path)}
}

// Load reads the document, falling back to a new document when the file is
// missing. An unreadable or malformed file is logged and also replaced by a
// new document; it is left on disk until the next save.
func (f *FileStore) Load() (logbook.Document, error) {
	if f.Path == "" {
		return logbook.Document{}, errors.New("data path is empty")
	}

	file, err := os.Open(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return logbook.NewDocument(), nil
		}
		log.Printf("open %s: %v", f.Path, err)
		return logbook.NewDocument(), nil
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("read %s: %v", f.Path, err)
		return logbook.NewDocument(), nil
	}

	doc, err := logbook.Parse(data)
	if err != nil {
		log.Printf("parse %s: %v", f.Path, err)
		return logbook.NewDocument(), nil
	}
	return doc, nil
}

// Save writes the whole document, creating directories as needed. The file
// is replaced atomically through a temporary file.
func (f *FileStore) Save(doc logbook.Document) error {
	if f.Path == "" {
		return errors.New("data path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	data = append(data, '\n')

	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename document: %w", err)
	}
	return nil
}
