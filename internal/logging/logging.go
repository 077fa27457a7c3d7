// Package logging routes the standard logger to Hangar's log file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// FileName is the log file created inside the log directory.
const FileName = "hangar.log"

// File is an open log file.
type File struct {
	file *os.File
	prev io.Writer
}

// Init opens <dir>/hangar.log for appending and redirects the standard
// logger to it, so log.Printf calls never draw over the TUI. Close restores
// the previous output.
func Init(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	f := &File{file: file, prev: log.Writer()}
	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime)
	return f, nil
}

// Path returns the log file path.
func (f *File) Path() string {
	return f.file.Name()
}

// Close restores the previous log output and closes the file.
func (f *File) Close() error {
	if f == nil || f.file == nil {
		return nil
	}
	log.SetOutput(f.prev)
	return f.file.Close()
}
