// Package prefs remembers interface choices made inside the TUI, such as the
// terminal palette. They live in prefs.toml next to config.toml so the
// hand-edited config file is never rewritten.
package prefs

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for Hangar. An empty field means no choice
// was made and the config value applies.
type Prefs struct {
	Palette string `toml:"palette"`
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "hangar", "prefs.toml")
}

// Load reads preferences from path, or DefaultPath when path is empty. A
// missing or unreadable file yields empty preferences.
func Load(path string) Prefs {
	var p Prefs

	file, err := os.Open(resolvePath(path))
	if err != nil {
		return p
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		log.Printf("read prefs: %v", err)
		return p
	}
	if err := toml.Unmarshal(bytes, &p); err != nil {
		log.Printf("parse prefs: %v", err)
		return Prefs{}
	}
	p.Palette = strings.TrimSpace(p.Palette)
	return p
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved := resolvePath(path)

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) string {
	if strings.TrimSpace(path) == "" {
		return DefaultPath()
	}
	return strings.TrimSpace(path)
}
