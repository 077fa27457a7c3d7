package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/hangar/internal/logbook"
	"github.com/five82/hangar/internal/logging"
	"github.com/five82/hangar/internal/storage"
)

// Config holds the resolved Hangar settings.
type Config struct {
	DataPath   string
	ExportName string
	Locale     string
	LogDir     string
	Palette    string
}

const (
	defaultExportName = "align-trex-150-dfc.json"
	defaultPalette    = "Nightfox"
	appDir            = "hangar"
)

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, "config.toml")
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		DataPath:   filepath.Join(xdg.DataHome, appDir, storage.FileName),
		ExportName: defaultExportName,
		Locale:     logbook.DefaultLocale,
		LogDir:     filepath.Join(xdg.StateHome, appDir),
		Palette:    defaultPalette,
	}
}

// Load reads the config file at path, or at DefaultPath when path is empty.
// A missing file yields Defaults; empty fields fall back individually.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataPath   string `toml:"data_path"`
		ExportName string `toml:"export_name"`
		Locale     string `toml:"locale"`
		LogDir     string `toml:"log_dir"`
		Palette    string `toml:"palette"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.DataPath); v != "" {
		cfg.DataPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.ExportName); v != "" {
		cfg.ExportName = v
	}
	if v := strings.TrimSpace(raw.Locale); v != "" {
		cfg.Locale = v
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Palette); v != "" {
		cfg.Palette = v
	}

	return cfg, nil
}

// LogPath returns the path of the application log file.
func (c Config) LogPath() string {
	dir := strings.TrimSpace(c.LogDir)
	if dir == "" {
		dir = Defaults().LogDir
	}
	return filepath.Join(dir, logging.FileName)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPath(), nil
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
