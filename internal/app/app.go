package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/five82/hangar/internal/config"
	"github.com/five82/hangar/internal/logging"
	"github.com/five82/hangar/internal/prefs"
	"github.com/five82/hangar/internal/state"
	"github.com/five82/hangar/internal/storage"
	"github.com/five82/hangar/internal/ui"
)

// ErrUnknownModel is returned when a model reference matches no model.
var ErrUnknownModel = errors.New("unknown model")

// Options configure a Hangar session.
type Options struct {
	ConfigPath string // empty uses config.DefaultPath
	PrefsPath  string // empty uses prefs.DefaultPath
	Model      string // model id or name to work on; empty keeps the active model
}

// Session is an open document together with the configuration it came from.
type Session struct {
	Config config.Config
	Store  *state.Store

	log      *logging.File
	selected string // model activated for this session
	restore  string // model active before it
}

// Open loads the configuration, starts file logging and opens the document.
// With Options.Model set, that model is made active until Close.
func Open(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logFile, err := logging.Init(cfg.LogDir)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Config: cfg,
		Store:  state.New(storage.New(cfg.DataPath), state.Options{Locale: cfg.Locale}),
		log:    logFile,
	}

	if ref := strings.TrimSpace(opts.Model); ref != "" {
		if err := s.selectModel(ref); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	return s, nil
}

func (s *Session) selectModel(ref string) error {
	id, err := ResolveModel(s.Store, ref)
	if err != nil {
		return err
	}
	prev := s.Store.ActiveModel().ID
	if id == prev {
		return nil
	}
	if err := s.Store.SetActiveModel(id); err != nil {
		return err
	}
	s.selected, s.restore = id, prev
	return nil
}

// ResolveModel returns the id of the model whose id equals ref, or failing
// that whose name matches ref ignoring case.
func ResolveModel(store *state.Store, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	models := store.Models()
	for _, m := range models {
		if m.ID == ref {
			return m.ID, nil
		}
	}
	for _, m := range models {
		if strings.EqualFold(m.Name, ref) {
			return m.ID, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownModel, ref)
}

// ExportPath is where exports go when no file is named: the configured
// export name, relative to the working directory.
func (s *Session) ExportPath() string {
	if filepath.IsAbs(s.Config.ExportName) {
		return s.Config.ExportName
	}
	abs, err := filepath.Abs(s.Config.ExportName)
	if err != nil {
		return s.Config.ExportName
	}
	return abs
}

// Close re-activates the model that was active before Open switched models,
// unless the session itself moved on to another one, and closes the log.
func (s *Session) Close() error {
	if s.restore != "" && s.Store.ActiveModel().ID == s.selected {
		_ = s.Store.SetActiveModel(s.restore)
	}
	return s.log.Close()
}

// Run opens a session and runs the TUI until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	s, err := Open(opts)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	palette := prefs.Load(opts.PrefsPath).Palette
	if palette == "" {
		palette = s.Config.Palette
	}

	return ui.Run(ui.Options{
		Context:    ctx,
		Store:      s.Store,
		Palette:    palette,
		ExportPath: s.ExportPath(),
		PrefsPath:  opts.PrefsPath,
	})
}
