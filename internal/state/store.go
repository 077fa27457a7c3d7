package state

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/five82/hangar/internal/logbook"
)

var (
	// ErrLastModel is returned when deleting the only remaining model.
	ErrLastModel = errors.New("cannot delete the last model")
	// ErrEmptyName is returned when a model name is blank.
	ErrEmptyName = errors.New("model name is required")
	// ErrNotFound is returned when an id names no entity of the active model.
	ErrNotFound = errors.New("not found")
	// ErrMalformedImport is returned when an import file is not valid JSON.
	ErrMalformedImport = errors.New("import file is not valid JSON")

	// errUnchanged lets an update skip the save when nothing changed.
	errUnchanged = errors.New("unchanged")
)

// Persister loads and saves the whole document.
type Persister interface {
	Load() (logbook.Document, error)
	Save(logbook.Document) error
}

// Options tune a Store.
type Options struct {
	Locale string           // collation locale for sorted views; empty uses logbook.DefaultLocale
	Now    func() time.Time // clock for date stamps; nil uses time.Now
}

// Store holds the active document and routes every mutation through the
// persister.
type Store struct {
	mu          sync.RWMutex
	doc         logbook.Document
	persister   Persister
	locale      string
	now         func() time.Time
	lastSaveErr error
}

// New loads the document from p. A load failure is logged and replaced by a
// fresh default document.
func New(p Persister, opts Options) *Store {
	s := &Store{
		persister: p,
		locale:    opts.Locale,
		now:       opts.Now,
	}
	if s.locale == "" {
		s.locale = logbook.DefaultLocale
	}
	if s.now == nil {
		s.now = time.Now
	}

	doc, err := p.Load()
	if err != nil {
		log.Printf("load document: %v; starting with a new document", err)
		doc = logbook.NewDocument()
	}
	s.doc = doc.Repair()
	return s
}

// LastSaveError returns the error of the most recent save, or nil.
func (s *Store) LastSaveError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSaveErr
}

func (s *Store) today() string {
	return logbook.Today(s.now())
}

// persistLocked saves the document. A failed save keeps the in-memory change;
// the error is logged and recorded for display. Caller must hold the write
// lock.
func (s *Store) persistLocked() {
	err := s.persister.Save(s.doc.Clone())
	if err != nil {
		log.Printf("save document: %v", err)
	}
	s.lastSaveErr = err
}

// update applies fn to the document and persists when fn succeeds.
func (s *Store) update(fn func(doc *logbook.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.doc); err != nil {
		if errors.Is(err, errUnchanged) {
			return nil
		}
		return err
	}
	s.persistLocked()
	return nil
}

// updateActive applies fn to the active model and persists when fn succeeds.
func (s *Store) updateActive(fn func(m *logbook.Model) error) error {
	return s.update(func(doc *logbook.Document) error {
		return fn(&doc.Models[doc.Active()])
	})
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

// index returns the position of the element with the given id. Empty ids
// never match.
func index[T any](items []T, id string, idOf func(T) string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(items, func(v T) bool { return idOf(v) == id })
}

func remove[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	i := index(items, id, idOf)
	if i < 0 {
		return items, false
	}
	return slices.Delete(items, i, i+1), true
}

func flightID(f logbook.Flight) string        { return f.ID }
func batteryID(b logbook.Battery) string      { return b.ID }
func taskID(t logbook.MaintenanceTask) string { return t.ID }
func stockID(s logbook.StockItem) string      { return s.ID }
func purchaseID(p logbook.Purchase) string    { return p.ID }
func modelID(m logbook.Model) string          { return m.ID }

// nonZero maps the zero value to nil, matching how blank form numbers are
// stored as null.
func nonZero[T int | float64](v T) *T {
	if v == 0 {
		return nil
	}
	return &v
}

func copySuffix(name string) string {
	return strings.TrimSpace(name) + " (copie)"
}
