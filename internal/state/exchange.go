package state

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/five82/hangar/internal/logbook"
)

// Export writes the whole document as indented JSON, in the same shape as
// the persisted state.
func (s *Store) Export(w io.Writer) error {
	data, err := json.MarshalIndent(s.Document(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// PendingImport is a parsed import waiting for confirmation. The store is
// not touched until Commit.
type PendingImport struct {
	store *Store
	doc   logbook.Document
}

// PrepareImport parses an import file in either the multi-model or the
// legacy shape. Invalid JSON yields ErrMalformedImport.
func (s *Store) PrepareImport(data []byte) (*PendingImport, error) {
	doc, err := logbook.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedImport, err)
	}
	return &PendingImport{store: s, doc: doc}, nil
}

// Document returns a copy of the document that Commit would install.
func (p *PendingImport) Document() logbook.Document {
	return p.doc.Clone()
}

// Summary describes the import for a confirmation prompt.
func (p *PendingImport) Summary() string {
	flights := 0
	for _, m := range p.doc.Models {
		flights += len(m.Flights)
	}
	return fmt.Sprintf("%d model(s), %d flight(s)", len(p.doc.Models), flights)
}

// Commit replaces the store's document with the imported one.
func (p *PendingImport) Commit() error {
	return p.store.Replace(p.doc)
}
