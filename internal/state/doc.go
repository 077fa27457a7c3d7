// Package state owns the live Hangar document and every mutation applied to it.
//
// # Overview
//
// A Store holds one logbook.Document behind a sync.RWMutex together with a
// Persister. Every mutation targets the active model (or the global settings),
// then hands a deep copy of the whole document to the Persister. Reads return
// deep copies, so callers can keep and modify what they get without touching
// the store.
//
//	UI / CLI                         Store                       Persister
//	┌──────────────┐   Dispatch   ┌───────────────┐   Save     ┌────────────┐
//	│ AddFlight{}  │────────────→ │ mutate doc    │──────────→ │ JSON file  │
//	│ DeleteStock{}│              │ (write lock)  │            └────────────┘
//	│ ...          │ ←────────────│ Flights()     │
//	└──────────────┘   accessors  │ Stock() ...   │
//	                              └───────────────┘
//
// # Commands
//
// Every user action exists twice: as a Store method returning the created
// entity (AddFlight, AddBattery, ...) and as a Command value (AddFlight{},
// DeleteBattery{}, ...) applied with Store.Dispatch. The TUI only builds
// commands and reads accessors.
//
// # Cascades
//
//   - AddFlight with a battery id increments that battery's cycles and sets
//     its lastUsed to the flight date
//   - DeleteBattery clears the battery id on every flight that used it
//   - MarkMaintenanceDone stamps today's date and the current flight count
//   - DeleteModel of the active model activates the first remaining one
//
// # Error Handling
//
// Mutations that would break an invariant are refused before anything
// changes:
//
//   - ErrLastModel: deleting the only model
//   - ErrEmptyName: adding or renaming a model with a blank name
//   - ErrNotFound: an id that names nothing in the active model
//
// Persistence failures never abort a session. The in-memory change stands,
// the error is logged and LastSaveError reports it until the next successful
// save.
//
// # Import and Export
//
// Export writes the full document as indented JSON. PrepareImport parses a
// file in either accepted shape into a PendingImport without touching the
// store; only PendingImport.Commit replaces the document. Invalid JSON yields
// ErrMalformedImport.
//
// # Testing Considerations
//
// New accepts any Persister and an injectable clock through Options.Now, so
// tests use an in-memory persister and a fixed date.
package state
