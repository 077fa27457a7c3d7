// Package logbook defines the Hangar document model and the pure computations
// derived from it.
//
// # Overview
//
// A Document holds every tracked Model (one physical craft each), the id of the
// active Model and the global Settings. Each Model owns five lists: flights,
// batteries, maintenance tasks, stock items and purchases. The JSON field names
// of these types are the persisted and exported file format.
//
// # Normalization
//
// Persisted files and user imports are untrusted. Parse and Normalize accept
// any JSON and always produce a Document that satisfies the invariants:
//
//   - at least one Model exists
//   - ActiveModelID names one of the Models
//   - Settings.TabOrder is a permutation of the fixed tab set
//
// Two input shapes are accepted. The current multi-model shape carries a
// "models" list. The legacy single-model shape carries the five lists at the
// top level together with "modelName"; its accent color is read from
// "settings.themeColor".
//
// Missing or wrongly typed fields are coerced to safe defaults (empty string,
// zero, null) rather than rejected.
//
// # Derived views
//
//   - SortStock and SortBatteries order lists per the configured SortSpec
//     using a locale collator from golang.org/x/text/collate
//   - SortFlights and SortPurchases list the newest entries first
//   - Due computes whether a maintenance task needs attention
//   - Model.Stats aggregates flight count, minutes and battery count
//
// None of these functions mutate their inputs.
package logbook
