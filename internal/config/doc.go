// Package config loads Hangar's TOML configuration.
//
// # Overview
//
// Hangar works without any configuration file. When one exists it can move
// the data file, rename the default export, change the sort locale, move the
// log directory or pick the terminal palette.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use $XDG_CONFIG_HOME/hangar/config.toml
//  3. If the config file doesn't exist, fall back to Defaults
//  4. If the file exists but fields are missing/empty, use defaults per field
//
// # Default Values
//
//   - Data file: $XDG_DATA_HOME/hangar/heliAppData.json
//   - Export file name: align-trex-150-dfc.json
//   - Locale: fr-FR
//   - Log directory: $XDG_STATE_HOME/hangar
//   - Palette: Nightfox
//
// XDG directories are resolved by github.com/adrg/xdg, which also applies the
// platform defaults on macOS and Windows.
//
// # TOML Format
//
//	data_path   = "~/.local/share/hangar/heliAppData.json"
//	export_name = "align-trex-150-dfc.json"
//	locale      = "fr-FR"
//	log_dir     = "~/.local/state/hangar"
//	palette     = "Nightfox"
//
// Every field is optional. Tilde expansion is performed on data_path and
// log_dir.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors ("parse config: ...")
package config
