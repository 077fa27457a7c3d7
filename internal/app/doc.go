// Package app is the composition root of Hangar.
//
// # Overview
//
// Open turns a config path into a ready Session: it loads the TOML config,
// points the standard logger at the log file, and opens the JSON document
// through a state.Store backed by storage.FileStore. Both the command line
// and the TUI start from a Session.
//
//	┌──────────────┐
//	│   Open()     │
//	└──────┬───────┘
//	       ├─────> config.Load()    Read ~/.config/hangar/config.toml
//	       ├─────> logging.Init()   Redirect log output to hangar.log
//	       ├─────> storage.New()    JSON file persister
//	       ├─────> state.New()      Load, normalize and repair the document
//	       └─────> selectModel()    Optional --model override
//
// # Model Override
//
// Options.Model names a model by id or by name. The session activates it and
// Close puts the previously active model back, so a one-off command such as
// "hangar --model Goblin flight add" leaves the user's selection alone. When
// the user switches models inside the session, Close keeps that choice.
//
// # Running the TUI
//
// Run opens a session and hands the store to ui.Run. The palette comes from
// prefs.toml when the user picked one in the TUI, otherwise from the config.
package app
