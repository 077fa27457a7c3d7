// Package ui provides the Hangar terminal interface built on Bubble Tea.
//
// The interface shows one tab at a time for the active model (flights,
// batteries, maintenance, stock, purchases, backup and settings) in the
// order the user chose. Every change goes through state.Store.Dispatch as a
// command; after each command the view data is reloaded from the store, so
// the screen always reflects what was persisted.
//
// Colors come from a terminal palette (Nightfox, Kanagawa or Slate) with the
// accent replaced by the active model's theme color. Destructive actions ask
// for confirmation in a modal; text entry (new model, rename, flight
// duration, custom color) uses a one-line prompt modal.
package ui
