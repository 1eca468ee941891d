// Package ui is the foodwagen terminal storefront, built on Bubble Tea.
//
// # Layout
//
// The main screen stacks a header (logo, "Featured Meals", list counts and
// the active query), a command bar, the search line, the card list, and a
// footer that shows the result of the last action. The add/edit form, the
// delete confirmation and the help overlay replace the main screen while
// open.
//
// # Data flow
//
// The model never talks to the API directly. Storefront calls run as
// tea.Cmds on Bubble Tea's worker goroutines and report back with an
// actionDoneMsg; the model then takes a fresh storefront.Controller
// snapshot. While calls are in flight the spinner ticks, and each tick
// also refreshes the snapshot so "Loading" and "Adding Meal..." states
// appear without waiting for the call to finish.
//
// Modals do not mutate state themselves. They emit closeModalMsg,
// submitDraftMsg, fieldEditedMsg or confirmDeleteMsg and the root model
// forwards the request to the controller.
//
// # Activity log
//
// L opens the tail of the application's own log file, read through
// internal/logtail and colored by level. r rereads it.
//
// # Preferences
//
// Theme (T) and compact cards (c) are saved to the prefs file as soon as
// they change.
package ui
