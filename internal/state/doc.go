// Package state holds the storefront view state and the reducer that
// drives it.
//
// # Overview
//
// Every change to the list, the search filter, the display window, or the
// open modal is expressed as an Event and applied by Reduce:
//
//	next := state.Reduce(current, state.Loaded{Items: foods})
//
// Reduce is a pure function. It never mutates its input View, so a test can
// walk through any sequence of events without a terminal or a network.
//
// # Core Types
//
// View:
//   - Load status (loading, loaded, failed) and the banner message
//   - All: the authoritative list, replaced wholesale on load
//   - Filtered: the searched subset; equals All when no query is active
//   - Window: how many filtered items are displayed (starts at PageSize)
//   - Modal: which modal is open and the item it acts on
//   - Submitting, FieldErrors, LastError: form submission feedback
//
// Store:
//   - Wraps a View behind a sync.RWMutex
//   - Dispatch applies an event atomically and returns a copy
//   - Snapshot returns a deep copy for rendering
//
// # Reconciliation
//
// Successful mutations patch both lists locally instead of refetching:
//
//	Created  → item prepended to All and Filtered
//	Updated  → item replaced by id in All and Filtered
//	Deleted  → item removed by id from All and Filtered
//
// A failed remote search does not surface an error. SearchFailed filters
// All locally with a case-insensitive substring match on the name.
//
// # Display Window
//
//	Visible() == Filtered[0:min(Window, len(Filtered))]
//
// Window resets to PageSize on load, on every search result, and when the
// query is cleared. MoreLoaded adds PageSize while more items remain.
package state
