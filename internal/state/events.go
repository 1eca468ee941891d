package state

import (
	"github.com/five82/foodwagen/internal/foodapi"
	"github.com/five82/foodwagen/internal/form"
)

// Event is an input to Reduce.
type Event interface {
	event()
}

// Loading marks the start of a full list load.
type Loading struct{}

// Loaded carries the result of a successful list load.
type Loaded struct{ Items []foodapi.Food }

// LoadFailed records a failed list load.
type LoadFailed struct{ Err error }

// SearchStarted marks an in-flight remote search.
type SearchStarted struct{ Query string }

// SearchCleared resets the filter after a blank query.
type SearchCleared struct{}

// SearchResolved carries server-side search results.
type SearchResolved struct {
	Query string
	Items []foodapi.Food
}

// SearchFailed falls back to filtering the full list locally.
type SearchFailed struct {
	Query string
	Err   error
}

// AddOpened opens the add modal.
type AddOpened struct{}

// EditOpened opens the edit modal for an item.
type EditOpened struct{ Food foodapi.Food }

// DeleteOpened opens the delete confirmation for an item id.
type DeleteOpened struct{ ID string }

// ModalClosed dismisses the open modal and clears the selection.
type ModalClosed struct{}

// ValidationFailed records field errors from a rejected submit.
type ValidationFailed struct{ Errors form.Errors }

// FieldEdited clears the error of a field the user changed.
type FieldEdited struct{ Field form.Field }

// SubmitStarted marks an in-flight create, update or delete.
type SubmitStarted struct{}

// Created carries the item returned by a successful create.
type Created struct{ Food foodapi.Food }

// Updated carries the item returned by a successful update.
type Updated struct{ Food foodapi.Food }

// Deleted carries the id removed by a successful delete.
type Deleted struct{ ID string }

// MutationFailed records a failed create, update or delete.
type MutationFailed struct{ Err error }

// MoreLoaded grows the display window.
type MoreLoaded struct{}

func (Loading) event()          {}
func (Loaded) event()           {}
func (LoadFailed) event()       {}
func (SearchStarted) event()    {}
func (SearchCleared) event()    {}
func (SearchResolved) event()   {}
func (SearchFailed) event()     {}
func (AddOpened) event()        {}
func (EditOpened) event()       {}
func (DeleteOpened) event()     {}
func (ModalClosed) event()      {}
func (ValidationFailed) event() {}
func (FieldEdited) event()      {}
func (SubmitStarted) event()    {}
func (Created) event()          {}
func (Updated) event()          {}
func (Deleted) event()          {}
func (MutationFailed) event()   {}
func (MoreLoaded) event()       {}
