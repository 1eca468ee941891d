package state

import (
	"github.com/five82/foodwagen/internal/foodapi"
	"github.com/five82/foodwagen/internal/form"
)

// PageSize is the number of cards shown initially and added by "load more".
const PageSize = 8

// LoadFailedMessage is the banner shown when the initial list load fails.
const LoadFailedMessage = "Failed to load foods. Please try again later."

// LoadStatus tracks the top-level list lifecycle.
type LoadStatus int

const (
	StatusLoading LoadStatus = iota
	StatusLoaded
	StatusFailed
)

func (s LoadStatus) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "loading"
	}
}

// ModalKind identifies which modal, if any, is open.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalAdd
	ModalEdit
	ModalDelete
)

// Modal is the open modal and the item it acts on. Selected is set for
// edit and delete and nil otherwise.
type Modal struct {
	Kind     ModalKind
	Selected *foodapi.Food
}

// Open reports whether a modal is showing.
func (m Modal) Open() bool {
	return m.Kind != ModalNone
}

// View is the storefront state. Values are treated as immutable: Reduce
// returns a fresh View and never writes through the slices of its input.
type View struct {
	Status LoadStatus
	Banner string

	All      []foodapi.Food // authoritative list, replaced on load
	Filtered []foodapi.Food // equals All when no query is active
	Window   int
	Query    string

	Searching bool

	Modal       Modal
	Submitting  bool
	FieldErrors form.Errors
	LastError   error // last failed create/update/delete
}

// Initial returns the state before the first load completes.
func Initial() View {
	return View{Status: StatusLoading, Window: PageSize}
}

// Visible returns the displayed prefix of the filtered list.
func (v View) Visible() []foodapi.Food {
	n := v.Window
	if n > len(v.Filtered) {
		n = len(v.Filtered)
	}
	if n < 0 {
		n = 0
	}
	return v.Filtered[:n]
}

// HasMore reports whether "load more" would reveal additional items.
func (v View) HasMore() bool {
	return len(v.Filtered) > v.Window
}

// Selected returns the item the open modal acts on.
func (v View) Selected() (foodapi.Food, bool) {
	if v.Modal.Selected == nil {
		return foodapi.Food{}, false
	}
	return *v.Modal.Selected, true
}

// Find looks up an item in the full list by id.
func (v View) Find(id string) (foodapi.Food, bool) {
	for _, f := range v.All {
		if f.ID == id {
			return f, true
		}
	}
	return foodapi.Food{}, false
}

// Clone returns a deep copy safe to hand to another goroutine.
func (v View) Clone() View {
	out := v
	out.All = cloneFoods(v.All)
	out.Filtered = cloneFoods(v.Filtered)
	out.FieldErrors = v.FieldErrors.Clone()
	if v.Modal.Selected != nil {
		sel := *v.Modal.Selected
		out.Modal.Selected = &sel
	}
	return out
}

func cloneFoods(items []foodapi.Food) []foodapi.Food {
	if items == nil {
		return nil
	}
	dup := make([]foodapi.Food, len(items))
	copy(dup, items)
	return dup
}
