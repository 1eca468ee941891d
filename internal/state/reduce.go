package state

import (
	"strings"

	"github.com/five82/foodwagen/internal/foodapi"
)

// Reduce applies e to v and returns the next state. It is pure: v and the
// slices it references are left untouched.
func Reduce(v View, e Event) View {
	next := v
	switch e := e.(type) {
	case Loading:
		next.Status = StatusLoading
		next.Banner = ""

	case Loaded:
		next.Status = StatusLoaded
		next.Banner = ""
		next.All = cloneFoods(e.Items)
		next.Filtered = cloneFoods(e.Items)
		next.Window = PageSize
		next.Query = ""
		next.Searching = false

	case LoadFailed:
		next.Status = StatusFailed
		next.Banner = LoadFailedMessage

	case SearchStarted:
		next.Banner = ""
		next.Searching = true
		next.Query = strings.TrimSpace(e.Query)

	case SearchCleared:
		next.Banner = ""
		next.Filtered = cloneFoods(v.All)
		next.Window = PageSize
		next.Query = ""
		next.Searching = false

	case SearchResolved:
		next.Filtered = cloneFoods(e.Items)
		next.Window = PageSize
		next.Query = strings.TrimSpace(e.Query)
		next.Searching = false

	case SearchFailed:
		next.Filtered = filterByName(v.All, e.Query)
		next.Window = PageSize
		next.Query = strings.TrimSpace(e.Query)
		next.Searching = false

	case AddOpened:
		next.Modal = Modal{Kind: ModalAdd}
		next = resetSubmission(next)

	case EditOpened:
		sel := e.Food
		next.Modal = Modal{Kind: ModalEdit, Selected: &sel}
		next = resetSubmission(next)

	case DeleteOpened:
		food, ok := v.Find(e.ID)
		if !ok {
			return v
		}
		next.Modal = Modal{Kind: ModalDelete, Selected: &food}
		next = resetSubmission(next)

	case ModalClosed:
		if v.Submitting {
			return v
		}
		next.Modal = Modal{}
		next = resetSubmission(next)

	case ValidationFailed:
		next.FieldErrors = e.Errors.Clone()
		next.Submitting = false

	case FieldEdited:
		if _, ok := v.FieldErrors[e.Field]; ok {
			next.FieldErrors = v.FieldErrors.Clone()
			delete(next.FieldErrors, e.Field)
		}

	case SubmitStarted:
		next.Submitting = true
		next.FieldErrors = nil
		next.LastError = nil

	case Created:
		next.All = prepend(v.All, e.Food)
		next.Filtered = prepend(v.Filtered, e.Food)
		next.Modal = Modal{}
		next = resetSubmission(next)

	case Updated:
		next.All = replaceByID(v.All, e.Food)
		next.Filtered = replaceByID(v.Filtered, e.Food)
		next.Modal = Modal{}
		next = resetSubmission(next)

	case Deleted:
		next.All = removeByID(v.All, e.ID)
		next.Filtered = removeByID(v.Filtered, e.ID)
		next.Modal = Modal{}
		next = resetSubmission(next)

	case MutationFailed:
		next.Submitting = false
		next.LastError = e.Err

	case MoreLoaded:
		if v.Window < len(v.Filtered) {
			next.Window = v.Window + PageSize
		}
	}
	return next
}

func resetSubmission(v View) View {
	v.Submitting = false
	v.FieldErrors = nil
	v.LastError = nil
	return v
}

// filterByName is the local search fallback: case-insensitive substring
// match on the item name.
func filterByName(items []foodapi.Food, query string) []foodapi.Food {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]foodapi.Food, 0, len(items))
	for _, f := range items {
		if strings.Contains(strings.ToLower(f.Name), needle) {
			out = append(out, f)
		}
	}
	return out
}

func prepend(items []foodapi.Food, f foodapi.Food) []foodapi.Food {
	out := make([]foodapi.Food, 0, len(items)+1)
	out = append(out, f)
	return append(out, items...)
}

func replaceByID(items []foodapi.Food, f foodapi.Food) []foodapi.Food {
	out := cloneFoods(items)
	for i := range out {
		if out[i].ID == f.ID {
			out[i] = f
		}
	}
	return out
}

func removeByID(items []foodapi.Food, id string) []foodapi.Food {
	if items == nil {
		return nil
	}
	out := make([]foodapi.Food, 0, len(items))
	for _, f := range items {
		if f.ID != id {
			out = append(out, f)
		}
	}
	return out
}
