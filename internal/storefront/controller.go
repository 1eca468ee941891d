// Package storefront coordinates the food API and the view state: it runs
// the list, search and mutation flows and records their outcomes through
// state.Reduce.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/foodwagen/internal/foodapi"
	"github.com/five82/foodwagen/internal/form"
	"github.com/five82/foodwagen/internal/state"
)

// ErrNoSelection is returned when an edit or delete has no selected item.
var ErrNoSelection = errors.New("no item selected")

// ErrNoModal is returned when submitting without an open form.
var ErrNoModal = errors.New("no form is open")

// Controller owns the storefront state. Its methods are safe to call from
// concurrent goroutines; each one performs at most one API call.
type Controller struct {
	api   foodapi.FoodService
	store *state.Store
	log   *zap.SugaredLogger
}

// New builds a Controller. A nil logger discards output.
func New(api foodapi.FoodService, log *zap.SugaredLogger) *Controller {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Controller{
		api:   api,
		store: state.NewStore(),
		log:   log,
	}
}

// Snapshot returns a copy of the current view state.
func (c *Controller) Snapshot() state.View {
	return c.store.Snapshot()
}

// Load fetches the full list, replacing both the full and filtered lists.
func (c *Controller) Load(ctx context.Context) error {
	c.store.Dispatch(state.Loading{})
	items, err := c.api.ListFoods(ctx)
	if err != nil {
		c.log.Errorw("error loading foods", "error", err)
		c.store.Dispatch(state.LoadFailed{Err: err})
		return err
	}
	c.store.Dispatch(state.Loaded{Items: items})
	c.log.Infow("foods loaded", "count", len(items))
	return nil
}

// Search filters the list. A blank query restores the full list without a
// network call. A failed remote search falls back to local filtering and
// is not reported to the caller.
func (c *Controller) Search(ctx context.Context, query string) {
	if strings.TrimSpace(query) == "" {
		c.store.Dispatch(state.SearchCleared{})
		return
	}
	c.store.Dispatch(state.SearchStarted{Query: query})
	items, err := c.api.SearchFoods(ctx, query)
	if err != nil {
		c.log.Warnw("search failed, filtering locally", "query", query, "error", err)
		c.store.Dispatch(state.SearchFailed{Query: query, Err: err})
		return
	}
	c.store.Dispatch(state.SearchResolved{Query: query, Items: items})
}

// LoadMore grows the display window by one page.
func (c *Controller) LoadMore() {
	c.store.Dispatch(state.MoreLoaded{})
}

// OpenAdd opens the add form.
func (c *Controller) OpenAdd() {
	c.store.Dispatch(state.AddOpened{})
}

// OpenEdit opens the edit form for food.
func (c *Controller) OpenEdit(food foodapi.Food) {
	c.store.Dispatch(state.EditOpened{Food: food})
}

// OpenDelete opens the delete confirmation for the item with id. Unknown
// ids leave the state unchanged.
func (c *Controller) OpenDelete(id string) {
	c.store.Dispatch(state.DeleteOpened{ID: id})
}

// Close dismisses the open modal and clears the selection.
func (c *Controller) Close() {
	c.store.Dispatch(state.ModalClosed{})
}

// FieldEdited clears the recorded error for field.
func (c *Controller) FieldEdited(field form.Field) {
	c.store.Dispatch(state.FieldEdited{Field: field})
}

// Submit validates draft and, when valid, creates or updates an item
// depending on the open modal. Invalid drafts return *form.ValidationError
// without touching the API. API failures leave the modal open.
func (c *Controller) Submit(ctx context.Context, draft form.Draft) error {
	view := c.store.Snapshot()
	if view.Modal.Kind != state.ModalAdd && view.Modal.Kind != state.ModalEdit {
		return ErrNoModal
	}

	if errs := form.Validate(draft); !errs.Valid() {
		c.store.Dispatch(state.ValidationFailed{Errors: errs})
		return &form.ValidationError{Errors: errs}
	}

	if view.Modal.Kind == state.ModalEdit {
		return c.update(ctx, view, draft)
	}
	return c.create(ctx, draft)
}

func (c *Controller) create(ctx context.Context, draft form.Draft) error {
	c.store.Dispatch(state.SubmitStarted{})
	food, err := c.api.CreateFood(ctx, draft.Input())
	if err != nil {
		c.log.Errorw("error creating food", "name", draft.Name, "error", err)
		c.store.Dispatch(state.MutationFailed{Err: err})
		return fmt.Errorf("create food: %w", err)
	}
	c.store.Dispatch(state.Created{Food: food})
	c.log.Infow("food created", "id", food.ID, "name", food.Name)
	return nil
}

func (c *Controller) update(ctx context.Context, view state.View, draft form.Draft) error {
	selected, ok := view.Selected()
	if !ok {
		return ErrNoSelection
	}
	c.store.Dispatch(state.SubmitStarted{})
	food, err := c.api.UpdateFood(ctx, selected.ID, draft.Input())
	if err != nil {
		c.log.Errorw("error updating food", "id", selected.ID, "error", err)
		c.store.Dispatch(state.MutationFailed{Err: err})
		return fmt.Errorf("update food %s: %w", selected.ID, err)
	}
	c.store.Dispatch(state.Updated{Food: food})
	c.log.Infow("food updated", "id", food.ID)
	return nil
}

// ConfirmDelete deletes the item selected in the delete modal. On failure
// the modal and selection remain so the user can retry.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	view := c.store.Snapshot()
	selected, ok := view.Selected()
	if view.Modal.Kind != state.ModalDelete || !ok {
		return ErrNoSelection
	}
	c.store.Dispatch(state.SubmitStarted{})
	if err := c.api.DeleteFood(ctx, selected.ID); err != nil {
		c.log.Errorw("error deleting food", "id", selected.ID, "error", err)
		c.store.Dispatch(state.MutationFailed{Err: err})
		return fmt.Errorf("delete food %s: %w", selected.ID, err)
	}
	c.store.Dispatch(state.Deleted{ID: selected.ID})
	c.log.Infow("food deleted", "id", selected.ID)
	return nil
}
