package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/foodwagen/internal/foodapi"
	"github.com/five82/foodwagen/internal/form"
	"github.com/five82/foodwagen/internal/state"
)

type fakeService struct {
	mu sync.Mutex

	items     []foodapi.Food
	results   []foodapi.Food
	listErr   error
	searchErr error
	createErr error
	updateErr error
	deleteErr error

	listCalls   int
	searchCalls []string
	created     []foodapi.FoodInput
	updated     map[string]foodapi.FoodInput
	deleted     []string
}

func (f *fakeService) ListFoods(context.Context) ([]foodapi.Food, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeService) SearchFoods(_ context.Context, query string) ([]foodapi.Food, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls = append(f.searchCalls, query)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.results, nil
}

func (f *fakeService) CreateFood(_ context.Context, input foodapi.FoodInput) (foodapi.Food, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, input)
	if f.createErr != nil {
		return foodapi.Food{}, f.createErr
	}
	return foodapi.Food{
		ID:     fmt.Sprintf("new-%d", len(f.created)),
		Name:   input.Name,
		Avatar: input.Avatar,
		Rating: foodapi.Rating(input.Rating),
		Open:   input.Open,
		Logo:   input.Logo,
	}, nil
}

func (f *fakeService) UpdateFood(_ context.Context, id string, input foodapi.FoodInput) (foodapi.Food, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updated == nil {
		f.updated = map[string]foodapi.FoodInput{}
	}
	f.updated[id] = input
	if f.updateErr != nil {
		return foodapi.Food{}, f.updateErr
	}
	return foodapi.Food{ID: id, Name: input.Name, Rating: foodapi.Rating(input.Rating), Open: input.Open}, nil
}

func (f *fakeService) DeleteFood(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func sampleFoods() []foodapi.Food {
	return []foodapi.Food{
		{ID: "1", Name: "Pizza", Rating: 4.5, Open: true, Avatar: "https://img.example.com/1.png", Logo: "https://img.example.com/l1.png"},
		{ID: "2", Name: "Burger", Rating: 3, Open: false, Avatar: "https://img.example.com/2.png", Logo: "https://img.example.com/l2.png"},
		{ID: "3", Name: "Pepperoni Pizza", Rating: 5, Open: true, Avatar: "https://img.example.com/3.png", Logo: "https://img.example.com/l3.png"},
	}
}

func validDraft() form.Draft {
	return form.Draft{
		Name:             "Ramen",
		Rating:           4,
		Avatar:           "https://img.example.com/ramen.png",
		RestaurantName:   "Noodle Bar",
		RestaurantLogo:   "https://img.example.com/logo.png",
		RestaurantStatus: form.StatusOpen,
	}
}

func loaded(t *testing.T, api *fakeService) *Controller {
	t.Helper()
	c := New(api, nil)
	require.NoError(t, c.Load(context.Background()))
	return c
}

func TestLoadPopulatesBothLists(t *testing.T) {
	api := &fakeService{items: sampleFoods()}
	c := New(api, nil)

	assert.Equal(t, state.StatusLoading, c.Snapshot().Status)
	require.NoError(t, c.Load(context.Background()))

	v := c.Snapshot()
	assert.Equal(t, state.StatusLoaded, v.Status)
	assert.Len(t, v.All, 3)
	assert.Len(t, v.Filtered, 3)
	assert.Equal(t, state.PageSize, v.Window)
	assert.Empty(t, v.Banner)
}

func TestLoadFailureSetsBanner(t *testing.T) {
	api := &fakeService{listErr: &foodapi.FetchError{Op: foodapi.OpList, StatusCode: 500, Err: errors.New("boom")}}
	c := New(api, nil)

	err := c.Load(context.Background())
	require.Error(t, err)
	assert.True(t, foodapi.IsFetchError(err))

	v := c.Snapshot()
	assert.Equal(t, state.StatusFailed, v.Status)
	assert.Equal(t, "Failed to load foods. Please try again later.", v.Banner)
	assert.Empty(t, v.Visible())
}

func TestSearchBlankQueryMakesNoNetworkCall(t *testing.T) {
	api := &fakeService{items: sampleFoods()}
	c := loaded(t, api)

	c.Search(context.Background(), "   ")

	assert.Empty(t, api.searchCalls)
	v := c.Snapshot()
	assert.Equal(t, v.All, v.Filtered)
	assert.Empty(t, v.Query)
}

func TestSearchUsesServerResults(t *testing.T) {
	api := &fakeService{items: sampleFoods(), results: sampleFoods()[1:2]}
	c := loaded(t, api)

	c.Search(context.Background(), "burg")

	assert.Equal(t, []string{"burg"}, api.searchCalls)
	v := c.Snapshot()
	require.Len(t, v.Filtered, 1)
	assert.Equal(t, "2", v.Filtered[0].ID)
	assert.Len(t, v.All, 3)
	assert.Equal(t, "burg", v.Query)
	assert.False(t, v.Searching)
}

func TestSearchFailureFiltersLocally(t *testing.T) {
	api := &fakeService{items: sampleFoods(), searchErr: errors.New("offline")}
	c := loaded(t, api)

	c.Search(context.Background(), "PIZZA")

	v := c.Snapshot()
	require.Len(t, v.Filtered, 2)
	assert.Equal(t, "1", v.Filtered[0].ID)
	assert.Equal(t, "3", v.Filtered[1].ID)
	assert.Empty(t, v.Banner)
	assert.Equal(t, state.StatusLoaded, v.Status)
}

func TestSubmitCreatesOnce(t *testing.T) {
	api := &fakeService{items: sampleFoods()}
	c := loaded(t, api)
	c.OpenAdd()

	draft := validDraft()
	draft.RestaurantStatus = form.StatusClosed
	require.NoError(t, c.Submit(context.Background(), draft))

	require.Len(t, api.created, 1)
	assert.False(t, api.created[0].Open)
	assert.Equal(t, "Noodle Bar", api.created[0].RestaurantName)

	v := c.Snapshot()
	assert.False(t, v.Modal.Open())
	assert.False(t, v.Submitting)
	require.Len(t, v.All, 4)
	assert.Equal(t, "new-1", v.All[0].ID)
	assert.Equal(t, "new-1", v.Filtered[0].ID)
}

func TestSubmitInvalidDraftNeverReachesAPI(t *testing.T) {
	api := &fakeService{items: sampleFoods()}
	c := loaded(t, api)
	c.OpenAdd()

	draft := validDraft()
	draft.Rating = 10
	draft.Avatar = "ftp://img.example.com/x.png"

	err := c.Submit(context.Background(), draft)
	var verr *form.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Errors, form.FieldRating)
	assert.Contains(t, verr.Errors, form.FieldImage)
	assert.Empty(t, api.created)

	v := c.Snapshot()
	assert.Equal(t, state.ModalAdd, v.Modal.Kind)
	assert.Equal(t, "Food Rating must be between 1 and 5", v.FieldErrors[form.FieldRating])

	c.FieldEdited(form.FieldRating)
	_, still := c.Snapshot().FieldErrors[form.FieldRating]
	assert.False(t, still)
}

func TestSubmitCreateFailureKeepsModal(t *testing.T) {
	api := &fakeService{items: sampleFoods(), createErr: errors.New("503")}
	c := loaded(t, api)
	c.OpenAdd()

	err := c.Submit(context.Background(), validDraft())
	require.Error(t, err)

	v := c.Snapshot()
	assert.Equal(t, state.ModalAdd, v.Modal.Kind)
	assert.False(t, v.Submitting)
	assert.Error(t, v.LastError)
	assert.Len(t, v.All, 3)
}

func TestSubmitUpdatesSelected(t *testing.T) {
	api := &fakeService{items: sampleFoods()}
	c := loaded(t, api)
	c.OpenEdit(sampleFoods()[1])

	draft := form.DraftFromFood(sampleFoods()[1])
	draft.Name = "Cheeseburger"
	draft.RestaurantStatus = form.StatusOpen
	require.NoError(t, c.Submit(context.Background(), draft))

	require.Contains(t, api.updated, "2")
	assert.True(t, api.updated["2"].Open)

	v := c.Snapshot()
	assert.False(t, v.Modal.Open())
	_, selected := v.Selected()
	assert.False(t, selected)
	food, ok := v.Find("2")
	require.True(t, ok)
	assert.Equal(t, "Cheeseburger", food.Name)
	assert.Equal(t, "2", v.All[1].ID)
}

func TestSubmitWithoutModal(t *testing.T) {
	api := &fakeService{items: sampleFoods()}
	c := loaded(t, api)

	err := c.Submit(context.Background(), validDraft())
	assert.ErrorIs(t, err, ErrNoModal)
	assert.Empty(t, api.created)
}

func TestConfirmDeleteRemovesItem(t *testing.T) {
	api := &fakeService{items: sampleFoods()}
	c := loaded(t, api)
	c.OpenDelete("1")

	require.NoError(t, c.ConfirmDelete(context.Background()))
	assert.Equal(t, []string{"1"}, api.deleted)

	v := c.Snapshot()
	assert.False(t, v.Modal.Open())
	_, found := v.Find("1")
	assert.False(t, found)
	assert.Len(t, v.Filtered, 2)
}

func TestConfirmDeleteFailureKeepsSelection(t *testing.T) {
	api := &fakeService{items: sampleFoods(), deleteErr: errors.New("nope")}
	c := loaded(t, api)
	c.OpenDelete("2")

	require.Error(t, c.ConfirmDelete(context.Background()))

	v := c.Snapshot()
	assert.Equal(t, state.ModalDelete, v.Modal.Kind)
	sel, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "2", sel.ID)
	assert.Len(t, v.All, 3)
}

func TestConfirmDeleteRequiresSelection(t *testing.T) {
	api := &fakeService{items: sampleFoods()}
	c := loaded(t, api)

	c.OpenDelete("missing")
	assert.False(t, c.Snapshot().Modal.Open())
	assert.ErrorIs(t, c.ConfirmDelete(context.Background()), ErrNoSelection)
	assert.Empty(t, api.deleted)
}

func TestLoadMoreAndClose(t *testing.T) {
	items := make([]foodapi.Food, 12)
	for i := range items {
		items[i] = foodapi.Food{ID: fmt.Sprint(i), Name: fmt.Sprintf("Food %d", i)}
	}
	api := &fakeService{items: items}
	c := loaded(t, api)

	assert.True(t, c.Snapshot().HasMore())
	c.LoadMore()
	assert.Len(t, c.Snapshot().Visible(), 12)
	c.LoadMore()
	assert.Equal(t, 16, c.Snapshot().Window)

	c.OpenAdd()
	c.Close()
	assert.False(t, c.Snapshot().Modal.Open())
}
