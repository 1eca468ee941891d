package state

import (
	"sync"
	"testing"

	"github.com/five82/foodwagen/internal/foodapi"
)

func TestStore_ZeroValueStartsLoading(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.Status != StatusLoading {
		t.Fatalf("Status = %v, want loading", snap.Status)
	}
	if snap.Window != PageSize {
		t.Fatalf("Window = %d, want %d", snap.Window, PageSize)
	}
}

func TestStore_DispatchAndSnapshotClone(t *testing.T) {
	s := NewStore()

	s.Dispatch(Loaded{Items: []foodapi.Food{{ID: "1", Name: "Pizza"}, {ID: "2", Name: "Burger"}}})
	s.Dispatch(EditOpened{Food: foodapi.Food{ID: "1", Name: "Pizza"}})

	snap := s.Snapshot()
	if len(snap.All) != 2 || snap.All[0].ID != "1" {
		t.Fatalf("snapshot list = %#v, want 2 items", snap.All)
	}

	// Returned snapshot should be independent of the stored one.
	snap.All[0].Name = "mutated"
	snap.Filtered[0].Name = "mutated"
	snap.Modal.Selected.Name = "mutated"

	snap2 := s.Snapshot()
	if snap2.All[0].Name != "Pizza" || snap2.Filtered[0].Name != "Pizza" {
		t.Fatalf("Snapshot should clone lists; got %q", snap2.All[0].Name)
	}
	if snap2.Modal.Selected.Name != "Pizza" {
		t.Fatalf("Snapshot should clone selection; got %q", snap2.Modal.Selected.Name)
	}
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := NewStore()
	s.Dispatch(Loaded{Items: nil})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Dispatch(Created{Food: foodapi.Food{ID: string(rune('a' + i%26))}})
			_ = s.Snapshot()
		}(i)
	}
	wg.Wait()

	if got := len(s.Snapshot().All); got != 50 {
		t.Fatalf("len(All) = %d, want 50", got)
	}
}
