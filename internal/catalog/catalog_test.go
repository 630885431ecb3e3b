package catalog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"reellog/internal/movie"
)

type recordingStore struct {
	saves [][]movie.Record
	err   error
}

func (s *recordingStore) Save(records []movie.Record) error {
	s.saves = append(s.saves, records)
	return s.err
}

func TestAddThenSearch(t *testing.T) {
	store := &recordingStore{}
	c := New("Watched", store)

	if err := c.Add(movie.New("Dune", "Sci-fi epic", 155)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, ok := c.Search("Dune")
	if !ok {
		t.Fatal("expected Dune to be found")
	}
	if diff := cmp.Diff(movie.New("Dune", "Sci-fi epic", 155), got); diff != "" {
		t.Fatalf("search result mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]movie.Record{got}, c.Enumerate()); diff != "" {
		t.Fatalf("enumerate mismatch (-want +got):\n%s", diff)
	}
	if len(store.saves) != 1 {
		t.Fatalf("expected one write-through, got %d", len(store.saves))
	}
}

func TestSearchIsCaseSensitive(t *testing.T) {
	c := New("Watched", nil)
	if err := c.Add(movie.New("Dune", "Sci-fi epic", 155)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, ok := c.Search("dune"); ok {
		t.Fatal("expected case-sensitive miss")
	}
}

func TestRemoveNonexistentLeavesCatalogUnchanged(t *testing.T) {
	store := &recordingStore{}
	c := NewWithRecords("To Watch", store, []movie.Record{
		movie.New("Heat", "Crime", 170),
		movie.New("Ran", "Epic", 162),
	})
	before := c.Enumerate()

	_, err := c.Remove("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if diff := cmp.Diff(before, c.Enumerate()); diff != "" {
		t.Fatalf("catalog changed (-want +got):\n%s", diff)
	}
	if len(store.saves) != 0 {
		t.Fatalf("expected no write-through on miss, got %d", len(store.saves))
	}
}

func TestRemoveOnlyFirstDuplicate(t *testing.T) {
	store := &recordingStore{}
	c := NewWithRecords("Watched", store, []movie.Record{
		movie.New("Solaris", "1972 cut", 167),
		movie.New("Heat", "Crime", 170),
		movie.New("Solaris", "2002 cut", 99),
	})

	removed, err := c.Remove("Solaris")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed.Description != "1972 cut" {
		t.Fatalf("expected first duplicate removed, got %+v", removed)
	}
	want := []movie.Record{
		movie.New("Heat", "Crime", 170),
		movie.New("Solaris", "2002 cut", 99),
	}
	if diff := cmp.Diff(want, c.Enumerate()); diff != "" {
		t.Fatalf("remaining records mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, store.saves[len(store.saves)-1]); diff != "" {
		t.Fatalf("persisted records mismatch (-want +got):\n%s", diff)
	}
}

func TestMutationSurvivesPersistFailure(t *testing.T) {
	store := &recordingStore{err: errors.New("disk full")}
	c := New("Watched", store)

	if err := c.Add(movie.New("Dune", "Sci-fi epic", 155)); err == nil {
		t.Fatal("expected persist error from Add")
	}
	if c.Len() != 1 {
		t.Fatalf("expected in-memory add to stand, len=%d", c.Len())
	}

	removed, err := c.Remove("Dune")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected persist error from Remove, got %v", err)
	}
	if removed.Title != "Dune" || c.Len() != 0 {
		t.Fatalf("expected in-memory removal to stand, removed=%+v len=%d", removed, c.Len())
	}
}

func TestEnumerateReturnsCopy(t *testing.T) {
	c := NewWithRecords("Watched", nil, []movie.Record{movie.New("Heat", "Crime", 170)})
	out := c.Enumerate()
	out[0].Title = "changed"
	if got, _ := c.Search("Heat"); got.Title != "Heat" {
		t.Fatal("Enumerate leaked internal storage")
	}
}

func TestTotalMinutes(t *testing.T) {
	c := NewWithRecords("Watched", nil, []movie.Record{
		movie.New("Heat", "Crime", 170),
		movie.New("Ran", "Epic", 162),
	})
	if got := c.TotalMinutes(); got != 332 {
		t.Fatalf("TotalMinutes = %d, want 332", got)
	}
}
