package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"reellog/internal/catalog"
	"reellog/internal/movie"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	records, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestOpenMissingFileYieldsEmptyCatalog(t *testing.T) {
	c, err := Open("Watched", filepath.Join(t.TempDir(), "watched_movies.txt"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if c.Len() != 0 || c.Name() != "Watched" {
		t.Fatalf("unexpected catalog state: name=%q len=%d", c.Name(), c.Len())
	}
}

func TestDuneScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched_movies.txt")
	c, err := Open("Watched", path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := c.Add(movie.New("Dune", "Sci-fi epic", 155)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	want := []movie.Record{movie.New("Dune", "Sci-fi epic", 155)}
	if diff := cmp.Diff(want, c.Enumerate()); diff != "" {
		t.Fatalf("enumerate mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read catalog file: %v", err)
	}
	if string(data) != "Dune|Sci-fi epic|155\n" {
		t.Fatalf("unexpected file contents %q", data)
	}

	reloaded, err := Open("Watched", path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if diff := cmp.Diff(want, reloaded.Enumerate()); diff != "" {
		t.Fatalf("reload mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "to_watch_movies.txt")
	records := []movie.Record{
		movie.New("Heat", "Crime saga", 170),
		movie.New("Ran", "Lear in feudal Japan", 162),
		movie.New("Heat", "Rewatch", 170),
	}
	c := catalog.NewWithRecords("To Watch", nil, records)

	if err := Save(c, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(records, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveOverwritesExistingContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched_movies.txt")
	if err := os.WriteFile(path, []byte("Old|Stale entry|90\nOther|Also stale|80\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	c := catalog.NewWithRecords("Watched", nil, []movie.Record{movie.New("New", "Fresh", 100)})
	if err := Save(c, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "New|Fresh|100\n" {
		t.Fatalf("expected file to be replaced, got %q", data)
	}
}

func TestSaveEmptyCatalogTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched_movies.txt")
	if err := os.WriteFile(path, []byte("Old|Stale entry|90\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if err := Save(catalog.New("Watched", nil), path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected empty file, got %d bytes", info.Size())
	}
}

func TestSaveFailureIsReportedAndCatalogKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "watched_movies.txt")
	c, err := Open("Watched", path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	err = c.Add(movie.New("Dune", "Sci-fi epic", 155))
	if !errors.Is(err, ErrPersist) {
		t.Fatalf("expected ErrPersist, got %v", err)
	}
	var perr *PersistError
	if !errors.As(err, &perr) || perr.Path != path {
		t.Fatalf("expected PersistError for %s, got %v", path, err)
	}
	if _, ok := c.Search("Dune"); !ok {
		t.Fatal("expected in-memory record to survive the failed save")
	}
}

func TestLoadUnreadablePathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); err == nil {
		t.Fatal("expected reading a directory to fail")
	}
}

func TestLoadSurvivesOverlongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched_movies.txt")
	content := "Dune|Sci-fi epic|155\n" + strings.Repeat("x", 2<<20) + "\nHeat|Crime saga|170\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []movie.Record{
		movie.New("Dune", "Sci-fi epic", 155),
		movie.New("Heat", "Crime saga", 170),
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}
