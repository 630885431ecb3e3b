package catalog

import (
	"errors"
	"fmt"

	"reellog/internal/movie"
)

// ErrNotFound reports that no record has the requested title.
var ErrNotFound = errors.New("movie not found")

// Store receives the full record sequence after each mutation.
type Store interface {
	Save(records []movie.Record) error
}

// Catalog is an ordered, write-through list of records.
type Catalog struct {
	name    string
	records []movie.Record
	store   Store
}

// New creates an empty catalog. A nil store disables write-through.
func New(name string, store Store) *Catalog {
	return &Catalog{name: name, store: store}
}

// NewWithRecords creates a catalog pre-populated with records, without
// triggering a write.
func NewWithRecords(name string, store Store, records []movie.Record) *Catalog {
	c := New(name, store)
	c.records = append(c.records, records...)
	return c
}

// Name returns the catalog's display name.
func (c *Catalog) Name() string {
	return c.name
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Add appends rec. The record is kept even when the write-through fails; the
// returned error only describes the persistence failure.
func (c *Catalog) Add(rec movie.Record) error {
	c.records = append(c.records, rec)
	return c.persist()
}

// Remove deletes the first record whose title equals title byte for byte.
// On a persistence failure the removal still stands and the removed record
// is returned with the error.
func (c *Catalog) Remove(title string) (movie.Record, error) {
	idx := c.indexOf(title)
	if idx < 0 {
		return movie.Record{}, fmt.Errorf("%s: %q: %w", c.name, title, ErrNotFound)
	}
	removed := c.records[idx]
	c.records = append(c.records[:idx], c.records[idx+1:]...)
	return removed, c.persist()
}

// Search returns the first record whose title equals title.
func (c *Catalog) Search(title string) (movie.Record, bool) {
	idx := c.indexOf(title)
	if idx < 0 {
		return movie.Record{}, false
	}
	return c.records[idx], true
}

// Enumerate returns a copy of all records in insertion order.
func (c *Catalog) Enumerate() []movie.Record {
	out := make([]movie.Record, len(c.records))
	copy(out, c.records)
	return out
}

// TotalMinutes sums the durations of every record.
func (c *Catalog) TotalMinutes() int {
	total := 0
	for _, rec := range c.records {
		total += rec.Duration
	}
	return total
}

// Flush writes the current records to the store without mutating.
func (c *Catalog) Flush() error {
	return c.persist()
}

func (c *Catalog) indexOf(title string) int {
	for i, rec := range c.records {
		if rec.Title == title {
			return i
		}
	}
	return -1
}

func (c *Catalog) persist() error {
	if c.store == nil {
		return nil
	}
	return c.store.Save(c.Enumerate())
}
