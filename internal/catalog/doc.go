// Package catalog holds one ordered list of movie records.
//
// A Catalog preserves insertion order, permits duplicate titles (the first
// match wins on Search and Remove), and writes itself through to its Store
// after every mutation. It never validates records; callers do that first.
package catalog
