// Package storage persists catalogs as line-oriented text files.
//
// Each record occupies one line, `title|description|duration`, with no
// escaping. Lines that do not match that shape are dropped on load. A missing
// file loads as an empty list. Saves replace the file atomically through a
// fsynced temporary file, so an interrupted write leaves the previous
// contents in place.
package storage
