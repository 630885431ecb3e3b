// Package movie defines the Record entity tracked by reellog and the field
// validators the command shell applies before a Record reaches a catalog.
//
// Catalogs store whatever they are given; the limits enforced here (title and
// description length, duration range, no field delimiters) are a shell
// contract. Lengths are counted in bytes after NFC normalization so the
// limits line up with the on-disk format.
package movie
