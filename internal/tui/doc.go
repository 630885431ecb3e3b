// Package tui implements the interactive reellog menu on bubbletea.
//
// The model walks the same screens as the classic numbered menu: a main
// menu, one sub-menu per list, add/remove/search forms whose fields are
// checked by movie.Validator closures, and a display screen. Every change goes
// straight to the Library, which writes the affected list through to disk.
package tui
