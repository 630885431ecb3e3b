// Package library owns the session state of a reellog run: the Watched and
// To Watch catalogs, their backing files, and the lock that keeps a second
// process from writing the same data directory.
//
// Open loads both lists once; every Add or Remove writes the touched list
// through to disk; Close saves both lists and releases the lock. Callers are
// expected to validate records before handing them over.
package library
