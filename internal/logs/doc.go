// Package logs reads back the reellog CLI log file.
//
// Read returns the last N lines (optionally only those stamped with one
// session ID) and can then poll from the returned offset for lines appended
// by later sessions. Memory stays bounded by the requested line count.
package logs
