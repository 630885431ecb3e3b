// Package logging assembles structured slog loggers and formatting helpers used
// across reellog.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and tees records so the log file keeps full detail while stderr
// only shows errors. Standard field names (component, session, list, title,
// path) keep lines greppable. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
package logging
