// Package main wires the reellog command-line interface.
//
// Running reellog with no subcommand opens the interactive menu. The
// watched and towatch subcommands edit one list each, search and watch work
// across both, and config manages the TOML configuration file. Every command
// that touches the lists opens a single Library session, which holds the
// data directory lock until the command returns.
package main
