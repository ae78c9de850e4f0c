// Package cli implements the stixgraph command line: global option parsing,
// config loading, logger setup and the per-command flag sets.
//
// Errors caused by bad invocations are returned as *ExitError with code 2;
// main maps every other error to exit code 1.
package cli
