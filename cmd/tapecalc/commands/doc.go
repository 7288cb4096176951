// Package commands defines the tapecalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - calc      Evaluate an expression left to right and record it
//   - convert   Show a measurement in every display form
//   - round     Snap a decimal inch value to the nearest tape mark
//   - divide    Split a length into equal parts
//   - interval  Place marks at a fixed interval
//   - spacing   Space marks evenly between two points
//   - history   List or clear recorded calculations
//   - saved     Add, list or remove saved measurements
//   - repl      Drive the keypad calculator interactively
//
// # Implementation
//
// The root command loads the config file and TAPECALC_* environment, applies
// flag overrides, and installs the logger before any subcommand runs.
// Commands that need storage build the dependency graph on first use: local
// stores under --home, or an HTTP client when --server is set.
package commands
