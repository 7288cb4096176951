// Package app wires application dependencies for the CLI and the server.
//
// It builds the store, the history and saved-measurement services and either
// a local API over them or an HTTP client for a remote server, exposing them
// via the Wire struct for commands to use.
package app
