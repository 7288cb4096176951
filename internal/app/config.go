package app

import (
	"net/http"

	"tapecalc/internal/imperial"
	historysvc "tapecalc/internal/services/history"
	"tapecalc/internal/store"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string        // data directory, e.g. $HOME/.tapecalc
	Backend    store.Backend // file or sqlite
	Passphrase string        // seals the file store when set
	ServerURL  string        // use a remote server instead of local stores
	HTTP       *http.Client  // optional; defaults to http.DefaultClient

	Precision imperial.Precision
	Display   imperial.DisplayOptions

	// Observer, when set, is told about every local evaluation.
	Observer historysvc.Observer
}
