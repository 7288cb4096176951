package app

import (
	"fmt"
	"net/http"

	"tapecalc/internal/client"
	"tapecalc/internal/domain"
	historysvc "tapecalc/internal/services/history"
	savedsvc "tapecalc/internal/services/saved"
	"tapecalc/internal/store"
)

// Wire bundles the store, services and the API the commands use.
type Wire struct {
	Store   domain.Store // nil when remote
	History *historysvc.Service
	Saved   *savedsvc.Service

	// API is the local services or the remote client, depending on
	// Config.ServerURL.
	API    domain.RemoteClient
	Remote bool
}

// NewWire constructs the dependency graph from cfg. With a server URL no
// local store is opened.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.ServerURL != "" {
		httpClient := cfg.HTTP
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		return &Wire{API: client.NewHTTP(cfg.ServerURL, httpClient), Remote: true}, nil
	}

	st, err := store.Open(store.Options{
		Backend:    cfg.Backend,
		Dir:        cfg.Home,
		Passphrase: cfg.Passphrase,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	hist := historysvc.New(st).
		WithDisplay(cfg.Display).
		WithPrecision(cfg.Precision)
	if cfg.Observer != nil {
		hist = hist.WithObserver(cfg.Observer)
	}
	saved := savedsvc.New(st)

	return &Wire{
		Store:   st,
		History: hist,
		Saved:   saved,
		API:     &Local{History: hist, Saved: saved, Config: cfg},
	}, nil
}

// Close releases the store, if any.
func (w *Wire) Close() error {
	if w.Store == nil {
		return nil
	}
	return w.Store.Close()
}
