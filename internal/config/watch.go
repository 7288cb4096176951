package config

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"tapecalc/internal/logger"
)

var log = logger.ForComponent("config")

// debounceWindow groups the several events an editor save produces.
const debounceWindow = 200 * time.Millisecond

// Live holds the current config and swaps it atomically on reload.
type Live struct {
	cur atomic.Pointer[Config]
}

// NewLive returns a holder starting at cfg.
func NewLive(cfg Config) *Live {
	l := &Live{}
	l.cur.Store(&cfg)
	return l
}

// Get returns the current config.
func (l *Live) Get() Config { return *l.cur.Load() }

// Watch reloads the config for home whenever its file changes, until ctx is
// done. A reload that fails to parse or validate is logged and the previous
// config stays in place. onChange, if set, runs after each successful swap.
func (l *Live) Watch(ctx context.Context, home string, onChange func(Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	if err := w.Add(home); err != nil {
		w.Close()
		return err
	}
	target := filepath.Clean(Path(home))
	log.Info("watching config", "path", target)

	go func() {
		defer w.Close()
		var (
			timer   *time.Timer
			pending <-chan time.Time
		)
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounceWindow)
				} else {
					timer.Reset(debounceWindow)
				}
				pending = timer.C
			case <-pending:
				pending = nil
				l.reload(home, onChange)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("config watcher error", "error", err)
			}
		}
	}()
	return nil
}

func (l *Live) reload(home string, onChange func(Config)) {
	cfg, err := Load(home)
	if err != nil {
		log.Warn("config reload rejected", "error", err)
		return
	}
	l.cur.Store(&cfg)
	log.Info("config reloaded", "precision", cfg.Precision, "display", cfg.Display)
	if onChange != nil {
		onChange(cfg)
	}
}
