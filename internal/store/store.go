package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"tapecalc/internal/domain"
)

// DefaultHistoryLimit is the number of history entries listed when the
// caller asks for zero or fewer.
const DefaultHistoryLimit = 50

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	return limit
}

// Backend names a storage implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// ParseBackend accepts "file" (or "json") and "sqlite".
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "file", "json":
		return BackendFile, nil
	case "sqlite", "sqlite3", "db":
		return BackendSQLite, nil
	}
	return "", fmt.Errorf("unknown store backend %q (want file or sqlite)", s)
}

// SQLiteFile is the database file name inside the home directory.
const SQLiteFile = "tapecalc.db"

// Options selects and configures a backend.
type Options struct {
	Backend    Backend
	Dir        string
	Passphrase string // file backend only
}

// Open returns the backend described by opts.
func Open(opts Options) (domain.Store, error) {
	switch opts.Backend {
	case BackendFile, "":
		var fo []FileOption
		if opts.Passphrase != "" {
			fo = append(fo, WithPassphrase(opts.Passphrase))
		}
		return NewFileStore(opts.Dir, fo...)
	case BackendSQLite:
		if opts.Passphrase != "" {
			log.Warn("passphrase ignored by the sqlite backend")
		}
		return NewSQLiteStore(filepath.Join(opts.Dir, SQLiteFile))
	}
	return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
}
