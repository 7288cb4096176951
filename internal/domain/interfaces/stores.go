package interfaces

import (
	"context"

	domaintypes "tapecalc/internal/domain/types"
)

// HistoryStore persists completed calculations.
type HistoryStore interface {
	AddHistory(ctx context.Context, entry domaintypes.NewHistoryEntry) (domaintypes.HistoryEntry, error)
	// ListHistory returns up to limit entries, newest first.
	ListHistory(ctx context.Context, limit int) ([]domaintypes.HistoryEntry, error)
	ClearHistory(ctx context.Context) error
}

// SavedStore persists labelled measurements.
type SavedStore interface {
	AddSaved(ctx context.Context, m domaintypes.NewSavedMeasurement) (domaintypes.SavedMeasurement, error)
	// ListSaved returns every saved measurement, newest first.
	ListSaved(ctx context.Context) ([]domaintypes.SavedMeasurement, error)
	// DeleteSaved returns ErrNotFound when id does not exist.
	DeleteSaved(ctx context.Context, id domaintypes.MeasurementID) error
}

// Store is a backend holding both collections.
type Store interface {
	HistoryStore
	SavedStore
	Close() error
}
