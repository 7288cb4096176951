package interfaces

import (
	"context"

	domaintypes "tapecalc/internal/domain/types"
	"tapecalc/internal/layout"
)

// RemoteClient is the whole calculator API behind one interface. The HTTP
// client implements it against a server; the CLI also has a local one.
type RemoteClient interface {
	Calculate(ctx context.Context, req domaintypes.CalculateRequest) (domaintypes.Calculation, error)
	Layout(ctx context.Context, req layout.Request, precision int) (domaintypes.LayoutResult, error)

	AddHistory(ctx context.Context, entry domaintypes.NewHistoryEntry) (domaintypes.HistoryEntry, error)
	ListHistory(ctx context.Context, limit int) ([]domaintypes.HistoryEntry, error)
	ClearHistory(ctx context.Context) error

	AddSaved(ctx context.Context, m domaintypes.NewSavedMeasurement) (domaintypes.SavedMeasurement, error)
	ListSaved(ctx context.Context) ([]domaintypes.SavedMeasurement, error)
	DeleteSaved(ctx context.Context, id domaintypes.MeasurementID) error
}
