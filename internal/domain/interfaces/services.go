package interfaces

import (
	"context"

	domaintypes "tapecalc/internal/domain/types"
	"tapecalc/internal/imperial"
)

// HistoryService evaluates expressions and keeps the calculation log.
type HistoryService interface {
	Calculate(
		ctx context.Context,
		expression string,
		precision imperial.Precision,
		reduce bool,
		record bool,
	) (domaintypes.Calculation, error)
	Evaluate(ctx context.Context, req domaintypes.CalculateRequest) (domaintypes.Calculation, error)
	Record(ctx context.Context, entry domaintypes.NewHistoryEntry) (domaintypes.HistoryEntry, error)
	List(ctx context.Context, limit int) ([]domaintypes.HistoryEntry, error)
	Clear(ctx context.Context) error
}

// SavedService validates and keeps labelled measurements.
type SavedService interface {
	Save(ctx context.Context, label, value string) (domaintypes.SavedMeasurement, error)
	List(ctx context.Context) ([]domaintypes.SavedMeasurement, error)
	Delete(ctx context.Context, id domaintypes.MeasurementID) error
}
