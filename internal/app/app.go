package app

import (
	"context"
	"fmt"

	"tapecalc/internal/domain"
	"tapecalc/internal/imperial"
	"tapecalc/internal/layout"
)

var errBadPrecision = fmt.Errorf("%w: precision must be 8, 16 or 32", domain.ErrInvalidRequest)

// Local serves the full API from in-process services.
type Local struct {
	History domain.HistoryService
	Saved   domain.SavedService
	Config  Config
}

func (l *Local) Calculate(ctx context.Context, req domain.CalculateRequest) (domain.Calculation, error) {
	return l.History.Evaluate(ctx, req)
}

// Layout builds req at precision, or the configured precision when it is 0.
func (l *Local) Layout(_ context.Context, req layout.Request, precision int) (domain.LayoutResult, error) {
	p := l.Config.Precision.OrDefault()
	if precision != 0 {
		p = imperial.Precision(precision)
		if !p.Valid() {
			return domain.LayoutResult{}, errBadPrecision
		}
	}
	plan, err := layout.Build(req, p)
	if err != nil {
		return domain.LayoutResult{}, err
	}
	return domain.NewLayoutResult(plan, l.Config.Display), nil
}

func (l *Local) AddHistory(ctx context.Context, entry domain.NewHistoryEntry) (domain.HistoryEntry, error) {
	return l.History.Record(ctx, entry)
}

func (l *Local) ListHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	return l.History.List(ctx, limit)
}

func (l *Local) ClearHistory(ctx context.Context) error {
	return l.History.Clear(ctx)
}

func (l *Local) AddSaved(ctx context.Context, m domain.NewSavedMeasurement) (domain.SavedMeasurement, error) {
	return l.Saved.Save(ctx, m.Label, m.Value)
}

func (l *Local) ListSaved(ctx context.Context) ([]domain.SavedMeasurement, error) {
	return l.Saved.List(ctx)
}

func (l *Local) DeleteSaved(ctx context.Context, id domain.MeasurementID) error {
	return l.Saved.Delete(ctx, id)
}

var _ domain.RemoteClient = (*Local)(nil)
