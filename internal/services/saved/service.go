package saved

import (
	"context"
	"fmt"
	"strings"

	"tapecalc/internal/domain"
	"tapecalc/internal/imperial"
)

// MaxLabelLength bounds a label in runes.
const MaxLabelLength = 120

type Service struct {
	ss domain.SavedStore
}

func New(ss domain.SavedStore) *Service { return &Service{ss: ss} }

// Save parses value and stores it under label. A value such as 5' 3 1/2" is
// kept as 63 1/2", so every saved value parses back to the same length.
func (s *Service) Save(ctx context.Context, label, value string) (domain.SavedMeasurement, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return domain.SavedMeasurement{}, fmt.Errorf("%w: label is required", domain.ErrInvalidRequest)
	}
	if len([]rune(label)) > MaxLabelLength {
		return domain.SavedMeasurement{}, fmt.Errorf("%w: label longer than %d characters", domain.ErrInvalidRequest, MaxLabelLength)
	}
	m, ok := imperial.ParseInput(value)
	if !ok {
		return domain.SavedMeasurement{}, fmt.Errorf("%w: %q", domain.ErrInvalidMeasurement, value)
	}
	return s.ss.AddSaved(ctx, domain.NewSavedMeasurement{Label: label, Value: m.String()})
}

func (s *Service) List(ctx context.Context) ([]domain.SavedMeasurement, error) {
	return s.ss.ListSaved(ctx)
}

// Delete removes id, or returns domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id domain.MeasurementID) error {
	return s.ss.DeleteSaved(ctx, id)
}

var _ domain.SavedService = (*Service)(nil)
