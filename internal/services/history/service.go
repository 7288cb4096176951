package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tapecalc/internal/domain"
	"tapecalc/internal/imperial"
	"tapecalc/internal/logger"
)

var log = logger.ForComponent("history")

// Observer is told about every evaluation; metrics hang off it.
type Observer interface {
	Calculated(op string, err error)
}

// Service evaluates expressions and records them.
type Service struct {
	hs        domain.HistoryStore
	observer  Observer
	opts      imperial.DisplayOptions
	precision imperial.Precision
}

func New(hs domain.HistoryStore) *Service {
	return &Service{hs: hs, precision: imperial.DefaultPrecision}
}

// WithObserver returns s reporting to o.
func (s *Service) WithObserver(o Observer) *Service {
	s.observer = o
	return s
}

// Calculate evaluates expression left to right at precision. With record
// set, the expression and result are appended to history. Malformed input
// is reported as domain.ErrInvalidMeasurement wrapping the parser error.
func (s *Service) Calculate(
	ctx context.Context,
	expression string,
	precision imperial.Precision,
	reduce bool,
	record bool,
) (domain.Calculation, error) {
	precision = precision.OrDefault()
	result, err := imperial.Evaluate(expression, precision, reduce)
	s.observe(expression, err)
	if err != nil {
		if errors.Is(err, imperial.ErrInvalidInput) {
			return domain.Calculation{}, fmt.Errorf("%w: %w", domain.ErrInvalidMeasurement, err)
		}
		return domain.Calculation{}, err
	}

	calc := domain.Calculation{
		Expression: strings.TrimSpace(imperial.Clean(expression)),
		Result:     imperial.FormatImperialMeasurement(result, s.opts),
		Sixteenths: imperial.FormatImperialMeasurement(result, imperial.DisplayOptions{Format: imperial.Sixteenths, Feet: s.opts.Feet}),
		Decimal:    imperial.FormatAsDecimal(result),
		Value:      result,
	}
	if record {
		if _, err := s.hs.AddHistory(ctx, domain.NewHistoryEntry{Expression: calc.Expression, Result: calc.Result}); err != nil {
			return calc, fmt.Errorf("record history: %w", err)
		}
	}
	log.Debug("calculated", "expression", calc.Expression, "result", calc.Result)
	return calc, nil
}

// WithDisplay returns s formatting results with opts.
func (s *Service) WithDisplay(opts imperial.DisplayOptions) *Service {
	s.opts = opts
	return s
}

// WithPrecision returns s using p when a request names no precision.
func (s *Service) WithPrecision(p imperial.Precision) *Service {
	s.precision = p.OrDefault()
	return s
}

// Evaluate runs a CalculateRequest. Precision 0 means the service default
// and Reduce defaults to true. Feet only changes how the result is shown.
func (s *Service) Evaluate(ctx context.Context, req domain.CalculateRequest) (domain.Calculation, error) {
	precision := s.precision
	if req.Precision != 0 {
		precision = imperial.Precision(req.Precision)
		if !precision.Valid() {
			return domain.Calculation{}, fmt.Errorf("%w: precision must be 8, 16 or 32", domain.ErrInvalidRequest)
		}
	}
	reduce := req.Reduce == nil || *req.Reduce

	calc, err := s.Calculate(ctx, req.Expression, precision, reduce, req.Record && req.Feet == s.opts.Feet)
	if err != nil || req.Feet == s.opts.Feet {
		return calc, err
	}
	opts := s.opts
	opts.Feet = req.Feet
	calc.Result = imperial.FormatImperialMeasurement(calc.Value, opts)
	calc.Sixteenths = imperial.FormatImperialMeasurement(calc.Value, imperial.DisplayOptions{Format: imperial.Sixteenths, Feet: req.Feet})
	if req.Record {
		if _, err := s.hs.AddHistory(ctx, domain.NewHistoryEntry{Expression: calc.Expression, Result: calc.Result}); err != nil {
			return calc, fmt.Errorf("record history: %w", err)
		}
	}
	return calc, nil
}

// Record stores a calculation made elsewhere. Both fields are required and
// the result must be a measurement.
func (s *Service) Record(ctx context.Context, in domain.NewHistoryEntry) (domain.HistoryEntry, error) {
	in.Expression = strings.TrimSpace(in.Expression)
	in.Result = strings.TrimSpace(in.Result)
	if in.Expression == "" || in.Result == "" {
		return domain.HistoryEntry{}, fmt.Errorf("%w: expression and result are required", domain.ErrInvalidRequest)
	}
	if _, ok := imperial.ParseInput(in.Result); !ok && in.Result != "Error" {
		return domain.HistoryEntry{}, fmt.Errorf("%w: result %q", domain.ErrInvalidMeasurement, in.Result)
	}
	return s.hs.AddHistory(ctx, in)
}

// List returns up to limit entries, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	return s.hs.ListHistory(ctx, limit)
}

// Clear removes every history entry.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.hs.ClearHistory(ctx); err != nil {
		return err
	}
	log.Info("history cleared")
	return nil
}

func (s *Service) observe(expression string, err error) {
	if s.observer == nil {
		return
	}
	s.observer.Calculated(operationOf(expression), err)
}

// operationOf names the first operator in expression, or "round" for a
// bare value. A leading "-" is a sign, not an operator.
func operationOf(expression string) string {
	spaced := strings.NewReplacer("+", " + ", "*", " * ", "×", " × ", "÷", " ÷ ").Replace(imperial.Clean(expression))
	for i, f := range strings.Fields(spaced) {
		if i == 0 {
			continue
		}
		switch f {
		case "+", "-", "*", "x", "X", "×", "/", "÷":
			if op, err := imperial.ParseOperation(f); err == nil {
				return op.String()
			}
		}
	}
	return "round"
}

var _ domain.HistoryService = (*Service)(nil)
