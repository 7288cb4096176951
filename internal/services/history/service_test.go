package history_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tapecalc/internal/domain"
	"tapecalc/internal/imperial"
	"tapecalc/internal/services/history"
	"tapecalc/internal/store"
)

type recorder struct {
	mu   sync.Mutex
	ops  []string
	errs []error
}

func (r *recorder) Calculated(op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
	r.errs = append(r.errs, err)
}

func newService(t *testing.T) (*history.Service, *recorder) {
	t.Helper()
	fs, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	rec := &recorder{}
	return history.New(fs).WithObserver(rec), rec
}

func TestCalculate_RecordsHistory(t *testing.T) {
	ctx := context.Background()
	svc, rec := newService(t)

	calc, err := svc.Calculate(ctx, `5' 3 1/2" + 2 1/4"`, imperial.Sixteenth, true, true)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if calc.Result != `65 3/4"` || calc.Sixteenths != `65 12/16"` || calc.Decimal != `65.75"` {
		t.Fatalf("got %+v", calc)
	}

	list, err := svc.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Result != `65 3/4"` || list[0].Expression != `5' 3 1/2" + 2 1/4"` {
		t.Fatalf("history: %+v", list)
	}
	if len(rec.ops) != 1 || rec.ops[0] != "add" || rec.errs[0] != nil {
		t.Fatalf("observer: %v %v", rec.ops, rec.errs)
	}
}

func TestCalculate_NoRecord(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if _, err := svc.Calculate(ctx, `96" / 4`, imperial.Sixteenth, true, false); err != nil {
		t.Fatalf("calculate: %v", err)
	}
	list, _ := svc.List(ctx, 0)
	if len(list) != 0 {
		t.Fatalf("recorded without record flag: %+v", list)
	}
}

func TestCalculate_WithFeet(t *testing.T) {
	fs, _ := store.NewFileStore(t.TempDir())
	svc := history.New(fs).WithDisplay(imperial.DisplayOptions{Feet: true})
	calc, err := svc.Calculate(context.Background(), `60" + 3 1/2"`, imperial.Sixteenth, true, false)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if calc.Result != `5' 3 1/2"` {
		t.Fatalf("got %q", calc.Result)
	}
}

func TestCalculate_Errors(t *testing.T) {
	ctx := context.Background()
	svc, rec := newService(t)

	if _, err := svc.Calculate(ctx, "abc", imperial.Sixteenth, true, true); !errors.Is(err, domain.ErrInvalidMeasurement) {
		t.Fatalf("want ErrInvalidMeasurement, got %v", err)
	}
	if _, err := svc.Calculate(ctx, `5" / 0`, imperial.Sixteenth, true, true); !errors.Is(err, imperial.ErrDivideByZero) {
		t.Fatalf("want ErrDivideByZero, got %v", err)
	}
	if len(rec.ops) != 2 || rec.ops[1] != "divide" || rec.errs[1] == nil {
		t.Fatalf("observer: %v %v", rec.ops, rec.errs)
	}
	list, _ := svc.List(ctx, 0)
	if len(list) != 0 {
		t.Fatalf("failed calculations recorded: %+v", list)
	}
}

func TestRecordAndClear(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if _, err := svc.Record(ctx, domain.NewHistoryEntry{Expression: `5" + 5"`, Result: `10"`}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := svc.Record(ctx, domain.NewHistoryEntry{Expression: `5" + 5"`}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("want ErrInvalidRequest, got %v", err)
	}
	if _, err := svc.Record(ctx, domain.NewHistoryEntry{Expression: "x", Result: "ten"}); !errors.Is(err, domain.ErrInvalidMeasurement) {
		t.Fatalf("want ErrInvalidMeasurement, got %v", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	list, _ := svc.List(ctx, 0)
	if len(list) != 0 {
		t.Fatalf("after clear: %+v", list)
	}
}

func TestEvaluate_Request(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	calc, err := svc.Evaluate(ctx, domain.CalculateRequest{Expression: `63 1/2" + 0"`, Feet: true, Record: true})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if calc.Result != `5' 3 1/2"` || calc.Sixteenths != `5' 3 8/16"` {
		t.Fatalf("calc = %+v", calc)
	}
	entries, err := svc.List(ctx, 0)
	if err != nil || len(entries) != 1 || entries[0].Result != `5' 3 1/2"` {
		t.Fatalf("history = %+v, %v", entries, err)
	}

	noReduce := false
	calc, err = svc.Evaluate(ctx, domain.CalculateRequest{Expression: `1/2"`, Reduce: &noReduce, Precision: 16})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if calc.Result != `8/16"` {
		t.Fatalf("unreduced = %q", calc.Result)
	}

	if _, err := svc.Evaluate(ctx, domain.CalculateRequest{Expression: `1"`, Precision: 12}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("bad precision err = %v", err)
	}
}
