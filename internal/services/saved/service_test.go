package saved_test

import (
	"context"
	"errors"
	"testing"

	"tapecalc/internal/domain"
	"tapecalc/internal/services/saved"
	"tapecalc/internal/store"
)

func newService(t *testing.T) *saved.Service {
	t.Helper()
	fs, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	return saved.New(fs)
}

func TestSave_Canonicalizes(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	m, err := svc.Save(ctx, "  window  ", `5' 3 2/4"`)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if m.Label != "window" || m.Value != `63 1/2"` {
		t.Fatalf("got %+v", m)
	}

	list, err := svc.List(ctx)
	if err != nil || len(list) != 1 || list[0].ID != m.ID {
		t.Fatalf("list: %+v, %v", list, err)
	}
}

func TestSave_Rejects(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	if _, err := svc.Save(ctx, "door", "tall"); !errors.Is(err, domain.ErrInvalidMeasurement) {
		t.Fatalf("want ErrInvalidMeasurement, got %v", err)
	}
	if _, err := svc.Save(ctx, " ", `80"`); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("want ErrInvalidRequest, got %v", err)
	}
	long := make([]rune, saved.MaxLabelLength+1)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := svc.Save(ctx, string(long), `80"`); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("want ErrInvalidRequest for long label, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	m, _ := svc.Save(ctx, "door", `80"`)
	if err := svc.Delete(ctx, m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, m.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
