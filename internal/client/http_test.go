package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tapecalc/internal/client"
	"tapecalc/internal/domain"
	"tapecalc/internal/imperial"
	"tapecalc/internal/layout"
	"tapecalc/internal/server"
	"tapecalc/internal/services/history"
	"tapecalc/internal/services/saved"
	"tapecalc/internal/store"
)

func newClient(t *testing.T) *client.HTTP {
	t.Helper()
	fs, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	h := server.NewRouter(server.Deps{
		History: history.New(fs),
		Saved:   saved.New(fs),
	}, server.RouterConfig{Precision: imperial.Sixteenth})
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return client.NewHTTP(srv.URL+"/", srv.Client())
}

func TestHTTP_Calculate(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	calc, err := c.Calculate(ctx, domain.CalculateRequest{Expression: `10" - 2 1/2"`, Record: true})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if calc.Result != `7 1/2"` || !calc.Value.Equal(imperial.MustParse(`7 1/2"`)) {
		t.Fatalf("calc = %+v", calc)
	}

	_, err = c.Calculate(ctx, domain.CalculateRequest{Expression: `5" / 0"`})
	if !errors.Is(err, imperial.ErrDivideByZero) {
		t.Fatalf("divide by zero err = %v", err)
	}
	var se *client.StatusError
	if !errors.As(err, &se) || se.Status != http.StatusUnprocessableEntity || se.Message == "" {
		t.Fatalf("status error = %#v", err)
	}

	entries, err := c.ListHistory(ctx, 0)
	if err != nil || len(entries) != 1 {
		t.Fatalf("history = %+v, %v", entries, err)
	}
}

func TestHTTP_Layout(t *testing.T) {
	c := newClient(t)

	res, err := c.Layout(context.Background(), layout.Request{
		Mode:     layout.ModeCustom,
		Interval: `16"`,
		Total:    `96"`,
	}, 16)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if len(res.Marks) != 6 || res.Marks[5] != `96"` || res.Spacing != `16"` {
		t.Fatalf("layout = %+v", res)
	}
}

func TestHTTP_History(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	if _, err := c.AddHistory(ctx, domain.NewHistoryEntry{Expression: `1" + 1"`, Result: `2"`}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := c.AddHistory(ctx, domain.NewHistoryEntry{Expression: `x`}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("invalid add err = %v", err)
	}
	if err := c.ClearHistory(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	entries, err := c.ListHistory(ctx, 5)
	if err != nil || len(entries) != 0 {
		t.Fatalf("after clear = %+v, %v", entries, err)
	}
}

func TestHTTP_Saved(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	m, err := c.AddSaved(ctx, domain.NewSavedMeasurement{Label: "stud", Value: `92 5/8"`})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	items, err := c.ListSaved(ctx)
	if err != nil || len(items) != 1 || items[0].ID != m.ID {
		t.Fatalf("list = %+v, %v", items, err)
	}
	if err := c.DeleteSaved(ctx, m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := c.DeleteSaved(ctx, m.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete err = %v", err)
	}
}

func TestHTTP_Canceled(t *testing.T) {
	c := newClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.ListSaved(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}
