package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"tapecalc/internal/domain"
	"tapecalc/internal/store"
)

func openSQLite(t *testing.T, path string) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) domain.Store {
		return openSQLite(t, filepath.Join(t.TempDir(), "test.db"))
	})
}

func TestSQLiteStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tapecalc.db")

	a, err := store.NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := a.AddHistory(ctx, domain.NewHistoryEntry{Expression: `96" / 4`, Result: `24"`}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b := openSQLite(t, path)
	got, err := b.ListHistory(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Result != `24"` {
		t.Fatalf("got %+v", got)
	}
}
