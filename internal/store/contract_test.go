package store_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tapecalc/internal/domain"
	"tapecalc/internal/store"
)

// runStoreContract checks the behaviour every domain.Store must share.
func runStoreContract(t *testing.T, open func(t *testing.T) domain.Store) {
	t.Run("history newest first with limit", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)

		for i := 1; i <= 5; i++ {
			e, err := s.AddHistory(ctx, domain.NewHistoryEntry{Expression: fmt.Sprintf("%d + 1", i), Result: fmt.Sprintf(`%d"`, i+1)})
			if err != nil {
				t.Fatalf("add %d: %v", i, err)
			}
			if e.ID == 0 || e.CreatedAt.IsZero() {
				t.Fatalf("entry missing id or time: %+v", e)
			}
		}

		got, err := s.ListHistory(ctx, 3)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 3 || got[0].Expression != "5 + 1" || got[2].Expression != "3 + 1" {
			t.Fatalf("got %+v", got)
		}

		all, _ := s.ListHistory(ctx, 0)
		if len(all) != 5 {
			t.Fatalf("default limit: got %d entries", len(all))
		}
	})

	t.Run("history default limit", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)
		for i := 0; i < store.DefaultHistoryLimit+5; i++ {
			if _, err := s.AddHistory(ctx, domain.NewHistoryEntry{Expression: "1", Result: `1"`}); err != nil {
				t.Fatalf("add: %v", err)
			}
		}
		got, _ := s.ListHistory(ctx, -1)
		if len(got) != store.DefaultHistoryLimit {
			t.Fatalf("got %d entries, want %d", len(got), store.DefaultHistoryLimit)
		}
	})

	t.Run("clear history", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)
		_, _ = s.AddHistory(ctx, domain.NewHistoryEntry{Expression: "1", Result: `1"`})
		if err := s.ClearHistory(ctx); err != nil {
			t.Fatalf("clear: %v", err)
		}
		got, err := s.ListHistory(ctx, 0)
		if err != nil || len(got) != 0 {
			t.Fatalf("after clear: %+v, %v", got, err)
		}
	})

	t.Run("saved add list delete", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)

		empty, err := s.ListSaved(ctx)
		if err != nil || len(empty) != 0 {
			t.Fatalf("empty list: %+v, %v", empty, err)
		}

		door, err := s.AddSaved(ctx, domain.NewSavedMeasurement{Label: "door", Value: `80"`})
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		stud, _ := s.AddSaved(ctx, domain.NewSavedMeasurement{Label: "stud", Value: `92 5/8"`})

		got, _ := s.ListSaved(ctx)
		if len(got) != 2 || got[0].ID != stud.ID || got[1].ID != door.ID {
			t.Fatalf("got %+v", got)
		}

		if err := s.DeleteSaved(ctx, door.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := s.DeleteSaved(ctx, door.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("second delete: want ErrNotFound, got %v", err)
		}
		got, _ = s.ListSaved(ctx)
		if len(got) != 1 || got[0].Label != "stud" || got[0].Value != `92 5/8"` {
			t.Fatalf("after delete: %+v", got)
		}
	})
}
