package memory

import (
	"context"
	"errors"
	"testing"

	"spend/internal/core"
	"spend/internal/store"
)

func seed(t *testing.T, s *Store, expenses ...core.Expense) []core.Expense {
	t.Helper()
	out := make([]core.Expense, 0, len(expenses))
	for _, e := range expenses {
		created, err := s.CreateExpense(context.Background(), e)
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		out = append(out, created)
	}
	return out
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := NewDefault()
	created := seed(t, s,
		core.Expense{Amount: core.Money{Cents: 100}, Date: core.NewDate(2025, 1, 1), Category: "food"},
		core.Expense{Amount: core.Money{Cents: 200}, Date: core.NewDate(2025, 1, 2), Category: "food"},
	)
	if created[0].ID != 1 || created[1].ID != 2 {
		t.Fatalf("expected ids 1,2 got %d,%d", created[0].ID, created[1].ID)
	}
}

func TestListExpensesOrdering(t *testing.T) {
	s := NewDefault()
	seed(t, s,
		core.Expense{Amount: core.Money{Cents: 100}, Date: core.NewDate(2025, 1, 10), Category: "food"},
		core.Expense{Amount: core.Money{Cents: 200}, Date: core.NewDate(2025, 1, 20), Category: "food"},
		core.Expense{Amount: core.Money{Cents: 300}, Date: core.NewDate(2025, 1, 20), Category: "bills"},
	)

	got, err := s.ListExpenses(context.Background(), core.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// Newest date first, then highest id within the same date.
	if got[0].ID != 3 || got[1].ID != 2 || got[2].ID != 1 {
		t.Fatalf("unexpected order: %d, %d, %d", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestListExpensesFilter(t *testing.T) {
	s := NewDefault()
	seed(t, s,
		core.Expense{Amount: core.Money{Cents: 100}, Date: core.NewDate(2025, 1, 10), Category: "food"},
		core.Expense{Amount: core.Money{Cents: 200}, Date: core.NewDate(2025, 2, 10), Category: "food"},
		core.Expense{Amount: core.Money{Cents: 300}, Date: core.NewDate(2025, 2, 15), Category: "bills"},
	)

	got, err := s.ListExpenses(context.Background(), core.Filter{Category: "food", StartDate: "2025-02-01"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only expense 2, got %+v", got)
	}
}

func TestGetUpdateDelete(t *testing.T) {
	s := NewDefault()
	created := seed(t, s, core.Expense{Amount: core.Money{Cents: 100}, Date: core.NewDate(2025, 1, 1), Category: "food"})
	id := created[0].ID

	got, err := s.GetExpense(context.Background(), id)
	if err != nil || got.Amount.Cents != 100 {
		t.Fatalf("get: %+v, %v", got, err)
	}

	updated, err := s.UpdateExpense(context.Background(), id, core.Expense{Amount: core.Money{Cents: 250}, Date: core.NewDate(2025, 1, 2), Category: "bills"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != id || updated.Amount.Cents != 250 || updated.Category != "bills" {
		t.Fatalf("update result: %+v", updated)
	}

	if err := s.DeleteExpense(context.Background(), id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetExpense(context.Background(), id); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMissingIDsReturnNotFound(t *testing.T) {
	s := NewDefault()
	ctx := context.Background()
	if _, err := s.GetExpense(ctx, 42); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("get: %v", err)
	}
	if _, err := s.UpdateExpense(ctx, 42, core.Expense{}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("update: %v", err)
	}
	if err := s.DeleteExpense(ctx, 42); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("delete: %v", err)
	}
}

func TestListCategoriesDefaults(t *testing.T) {
	cats, err := NewDefault().ListCategories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(cats) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(cats))
	}
	found := false
	for _, c := range cats {
		if c.Name == core.DefaultCategoryName {
			found = true
		}
	}
	if !found {
		t.Fatal("default category missing from seed set")
	}
}

func TestReadSummary(t *testing.T) {
	s := NewDefault()
	seed(t, s,
		core.Expense{Amount: core.Money{Cents: 5000}, Date: core.NewDate(2025, 1, 10), Category: "food"},
		core.Expense{Amount: core.Money{Cents: 2000}, Date: core.NewDate(2025, 1, 20), Category: "food"},
		core.Expense{Amount: core.Money{Cents: 300}, Date: core.NewDate(2025, 2, 1), Category: "bills"},
	)

	sum, err := s.ReadSummary(context.Background(), core.GroupCategory, core.Filter{Category: "food"})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Total.Cents != 7000 || sum.Count != 2 {
		t.Fatalf("expected 7000 over 2, got %d over %d", sum.Total.Cents, sum.Count)
	}
	if b := sum.ByCategory["food"]; b.Total.Cents != 7000 {
		t.Fatalf("food bucket: %+v", b)
	}
}
