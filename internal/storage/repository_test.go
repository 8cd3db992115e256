package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"spend/internal/core"
	"spend/internal/store"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "expenses.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestMigrationsSeedCategories(t *testing.T) {
	repo := newTestRepo(t)

	cats, err := repo.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(cats) != 7 {
		t.Fatalf("expected 7 seeded categories, got %d", len(cats))
	}
	// Alphabetical order from the query.
	if cats[0].Name != "bills" || cats[6].Name != "travel" {
		t.Fatalf("unexpected order: %+v", cats)
	}
}

func TestExpenseCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateExpense(ctx, core.Expense{
		Amount:   core.Money{Cents: 1250},
		Date:     core.NewDate(2025, 3, 1),
		Category: "food",
		Note:     "lunch",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.Amount.Cents != 1250 || created.Note != "lunch" {
		t.Fatalf("created: %+v", created)
	}

	got, err := repo.GetExpense(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Date.String() != "2025-03-01" {
		t.Fatalf("date round trip: %s", got.Date)
	}

	updated, err := repo.UpdateExpense(ctx, created.ID, core.Expense{
		Amount:   core.Money{Cents: 999},
		Date:     core.NewDate(2025, 3, 2),
		Category: "bills",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Amount.Cents != 999 || updated.Category != "bills" || updated.Note != "" {
		t.Fatalf("updated: %+v", updated)
	}

	if err := repo.DeleteExpense(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetExpense(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMissingIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.GetExpense(ctx, 42); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("get: %v", err)
	}
	if _, err := repo.UpdateExpense(ctx, 42, core.Expense{Date: core.NewDate(2025, 1, 1)}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("update: %v", err)
	}
	if err := repo.DeleteExpense(ctx, 42); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("delete: %v", err)
	}
}

func TestListExpensesFilterAndOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seed := []core.Expense{
		{Amount: core.Money{Cents: 100}, Date: core.NewDate(2025, 1, 10), Category: "food"},
		{Amount: core.Money{Cents: 200}, Date: core.NewDate(2025, 2, 10), Category: "food"},
		{Amount: core.Money{Cents: 300}, Date: core.NewDate(2025, 2, 10), Category: "bills"},
	}
	for _, e := range seed {
		if _, err := repo.CreateExpense(ctx, e); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	all, err := repo.ListExpenses(ctx, core.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// Newest date first, then highest id within the same date.
	if len(all) != 3 || all[0].Category != "bills" || all[1].Category != "food" || all[2].Date.String() != "2025-01-10" {
		t.Fatalf("order: %+v", all)
	}

	filtered, err := repo.ListExpenses(ctx, core.Filter{Category: "food", StartDate: "2025-02-01", EndDate: "2025-02-28"})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Amount.Cents != 200 {
		t.Fatalf("filtered: %+v", filtered)
	}
}

func TestReadSummaryByMonth(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, e := range []core.Expense{
		{Amount: core.Money{Cents: 5000}, Date: core.NewDate(2025, 1, 10), Category: "food"},
		{Amount: core.Money{Cents: 2000}, Date: core.NewDate(2025, 1, 20), Category: "food"},
		{Amount: core.Money{Cents: 300}, Date: core.NewDate(2025, 2, 1), Category: "bills"},
	} {
		if _, err := repo.CreateExpense(ctx, e); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	sum, err := repo.ReadSummary(ctx, core.GroupMonth, core.Filter{})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Total.Cents != 7300 || sum.Count != 3 {
		t.Fatalf("summary: %+v", sum)
	}
	if b := sum.ByMonth["2025-01"]; b.Total.Cents != 7000 || b.Count != 2 {
		t.Fatalf("january bucket: %+v", b)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "expenses.db")

	repo, err := NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if _, err := repo.CreateExpense(context.Background(), core.Expense{
		Amount: core.Money{Cents: 100}, Date: core.NewDate(2025, 1, 1), Category: "food",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_ = repo.Close()

	// Reopening runs migrations again; existing data survives.
	repo2, err := NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer repo2.Close()

	all, err := repo2.ListExpenses(context.Background(), core.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected surviving record, got %+v", all)
	}
}
