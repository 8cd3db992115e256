// Package memory holds an in-memory Expense Store used for development and
// as the storage fake in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"spend/internal/core"
	"spend/internal/store"
)

type Store struct {
	mu     sync.Mutex
	nextID int64
	items  []core.Expense
	cats   []core.Category
}

// New creates a store exposing the given category set.
func New(cats []core.Category) *Store {
	return &Store{cats: append([]core.Category(nil), cats...)}
}

// NewDefault seeds the stock category set the SQLite migration also installs.
func NewDefault() *Store {
	return New([]core.Category{
		{ID: 1, Name: "bills", Color: "#f59e0b"},
		{ID: 2, Name: "entertainment", Color: "#8b5cf6"},
		{ID: 3, Name: "food", Color: "#ef4444"},
		{ID: 4, Name: "health", Color: "#10b981"},
		{ID: 5, Name: "other", Color: "#6b7280"},
		{ID: 6, Name: "shopping", Color: "#ec4899"},
		{ID: 7, Name: "travel", Color: "#3b82f6"},
	})
}

// ListExpenses returns matching records in recency order (date desc, id desc).
func (s *Store) ListExpenses(_ context.Context, f core.Filter) ([]core.Expense, error) {
	f = f.Normalize()
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Expense, 0, len(s.items))
	for _, e := range s.items {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].Date.Format(core.DateLayout), out[j].Date.Format(core.DateLayout)
		if di != dj {
			return di > dj
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) GetExpense(_ context.Context, id int64) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.items {
		if e.ID == id {
			return e, nil
		}
	}
	return core.Expense{}, store.ErrNotFound
}

func (s *Store) CreateExpense(_ context.Context, e core.Expense) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	e.ID = s.nextID
	s.items = append(s.items, e)
	return e, nil
}

func (s *Store) UpdateExpense(_ context.Context, id int64, e core.Expense) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			e.ID = id
			s.items[i] = e
			return e, nil
		}
	}
	return core.Expense{}, store.ErrNotFound
}

func (s *Store) DeleteExpense(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) ListCategories(_ context.Context) ([]core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Category(nil), s.cats...), nil
}

func (s *Store) ReadSummary(ctx context.Context, groupBy core.GroupBy, f core.Filter) (core.Summary, error) {
	records, err := s.ListExpenses(ctx, f)
	if err != nil {
		return core.Summary{}, err
	}
	return core.Summarize(records, groupBy), nil
}
