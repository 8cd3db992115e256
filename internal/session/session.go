// Package session owns the client-side view of the Expense Store: the last
// fetched record set and the filter it was fetched with. Every cache write
// funnels through Refresh, and mutations re-fetch instead of patching, so
// the cache can never drift from the store of record.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"spend/internal/core"
	"spend/internal/store"
)

var (
	// ErrRefreshSuperseded reports that a refresh completed after a newer
	// one was requested; its result was discarded and the cache still
	// reflects the newest requested filter.
	ErrRefreshSuperseded = errors.New("refresh superseded by a newer request")

	// ErrMutationInFlight reports a submit while another create, update
	// or delete is still pending.
	ErrMutationInFlight = errors.New("another change is still in flight")
)

// Session is the single owner of the current expense view.
type Session struct {
	store store.Store

	mu         sync.Mutex
	expenses   []core.Expense
	filter     core.Filter
	generation uint64
	mutating   bool
}

func New(st store.Store) *Session {
	return &Session{store: st}
}

// Refresh fetches the record set matching f and replaces the cache wholesale,
// preserving the store's order. Overlapping refreshes may complete out of
// request order: each completion is checked against the newest requested
// generation and discarded when stale, so a slow earlier fetch can never
// clobber a faster later one. On store or transport failure the cache is
// left untouched.
func (s *Session) Refresh(ctx context.Context, f core.Filter) error {
	f = f.Normalize()

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.filter = f
	s.mu.Unlock()

	records, err := s.store.ListExpenses(ctx, f)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return ErrRefreshSuperseded
	}
	if err != nil {
		return fmt.Errorf("refresh expenses: %w", err)
	}
	s.expenses = records
	return nil
}

// ClearFilter drops every constraint and re-fetches the unconstrained set.
func (s *Session) ClearFilter(ctx context.Context) error {
	return s.Refresh(ctx, core.Filter{})
}

// Expenses returns a copy of the cached record set.
func (s *Session) Expenses() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.expenses...)
}

// ActiveFilter returns the filter of the last requested refresh.
func (s *Session) ActiveFilter() core.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Create validates the draft, submits it, and re-fetches with the active
// filter so the cache picks up the server-assigned id and any normalization.
// Validation failures return core.ValidationErrors and never reach the store.
func (s *Session) Create(ctx context.Context, d core.Draft) error {
	return s.mutate(ctx, d, func(ctx context.Context, e core.Expense) error {
		_, err := s.store.CreateExpense(ctx, e)
		return err
	})
}

// Update replaces the record with the given id. Same validation and refresh
// behavior as Create.
func (s *Session) Update(ctx context.Context, id int64, d core.Draft) error {
	return s.mutate(ctx, d, func(ctx context.Context, e core.Expense) error {
		_, err := s.store.UpdateExpense(ctx, id, e)
		return err
	})
}

// Delete removes the record with the given id and re-fetches with the active
// filter. Confirming the deletion is the caller's concern and must happen
// before this is invoked.
func (s *Session) Delete(ctx context.Context, id int64) error {
	if err := s.beginMutation(); err != nil {
		return err
	}
	defer s.endMutation()

	if err := s.store.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	return s.refreshActive(ctx)
}

// Summarize aggregates the cached record set locally.
func (s *Session) Summarize(groupBy core.GroupBy) core.Summary {
	return core.Summarize(s.Expenses(), groupBy)
}

// Report asks the store for a summary of the records matching the active
// filter.
func (s *Session) Report(ctx context.Context, groupBy core.GroupBy) (core.Summary, error) {
	s.mu.Lock()
	f := s.filter
	s.mu.Unlock()

	summary, err := s.store.ReadSummary(ctx, groupBy, f)
	if err != nil {
		return core.Summary{}, fmt.Errorf("read summary: %w", err)
	}
	return summary, nil
}

func (s *Session) mutate(ctx context.Context, d core.Draft, op func(context.Context, core.Expense) error) error {
	expense, verrs := d.Validate()
	if len(verrs) > 0 {
		return verrs
	}
	if err := s.beginMutation(); err != nil {
		return err
	}
	defer s.endMutation()

	// The mutation must complete before the follow-up refresh begins, so a
	// user action always observes "request completed, cache consistent".
	if err := op(ctx, expense); err != nil {
		return err
	}
	return s.refreshActive(ctx)
}

// refreshActive re-fetches with the filter current at call time. A
// superseded completion here is not an error for the mutation: the cache
// already reflects a newer request.
func (s *Session) refreshActive(ctx context.Context) error {
	s.mu.Lock()
	f := s.filter
	s.mu.Unlock()

	if err := s.Refresh(ctx, f); err != nil && !errors.Is(err, ErrRefreshSuperseded) {
		return err
	}
	return nil
}

func (s *Session) beginMutation() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutating {
		return ErrMutationInFlight
	}
	s.mutating = true
	return nil
}

func (s *Session) endMutation() {
	s.mu.Lock()
	s.mutating = false
	s.mu.Unlock()
}
