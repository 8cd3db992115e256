// Package store defines the ports every Expense Store implementation
// satisfies: the HTTP client consumed by the session controller, and the
// in-memory and SQLite repositories the server runs on.
package store

import (
	"context"
	"errors"
	"strings"

	"spend/internal/core"
)

type (
	ExpenseLister interface {
		// ListExpenses returns the records matching f in the store's
		// recency order (date desc, id desc).
		ListExpenses(ctx context.Context, f core.Filter) ([]core.Expense, error)
	}

	ExpenseGetter interface {
		GetExpense(ctx context.Context, id int64) (core.Expense, error)
	}

	ExpenseWriter interface {
		CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error)
		UpdateExpense(ctx context.Context, id int64, e core.Expense) (core.Expense, error)
		DeleteExpense(ctx context.Context, id int64) error
	}

	CategoryLister interface {
		ListCategories(ctx context.Context) ([]core.Category, error)
	}

	SummaryReader interface {
		ReadSummary(ctx context.Context, groupBy core.GroupBy, f core.Filter) (core.Summary, error)
	}

	// Store bundles every port.
	Store interface {
		ExpenseLister
		ExpenseGetter
		ExpenseWriter
		CategoryLister
		SummaryReader
	}
)

// ErrNotFound reports a reference to an expense id the store does not hold.
var ErrNotFound = errors.New("expense not found")

// Error is a failure reported by the Expense Store itself: the response
// envelope arrived with success=false. Anything else (network failure,
// unparseable body, missing envelope) is a transport failure and surfaces
// as a plain wrapped error.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, ", ")
}
