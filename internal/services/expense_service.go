// Package services orchestrates Expense Store mutations across storage and
// change-event publishing.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"spend/internal/core"
	"spend/internal/events"
	"spend/internal/store"
)

// ExpenseService wraps a storage backend's writes with best-effort AMQP
// change events. It implements store.ExpenseWriter, so the HTTP server uses
// it interchangeably with a bare backend.
type ExpenseService struct {
	store     store.Store
	publisher *events.Publisher
}

func NewExpenseService(st store.Store, publisher *events.Publisher) *ExpenseService {
	return &ExpenseService{
		store:     st,
		publisher: publisher,
	}
}

// CreateExpense saves the expense and publishes a created event. The save is
// authoritative; a failed publish is logged and the request still succeeds.
func (s *ExpenseService) CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	created, err := s.store.CreateExpense(ctx, e)
	if err != nil {
		return core.Expense{}, fmt.Errorf("save expense: %w", err)
	}
	s.publish(ctx, events.ActionCreated, created.ID)
	return created, nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, id int64, e core.Expense) (core.Expense, error) {
	updated, err := s.store.UpdateExpense(ctx, id, e)
	if err != nil {
		return core.Expense{}, err
	}
	s.publish(ctx, events.ActionUpdated, updated.ID)
	return updated, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) error {
	if err := s.store.DeleteExpense(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.ActionDeleted, id)
	return nil
}

func (s *ExpenseService) publish(ctx context.Context, action events.Action, id int64) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishExpenseChange(ctx, action, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish change event",
			"action", action, "id", id, "error", err)
	}
}

// Close releases the publisher connection, if any.
func (s *ExpenseService) Close() error {
	if s.publisher != nil {
		return s.publisher.Close()
	}
	return nil
}
