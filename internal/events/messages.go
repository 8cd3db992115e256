package events

import (
	"encoding/json"
	"time"
)

// Action identifies what happened to an expense.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// ExpenseEvent is the wire message for one expense change. It carries only
// the id; consumers fetch the current record from the store when they need
// more than the fact of the change.
type ExpenseEvent struct {
	Action    Action    `json:"action"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewExpenseEvent(action Action, id int64) *ExpenseEvent {
	return &ExpenseEvent{
		Action:    action,
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (e *ExpenseEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func ExpenseEventFromJSON(data []byte) (*ExpenseEvent, error) {
	var e ExpenseEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
