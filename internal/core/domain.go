package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// DefaultCategoryName is the fallback category guaranteed to exist.
const DefaultCategoryName = "other"

type (
	// Date is a calendar date with no time component.
	Date struct {
		time.Time
	}

	// Expense is one recorded spending event. ID is assigned by the
	// Expense Store and is never set or changed client-side.
	Expense struct {
		ID       int64  `json:"id"`
		Amount   Money  `json:"amount"`
		Date     Date   `json:"date"`
		Category string `json:"category"`
		Note     string `json:"note,omitempty"`
	}

	// Category tags expenses and carries display metadata. Color is an
	// opaque token (hex string) passed through untouched.
	Category struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
	}

	// Draft is raw form input for a create or update. Fields stay strings
	// so validation can report per-field messages instead of failing on
	// the first bad value.
	Draft struct {
		Amount   string
		Date     string
		Category string
		Note     string
	}

	// ValidationErrors collects field-level validation messages. A draft
	// that produces any never reaches the store.
	ValidationErrors []string
)

var ErrInvalidDate = errors.New("invalid date")

func (v ValidationErrors) Error() string {
	return strings.Join(v, ", ")
}

// NewDate builds a Date from year, month, day in UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO YYYY-MM-DD date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Validate checks the draft locally and converts it into an Expense body.
// Category resolution happens at display time, so any non-empty name passes
// here; unknown names are stored as-is.
func (d Draft) Validate() (Expense, ValidationErrors) {
	var errs ValidationErrors

	var amount Money
	if amountStr := strings.TrimSpace(d.Amount); amountStr == "" {
		errs = append(errs, "Amount is required")
	} else {
		cents, err := ParseDecimalToCents(amountStr)
		switch {
		case errors.Is(err, ErrNegativeAmount):
			errs = append(errs, "Amount must be non-negative")
		case err != nil:
			errs = append(errs, "Amount must be a valid number")
		default:
			amount = Money{Cents: cents}
		}
	}

	var date Date
	if dateStr := strings.TrimSpace(d.Date); dateStr == "" {
		errs = append(errs, "Date is required")
	} else if parsed, err := ParseDate(dateStr); err != nil {
		errs = append(errs, "Invalid date format. Use ISO format (YYYY-MM-DD)")
	} else {
		date = parsed
	}

	category := strings.TrimSpace(d.Category)
	if category == "" {
		errs = append(errs, "Category is required")
	}

	if len(errs) > 0 {
		return Expense{}, errs
	}
	return Expense{
		Amount:   amount,
		Date:     date,
		Category: category,
		Note:     strings.TrimSpace(d.Note),
	}, nil
}
