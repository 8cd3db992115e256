package core

import (
	"net/url"
	"strings"
)

// Filter is a partial query over expenses. An absent field means
// unconstrained on that dimension; empty strings are normalized to absent and
// never sent as constraints. Date bounds are inclusive ISO YYYY-MM-DD strings.
type Filter struct {
	Category  string `json:"category,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Normalize trims whitespace so empty-string fields and omitted fields are
// equivalent.
func (f Filter) Normalize() Filter {
	return Filter{
		Category:  strings.TrimSpace(f.Category),
		StartDate: strings.TrimSpace(f.StartDate),
		EndDate:   strings.TrimSpace(f.EndDate),
	}
}

// IsZero reports whether the filter constrains nothing.
func (f Filter) IsZero() bool {
	f = f.Normalize()
	return f.Category == "" && f.StartDate == "" && f.EndDate == ""
}

// Values encodes the non-empty fields as store query parameters.
func (f Filter) Values() url.Values {
	f = f.Normalize()
	v := url.Values{}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.StartDate != "" {
		v.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		v.Set("end_date", f.EndDate)
	}
	return v
}

// Matches is the local predicate form of the filter. ISO dates compare
// correctly as strings, matching the store's own comparison.
func (f Filter) Matches(e Expense) bool {
	f = f.Normalize()
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	date := e.Date.Format(DateLayout)
	if f.StartDate != "" && date < f.StartDate {
		return false
	}
	if f.EndDate != "" && date > f.EndDate {
		return false
	}
	return true
}
