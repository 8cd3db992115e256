package core

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDraftValidate(t *testing.T) {
	cases := []struct {
		name  string
		draft Draft
		errs  []string
	}{
		{
			name:  "valid",
			draft: Draft{Amount: "12.50", Date: "2025-03-01", Category: "food", Note: "lunch"},
		},
		{
			name:  "zero amount is valid",
			draft: Draft{Amount: "0", Date: "2025-03-01", Category: "food"},
		},
		{
			name:  "missing amount",
			draft: Draft{Date: "2025-03-01", Category: "food"},
			errs:  []string{"Amount is required"},
		},
		{
			name:  "negative amount",
			draft: Draft{Amount: "-5", Date: "2025-03-01", Category: "food"},
			errs:  []string{"Amount must be non-negative"},
		},
		{
			name:  "garbage amount",
			draft: Draft{Amount: "abc", Date: "2025-03-01", Category: "food"},
			errs:  []string{"Amount must be a valid number"},
		},
		{
			name:  "missing date",
			draft: Draft{Amount: "5", Category: "food"},
			errs:  []string{"Date is required"},
		},
		{
			name:  "bad date format",
			draft: Draft{Amount: "5", Date: "01/03/2025", Category: "food"},
			errs:  []string{"Invalid date format. Use ISO format (YYYY-MM-DD)"},
		},
		{
			name:  "missing category",
			draft: Draft{Amount: "5", Date: "2025-03-01"},
			errs:  []string{"Category is required"},
		},
		{
			name:  "everything wrong reports every field",
			draft: Draft{Amount: "-1", Date: "nope"},
			errs: []string{
				"Amount must be non-negative",
				"Invalid date format. Use ISO format (YYYY-MM-DD)",
				"Category is required",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, errs := tc.draft.Validate()
			if !reflect.DeepEqual([]string(errs), tc.errs) {
				t.Fatalf("expected errors %v, got %v", tc.errs, errs)
			}
			if len(tc.errs) == 0 && e.Category == "" {
				t.Fatalf("valid draft produced empty expense: %+v", e)
			}
		})
	}
}

func TestDraftValidateTrimsFields(t *testing.T) {
	e, errs := Draft{Amount: " 3.50 ", Date: " 2025-01-15 ", Category: " food ", Note: " coffee "}.Validate()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if e.Amount.Cents != 350 || e.Category != "food" || e.Note != "coffee" {
		t.Fatalf("fields not trimmed: %+v", e)
	}
	if e.Date.String() != "2025-01-15" {
		t.Fatalf("expected 2025-01-15, got %s", e.Date)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, 3, 9)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-03-09"` {
		t.Fatalf("expected \"2025-03-09\", got %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip changed date: %s vs %s", back, d)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "2025-13-01", "20250301", "yesterday"} {
		if _, err := ParseDate(in); err == nil {
			t.Fatalf("%q expected error", in)
		}
	}
}
