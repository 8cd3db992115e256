package core

import "testing"

func TestFilterIsZero(t *testing.T) {
	if !(Filter{}).IsZero() {
		t.Fatal("empty filter should be zero")
	}
	if !(Filter{Category: "  "}).IsZero() {
		t.Fatal("whitespace-only filter should be zero")
	}
	if (Filter{Category: "food"}).IsZero() {
		t.Fatal("category filter should not be zero")
	}
}

func TestFilterValues(t *testing.T) {
	v := Filter{Category: " food ", StartDate: "2025-01-01"}.Values()
	if got := v.Encode(); got != "category=food&start_date=2025-01-01" {
		t.Fatalf("unexpected encoding: %q", got)
	}
	if len(Filter{}.Values()) != 0 {
		t.Fatal("zero filter should encode no parameters")
	}
}

func TestFilterMatches(t *testing.T) {
	e := Expense{Amount: Money{Cents: 500}, Date: NewDate(2025, 3, 15), Category: "food"}

	cases := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"zero filter matches everything", Filter{}, true},
		{"matching category", Filter{Category: "food"}, true},
		{"other category", Filter{Category: "transport"}, false},
		{"inside range", Filter{StartDate: "2025-03-01", EndDate: "2025-03-31"}, true},
		{"start date inclusive", Filter{StartDate: "2025-03-15"}, true},
		{"end date inclusive", Filter{EndDate: "2025-03-15"}, true},
		{"before range", Filter{StartDate: "2025-03-16"}, false},
		{"after range", Filter{EndDate: "2025-03-14"}, false},
		{"all dimensions", Filter{Category: "food", StartDate: "2025-01-01", EndDate: "2025-12-31"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Matches(e); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
