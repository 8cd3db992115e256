package core

// GroupBy selects the breakdown a summary carries.
type GroupBy string

const (
	GroupTotal    GroupBy = "total"
	GroupCategory GroupBy = "category"
	GroupMonth    GroupBy = "month"
)

// IsValid returns true if the grouping mode is known.
func (g GroupBy) IsValid() bool {
	switch g {
	case GroupTotal, GroupCategory, GroupMonth:
		return true
	default:
		return false
	}
}

// Bucket holds the aggregate for one group.
type Bucket struct {
	Total Money `json:"total"`
	Count int   `json:"count"`
}

// Summary is an aggregation result. ByCategory and ByMonth are only present
// for the matching grouping mode.
type Summary struct {
	Total      Money             `json:"total"`
	Count      int               `json:"count"`
	ByCategory map[string]Bucket `json:"by_category,omitempty"`
	ByMonth    map[string]Bucket `json:"by_month,omitempty"`
}

// Summarize aggregates the given records. It is pure: the caller supplies the
// exact (already filtered) set, nothing is reordered or dropped, and the
// result depends only on the records themselves. Unknown category names keep
// their literal group key; month groups key on the date's YYYY-MM prefix.
func Summarize(records []Expense, groupBy GroupBy) Summary {
	s := Summary{Count: len(records)}
	for _, e := range records {
		s.Total.Cents += e.Amount.Cents
	}

	switch groupBy {
	case GroupCategory:
		s.ByCategory = make(map[string]Bucket)
		for _, e := range records {
			b := s.ByCategory[e.Category]
			b.Total.Cents += e.Amount.Cents
			b.Count++
			s.ByCategory[e.Category] = b
		}
	case GroupMonth:
		s.ByMonth = make(map[string]Bucket)
		for _, e := range records {
			month := e.Date.Format("2006-01")
			b := s.ByMonth[month]
			b.Total.Cents += e.Amount.Cents
			b.Count++
			s.ByMonth[month] = b
		}
	}
	return s
}
