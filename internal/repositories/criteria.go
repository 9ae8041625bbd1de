package repositories

import (
	"strings"
	"time"

	"chauffeur-admin/internal/utils"
)

// MatchSearch reports whether query is a case-insensitive substring of any
// field. An empty query matches everything.
func MatchSearch(query string, fields ...string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	for _, f := range fields {
		if utils.ContainsFold(f, query) {
			return true
		}
	}
	return false
}

// MatchExact compares a categorical field. An empty want matches everything.
func MatchExact(want, got string) bool {
	want = strings.TrimSpace(want)
	return want == "" || want == got
}

// MatchDateRange checks from <= date <= to with empty bounds unconstrained.
func MatchDateRange(date, from, to string) bool {
	if from = strings.TrimSpace(from); from != "" && compareDates(date, from) < 0 {
		return false
	}
	if to = strings.TrimSpace(to); to != "" && compareDates(date, to) > 0 {
		return false
	}
	return true
}

// compareDates orders YYYY-MM-DD values by calendar date. Values that do not
// parse fall back to string order.
func compareDates(a, b string) int {
	ta, errA := time.Parse(utils.LayoutDate, strings.TrimSpace(a))
	tb, errB := time.Parse(utils.LayoutDate, strings.TrimSpace(b))
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return ta.Compare(tb)
}

// All combines predicates with AND. Nil predicates are skipped.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(rec T) bool {
		for _, p := range preds {
			if p != nil && !p(rec) {
				return false
			}
		}
		return true
	}
}
