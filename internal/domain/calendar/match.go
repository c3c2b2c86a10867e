package calendar

import (
	"sort"
	"time"

	"eventcal/internal/domain/entities"
)

func (s Snapshot) StartsInMonth(m time.Month) bool {
	return s.start.Month() == m
}

func (s Snapshot) EndsInMonth(m time.Month) bool {
	return s.end.Month() == m
}

func (s Snapshot) StartsInYearMonth(year int, m time.Month) bool {
	return s.start.Year() == year && s.start.Month() == m
}

// StartsInMonthDifferentYear matches events starting in month m of any year
// other than year.
func (s Snapshot) StartsInMonthDifferentYear(m time.Month, year int) bool {
	return s.start.Year() != year && s.start.Month() == m
}

func (s Snapshot) SpansSingleMonth() bool {
	return s.start.Month() == s.end.Month()
}

// TouchesYearMonth matches when start or end falls in year, and start or end
// falls in month m. The two conditions are independent, so a start matching
// the month and an end matching the year is enough.
func (s Snapshot) TouchesYearMonth(year int, m time.Month) bool {
	yr := s.start.Year() == year || s.end.Year() == year
	mo := s.start.Month() == m || s.end.Month() == m
	return yr && mo
}

// BelongsToMonth decides whether the event is listed under the year/month
// heading of a calendar view.
func (s Snapshot) BelongsToMonth(year int, m time.Month) bool {
	switch s.repeat {
	case entities.RepeatNever:
		if s.StartsInYearMonth(year, m) {
			return true
		}
		return !s.SpansSingleMonth() && s.EndsInMonth(m) && s.end.Year() == year
	case entities.RepeatYearly:
		if s.StartsInYearMonth(year, m) {
			return true
		}
		if s.StartsInMonthDifferentYear(m, year) && s.start.Year() < year {
			return true
		}
		return s.EndsInMonth(m) && s.end.Year() <= year
	default:
		return monthIndex(s.start.Year(), s.start.Month()) <= monthIndex(year, m)
	}
}

// InMonth keeps the items listed under year/month, ordered by start.
func InMonth[T Evaluable](items []T, year int, m time.Month) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.Snapshot().BelongsToMonth(year, m) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Snapshot().start.Before(out[j].Snapshot().start)
	})
	return out
}

func monthIndex(year int, m time.Month) int {
	return year*12 + int(m) - 1
}
