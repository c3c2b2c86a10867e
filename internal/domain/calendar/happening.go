package calendar

import (
	"fmt"
	"time"

	"eventcal/internal/domain"
	"eventcal/internal/domain/entities"
)

const (
	weeklyStepDays   = 7
	biweeklyStepDays = 14
)

// IsHappening reports whether the event is occurring at now.
//
// An event occupies the clock-time window [start, end] on every day it
// recurs, from its start date onwards. Never-repeating events pass on the
// window alone (there is no check that now falls on the start date), and
// Monthly events only compare days of month. Both behaviours are kept as is.
//
// A repeat value outside the enumeration panics: the boundaries reject it,
// so reaching here means stored data is corrupt.
func IsHappening(s Snapshot, now time.Time) bool {
	now = now.In(s.start.Location())
	if !inDailyWindow(s, now) {
		return false
	}

	switch s.repeat {
	case entities.RepeatNever, entities.RepeatDaily:
		return true
	case entities.RepeatWeekday:
		wd := now.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	case entities.RepeatMonthly:
		return s.start.Day() <= now.Day() && now.Day() <= s.end.Day()
	case entities.RepeatYearly:
		return s.start.Month() <= now.Month() && now.Month() <= s.end.Month() &&
			s.start.Day() <= now.Day() && now.Day() <= s.end.Day()
	case entities.RepeatWeekly:
		return inPeriod(s, now, weeklyStepDays)
	case entities.RepeatBiweekly:
		return inPeriod(s, now, biweeklyStepDays)
	default:
		panic(fmt.Errorf("calendar: event %d: %w: %s", s.id, domain.ErrUnknownRepeat, s.repeat))
	}
}

// Happening keeps the items whose event is occurring at now.
func Happening[T Evaluable](items []T, now time.Time) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if IsHappening(it.Snapshot(), now) {
			out = append(out, it)
		}
	}
	return out
}

// inDailyWindow is the gate applied to every repeat kind: now is on or after
// the start date and its time of day lies within the start/end clock times.
func inDailyWindow(s Snapshot, now time.Time) bool {
	if daysBetween(s.start, now) < 0 {
		return false
	}
	tod := clock(now)
	return clock(s.start) <= tod && tod <= clock(s.end)
}

// inPeriod moves the [start, end] window forward by whole steps to the first
// occurrence that has not ended before now, then checks now is inside it.
// The number of steps is computed directly from the calendar-day distance.
func inPeriod(s Snapshot, now time.Time, stepDays int) bool {
	periods := daysBetween(s.start, now) / stepDays
	start, end := s.shifted(periods * stepDays)
	if end.Before(now) {
		start, end = s.shifted((periods + 1) * stepDays)
	}
	return !now.Before(start) && !now.After(end)
}

// shifted moves the window by days calendar days, keeping wall-clock times.
func (s Snapshot) shifted(days int) (time.Time, time.Time) {
	return s.start.AddDate(0, 0, days), s.end.AddDate(0, 0, days)
}
