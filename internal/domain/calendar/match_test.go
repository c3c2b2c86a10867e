package calendar

import (
	"testing"
	"time"

	"eventcal/internal/domain/entities"
)

func TestMonthPredicates(t *testing.T) {
	s := snap(entities.RepeatNever, at(2023, time.March, 1, 9, 0), at(2024, time.April, 1, 9, 0))

	if !s.StartsInMonth(time.March) || s.StartsInMonth(time.April) {
		t.Fatal("StartsInMonth mismatch")
	}
	if !s.EndsInMonth(time.April) || s.EndsInMonth(time.March) {
		t.Fatal("EndsInMonth mismatch")
	}
	if !s.StartsInYearMonth(2023, time.March) || s.StartsInYearMonth(2024, time.March) {
		t.Fatal("StartsInYearMonth mismatch")
	}
	if !s.StartsInMonthDifferentYear(time.March, 2024) || s.StartsInMonthDifferentYear(time.March, 2023) {
		t.Fatal("StartsInMonthDifferentYear mismatch")
	}
	if s.SpansSingleMonth() {
		t.Fatal("expected event to span two months")
	}
	// Start matches the month, end matches the year.
	if !s.TouchesYearMonth(2024, time.March) {
		t.Fatal("expected cross-matched TouchesYearMonth(2024, March)")
	}
	if s.TouchesYearMonth(2024, time.May) {
		t.Fatal("expected no match for May")
	}
	if s.TouchesYearMonth(2022, time.March) {
		t.Fatal("expected no match for 2022")
	}
}

func TestPredicatesUseLocalTime(t *testing.T) {
	// 2024-01-31 23:30 UTC is already February in Paris.
	start := time.Date(2024, time.January, 31, 23, 30, 0, 0, time.UTC)
	s := snap(entities.RepeatNever, start, start.Add(time.Hour))
	if !s.StartsInMonth(time.February) {
		t.Fatalf("expected local start in February, got %s", s.LocalStart())
	}
	if !s.SpansSingleMonth() {
		t.Fatal("expected single month in local time")
	}
}

func TestBelongsToMonth(t *testing.T) {
	tests := []struct {
		name  string
		s     Snapshot
		year  int
		month time.Month
		want  bool
	}{
		{"never in its month", snap(entities.RepeatNever, at(2024, time.March, 4, 9, 0), at(2024, time.March, 4, 17, 0)), 2024, time.March, true},
		{"never other year", snap(entities.RepeatNever, at(2024, time.March, 4, 9, 0), at(2024, time.March, 4, 17, 0)), 2025, time.March, false},
		{"never later month", snap(entities.RepeatNever, at(2024, time.March, 4, 9, 0), at(2024, time.March, 4, 17, 0)), 2024, time.April, false},
		{"never ending next month", snap(entities.RepeatNever, at(2024, time.March, 30, 9, 0), at(2024, time.April, 2, 17, 0)), 2024, time.April, true},
		{"never ending next year", snap(entities.RepeatNever, at(2023, time.December, 30, 9, 0), at(2024, time.January, 2, 17, 0)), 2024, time.January, true},
		{"never across year not listed under start month next year", snap(entities.RepeatNever, at(2023, time.December, 30, 9, 0), at(2024, time.January, 2, 17, 0)), 2024, time.December, false},
		{"yearly later year", snap(entities.RepeatYearly, at(2022, time.July, 4, 9, 0), at(2022, time.July, 4, 17, 0)), 2024, time.July, true},
		{"yearly before start", snap(entities.RepeatYearly, at(2025, time.July, 4, 9, 0), at(2025, time.July, 4, 17, 0)), 2024, time.July, false},
		{"yearly other month", snap(entities.RepeatYearly, at(2022, time.July, 4, 9, 0), at(2022, time.July, 4, 17, 0)), 2024, time.August, false},
		{"monthly after start", snap(entities.RepeatMonthly, at(2024, time.January, 10, 9, 0), at(2024, time.January, 10, 17, 0)), 2024, time.June, true},
		{"weekly before start", snap(entities.RepeatWeekly, at(2024, time.January, 10, 9, 0), at(2024, time.January, 10, 17, 0)), 2023, time.December, false},
		{"daily start month", snap(entities.RepeatDaily, at(2024, time.January, 10, 9, 0), at(2024, time.January, 10, 17, 0)), 2024, time.January, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.BelongsToMonth(tt.year, tt.month); got != tt.want {
				t.Fatalf("BelongsToMonth(%d, %s) = %v, want %v", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestInMonthOrdersByStart(t *testing.T) {
	entries := []Entry{
		paris.Entry(entities.Event{ID: 1, Repeat: entities.RepeatNever, Start: at(2024, time.March, 20, 9, 0), End: at(2024, time.March, 20, 10, 0)}),
		paris.Entry(entities.Event{ID: 2, Repeat: entities.RepeatNever, Start: at(2024, time.April, 1, 9, 0), End: at(2024, time.April, 1, 10, 0)}),
		paris.Entry(entities.Event{ID: 3, Repeat: entities.RepeatWeekly, Start: at(2024, time.February, 5, 9, 0), End: at(2024, time.February, 5, 10, 0)}),
		paris.Entry(entities.Event{ID: 4, Repeat: entities.RepeatNever, Start: at(2024, time.March, 2, 9, 0), End: at(2024, time.March, 2, 10, 0)}),
	}

	got := InMonth(entries, 2024, time.March)
	want := []uint{3, 4, 1}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].Event().ID != id {
			t.Fatalf("position %d: expected event %d, got %d", i, id, got[i].Event().ID)
		}
	}
}
