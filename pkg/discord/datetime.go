package discord

import (
	"fmt"
	"strings"
	"time"

	"eventcal/internal/domain"
)

const (
	DateLayout     = "02/01/2006"
	DateTimeLayout = "02/01/2006 15:04"
)

// ParseEventDateTime parses "JJ/MM/AAAA HH:MM" or "JJ/MM/AAAA" in loc.
// dateOnly reports that no time was given; t is then midnight.
func ParseEventDateTime(s string, loc *time.Location) (t time.Time, dateOnly bool, err error) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return time.Time{}, false, fmt.Errorf("date vide: %w", domain.ErrDateTimeInvalid)
	}
	if t, err := time.ParseInLocation(DateTimeLayout, s, loc); err == nil {
		return t, false, nil
	}
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, fmt.Errorf("date %q: %w", s, domain.ErrDateTimeInvalid)
}

// ParseDate parses an optional "JJ/MM/AAAA" date. Empty input returns nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("date %q: %w", s, domain.ErrDateTimeInvalid)
	}
	return &t, nil
}

// ParseEventWindow turns the start/end modal fields into an event window.
// All-day windows run from 00:00 on the start day to 23:59 on the end day.
// An empty end defaults to one hour after start, or to the end of the start
// day for all-day events.
func ParseEventWindow(startStr, endStr string, allDay bool, loc *time.Location) (start, end time.Time, err error) {
	start, startDateOnly, err := ParseEventDateTime(startStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	allDay = allDay || startDateOnly
	if allDay {
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	}

	if strings.TrimSpace(endStr) == "" {
		if allDay {
			return start, endOfDay(start, loc), nil
		}
		return start, start.Add(time.Hour), nil
	}

	end, endDateOnly, err := ParseEventDateTime(endStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if allDay || endDateOnly {
		end = endOfDay(end, loc)
	}
	return start, end, nil
}

func endOfDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, loc)
}

func FormatEventDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format("02/01/2006 à 15:04")
}

// FormatWindow renders start/end compactly, collapsing same-day windows.
func FormatWindow(start, end time.Time, allDay bool, loc *time.Location) string {
	start, end = start.In(loc), end.In(loc)
	sameDay := start.Year() == end.Year() && start.YearDay() == end.YearDay()
	switch {
	case allDay && sameDay:
		return start.Format(DateLayout)
	case allDay:
		return start.Format(DateLayout) + " → " + end.Format(DateLayout)
	case sameDay:
		return start.Format("02/01/2006 15:04") + " → " + end.Format("15:04")
	default:
		return start.Format(DateTimeLayout) + " → " + end.Format(DateTimeLayout)
	}
}
