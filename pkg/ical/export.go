// Package ical renders events as an iCalendar (RFC 5545) feed.
package ical

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"eventcal/internal/domain"
	"eventcal/internal/domain/entities"
)

const ProductID = "-//eventcal//Agenda//FR"

// Options controls how events are rendered.
type Options struct {
	// Name is the calendar display name (X-WR-CALNAME).
	Name string
	// Location is the zone used for all-day dates and UNTIL. Defaults to UTC.
	Location   *time.Location
	Locations  map[uint]entities.Location
	Categories map[uint]entities.Category
	// Now stamps DTSTAMP. Defaults to time.Now().
	Now time.Time
}

var frequencies = map[entities.Repeat]rrule.Frequency{
	entities.RepeatDaily:    rrule.DAILY,
	entities.RepeatWeekday:  rrule.WEEKLY,
	entities.RepeatWeekly:   rrule.WEEKLY,
	entities.RepeatBiweekly: rrule.WEEKLY,
	entities.RepeatMonthly:  rrule.MONTHLY,
	entities.RepeatYearly:   rrule.YEARLY,
}

// RRule returns the RRULE value for e, or "" for a one-off event.
// EndRepeat becomes an inclusive UNTIL at the end of that day in loc.
func RRule(e entities.Event, loc *time.Location) (string, error) {
	if e.Repeat == entities.RepeatNever {
		return "", nil
	}
	freq, ok := frequencies[e.Repeat]
	if !ok {
		return "", fmt.Errorf("ical: event %d: %w: %s", e.ID, domain.ErrUnknownRepeat, e.Repeat)
	}
	if loc == nil {
		loc = time.UTC
	}

	opt := rrule.ROption{Freq: freq}
	switch e.Repeat {
	case entities.RepeatWeekday:
		opt.Byweekday = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}
	case entities.RepeatBiweekly:
		opt.Interval = 2
	}
	if e.EndRepeat != nil {
		y, m, d := e.EndRepeat.Date()
		opt.Until = time.Date(y, m, d, 23, 59, 59, 0, loc)
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return "", fmt.Errorf("ical: event %d: build rrule: %w", e.ID, err)
	}
	return r.OrigOptions.RRuleString(), nil
}

// UID is the stable iCalendar identifier of an event.
func UID(id uint) string {
	return fmt.Sprintf("event-%d@eventcal", id)
}

// Build assembles a calendar from events.
func Build(events []entities.Event, opts Options) (*ics.Calendar, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)
	if opts.Name != "" {
		cal.SetName(opts.Name)
		cal.SetXWRCalName(opts.Name)
	}
	cal.SetXWRTimezone(loc.String())

	for _, e := range events {
		rule, err := RRule(e, loc)
		if err != nil {
			return nil, err
		}

		ev := cal.AddEvent(UID(e.ID))
		ev.SetDtStampTime(now)
		if !e.CreatedAt.IsZero() {
			ev.SetCreatedTime(e.CreatedAt)
		}
		if !e.UpdatedAt.IsZero() {
			ev.SetModifiedAt(e.UpdatedAt)
		}
		if e.AllDay {
			start := e.Start.In(loc)
			// DTEND is exclusive for all-day events.
			end := e.End.In(loc).AddDate(0, 0, 1)
			ev.SetAllDayStartAt(time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc))
			ev.SetAllDayEndAt(time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc))
		} else {
			ev.SetStartAt(e.Start)
			ev.SetEndAt(e.End)
		}
		ev.SetSummary(e.Title)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if where := locationText(e.LocationIDs, opts.Locations); where != "" {
			ev.SetLocation(where)
		}
		if cats := categoryText(e.CategoryIDs, opts.Categories); cats != "" {
			ev.SetProperty(ics.ComponentPropertyCategories, cats)
		}
		if e.Thumbnail != "" {
			ev.SetProperty(ics.ComponentPropertyAttach, e.Thumbnail)
		}
		if rule != "" {
			ev.AddRrule(rule)
		}
	}
	return cal, nil
}

// Export writes events as a serialized iCalendar feed.
func Export(w io.Writer, events []entities.Event, opts Options) error {
	cal, err := Build(events, opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("ical: write: %w", err)
	}
	return nil
}

func locationText(ids []uint, locations map[uint]entities.Location) string {
	var parts []string
	for _, id := range ids {
		l, ok := locations[id]
		if !ok {
			continue
		}
		text := l.Name
		if l.City != "" {
			text += ", " + l.City
		}
		if l.Country != "" {
			text += ", " + l.Country
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "; ")
}

func categoryText(ids []uint, categories map[uint]entities.Category) string {
	var parts []string
	for _, id := range ids {
		if c, ok := categories[id]; ok {
			parts = append(parts, c.Title)
		}
	}
	return strings.Join(parts, ",")
}
