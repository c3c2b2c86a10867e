package ical

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"eventcal/internal/domain"
	"eventcal/internal/domain/entities"
)

var paris = mustLoad("Europe/Paris")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func TestRRule(t *testing.T) {
	until := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		repeat    entities.Repeat
		endRepeat *time.Time
		freq      rrule.Frequency
		interval  int
		weekdays  int
	}{
		{"daily", entities.RepeatDaily, nil, rrule.DAILY, 0, 0},
		{"weekday", entities.RepeatWeekday, nil, rrule.WEEKLY, 0, 5},
		{"weekly", entities.RepeatWeekly, nil, rrule.WEEKLY, 0, 0},
		{"biweekly", entities.RepeatBiweekly, &until, rrule.WEEKLY, 2, 0},
		{"monthly", entities.RepeatMonthly, nil, rrule.MONTHLY, 0, 0},
		{"yearly", entities.RepeatYearly, &until, rrule.YEARLY, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := RRule(entities.Event{ID: 1, Repeat: tt.repeat, EndRepeat: tt.endRepeat}, paris)
			if err != nil {
				t.Fatalf("RRule: %v", err)
			}
			r, err := rrule.StrToRRule(s)
			if err != nil {
				t.Fatalf("parse %q: %v", s, err)
			}
			opt := r.OrigOptions
			if opt.Freq != tt.freq {
				t.Fatalf("%q: expected freq %v, got %v", s, tt.freq, opt.Freq)
			}
			if opt.Interval != tt.interval {
				t.Fatalf("%q: expected interval %d, got %d", s, tt.interval, opt.Interval)
			}
			if len(opt.Byweekday) != tt.weekdays {
				t.Fatalf("%q: expected %d weekdays, got %d", s, tt.weekdays, len(opt.Byweekday))
			}
			if tt.endRepeat == nil && !opt.Until.IsZero() {
				t.Fatalf("%q: expected no UNTIL", s)
			}
			if tt.endRepeat != nil {
				want := time.Date(2024, time.December, 31, 23, 59, 59, 0, paris)
				if !opt.Until.Equal(want) {
					t.Fatalf("%q: expected UNTIL %v, got %v", s, want, opt.Until)
				}
			}
		})
	}
}

func TestRRuleNeverIsEmpty(t *testing.T) {
	until := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	s, err := RRule(entities.Event{Repeat: entities.RepeatNever, EndRepeat: &until}, paris)
	if err != nil || s != "" {
		t.Fatalf("expected empty rule, got %q, %v", s, err)
	}
}

func TestRRuleUnknownRepeat(t *testing.T) {
	_, err := RRule(entities.Event{ID: 9, Repeat: entities.Repeat(42)}, paris)
	if !errors.Is(err, domain.ErrUnknownRepeat) {
		t.Fatalf("expected ErrUnknownRepeat, got %v", err)
	}
}

func TestExportRoundTrip(t *testing.T) {
	events := []entities.Event{
		{
			ID:          1,
			Title:       "Club lecture",
			Description: "Apporter son livre",
			Repeat:      entities.RepeatWeekly,
			Start:       time.Date(2024, time.March, 4, 18, 0, 0, 0, paris),
			End:         time.Date(2024, time.March, 4, 20, 0, 0, 0, paris),
			LocationIDs: []uint{7},
			CategoryIDs: []uint{2, 3},
		},
		{
			ID:     2,
			Title:  "Fête de quartier",
			AllDay: true,
			Start:  time.Date(2024, time.June, 21, 0, 0, 0, 0, paris),
			End:    time.Date(2024, time.June, 21, 23, 59, 0, 0, paris),
		},
	}
	opts := Options{
		Name:       "Agenda",
		Location:   paris,
		Locations:  map[uint]entities.Location{7: {ID: 7, Name: "Médiathèque", City: "Lyon"}},
		Categories: map[uint]entities.Category{2: {ID: 2, Title: "Culture"}, 3: {ID: 3, Title: "Loisirs"}},
		Now:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	if err := Export(&buf, events, opts); err != nil {
		t.Fatalf("Export: %v", err)
	}

	cal, err := ics.ParseCalendar(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("parse exported calendar: %v", err)
	}
	parsed := cal.Events()
	if len(parsed) != 2 {
		t.Fatalf("expected 2 events, got %d", len(parsed))
	}

	weekly := parsed[0]
	if weekly.Id() != UID(1) {
		t.Fatalf("expected uid %s, got %s", UID(1), weekly.Id())
	}
	if p := weekly.GetProperty(ics.ComponentPropertySummary); p == nil || p.Value != "Club lecture" {
		t.Fatalf("unexpected summary %+v", p)
	}
	if p := weekly.GetProperty(ics.ComponentPropertyRrule); p == nil || !strings.Contains(p.Value, "FREQ=WEEKLY") {
		t.Fatalf("expected weekly rrule, got %+v", p)
	}
	if p := weekly.GetProperty(ics.ComponentPropertyLocation); p == nil || p.Value != "Médiathèque, Lyon" {
		t.Fatalf("unexpected location %+v", p)
	}
	start, err := weekly.GetStartAt()
	if err != nil || !start.Equal(events[0].Start) {
		t.Fatalf("expected start %v, got %v (%v)", events[0].Start, start, err)
	}

	allDay := parsed[1]
	if p := allDay.GetProperty(ics.ComponentPropertyRrule); p != nil {
		t.Fatalf("expected no rrule for one-off event, got %q", p.Value)
	}
	dtStart := allDay.GetProperty(ics.ComponentPropertyDtStart)
	if dtStart == nil || dtStart.Value != "20240621" {
		t.Fatalf("expected all-day DTSTART 20240621, got %+v", dtStart)
	}
	if dtEnd := allDay.GetProperty(ics.ComponentPropertyDtEnd); dtEnd == nil || dtEnd.Value != "20240622" {
		t.Fatalf("expected exclusive DTEND 20240622, got %+v", dtEnd)
	}
}

func TestExportRejectsUnknownRepeat(t *testing.T) {
	var buf bytes.Buffer
	err := Export(&buf, []entities.Event{{ID: 5, Repeat: entities.Repeat(99)}}, Options{})
	if !errors.Is(err, domain.ErrUnknownRepeat) {
		t.Fatalf("expected ErrUnknownRepeat, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("expected nothing written")
	}
}
