package calendar

import (
	"testing"
	"time"

	"eventcal/internal/domain/entities"
)

func TestSpanDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"same day", at(2024, time.January, 10, 9, 0), at(2024, time.January, 10, 17, 0), 0},
		{"three day chunk", at(2024, time.January, 10, 0, 0), at(2024, time.January, 12, 0, 0), 2},
		{"crosses local midnight only", at(2024, time.January, 10, 23, 30), at(2024, time.January, 11, 0, 30), 1},
		{"reversed is absolute", at(2024, time.January, 12, 9, 0), at(2024, time.January, 10, 9, 0), 2},
		{"across DST", at(2024, time.March, 30, 12, 0), at(2024, time.April, 1, 12, 0), 2},
		{"less than 24h apart on different days", at(2024, time.January, 10, 20, 0), at(2024, time.January, 11, 8, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := snap(entities.RepeatNever, tt.start, tt.end)
			if got := s.SpanDays(); got != tt.want {
				t.Fatalf("SpanDays() = %d, want %d", got, tt.want)
			}
			if s.IsChunk() != (tt.want != 0) {
				t.Fatalf("IsChunk() = %v with span %d", s.IsChunk(), tt.want)
			}
		})
	}
}

func TestSnapshotConvertsToZone(t *testing.T) {
	e := newEvent(entities.RepeatNever,
		time.Date(2024, time.January, 10, 23, 30, 0, 0, time.UTC),
		time.Date(2024, time.January, 11, 0, 30, 0, 0, time.UTC))
	s := paris.Snapshot(&e)

	if s.LocalStart().Location() != paris.Location() {
		t.Fatalf("expected Paris location, got %s", s.LocalStart().Location())
	}
	if s.LocalStart().Day() != 11 || s.LocalStart().Hour() != 0 {
		t.Fatalf("expected 2024-01-11 00:30 local, got %s", s.LocalStart())
	}
	if s.SpanDays() != 0 {
		t.Fatalf("expected same local day, got span %d", s.SpanDays())
	}
}

func TestSnapshotIgnoresLaterMutation(t *testing.T) {
	e := newEvent(entities.RepeatDaily, at(2024, time.January, 10, 9, 0), at(2024, time.January, 10, 17, 0))
	s := paris.Snapshot(&e)

	e.End = at(2024, time.January, 12, 17, 0)
	e.Repeat = entities.RepeatWeekly

	if s.SpanDays() != 0 || s.Repeat() != entities.RepeatDaily {
		t.Fatalf("snapshot changed after mutation: span %d repeat %s", s.SpanDays(), s.Repeat())
	}
	if fresh := paris.Snapshot(&e); fresh.SpanDays() != 2 {
		t.Fatalf("expected fresh snapshot to see new end, got span %d", fresh.SpanDays())
	}
}

func TestEntryReturnsCopy(t *testing.T) {
	entry := paris.Entry(newEvent(entities.RepeatNever, at(2024, time.January, 10, 9, 0), at(2024, time.January, 10, 17, 0)))
	ev := entry.Event()
	ev.Start = at(2030, time.January, 1, 0, 0)

	if !entry.Event().Start.Equal(at(2024, time.January, 10, 9, 0)) {
		t.Fatal("expected entry event to be unaffected by caller mutation")
	}
	if entry.Snapshot().EventID() != 1 {
		t.Fatalf("expected snapshot of event 1, got %d", entry.Snapshot().EventID())
	}
}

func TestLoadZoneRejectsUnknownName(t *testing.T) {
	if _, err := LoadZone("Mars/Olympus_Mons"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
	z, err := LoadZone("")
	if err != nil {
		t.Fatalf("default zone: %v", err)
	}
	if z.String() != "Europe/Paris" {
		t.Fatalf("expected default Europe/Paris, got %s", z.String())
	}
}
