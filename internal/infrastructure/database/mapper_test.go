package database

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"eventcal/internal/domain"
	"eventcal/internal/domain/entities"
)

func TestEventToDomain(t *testing.T) {
	start := time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)
	row := eventRow{
		ID:          12,
		StartDate:   pgtype.Timestamptz{Time: start, Valid: true},
		EndDate:     pgtype.Timestamptz{Time: end, Valid: true},
		Repeat:      "BIWEEKLY",
		EndRepeat:   pgtype.Date{Time: time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), Valid: true},
		Title:       "Permanence",
		LocationIDs: []int64{2, 5},
	}

	e, err := eventToDomain(row)
	if err != nil {
		t.Fatalf("eventToDomain: %v", err)
	}
	if e.ID != 12 || e.Repeat != entities.RepeatBiweekly {
		t.Fatalf("unexpected event %+v", e)
	}
	if !e.Start.Equal(start) || !e.End.Equal(end) {
		t.Fatalf("expected %v-%v, got %v-%v", start, end, e.Start, e.End)
	}
	if e.EndRepeat == nil || e.EndRepeat.Day() != 30 {
		t.Fatalf("expected end repeat 30 June, got %v", e.EndRepeat)
	}
	if len(e.LocationIDs) != 2 || e.LocationIDs[1] != 5 {
		t.Fatalf("expected locations [2 5], got %v", e.LocationIDs)
	}
	if e.CategoryIDs != nil {
		t.Fatalf("expected nil categories, got %v", e.CategoryIDs)
	}
	if !e.CreatedAt.IsZero() {
		t.Fatalf("expected zero created_at for NULL column, got %v", e.CreatedAt)
	}
}

func TestEventToDomainRejectsUnknownRepeat(t *testing.T) {
	_, err := eventToDomain(eventRow{ID: 1, Repeat: "HOURLY"})
	if !errors.Is(err, domain.ErrUnknownRepeat) {
		t.Fatalf("expected ErrUnknownRepeat, got %v", err)
	}
}

func TestDateToPgtype(t *testing.T) {
	if d := dateToPgtype(nil); d.Valid {
		t.Fatal("expected NULL date for nil")
	}

	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	in := time.Date(2024, time.May, 1, 23, 30, 0, 0, paris)
	d := dateToPgtype(&in)
	if !d.Valid {
		t.Fatal("expected valid date")
	}
	if y, m, day := d.Time.Date(); y != 2024 || m != time.May || day != 1 {
		t.Fatalf("expected 2024-05-01, got %v", d.Time)
	}

	back := pgtypeDateToTime(d)
	if back == nil || !back.Equal(d.Time) {
		t.Fatalf("expected round trip, got %v", back)
	}
}

func TestIDConversions(t *testing.T) {
	if got := int64sToIDs(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	got := idsToInt64([]uint{3, 9})
	if len(got) != 2 || got[0] != 3 || got[1] != 9 {
		t.Fatalf("expected [3 9], got %v", got)
	}
}
