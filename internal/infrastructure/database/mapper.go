package database

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"eventcal/internal/domain/entities"
)

// eventRow mirrors the columns selected by selectEvents.
type eventRow struct {
	ID          int64
	StartDate   pgtype.Timestamptz
	EndDate     pgtype.Timestamptz
	AllDay      bool
	Repeat      string
	EndRepeat   pgtype.Date
	Title       string
	Description string
	Thumbnail   string
	CreatedBy   string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
	LocationIDs []int64
	CategoryIDs []int64
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (eventRow, error) {
	var r eventRow
	err := row.Scan(
		&r.ID,
		&r.StartDate,
		&r.EndDate,
		&r.AllDay,
		&r.Repeat,
		&r.EndRepeat,
		&r.Title,
		&r.Description,
		&r.Thumbnail,
		&r.CreatedBy,
		&r.CreatedAt,
		&r.UpdatedAt,
		&r.LocationIDs,
		&r.CategoryIDs,
	)
	return r, err
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// dateToPgtype keeps only the calendar date of d.
func dateToPgtype(d *time.Time) pgtype.Date {
	if d == nil || d.IsZero() {
		return pgtype.Date{}
	}
	y, m, day := d.Date()
	return pgtype.Date{Time: time.Date(y, m, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

func pgtypeDateToTime(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

func idsToInt64(ids []uint) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}

func int64sToIDs(ids []int64) []uint {
	if len(ids) == 0 {
		return nil
	}
	out := make([]uint, len(ids))
	for i, id := range ids {
		out[i] = uint(id)
	}
	return out
}

// eventToDomain rejects rows whose repeat is outside the enumeration so that
// corrupt data never reaches the evaluator.
func eventToDomain(r eventRow) (entities.Event, error) {
	repeat, err := entities.ParseRepeat(r.Repeat)
	if err != nil {
		return entities.Event{}, fmt.Errorf("event %d: %w", r.ID, err)
	}
	return entities.Event{
		ID:          uint(r.ID),
		Start:       pgtypeTimestamptzToTime(r.StartDate),
		End:         pgtypeTimestamptzToTime(r.EndDate),
		AllDay:      r.AllDay,
		Repeat:      repeat,
		EndRepeat:   pgtypeDateToTime(r.EndRepeat),
		Title:       r.Title,
		Description: r.Description,
		Thumbnail:   r.Thumbnail,
		LocationIDs: int64sToIDs(r.LocationIDs),
		CategoryIDs: int64sToIDs(r.CategoryIDs),
		CreatedBy:   r.CreatedBy,
		CreatedAt:   pgtypeTimestamptzToTime(r.CreatedAt),
		UpdatedAt:   pgtypeTimestamptzToTime(r.UpdatedAt),
	}, nil
}
