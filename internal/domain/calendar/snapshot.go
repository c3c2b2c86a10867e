package calendar

import (
	"time"

	"eventcal/internal/domain/entities"
)

// Snapshot is an immutable view of an event's temporal fields converted to
// local time. Local start/end and the day span are computed once when the
// snapshot is taken; a mutated event needs a new snapshot.
type Snapshot struct {
	id       uint
	repeat   entities.Repeat
	start    time.Time
	end      time.Time
	spanDays int
}

func (s Snapshot) EventID() uint           { return s.id }
func (s Snapshot) Repeat() entities.Repeat { return s.repeat }
func (s Snapshot) LocalStart() time.Time   { return s.start }
func (s Snapshot) LocalEnd() time.Time     { return s.end }

// SpanDays is the number of calendar days between the local start date and
// the local end date, ignoring time of day. Always >= 0.
func (s Snapshot) SpanDays() int { return s.spanDays }

// IsChunk reports whether the event starts and ends on different days.
func (s Snapshot) IsChunk() bool { return s.spanDays != 0 }

// Snapshot lets a Snapshot be used wherever an Evaluable is expected.
func (s Snapshot) Snapshot() Snapshot { return s }

// Evaluable is implemented by anything that can be reduced to a Snapshot.
type Evaluable interface {
	Snapshot() Snapshot
}

// Entry is a loaded event together with its snapshot. The event is kept
// unexported so the pair cannot drift apart.
type Entry struct {
	event entities.Event
	snap  Snapshot
}

// Event returns a copy of the event the snapshot was taken from.
func (e Entry) Event() entities.Event { return e.event }

func (e Entry) Snapshot() Snapshot { return e.snap }

func spanDays(start, end time.Time) int {
	d := daysBetween(start, end)
	if d < 0 {
		return -d
	}
	return d
}

// civilDate drops the time of day and the zone, keeping the local date.
// UTC has no DST so differences between civil dates are whole days.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the signed number of calendar days from a's date to b's.
func daysBetween(a, b time.Time) int {
	return int(civilDate(b).Sub(civilDate(a)) / (24 * time.Hour))
}

// clock returns the time of day as an offset from local midnight.
func clock(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}
