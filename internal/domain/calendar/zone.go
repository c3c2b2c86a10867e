// Package calendar evaluates recurring events: local-time snapshots,
// the "is it happening now" evaluator, pre-commit validation and the
// month/year predicates used by calendar views.
//
// Everything here is a pure function over an immutable Snapshot and a
// query instant. Nothing in this package performs I/O or holds shared state.
package calendar

import (
	"time"

	"eventcal/internal/domain/entities"
	"eventcal/pkg/tz"
)

// Zone is the viewer's calendar timezone. All day, month and year
// boundaries are computed in it.
type Zone struct {
	loc *time.Location
}

// NewZone wraps loc. A nil location is a configuration defect.
func NewZone(loc *time.Location) Zone {
	if loc == nil {
		panic("calendar: nil zone location")
	}
	return Zone{loc: loc}
}

// LoadZone resolves an IANA zone name (empty = tz.Default).
func LoadZone(name string) (Zone, error) {
	loc, err := tz.Load(name)
	if err != nil {
		return Zone{}, err
	}
	return Zone{loc: loc}, nil
}

// MustZone is LoadZone for configuration that cannot be recovered from.
func MustZone(name string) Zone {
	return NewZone(tz.MustLoad(name))
}

func (z Zone) Location() *time.Location {
	return z.mustLoc()
}

func (z Zone) String() string {
	if z.loc == nil {
		return ""
	}
	return z.loc.String()
}

// Local converts an instant to the viewer's wall-clock time.
func (z Zone) Local(t time.Time) time.Time {
	return t.In(z.mustLoc())
}

// Snapshot captures the event's temporal fields in this zone.
func (z Zone) Snapshot(e *entities.Event) Snapshot {
	start := z.Local(e.Start)
	end := z.Local(e.End)
	return Snapshot{
		id:       e.ID,
		repeat:   e.Repeat,
		start:    start,
		end:      end,
		spanDays: spanDays(start, end),
	}
}

// Entry pairs an event with the snapshot taken from it.
func (z Zone) Entry(e entities.Event) Entry {
	return Entry{event: e, snap: z.Snapshot(&e)}
}

func (z Zone) mustLoc() *time.Location {
	if z.loc == nil {
		panic("calendar: zone used before configuration")
	}
	return z.loc
}
