package calendar

import (
	"fmt"
	"time"

	"eventcal/internal/domain"
	"eventcal/internal/domain/entities"
)

// MaxSpan is the longest supported distance between start and end.
const MaxSpan = 7 * 24 * time.Hour

// EventValidator checks a candidate event before it is committed and returns
// the value to persist.
type EventValidator interface {
	Validate(e entities.Event) (entities.Event, error)
}

var _ EventValidator = (*Validator)(nil)

// Validator runs the pre-commit checks in the configured zone.
type Validator struct {
	zone Zone
}

func NewValidator(zone Zone) *Validator {
	return &Validator{zone: zone}
}

// Validate stops at the first failing check. On success it returns the
// normalized event: a Never event loses its end-repeat date. Callers must
// persist the returned value, not their input.
func (v *Validator) Validate(e entities.Event) (entities.Event, error) {
	if !e.Repeat.Valid() {
		return e, fmt.Errorf("%w: %s", domain.ErrUnknownRepeat, e.Repeat)
	}

	if !e.Start.IsZero() && !e.End.IsZero() {
		start := v.zone.Local(e.Start)
		end := v.zone.Local(e.End)
		if start.After(end) {
			return e, domain.ErrInvalidDateOrder
		}
		if end.Sub(start) > MaxSpan {
			return e, domain.ErrSpanTooLong
		}
	}

	if e.Repeat == entities.RepeatNever && e.EndRepeat != nil {
		e.EndRepeat = nil
	}

	if e.Repeat.Daily() && v.zone.Snapshot(&e).IsChunk() {
		return e, domain.ErrUnsupportedChunkForDailyRepeat
	}

	return e, nil
}
