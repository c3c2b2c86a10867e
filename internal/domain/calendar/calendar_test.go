package calendar

import (
	"time"

	"eventcal/internal/domain/entities"
)

var paris = MustZone("Europe/Paris")

// at builds a wall-clock instant in Europe/Paris.
func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, paris.Location())
}

func newEvent(repeat entities.Repeat, start, end time.Time) entities.Event {
	return entities.Event{ID: 1, Repeat: repeat, Start: start, End: end, Title: "test"}
}

func snap(repeat entities.Repeat, start, end time.Time) Snapshot {
	e := newEvent(repeat, start, end)
	return paris.Snapshot(&e)
}
