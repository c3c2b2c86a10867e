package entities

import "time"

// HasEndRepeat reports whether the recurrence is bounded by a date.
func (e *Event) HasEndRepeat() bool {
	return e.EndRepeat != nil && !e.EndRepeat.IsZero()
}

// IsOwnedBy reports whether userID created the event.
func (e *Event) IsOwnedBy(userID string) bool {
	return e.CreatedBy != "" && e.CreatedBy == userID
}

type Event struct {
	ID          uint
	Start       time.Time
	End         time.Time
	AllDay      bool
	Repeat      Repeat
	EndRepeat   *time.Time // date only; nil = unbounded
	Title       string
	Description string
	Thumbnail   string // opaque image reference
	LocationIDs []uint
	CategoryIDs []uint
	CreatedBy   string // Discord user ID, empty = none
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
