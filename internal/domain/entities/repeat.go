package entities

import (
	"fmt"
	"strings"

	"eventcal/internal/domain"
)

// Repeat is the closed enumeration governing recurrence.
type Repeat uint8

const (
	RepeatNever Repeat = iota
	RepeatDaily
	RepeatWeekday
	RepeatWeekly
	RepeatBiweekly
	RepeatMonthly
	RepeatYearly
)

var repeatKeys = [...]string{
	RepeatNever:    "NEVER",
	RepeatDaily:    "DAILY",
	RepeatWeekday:  "WEEKDAY",
	RepeatWeekly:   "WEEKLY",
	RepeatBiweekly: "BIWEEKLY",
	RepeatMonthly:  "MONTHLY",
	RepeatYearly:   "YEARLY",
}

var repeatLabels = [...]string{
	RepeatNever:    "Never",
	RepeatDaily:    "Every Day",
	RepeatWeekday:  "Every Weekday",
	RepeatWeekly:   "Every Week",
	RepeatBiweekly: "Every 2 Weeks",
	RepeatMonthly:  "Every Month",
	RepeatYearly:   "Every Year",
}

// AllRepeats lists the enumeration in declaration order.
func AllRepeats() []Repeat {
	return []Repeat{RepeatNever, RepeatDaily, RepeatWeekday, RepeatWeekly, RepeatBiweekly, RepeatMonthly, RepeatYearly}
}

// ParseRepeat accepts the storage key (case-insensitive) or the display label.
func ParseRepeat(s string) (Repeat, error) {
	s = strings.TrimSpace(s)
	for i, key := range repeatKeys {
		if strings.EqualFold(s, key) || strings.EqualFold(s, repeatLabels[i]) {
			return Repeat(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrUnknownRepeat, s)
}

func (r Repeat) Valid() bool {
	return int(r) < len(repeatKeys)
}

// String returns the storage key.
func (r Repeat) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Repeat(%d)", uint8(r))
	}
	return repeatKeys[r]
}

// Label returns the display label.
func (r Repeat) Label() string {
	if !r.Valid() {
		return r.String()
	}
	return repeatLabels[r]
}

// Daily reports whether r repeats every day or every weekday.
func (r Repeat) Daily() bool {
	return r == RepeatDaily || r == RepeatWeekday
}
