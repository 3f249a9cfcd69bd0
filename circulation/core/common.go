package core

import (
	"time"
)

// BookIDInt represents a book copy identifier.
type BookIDInt = int

// PatronNameString represents a patron's name, which is also the patron's registry key.
type PatronNameString = string

// DayInt represents a day on the library calendar.
type DayInt = int

// OccurredAtTS represents when an event occurred.
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
