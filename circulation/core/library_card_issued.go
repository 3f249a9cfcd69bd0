package core

import (
	"time"
)

// LibraryCardIssuedEventType is the event type identifier.
const LibraryCardIssuedEventType = "LibraryCardIssued"

// LibraryCardIssued represents when a person is registered as a patron.
type LibraryCardIssued struct {
	PatronName PatronNameString
	Day        DayInt
	OccurredAt OccurredAtTS
}

// BuildLibraryCardIssued creates a new LibraryCardIssued event.
func BuildLibraryCardIssued(patronName PatronNameString, day DayInt, occurredAt time.Time) LibraryCardIssued {
	return LibraryCardIssued{
		PatronName: patronName,
		Day:        day,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LibraryCardIssued) IsEventType() string {
	return LibraryCardIssuedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LibraryCardIssued) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e LibraryCardIssued) IsErrorEvent() bool {
	return false
}
