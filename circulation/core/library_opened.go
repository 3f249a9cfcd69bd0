package core

import (
	"time"
)

// LibraryOpenedEventType is the event type identifier.
const LibraryOpenedEventType = "LibraryOpened"

// LibraryOpened represents the start of a new library day.
type LibraryOpened struct {
	Day        DayInt
	OccurredAt OccurredAtTS
}

// BuildLibraryOpened creates a new LibraryOpened event.
func BuildLibraryOpened(day DayInt, occurredAt time.Time) LibraryOpened {
	return LibraryOpened{
		Day:        day,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LibraryOpened) IsEventType() string {
	return LibraryOpenedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LibraryOpened) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e LibraryOpened) IsErrorEvent() bool {
	return false
}
