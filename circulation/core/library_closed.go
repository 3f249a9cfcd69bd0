package core

import (
	"time"
)

// LibraryClosedEventType is the event type identifier.
const LibraryClosedEventType = "LibraryClosed"

// LibraryClosed represents the end of a library day.
type LibraryClosed struct {
	Day        DayInt
	OccurredAt OccurredAtTS
}

// BuildLibraryClosed creates a new LibraryClosed event.
func BuildLibraryClosed(day DayInt, occurredAt time.Time) LibraryClosed {
	return LibraryClosed{
		Day:        day,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LibraryClosed) IsEventType() string {
	return LibraryClosedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LibraryClosed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e LibraryClosed) IsErrorEvent() bool {
	return false
}
