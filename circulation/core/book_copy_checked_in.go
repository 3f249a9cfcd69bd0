package core

import (
	"time"
)

// BookCopyCheckedInEventType is the event type identifier.
const BookCopyCheckedInEventType = "BookCopyCheckedIn"

// BookCopyCheckedIn represents when a patron returns a book copy to the shelves.
type BookCopyCheckedIn struct {
	BookID     BookIDInt
	Title      string
	Author     string
	PatronName PatronNameString
	Day        DayInt
	OccurredAt OccurredAtTS
}

// BuildBookCopyCheckedIn creates a new BookCopyCheckedIn event.
func BuildBookCopyCheckedIn(book *Book, patronName PatronNameString, day DayInt, occurredAt time.Time) BookCopyCheckedIn {
	return BookCopyCheckedIn{
		BookID:     book.ID(),
		Title:      book.Title(),
		Author:     book.Author(),
		PatronName: patronName,
		Day:        day,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyCheckedIn) IsEventType() string {
	return BookCopyCheckedInEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyCheckedIn) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopyCheckedIn) IsErrorEvent() bool {
	return false
}
