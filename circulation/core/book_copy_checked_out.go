package core

import (
	"time"
)

// BookCopyCheckedOutEventType is the event type identifier.
const BookCopyCheckedOutEventType = "BookCopyCheckedOut"

// BookCopyCheckedOut represents when a book copy is checked out to a patron.
type BookCopyCheckedOut struct {
	BookID     BookIDInt
	Title      string
	Author     string
	PatronName PatronNameString
	Day        DayInt
	DueDay     DayInt
	OccurredAt OccurredAtTS
}

// BuildBookCopyCheckedOut creates a new BookCopyCheckedOut event.
func BuildBookCopyCheckedOut(
	book *Book,
	patronName PatronNameString,
	day DayInt,
	dueDay DayInt,
	occurredAt time.Time,
) BookCopyCheckedOut {

	return BookCopyCheckedOut{
		BookID:     book.ID(),
		Title:      book.Title(),
		Author:     book.Author(),
		PatronName: patronName,
		Day:        day,
		DueDay:     dueDay,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyCheckedOut) IsEventType() string {
	return BookCopyCheckedOutEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyCheckedOut) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopyCheckedOut) IsErrorEvent() bool {
	return false
}
