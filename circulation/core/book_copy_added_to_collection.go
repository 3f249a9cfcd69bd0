package core

import (
	"time"
)

// BookCopyAddedToCollectionEventType is the event type identifier.
const BookCopyAddedToCollectionEventType = "BookCopyAddedToCollection"

// BookCopyAddedToCollection represents when a book copy is loaded into the collection.
type BookCopyAddedToCollection struct {
	BookID     BookIDInt
	Title      string
	Author     string
	OccurredAt OccurredAtTS
}

// BuildBookCopyAddedToCollection creates a new BookCopyAddedToCollection event.
func BuildBookCopyAddedToCollection(book *Book, occurredAt time.Time) BookCopyAddedToCollection {
	return BookCopyAddedToCollection{
		BookID:     book.ID(),
		Title:      book.Title(),
		Author:     book.Author(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookCopyAddedToCollection) IsEventType() string {
	return BookCopyAddedToCollectionEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyAddedToCollection) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopyAddedToCollection) IsErrorEvent() bool {
	return false
}
