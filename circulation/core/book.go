package core

// Book represents one physical copy of a book. There may be many copies
// with the same title and author, each with its own ID.
type Book struct {
	id      BookIDInt
	title   string
	author  string
	dueDate DayInt
	lent    bool
}

// NewBook creates a book copy which is not checked out to anyone.
func NewBook(id BookIDInt, title string, author string) *Book {
	return &Book{
		id:     id,
		title:  title,
		author: author,
	}
}

// ID returns the unique ID of this copy.
func (b *Book) ID() BookIDInt {
	return b.id
}

// Title returns the title of this book.
func (b *Book) Title() string {
	return b.title
}

// Author returns the author(s) of this book as a single string.
func (b *Book) Author() string {
	return b.author
}

// DueDate returns the day this copy is due and true if it is checked out,
// or 0 and false if it is on the shelf.
func (b *Book) DueDate() (DayInt, bool) {
	return b.dueDate, b.lent
}

// IsOnShelf reports whether the copy is not checked out.
func (b *Book) IsOnShelf() bool {
	return !b.lent
}

// CheckOut sets the due date. Business rules are enforced by the caller.
func (b *Book) CheckOut(dueDate DayInt) {
	b.dueDate = dueDate
	b.lent = true
}

// CheckIn clears the due date.
func (b *Book) CheckIn() {
	b.dueDate = 0
	b.lent = false
}

// IsOverdue reports whether the copy is checked out and was due before today.
func (b *Book) IsOverdue(today DayInt) bool {
	return b.lent && b.dueDate < today
}

// Equal reports whether both copies have the same title and author.
// Copies are distinguished by ID, so Equal is only meant for de-duplicating search results.
func (b *Book) Equal(other *Book) bool {
	if other == nil {
		return false
	}

	return b.title == other.title && b.author == other.author
}

// String returns "<title>, by <author>".
func (b *Book) String() string {
	return b.title + ", by " + b.author
}

// BookIDSequence hands out sequential book IDs starting at 1.
type BookIDSequence struct {
	last BookIDInt
}

// NewBookIDSequence creates a sequence whose first ID is 1.
func NewBookIDSequence() *BookIDSequence {
	return &BookIDSequence{}
}

// Next returns the next unused ID.
func (s *BookIDSequence) Next() BookIDInt {
	s.last++
	return s.last
}
