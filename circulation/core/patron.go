package core

import (
	"errors"
	"slices"
)

// ErrBookNotHeld is returned when a patron gives back a copy they do not hold.
var ErrBookNotHeld = errors.New("book is not checked out to this patron")

// Patron is a named borrower holding the copies currently checked out to them.
type Patron struct {
	name  PatronNameString
	books []*Book
}

// NewPatron creates a patron with no books checked out.
func NewPatron(name PatronNameString) *Patron {
	return &Patron{name: name}
}

// Name returns the patron's name.
func (p *Patron) Name() PatronNameString {
	return p.name
}

// Books returns the held copies in checkout order.
func (p *Patron) Books() []*Book {
	return slices.Clone(p.books)
}

// BookCount returns how many copies the patron holds.
func (p *Patron) BookCount() int {
	return len(p.books)
}

// Holds reports whether this exact copy is checked out to the patron.
func (p *Patron) Holds(book *Book) bool {
	return slices.ContainsFunc(p.books, func(held *Book) bool {
		return held.ID() == book.ID()
	})
}

// Take adds a copy to the held books. The caller makes sure it is not already held.
func (p *Patron) Take(book *Book) {
	p.books = append(p.books, book)
}

// GiveBack removes this exact copy (matched by ID) from the held books.
func (p *Patron) GiveBack(book *Book) error {
	idx := slices.IndexFunc(p.books, func(held *Book) bool {
		return held.ID() == book.ID()
	})

	if idx < 0 {
		return ErrBookNotHeld
	}

	p.books = slices.Delete(p.books, idx, idx+1)

	return nil
}

// HasOverdueBooks reports whether any held copy was due before today.
func (p *Patron) HasOverdueBooks(today DayInt) bool {
	return slices.ContainsFunc(p.books, func(b *Book) bool {
		return b.IsOverdue(today)
	})
}

// String returns the patron's name.
func (p *Patron) String() string {
	return p.name
}
