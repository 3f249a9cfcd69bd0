package desk

import (
	"slices"
	"time"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
)

const (
	maxBooksPerPatron = 3
	loanPeriodDays    = 7
	minSearchLength   = 4

	msgNotOpen         = "The library is not open."
	msgAlreadyOpen     = "The library is already open!"
	msgGoodnight       = "Goodnight."
	msgNoPatronServed  = "No patron is currently being served."
	msgSearchFirst     = "Please search for books before trying to check a book out."
	msgSearchTooShort  = "Search string must contain at least four characters."
	msgNoBooksOverdue  = "No books are overdue."
	msgCurrentlyHeld   = "You currently have these books checked out: \n"
	failureReasonLimit = "patron would exceed the limit of 3 books"
)

// Option configures a Library.
type Option func(*Library)

// WithClock sets the wall clock used to timestamp domain events.
func WithClock(now func() time.Time) Option {
	return func(l *Library) {
		l.now = now
	}
}

// Library provides the operations available to the librarian.
type Library struct {
	calendar    *core.Calendar
	bookIDs     *core.BookIDSequence
	isOpen      bool
	collection  []*core.Book
	patrons     map[core.PatronNameString]*core.Patron
	patronOrder []core.PatronNameString
	served      *core.Patron
	foundBooks  []*core.Book
	patronBooks []*core.Book
	now         func() time.Time
}

// New creates a closed library at day 0 with an empty collection.
func New(options ...Option) *Library {
	l := &Library{
		calendar: core.NewCalendar(),
		bookIDs:  core.NewBookIDSequence(),
		patrons:  make(map[core.PatronNameString]*core.Patron),
		now:      time.Now,
	}

	for _, option := range options {
		option(l)
	}

	return l
}

// AddToCollection creates one book copy per entry, in order, with the next free IDs.
func (l *Library) AddToCollection(entries ...core.CatalogEntry) Response {
	var r Response

	for _, entry := range entries {
		book := core.NewBook(l.bookIDs.Next(), entry.Title, entry.Author)
		l.collection = append(l.collection, book)
		r.record(core.BuildBookCopyAddedToCollection(book, l.now()))
	}

	return r
}

// Today returns the current library day.
func (l *Library) Today() core.DayInt {
	return l.calendar.Date()
}

// IsOpen reports whether the library is open for business.
func (l *Library) IsOpen() bool {
	return l.isOpen
}

// CollectionSize returns the number of copies in the collection.
func (l *Library) CollectionSize() int {
	return len(l.collection)
}

// Collection returns all copies in load order.
func (l *Library) Collection() []*core.Book {
	return slices.Clone(l.collection)
}

// Patron looks up a registered patron by name.
func (l *Library) Patron(name core.PatronNameString) (*core.Patron, bool) {
	patron, ok := l.patrons[name]
	return patron, ok
}

// ServedPatron returns the patron currently being served, if any.
func (l *Library) ServedPatron() (*core.Patron, bool) {
	return l.served, l.served != nil
}
