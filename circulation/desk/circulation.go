package desk

import (
	"github.com/anders-schneider/LibrarySimulator/circulation/core"
)

// CheckOut checks out books from the last search result, by number, to the served patron.
// Books are due seven days from today. A patron may hold at most three books, and a request
// that would exceed the limit is rejected as a whole.
func (l *Library) CheckOut(numbers ...core.Selection) Response {
	var r Response

	if !l.checkPatronContext(&r) {
		return r
	}

	if len(l.foundBooks) == 0 {
		r.talk(msgSearchFirst)
		return r
	}

	if valid, message := core.CheckValidInput(numbers, len(l.foundBooks)); !valid {
		r.talk(message)
		return r
	}

	patron := l.served
	today := l.Today()

	if patron.BookCount()+len(numbers) > maxBooksPerPatron {
		r.talk("Sorry, " + patron.Name() + " already has 3 books checked out.")
		r.record(core.BuildCheckingOutBooksFailed(patron.Name(), failureReasonLimit, today, l.now()))

		return r
	}

	dueDay := today + loanPeriodDays

	for _, number := range numbers {
		book := l.foundBooks[number.Index()]

		if !book.IsOnShelf() {
			r.talk(book.Title() + " is already checked out.")
			continue
		}

		book.CheckOut(dueDay)
		patron.Take(book)

		r.talk(book.Title() + ", checked out to " + patron.Name() + ".")
		r.record(core.BuildBookCopyCheckedOut(book, patron.Name(), today, dueDay, l.now()))
	}

	return r
}

// CheckIn accepts books returned by the served patron and puts them back on the shelves.
// Numbers refer to the list shown when the patron was served.
func (l *Library) CheckIn(numbers ...core.Selection) Response {
	var r Response

	if !l.checkPatronContext(&r) {
		return r
	}

	if valid, message := core.CheckValidInput(numbers, len(l.patronBooks)); !valid {
		r.talk(message)
		return r
	}

	patron := l.served

	for _, number := range numbers {
		book := l.patronBooks[number.Index()]

		if err := patron.GiveBack(book); err != nil {
			r.talk(book.Title() + " is not checked out to " + patron.Name() + ".")
			continue
		}

		book.CheckIn()

		r.talk(book.Title() + " returned to shelves.")
		r.record(core.BuildBookCopyCheckedIn(book, patron.Name(), l.Today(), l.now()))
	}

	return r
}

// checkPatronContext reports whether the library is open and a patron is being served,
// talking the reason otherwise.
func (l *Library) checkPatronContext(r *Response) bool {
	if !l.isOpen {
		r.talk(msgNotOpen)
		return false
	}

	if l.served == nil {
		r.talk(msgNoPatronServed)
		return false
	}

	return true
}
