package desk

import (
	"strconv"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
)

// Open opens the library for business at the start of a new day.
// The calendar only advances when the library was closed.
func (l *Library) Open() Response {
	var r Response

	if l.isOpen {
		r.talk(msgAlreadyOpen)
		return r
	}

	l.isOpen = true
	l.calendar.Advance()

	r.talk("Today is day " + strconv.Itoa(l.Today()) + ".")
	r.record(core.BuildLibraryOpened(l.Today(), l.now()))

	return r
}

// Close closes the library for the day and forgets the served patron and the last search.
func (l *Library) Close() Response {
	var r Response

	if !l.isOpen {
		r.talk(msgNotOpen)
		return r
	}

	l.isOpen = false
	l.served = nil
	l.foundBooks = nil
	l.patronBooks = nil

	r.talk(msgGoodnight)
	r.record(core.BuildLibraryClosed(l.Today(), l.now()))

	return r
}

// Quit ends the session. The desk has nothing to say about it.
func (l *Library) Quit() Response {
	return Response{}
}
