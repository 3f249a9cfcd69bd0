package desk

import (
	"github.com/anders-schneider/LibrarySimulator/circulation/core"
)

// IssueCard allows the named person the use of this library and immediately starts serving them.
// Issuing a card to an existing patron is reported but still serves that patron.
func (l *Library) IssueCard(name core.PatronNameString) Response {
	var r Response

	if !l.isOpen {
		r.talk(msgNotOpen)
		return r
	}

	if _, ok := l.patrons[name]; ok {
		r.talk(name + " already has a library card.")
	} else {
		l.patrons[name] = core.NewPatron(name)
		l.patronOrder = append(l.patronOrder, name)

		r.talk("Library card issued to " + name + ".")
		r.record(core.BuildLibraryCardIssued(name, l.Today(), l.now()))
	}

	l.serve(&r, name)

	return r
}

// Serve makes the named patron the one subsequent check-ins and check-outs refer to,
// and lists the books they currently have.
func (l *Library) Serve(name core.PatronNameString) Response {
	var r Response

	if !l.isOpen {
		r.talk(msgNotOpen)
		return r
	}

	l.serve(&r, name)

	return r
}

func (l *Library) serve(r *Response, name core.PatronNameString) {
	patron, ok := l.patrons[name]
	if !ok {
		r.talk(name + " does not have a library card.")
		return
	}

	l.served = patron
	l.patronBooks = patron.Books()
	l.foundBooks = nil

	r.talk("Now serving " + name + ".")
	r.talk(msgCurrentlyHeld + core.CreateNumberedList(l.patronBooks, l.Today()))
}
