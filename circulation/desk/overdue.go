package desk

import (
	"github.com/anders-schneider/LibrarySimulator/circulation/core"
)

// ListOverdueBooks sends an overdue notice to every patron holding an overdue book.
//
// Patrons are visited in registration order and every patron without overdue books
// adds its own "No books are overdue." line.
func (l *Library) ListOverdueBooks() Response {
	var r Response

	if !l.isOpen {
		r.talk(msgNotOpen)
		return r
	}

	if len(l.patronOrder) == 0 {
		r.talk(msgNoBooksOverdue)
		return r
	}

	today := l.Today()

	for _, name := range l.patronOrder {
		patron := l.patrons[name]

		if !patron.HasOverdueBooks(today) {
			r.talk(msgNoBooksOverdue)
			continue
		}

		notice := core.BuildOverdueNotice(patron.Books(), today)

		r.talk("Dear " + name + ",\nYou have the following books:")
		r.talk(notice.String())
		r.record(core.BuildOverdueNoticeIssued(name, today, notice.OverdueCount(), l.now()))
	}

	return r
}
