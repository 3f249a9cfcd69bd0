package desk

import (
	"strings"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
)

// Search looks for on-shelf copies whose title or author contains text, ignoring case,
// and remembers the result as the numbered list check-outs refer to.
//
// A copy equal to the previous result (same title and author) is skipped, so runs of
// identical copies collapse into one entry while separated duplicates remain.
// Search works whether or not the library is open.
func (l *Library) Search(text string) Response {
	var r Response

	if len(text) < minSearchLength {
		r.talk(msgSearchTooShort)
		return r
	}

	needle := strings.ToLower(text)
	found := make([]*core.Book, 0)

	for _, book := range l.collection {
		if !matches(book, needle) || !book.IsOnShelf() {
			continue
		}

		if len(found) > 0 && book.Equal(found[len(found)-1]) {
			continue
		}

		found = append(found, book)
	}

	l.foundBooks = found
	r.talk(core.CreateNumberedList(found, l.Today()))

	return r
}

func matches(book *core.Book, needle string) bool {
	return strings.Contains(strings.ToLower(book.Title()), needle) ||
		strings.Contains(strings.ToLower(book.Author()), needle)
}
