package core

import (
	"strconv"
	"strings"
)

const (
	// MaxListedBooks is how many entries a numbered list shows, and so the highest number a patron can pick.
	MaxListedBooks = 10

	noBooksFound = "No books found."
)

// CreateNumberedList renders books as a 1-indexed list.
//
// Up to MaxListedBooks entries are annotated with their due state relative to today, each line
// ending in a newline. Longer lists show the first MaxListedBooks entries without annotations
// followed by "...and K more." (no trailing newline).
func CreateNumberedList(books []*Book, today DayInt) string {
	if len(books) == 0 {
		return noBooksFound
	}

	var sb strings.Builder

	if len(books) > MaxListedBooks {
		for i, book := range books[:MaxListedBooks] {
			writeListEntry(&sb, i+1, book)
			sb.WriteString("\n")
		}

		sb.WriteString("...and ")
		sb.WriteString(strconv.Itoa(len(books) - MaxListedBooks))
		sb.WriteString(" more.")

		return sb.String()
	}

	for i, book := range books {
		writeListEntry(&sb, i+1, book)
		sb.WriteString(dueAnnotation(book, today))
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeListEntry(sb *strings.Builder, number int, book *Book) {
	sb.WriteString(strconv.Itoa(number))
	sb.WriteString(": ")
	sb.WriteString(book.String())
}

func dueAnnotation(book *Book, today DayInt) string {
	dueDate, lent := book.DueDate()

	switch {
	case !lent:
		return ""
	case dueDate == today:
		return " (due today!)"
	case dueDate < today:
		return " (**OVERDUE**)"
	default:
		return " (due on day " + strconv.Itoa(dueDate) + ")"
	}
}
