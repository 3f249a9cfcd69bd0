package core

import (
	"strconv"
	"strings"
)

// OverdueNotice is the message sent to a patron who has at least one overdue book.
// All of the patron's books are listed with their due dates, and the overdue ones are marked.
type OverdueNotice struct {
	books []*Book
	today DayInt
}

// BuildOverdueNotice creates a notice for the given books as of today.
func BuildOverdueNotice(books []*Book, today DayInt) OverdueNotice {
	return OverdueNotice{
		books: books,
		today: today,
	}
}

// OverdueCount returns how many of the listed books are overdue.
func (n OverdueNotice) OverdueCount() int {
	count := 0
	for _, book := range n.books {
		if book.IsOverdue(n.today) {
			count++
		}
	}

	return count
}

// String renders one line per book, each terminated by a newline.
func (n OverdueNotice) String() string {
	var sb strings.Builder

	for _, book := range n.books {
		dueDate, _ := book.DueDate()

		sb.WriteString(book.String())
		sb.WriteString(", DUE DATE: day ")
		sb.WriteString(strconv.Itoa(dueDate))

		if book.IsOverdue(n.today) {
			sb.WriteString(" (**OVERDUE**)")
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
