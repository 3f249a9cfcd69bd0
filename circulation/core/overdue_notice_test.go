package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
)

func Test_OverdueNotice_ListsAllBooks_MarkingOverdueOnes(t *testing.T) {
	// arrange
	overdue := core.NewBook(1, "Contact", "Carl Sagan")
	overdue.CheckOut(8)
	notYetDue := core.NewBook(2, "Cosmos", "Carl Sagan")
	notYetDue.CheckOut(12)

	// act
	notice := core.BuildOverdueNotice([]*core.Book{overdue, notYetDue}, 10)

	// assert
	assert.Equal(t,
		"Contact, by Carl Sagan, DUE DATE: day 8 (**OVERDUE**)\n"+
			"Cosmos, by Carl Sagan, DUE DATE: day 12\n",
		notice.String(),
	)
	assert.Equal(t, 1, notice.OverdueCount())
}

func Test_OverdueNotice_BookDueTodayIsNotOverdue(t *testing.T) {
	book := core.NewBook(1, "Contact", "Carl Sagan")
	book.CheckOut(10)

	notice := core.BuildOverdueNotice([]*core.Book{book}, 10)

	assert.Equal(t, "Contact, by Carl Sagan, DUE DATE: day 10\n", notice.String())
	assert.Equal(t, 0, notice.OverdueCount())
}
