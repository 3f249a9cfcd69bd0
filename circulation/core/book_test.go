package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
)

func Test_Book_Accessors(t *testing.T) {
	book := core.NewBook(7, "Contact", "Carl Sagan")

	assert.Equal(t, 7, book.ID())
	assert.Equal(t, "Contact", book.Title())
	assert.Equal(t, "Carl Sagan", book.Author())
	assert.Equal(t, "Contact, by Carl Sagan", book.String())
	assert.True(t, book.IsOnShelf())
}

func Test_Book_CheckOutThenCheckIn_RestoresUnsetDueDate(t *testing.T) {
	// arrange
	book := core.NewBook(1, "Contact", "Carl Sagan")

	// act
	book.CheckOut(17)
	dueDate, lent := book.DueDate()

	// assert
	assert.Equal(t, 17, dueDate)
	assert.True(t, lent)
	assert.False(t, book.IsOnShelf())

	// act
	book.CheckIn()
	dueDate, lent = book.DueDate()

	// assert
	assert.Equal(t, 0, dueDate)
	assert.False(t, lent)
	assert.True(t, book.IsOnShelf())
}

func Test_Book_IsOverdue(t *testing.T) {
	book := core.NewBook(1, "Contact", "Carl Sagan")
	assert.False(t, book.IsOverdue(100), "a book on the shelf is never overdue")

	book.CheckOut(8)
	assert.False(t, book.IsOverdue(7))
	assert.False(t, book.IsOverdue(8))
	assert.True(t, book.IsOverdue(9))
}

func Test_Book_Equal_ComparesTitleAndAuthorOnly(t *testing.T) {
	first := core.NewBook(1, "Contact", "Carl Sagan")
	second := core.NewBook(2, "Contact", "Carl Sagan")
	other := core.NewBook(3, "Cosmos", "Carl Sagan")

	assert.True(t, first.Equal(second))
	assert.False(t, first.Equal(other))
	assert.False(t, first.Equal(nil))
}

func Test_BookIDSequence_HandsOutSequentialIDs(t *testing.T) {
	sequence := core.NewBookIDSequence()

	assert.Equal(t, 1, sequence.Next())
	assert.Equal(t, 2, sequence.Next())
	assert.Equal(t, 3, sequence.Next())

	other := core.NewBookIDSequence()
	assert.Equal(t, 1, other.Next(), "sequences must not share state")
}
