package desk_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
)

func Test_Library_Search(t *testing.T) {
	leagues := core.CatalogEntry{Title: "20,000 Leagues Under the Seas", Author: "Jules Verne"}

	testCases := []struct {
		name       string
		collection []core.CatalogEntry
		text       string
		expected   string
	}{
		{
			name:       "matches title",
			collection: []core.CatalogEntry{leagues, contact},
			text:       "20,000",
			expected:   "1: 20,000 Leagues Under the Seas, by Jules Verne\n\n",
		},
		{
			name:       "matches author ignoring case",
			collection: []core.CatalogEntry{contact, dune, cosmos},
			text:       "SAGAN",
			expected:   "1: Contact, by Carl Sagan\n2: Cosmos, by Carl Sagan\n\n",
		},
		{
			name:       "collapses adjacent identical copies only",
			collection: []core.CatalogEntry{contact, contact, cosmos, contact},
			text:       "sagan",
			expected:   "1: Contact, by Carl Sagan\n2: Cosmos, by Carl Sagan\n3: Contact, by Carl Sagan\n\n",
		},
		{
			name:       "nothing found",
			collection: []core.CatalogEntry{contact},
			text:       "Tolkien",
			expected:   "No books found.\n",
		},
		{
			name:       "too short",
			collection: []core.CatalogEntry{contact},
			text:       "Con",
			expected:   "Search string must contain at least four characters.\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := newLibrary(tc.collection...)

			response := l.Search(tc.text)

			assert.Equal(t, tc.expected, response.String())
		})
	}
}

func Test_Library_Search_SkipsCheckedOutCopies(t *testing.T) {
	// arrange
	l := newLibrary(contact, cosmos)
	l.Open()
	l.IssueCard("Andy")
	l.Search("Contact")
	l.CheckOut(core.Pick(1))

	// act
	response := l.Search("Sagan")

	// assert
	assert.Equal(t, "1: Cosmos, by Carl Sagan\n\n", response.String())
}

func Test_Library_Search_ShowsOverflowSummary(t *testing.T) {
	// arrange
	entries := make([]core.CatalogEntry, 0, 11)
	for i := 1; i <= 11; i++ {
		entries = append(entries, core.CatalogEntry{Title: "Volume " + strconv.Itoa(i), Author: "Anon"})
	}
	l := newLibrary(entries...)
	l.Open()
	l.IssueCard("Andy")

	// act
	response := l.Search("Volume")

	// assert
	assert.Contains(t, response.String(), "10: Volume 10, by Anon\n...and 1 more.\n")
	assert.Equal(t,
		"One of the numbers you entered does not match a book on the list. Try again.\n",
		l.CheckOut(core.Pick(11)).String(),
	)
}

func Test_Library_CheckOut_ChecksOutFoundBooks(t *testing.T) {
	// arrange
	l := newLibrary(contact, dune, cosmos)
	l.Open()
	l.IssueCard("Andy")
	l.Search("Sagan")

	// act
	response := l.CheckOut(core.Picks(1, 2)...)

	// assert
	assert.Equal(t, "Contact, checked out to Andy.\nCosmos, checked out to Andy.\n", response.String())

	andy, _ := l.Patron("Andy")
	require.Equal(t, 2, andy.BookCount())
	for _, book := range andy.Books() {
		dueDate, lent := book.DueDate()
		assert.True(t, lent)
		assert.Equal(t, 8, dueDate)
	}

	require.Len(t, response.Events(), 2)
	assert.Equal(t,
		core.BuildBookCopyCheckedOut(l.Collection()[0], "Andy", 1, 8, fixedNow),
		response.Events()[0],
	)
}

func Test_Library_CheckOut_RejectsWholeRequestOverLimit(t *testing.T) {
	// arrange
	l := newLibrary(contact, cosmos, dune, emma)
	l.Open()
	l.IssueCard("Andy")
	l.Search("Sagan")
	l.CheckOut(core.Picks(1, 2)...)
	l.Search("Dune")
	l.CheckOut(core.Pick(1))
	l.Search("Emma")

	// act
	response := l.CheckOut(core.Pick(1))

	// assert
	assert.Equal(t, "Sorry, Andy already has 3 books checked out.\n", response.String())

	emmaCopy := l.Collection()[3]
	assert.True(t, emmaCopy.IsOnShelf())

	require.Len(t, response.Events(), 1)
	failed, ok := response.Events()[0].(core.CheckingOutBooksFailed)
	require.True(t, ok)
	assert.True(t, failed.IsErrorEvent())
	assert.Equal(t, "Andy", failed.PatronName)
}

func Test_Library_CheckOut_RejectsBatchThatWouldExceedLimit(t *testing.T) {
	// arrange
	l := newLibrary(contact, cosmos, dune, emma)
	l.Open()
	l.IssueCard("Andy")
	l.Search("Dune")
	l.CheckOut(core.Pick(1))
	l.Search("Sagan")

	// act
	response := l.CheckOut(core.Picks(1, 2, 1)...)

	// assert
	assert.Contains(t, response.String(), "already has 3 books checked out.")
	andy, _ := l.Patron("Andy")
	assert.Equal(t, 1, andy.BookCount())
}

func Test_Library_CheckOut_Preconditions(t *testing.T) {
	t.Run("no patron served", func(t *testing.T) {
		l := newLibrary(contact)
		l.Open()
		l.Search("Contact")

		assert.Equal(t, "No patron is currently being served.\n", l.CheckOut(core.Pick(1)).String())
	})

	t.Run("no search yet", func(t *testing.T) {
		l := newLibrary(contact)
		l.Open()
		l.IssueCard("Andy")

		assert.Equal(t,
			"Please search for books before trying to check a book out.\n",
			l.CheckOut(core.Pick(1)).String(),
		)
	})

	t.Run("non-integer selection", func(t *testing.T) {
		l := newLibrary(contact)
		l.Open()
		l.IssueCard("Andy")
		l.Search("Contact")

		assert.Equal(t,
			"Please enter only integer numbers.\n",
			l.CheckOut(core.NonIntegerPick("1.5")).String(),
		)
	})

	t.Run("number not on list", func(t *testing.T) {
		l := newLibrary(contact)
		l.Open()
		l.IssueCard("Andy")
		l.Search("Contact")

		assert.Equal(t,
			"One of the numbers you entered does not match a book on the list. Try again.\n",
			l.CheckOut(core.Pick(2)).String(),
		)
	})
}

func Test_Library_CheckOut_SameCopyTwice_IsRefused(t *testing.T) {
	// arrange
	l := newLibrary(contact)
	l.Open()
	l.IssueCard("Andy")
	l.Search("Contact")
	l.CheckOut(core.Pick(1))

	// act
	response := l.CheckOut(core.Pick(1))

	// assert
	assert.Equal(t, "Contact is already checked out.\n", response.String())
	andy, _ := l.Patron("Andy")
	assert.Equal(t, 1, andy.BookCount())
	assert.Empty(t, response.Events())
}

func Test_Library_CheckIn_ReturnsBooksToShelves(t *testing.T) {
	// arrange
	l := newLibrary(contact, cosmos)
	l.Open()
	l.IssueCard("Andy")
	l.Search("Sagan")
	l.CheckOut(core.Picks(1, 2)...)
	l.Serve("Andy")

	// act
	response := l.CheckIn(core.Pick(2))

	// assert
	assert.Equal(t, "Cosmos returned to shelves.\n", response.String())

	cosmosCopy := l.Collection()[1]
	assert.True(t, cosmosCopy.IsOnShelf())

	andy, _ := l.Patron("Andy")
	assert.Equal(t, []*core.Book{l.Collection()[0]}, andy.Books())
	assert.Equal(t,
		core.DomainEvents{core.BuildBookCopyCheckedIn(cosmosCopy, "Andy", 1, fixedNow)},
		response.Events(),
	)
}

func Test_Library_CheckIn_UsesListFromServe(t *testing.T) {
	// arrange
	l := newLibrary(contact)
	l.Open()
	l.IssueCard("Andy")
	l.Search("Contact")
	l.CheckOut(core.Pick(1))

	// act
	beforeServe := l.CheckIn(core.Pick(1))
	l.Serve("Andy")
	returned := l.CheckIn(core.Pick(1))
	stale := l.CheckIn(core.Pick(1))

	// assert
	assert.Equal(t,
		"One of the numbers you entered does not match a book on the list. Try again.\n",
		beforeServe.String(),
	)
	assert.Equal(t, "Contact returned to shelves.\n", returned.String())
	assert.Equal(t, "Contact is not checked out to Andy.\n", stale.String())
	assert.Empty(t, stale.Events())
}

func Test_Library_CheckIn_WithoutServedPatron(t *testing.T) {
	l := newLibrary()
	l.Open()

	response := l.CheckIn(core.Pick(1))

	assert.Equal(t, "No patron is currently being served.\n", response.String())
}

func Test_Library_CheckOutThenCheckIn_RestoresShelfState(t *testing.T) {
	// arrange
	l := newLibrary(contact)
	l.Open()
	l.IssueCard("Andy")
	l.Search("Contact")

	// act
	l.CheckOut(core.Pick(1))
	l.Serve("Andy")
	l.CheckIn(core.Pick(1))

	// assert
	_, lent := l.Collection()[0].DueDate()
	assert.False(t, lent)
	assert.Equal(t, "1: Contact, by Carl Sagan\n\n", l.Search("Contact").String())
}
