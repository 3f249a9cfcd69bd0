package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
)

func Test_CheckValidInput(t *testing.T) {
	testCases := []struct {
		name            string
		selections      []core.Selection
		choices         int
		expectedValid   bool
		expectedMessage string
	}{
		{
			name:          "number within list",
			selections:    core.Picks(2),
			choices:       2,
			expectedValid: true,
		},
		{
			name:          "no selections",
			selections:    nil,
			choices:       0,
			expectedValid: true,
		},
		{
			name:            "non-integer",
			selections:      []core.Selection{core.NonIntegerPick(`"a"`)},
			choices:         2,
			expectedMessage: "Please enter only integer numbers.",
		},
		{
			name:            "zero",
			selections:      core.Picks(0),
			choices:         2,
			expectedMessage: "One of the numbers you entered does not match a book on the list. Try again.",
		},
		{
			name:            "beyond list length",
			selections:      core.Picks(1, 3),
			choices:         2,
			expectedMessage: "One of the numbers you entered does not match a book on the list. Try again.",
		},
		{
			name:            "beyond display cap",
			selections:      core.Picks(11),
			choices:         25,
			expectedMessage: "One of the numbers you entered does not match a book on the list. Try again.",
		},
		{
			name:          "display cap itself",
			selections:    core.Picks(10),
			choices:       25,
			expectedValid: true,
		},
		{
			name:            "first violation wins",
			selections:      []core.Selection{core.Pick(5), core.NonIntegerPick("1.5")},
			choices:         2,
			expectedMessage: "One of the numbers you entered does not match a book on the list. Try again.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			valid, message := core.CheckValidInput(tc.selections, tc.choices)

			assert.Equal(t, tc.expectedValid, valid)
			assert.Equal(t, tc.expectedMessage, message)
		})
	}
}

func Test_Selection_Number(t *testing.T) {
	n, ok := core.Pick(3).Number()
	assert.Equal(t, 3, n)
	assert.True(t, ok)
	assert.Equal(t, 2, core.Pick(3).Index())

	_, ok = core.NonIntegerPick("x").Number()
	assert.False(t, ok)
}
