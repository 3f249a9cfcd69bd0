package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
)

func Test_Calendar_StartsAtDayZero_AndAdvancesByOne(t *testing.T) {
	// arrange
	calendar := core.NewCalendar()

	// act / assert
	assert.Equal(t, 0, calendar.Date())

	calendar.Advance()
	assert.Equal(t, 1, calendar.Date())

	calendar.Advance()
	assert.Equal(t, 2, calendar.Date())
}
