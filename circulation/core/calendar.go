package core

// Calendar keeps track of the current library day.
// The zero value is a calendar at day 0.
type Calendar struct {
	day DayInt
}

// NewCalendar creates a calendar at day 0.
func NewCalendar() *Calendar {
	return &Calendar{}
}

// Date returns the current day.
func (c *Calendar) Date() DayInt {
	return c.day
}

// Advance moves the calendar to the next day.
func (c *Calendar) Advance() {
	c.day++
}
