package core

import "strconv"

const (
	msgOnlyIntegers    = "Please enter only integer numbers."
	msgNumberNotInList = "One of the numbers you entered does not match a book on the list. Try again."
)

// Selection is one number a patron picks from a numbered list, exactly as it was typed.
// Anything that is not a whole number is kept as a non-integer selection so that
// validation can reject it with the right message.
type Selection struct {
	number    int
	isInteger bool
	raw       string
}

// Pick creates an integer selection.
func Pick(number int) Selection {
	return Selection{number: number, isInteger: true}
}

// NonIntegerPick creates a selection for input that is not a whole number.
func NonIntegerPick(raw string) Selection {
	return Selection{raw: raw}
}

// Picks creates integer selections for all numbers.
func Picks(numbers ...int) []Selection {
	selections := make([]Selection, 0, len(numbers))
	for _, n := range numbers {
		selections = append(selections, Pick(n))
	}

	return selections
}

// Number returns the picked number and whether the selection is an integer.
func (s Selection) Number() (int, bool) {
	return s.number, s.isInteger
}

// Index returns the 0-based list index of a valid selection.
func (s Selection) Index() int {
	return s.number - 1
}

// CheckValidInput checks that every selection is an integer between 1 and the smaller
// of choices and MaxListedBooks. The first violation decides the returned message.
func CheckValidInput(selections []Selection, choices int) (bool, string) {
	upper := min(choices, MaxListedBooks)

	for _, s := range selections {
		if !s.isInteger {
			return false, msgOnlyIntegers
		}

		if s.number < 1 || s.number > upper {
			return false, msgNumberNotInList
		}
	}

	return true, ""
}

// String returns the selection as it was typed.
func (s Selection) String() string {
	if s.isInteger {
		return strconv.Itoa(s.number)
	}

	return s.raw
}
