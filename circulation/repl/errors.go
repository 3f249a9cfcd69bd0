package repl

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCommand is returned for a well-formed call of a command the desk does not offer.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMalformedCommand is returned when the input is not a command call at all.
	ErrMalformedCommand = errors.New("malformed command")

	// ErrInvalidArguments is returned when a known command is called with the wrong arguments.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// MalformedCommandError describes why an input line could not be parsed.
type MalformedCommandError struct {
	Input  string
	Reason string
}

func (e *MalformedCommandError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformedCommand, e.Input, e.Reason)
}

func (e *MalformedCommandError) Unwrap() error {
	return ErrMalformedCommand
}
