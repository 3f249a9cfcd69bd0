package shell

import "errors"

var (
	// ErrRecordingEventsFailed is returned when a command's events could not be journaled.
	ErrRecordingEventsFailed = errors.New("recording events in the journal failed")

	// ErrReadingHistoryFailed is returned when the journal could not be read back.
	ErrReadingHistoryFailed = errors.New("reading journal history failed")

	// ErrNilEventStore is returned when a journal is created without an event store.
	ErrNilEventStore = errors.New("event store must not be nil")

	// ErrJournalSuspended is returned while journaling is paused after repeated failures.
	ErrJournalSuspended = errors.New("journal suspended after repeated failures")
)
