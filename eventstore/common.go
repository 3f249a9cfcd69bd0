package eventstore

import (
	"errors"
)

var (
	ErrEmptyEventsTableName        = errors.New("events table name must not be empty")
	ErrInvalidEventsTableName      = errors.New("events table name must be a plain sql identifier")
	ErrNilDatabaseConnection       = errors.New("database connection must not be nil")
	ErrConcurrencyConflict         = errors.New("concurrency conflict, the event stream has changed")
	ErrBuildingQueryFailed         = errors.New("building query failed")
	ErrQueryingEventsFailed        = errors.New("querying events failed")
	ErrScanningDBRowFailed         = errors.New("scanning db row failed")
	ErrBuildingStorableEventFailed = errors.New("building storable event failed")
	ErrAppendingEventFailed        = errors.New("appending event failed")
	ErrGettingRowsAffectedFailed   = errors.New("getting rows affected failed")
	ErrCreatingEventsTableFailed   = errors.New("creating events table failed")
)

// MaxSequenceNumberUint is the highest sequence number within a dynamic event stream, 0 if it is empty.
type MaxSequenceNumberUint = uint

// Logger is satisfied by *slog.Logger and by most structured loggers.
//
// Engines log SQL or filter details at debug, operation summaries at info,
// recoverable problems at warn and failures at error.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
