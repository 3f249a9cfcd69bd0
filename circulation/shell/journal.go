package shell

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
	"github.com/anders-schneider/LibrarySimulator/eventstore"
)

const (
	logMsgEventsRecorded = "journal: events recorded"
	logAttrSessionID     = "session_id"
	logAttrEventCount    = "event_count"
	logAttrAttempts      = "attempts"
)

// EventStore is what the journal needs from an event store engine.
type EventStore interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)

	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		event eventstore.StorableEvent,
		additionalEvents ...eventstore.StorableEvent,
	) error
}

// JournaledEventTypes lists every event type the circulation desk produces.
var JournaledEventTypes = []string{
	core.LibraryOpenedEventType,
	core.LibraryClosedEventType,
	core.LibraryCardIssuedEventType,
	core.BookCopyAddedToCollectionEventType,
	core.BookCopyCheckedOutEventType,
	core.BookCopyCheckedInEventType,
	core.CheckingOutBooksFailedEventType,
	core.OverdueNoticeIssuedEventType,
}

// JournalOption configures a Journal.
type JournalOption func(*Journal)

// WithSessionID replaces the random session ID.
func WithSessionID(sessionID uuid.UUID) JournalOption {
	return func(j *Journal) {
		j.sessionID = sessionID
	}
}

// WithJournalLogger sets the logger for recorded events and retries.
func WithJournalLogger(logger *slog.Logger) JournalOption {
	return func(j *Journal) {
		j.logger = logger
	}
}

// WithRetryOptions configures how appends that hit a concurrency conflict are retried.
func WithRetryOptions(options ...RetryOption) JournalOption {
	return func(j *Journal) {
		j.retryOptions = append(j.retryOptions, options...)
	}
}

// Journal is the append-only log of one desk session's domain events.
//
// All events of a session form one dynamic event stream: every journaled event type whose
// payload carries this session's ID.
type Journal struct {
	store        EventStore
	sessionID    uuid.UUID
	logger       *slog.Logger
	retryOptions []RetryOption
}

// NewJournal creates a Journal for a new session.
func NewJournal(store EventStore, options ...JournalOption) (*Journal, error) {
	if store == nil {
		return nil, ErrNilEventStore
	}

	j := &Journal{
		store:     store,
		sessionID: uuid.New(),
		logger:    slog.New(slog.DiscardHandler),
	}

	for _, option := range options {
		option(j)
	}

	j.retryOptions = append(j.retryOptions, WithRetryLogger(j.logger))

	return j, nil
}

// SessionID identifies the session in every journaled payload.
func (j *Journal) SessionID() uuid.UUID {
	return j.sessionID
}

func (j *Journal) filter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(JournaledEventTypes[0], JournaledEventTypes[1:]...).
		AndAllPredicatesOf(eventstore.P(SessionIDKey, j.sessionID.String())).
		Finalize()
}

// Record appends the events one desk command produced, sharing one correlation ID.
// Nothing is written for an empty slice.
func (j *Journal) Record(ctx context.Context, events core.DomainEvents) error {
	if len(events) == 0 {
		return nil
	}

	chain := newMetadataChain()
	storableEvents := make(eventstore.StorableEvents, 0, len(events))

	for _, event := range events {
		storableEvent, err := StorableEventFrom(event, j.sessionID.String(), chain.next())
		if err != nil {
			return errors.Join(ErrRecordingEventsFailed, err)
		}

		storableEvents = append(storableEvents, storableEvent)
	}

	filter := j.filter()

	meta, err := RetryWithExponentialBackoff(
		ctx,
		func(ctx context.Context) error {
			_, maxSeq, queryErr := j.store.Query(ctx, filter)
			if queryErr != nil {
				return queryErr
			}

			return j.store.Append(ctx, filter, maxSeq, storableEvents[0], storableEvents[1:]...)
		},
		j.retryOptions...,
	)

	if err != nil {
		return errors.Join(ErrRecordingEventsFailed, err)
	}

	j.logger.Debug(
		logMsgEventsRecorded,
		logAttrSessionID, j.sessionID.String(),
		logAttrEventCount, len(storableEvents),
		logAttrAttempts, meta.Attempts,
	)

	return nil
}

// History returns this session's journaled events in the order they were recorded.
func (j *Journal) History(ctx context.Context) (EventEnvelopes, error) {
	storableEvents, _, err := j.store.Query(ctx, j.filter())
	if err != nil {
		return nil, errors.Join(ErrReadingHistoryFailed, err)
	}

	envelopes, err := EventEnvelopesFrom(storableEvents)
	if err != nil {
		return nil, errors.Join(ErrReadingHistoryFailed, err)
	}

	return envelopes, nil
}
