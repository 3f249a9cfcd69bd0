package memoryengine

import (
	"context"
	"slices"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/anders-schneider/LibrarySimulator/eventstore"
)

const (
	logMsgQueryCompleted      = "eventstore operation: query completed"
	logMsgEventsAppended      = "eventstore operation: events appended"
	logMsgConcurrencyConflict = "eventstore operation: concurrency conflict detected"
	logAttrFilter             = "filter"
	logAttrEventCount         = "event_count"
	logAttrExpectedSequence   = "expected_sequence"
	logAttrActualSequence     = "actual_sequence"
)

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore)

// WithLogger sets the logger for the EventStore.
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) {
		es.logger = logger
	}
}

// EventStore keeps all events in a slice guarded by a mutex. It is safe for concurrent use.
type EventStore struct {
	mu     sync.RWMutex
	events eventstore.StorableEvents
	logger eventstore.Logger
}

// NewEventStore creates an empty EventStore.
func NewEventStore(options ...Option) *EventStore {
	es := &EventStore{}

	for _, option := range options {
		option(es)
	}

	return es
}

// Query returns the events matching the filter in sequence order, plus the highest
// sequence number among them (0 if none match).
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	es.mu.RLock()
	defer es.mu.RUnlock()

	matching, maxSeq := es.matching(filter)

	if es.logger != nil {
		es.logger.Info(logMsgQueryCompleted, logAttrFilter, filter.String(), logAttrEventCount, len(matching))
	}

	return matching, maxSeq, nil
}

// Append stores the events if no event matching the filter was appended after expectedMaxSequenceNumber,
// otherwise it fails with eventstore.ErrConcurrencyConflict and stores nothing.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	if _, maxSeq := es.matching(filter); maxSeq != expectedMaxSequenceNumber {
		if es.logger != nil {
			es.logger.Info(
				logMsgConcurrencyConflict,
				logAttrExpectedSequence, expectedMaxSequenceNumber,
				logAttrActualSequence, maxSeq,
			)
		}

		return eventstore.ErrConcurrencyConflict
	}

	allEvents := append(eventstore.StorableEvents{event}, additionalEvents...)

	for _, e := range allEvents {
		e.SequenceNumber = uint(len(es.events)) + 1
		e.PayloadJSON = slices.Clone(e.PayloadJSON)
		e.MetadataJSON = slices.Clone(e.MetadataJSON)
		es.events = append(es.events, e)
	}

	if es.logger != nil {
		es.logger.Info(logMsgEventsAppended, logAttrEventCount, len(allEvents))
	}

	return nil
}

func (es *EventStore) matching(filter eventstore.Filter) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint) {
	matching := make(eventstore.StorableEvents, 0)
	maxSeq := eventstore.MaxSequenceNumberUint(0)

	for _, e := range es.events {
		if !matchesFilter(filter, e) {
			continue
		}

		matching = append(matching, e)
		maxSeq = e.SequenceNumber
	}

	return matching, maxSeq
}

func matchesFilter(filter eventstore.Filter, event eventstore.StorableEvent) bool {
	if filter.IsEmpty() {
		return true
	}

	return slices.ContainsFunc(filter.Items(), func(item eventstore.FilterItem) bool {
		return matchesItem(item, event)
	})
}

func matchesItem(item eventstore.FilterItem, event eventstore.StorableEvent) bool {
	if len(item.EventTypes()) > 0 && !slices.Contains(item.EventTypes(), event.EventType) {
		return false
	}

	if len(item.Predicates()) == 0 {
		return true
	}

	holds := func(p eventstore.FilterPredicate) bool {
		field := jsoniter.Get(event.PayloadJSON, p.Key())
		return field.ValueType() == jsoniter.StringValue && field.ToString() == p.Val()
	}

	if item.AllPredicatesMustMatch() {
		for _, p := range item.Predicates() {
			if !holds(p) {
				return false
			}
		}

		return true
	}

	return slices.ContainsFunc(item.Predicates(), holds)
}
