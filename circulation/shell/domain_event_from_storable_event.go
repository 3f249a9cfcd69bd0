package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
	"github.com/anders-schneider/LibrarySimulator/eventstore"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	payload := storableEvent.PayloadJSON

	switch storableEvent.EventType {
	case core.LibraryOpenedEventType:
		return unmarshalPayload[core.LibraryOpened](payload)

	case core.LibraryClosedEventType:
		return unmarshalPayload[core.LibraryClosed](payload)

	case core.LibraryCardIssuedEventType:
		return unmarshalPayload[core.LibraryCardIssued](payload)

	case core.BookCopyAddedToCollectionEventType:
		return unmarshalPayload[core.BookCopyAddedToCollection](payload)

	case core.BookCopyCheckedOutEventType:
		return unmarshalPayload[core.BookCopyCheckedOut](payload)

	case core.BookCopyCheckedInEventType:
		return unmarshalPayload[core.BookCopyCheckedIn](payload)

	case core.CheckingOutBooksFailedEventType:
		return unmarshalPayload[core.CheckingOutBooksFailed](payload)

	case core.OverdueNoticeIssuedEventType:
		return unmarshalPayload[core.OverdueNoticeIssued](payload)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshalPayload[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var event E

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}
