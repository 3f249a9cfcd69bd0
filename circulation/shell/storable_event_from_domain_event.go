package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
	"github.com/anders-schneider/LibrarySimulator/eventstore"
)

// SessionIDKey is the payload field holding the ID of the desk session that produced an event.
const SessionIDKey = "SessionID"

// ErrMappingToStorableEventFailedForDomainEvent is returned when domain event serialization fails.
var ErrMappingToStorableEventFailedForDomainEvent = errors.New("mapping to storable event failed for domain event")

// ErrMappingToStorableEventFailedForMetadata is returned when metadata serialization fails.
var ErrMappingToStorableEventFailedForMetadata = errors.New("mapping to storable event failed for metadata")

// payloadAPI keeps payload fields verbatim and sorted so equal events always encode to equal bytes.
var payloadAPI = jsoniter.Config{SortMapKeys: true, ValidateJsonRawMessage: true}.Froze()

// StorableEventFrom converts a DomainEvent and its metadata to a StorableEvent whose payload
// also carries the session ID.
func StorableEventFrom(event core.DomainEvent, sessionID string, metadata EventMetadata) (eventstore.StorableEvent, error) {
	payloadJSON, err := payloadWithSessionID(event, sessionID)
	if err != nil {
		return eventstore.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailedForDomainEvent, err)
	}

	metadataJSON, err := jsoniter.ConfigFastest.Marshal(metadata)
	if err != nil {
		return eventstore.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailedForMetadata, err)
	}

	storableEvent, err := eventstore.BuildStorableEvent(
		event.IsEventType(),
		event.HasOccurredAt(),
		payloadJSON,
		metadataJSON,
	)

	if err != nil {
		return eventstore.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailedForDomainEvent, err)
	}

	return storableEvent, nil
}

func payloadWithSessionID(event core.DomainEvent, sessionID string) ([]byte, error) {
	eventJSON, err := payloadAPI.Marshal(event)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]jsoniter.RawMessage)
	if err = payloadAPI.Unmarshal(eventJSON, &fields); err != nil {
		return nil, err
	}

	sessionJSON, err := payloadAPI.Marshal(sessionID)
	if err != nil {
		return nil, err
	}

	fields[SessionIDKey] = sessionJSON

	return payloadAPI.Marshal(fields)
}
