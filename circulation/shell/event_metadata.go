package shell

import (
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/anders-schneider/LibrarySimulator/eventstore"
)

// ErrMappingToEventMetadataFailed is returned when metadata conversion fails.
var ErrMappingToEventMetadataFailed = errors.New("mapping to event metadata failed")

// MessageID represents a unique message identifier.
type MessageID = string

// CausationID represents the ID of the message that caused this event.
type CausationID = string

// CorrelationID represents the ID shared by all events of one desk command.
type CorrelationID = string

// EventMetadata contains event tracking information.
type EventMetadata struct {
	MessageID     MessageID
	CausationID   CausationID
	CorrelationID CorrelationID
}

// BuildEventMetadata creates EventMetadata from UUID values.
func BuildEventMetadata(messageID uuid.UUID, causationID uuid.UUID, correlationID uuid.UUID) EventMetadata {
	return EventMetadata{
		MessageID:     messageID.String(),
		CausationID:   causationID.String(),
		CorrelationID: correlationID.String(),
	}
}

// EventMetadataFrom extracts EventMetadata from a StorableEvent.
func EventMetadataFrom(storableEvent eventstore.StorableEvent) (EventMetadata, error) {
	metadata := new(EventMetadata)

	if err := jsoniter.ConfigFastest.Unmarshal(storableEvent.MetadataJSON, metadata); err != nil {
		return EventMetadata{}, errors.Join(ErrMappingToEventMetadataFailed, err)
	}

	return *metadata, nil
}

// metadataChain hands out metadata for the events of one command: all share the correlation ID,
// the first is caused by the command itself and every further one by its predecessor.
type metadataChain struct {
	correlationID uuid.UUID
	previous      uuid.UUID
}

func newMetadataChain() *metadataChain {
	correlationID := uuid.New()

	return &metadataChain{correlationID: correlationID, previous: correlationID}
}

func (c *metadataChain) next() EventMetadata {
	messageID := uuid.New()
	metadata := BuildEventMetadata(messageID, c.previous, c.correlationID)
	c.previous = messageID

	return metadata
}
