package eventstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anders-schneider/LibrarySimulator/eventstore"
)

func Test_BuildStorableEvent_RejectsInvalidJSON(t *testing.T) {
	validPayloadJSON := []byte(`{"PatronName": "Andy"}`)
	validMetadataJSON := []byte(`{"MessageID": "m-1"}`)

	tests := []struct {
		name         string
		payloadJSON  []byte
		metadataJSON []byte
		expectedErr  error
	}{
		{name: "invalid payload", payloadJSON: []byte(`{"Day": one}`), metadataJSON: validMetadataJSON, expectedErr: eventstore.ErrInvalidPayloadJSON},
		{name: "empty payload", payloadJSON: []byte(``), metadataJSON: validMetadataJSON, expectedErr: eventstore.ErrInvalidPayloadJSON},
		{name: "nil payload", payloadJSON: nil, metadataJSON: validMetadataJSON, expectedErr: eventstore.ErrInvalidPayloadJSON},
		{name: "invalid metadata", payloadJSON: validPayloadJSON, metadataJSON: []byte(`{"MessageID":`), expectedErr: eventstore.ErrInvalidMetadataJSON},
		{name: "nil metadata", payloadJSON: validPayloadJSON, metadataJSON: nil, expectedErr: eventstore.ErrInvalidMetadataJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eventstore.BuildStorableEvent("LibraryOpened", time.Now(), tt.payloadJSON, tt.metadataJSON)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_BuildStorableEvent_Success(t *testing.T) {
	occurredAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	payloadJSON := []byte(`{"PatronName": "Andy", "Day": 3}`)
	metadataJSON := []byte(`{"CorrelationID": "c-1"}`)

	storableEvent, err := eventstore.BuildStorableEvent("LibraryCardIssued", occurredAt, payloadJSON, metadataJSON)

	require.NoError(t, err)
	assert.Equal(t, "LibraryCardIssued", storableEvent.EventType)
	assert.Equal(t, occurredAt, storableEvent.OccurredAt)
	assert.Equal(t, payloadJSON, storableEvent.PayloadJSON)
	assert.Equal(t, metadataJSON, storableEvent.MetadataJSON)
	assert.Zero(t, storableEvent.SequenceNumber)
}

func Test_BuildStorableEventWithEmptyMetadata(t *testing.T) {
	storableEvent, err := eventstore.BuildStorableEventWithEmptyMetadata("LibraryClosed", time.Now(), []byte(`{"Day": 1}`))

	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), storableEvent.MetadataJSON)

	_, err = eventstore.BuildStorableEventWithEmptyMetadata("LibraryClosed", time.Now(), []byte(`nope`))
	assert.ErrorIs(t, err, eventstore.ErrInvalidPayloadJSON)
}
