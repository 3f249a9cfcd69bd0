// Package eventstore provides the storage-agnostic types shared by the event store engines:
// storable events, the filter that selects a dynamic event stream, and the errors the
// engines report.
//
// A dynamic event stream is not addressed by a stream ID. It is whatever set of events
// a Filter matches, and appending is guarded by the highest sequence number the writer
// saw for that same filter:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(core.LibraryOpenedEventType, core.LibraryClosedEventType).
//		AndAllPredicatesOf(eventstore.P("SessionID", sessionID)).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	if err != nil {
//		// handle error
//	}
//
//	err = store.Append(ctx, filter, maxSeq, newEvent)
//
// Append fails with ErrConcurrencyConflict when another writer added a matching event in between.
package eventstore
