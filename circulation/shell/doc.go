// Package shell is the imperative shell around the circulation desk's functional core.
//
// It translates domain events into storable events and back, attaches event metadata,
// retries appends that lost an optimistic concurrency race, and records every command's
// events in the circulation journal. A GuardedRecorder pauses journaling while the
// journal keeps failing.
package shell
