// Package memoryengine provides an in-process event store engine.
//
// It implements the same Query and Append semantics as the Postgres engine, including the
// optimistic concurrency check on the filtered stream, so code written against one engine
// behaves the same against the other. Events live only as long as the process.
package memoryengine
