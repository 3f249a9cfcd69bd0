// Package desk implements the circulation desk: the Library controller that owns the
// calendar, the book collection, the patron registry and the currently served patron,
// and implements every operation a librarian can perform.
//
// The Library is a small state machine. It starts CLOSED, Open starts a new day and
// Close ends it. All patron-facing operations require the library to be open.
//
// Every operation returns a Response holding the human-readable messages and the
// domain events it produced. Business rule violations never surface as Go errors;
// they are reported as messages, exactly like the desk clerk would say them.
//
// A Library is not safe for concurrent use. It is driven by one session at a time.
package desk
