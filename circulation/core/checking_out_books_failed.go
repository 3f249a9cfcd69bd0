package core

import (
	"time"
)

// CheckingOutBooksFailedEventType is the event type identifier.
const CheckingOutBooksFailedEventType = "CheckingOutBooksFailed"

// CheckingOutBooksFailed represents when a checkout is rejected by a business rule.
type CheckingOutBooksFailed struct {
	PatronName  PatronNameString
	FailureInfo string
	Day         DayInt
	OccurredAt  OccurredAtTS
}

// BuildCheckingOutBooksFailed creates a new CheckingOutBooksFailed event.
func BuildCheckingOutBooksFailed(
	patronName PatronNameString,
	failureInfo string,
	day DayInt,
	occurredAt time.Time,
) CheckingOutBooksFailed {

	return CheckingOutBooksFailed{
		PatronName:  patronName,
		FailureInfo: failureInfo,
		Day:         day,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e CheckingOutBooksFailed) IsEventType() string {
	return CheckingOutBooksFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CheckingOutBooksFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected checkout.
func (e CheckingOutBooksFailed) IsErrorEvent() bool {
	return true
}
