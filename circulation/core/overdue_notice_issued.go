package core

import (
	"time"
)

// OverdueNoticeIssuedEventType is the event type identifier.
const OverdueNoticeIssuedEventType = "OverdueNoticeIssued"

// OverdueNoticeIssued represents when a patron with overdue books is sent a notice.
type OverdueNoticeIssued struct {
	PatronName   PatronNameString
	Day          DayInt
	OverdueBooks int
	OccurredAt   OccurredAtTS
}

// BuildOverdueNoticeIssued creates a new OverdueNoticeIssued event.
func BuildOverdueNoticeIssued(
	patronName PatronNameString,
	day DayInt,
	overdueBooks int,
	occurredAt time.Time,
) OverdueNoticeIssued {

	return OverdueNoticeIssued{
		PatronName:   patronName,
		Day:          day,
		OverdueBooks: overdueBooks,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e OverdueNoticeIssued) IsEventType() string {
	return OverdueNoticeIssuedEventType
}

// HasOccurredAt returns when this event occurred.
func (e OverdueNoticeIssued) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since a notice is an ordinary desk action.
func (e OverdueNoticeIssued) IsErrorEvent() bool {
	return false
}
