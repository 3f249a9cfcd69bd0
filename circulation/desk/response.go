package desk

import (
	"strings"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
)

// Response is the outcome of one desk operation.
type Response struct {
	messages []string
	events   core.DomainEvents
}

// Messages returns the messages in the order they were produced.
func (r Response) Messages() []string {
	return r.messages
}

// Events returns the domain events the operation produced.
func (r Response) Events() core.DomainEvents {
	return r.events
}

// String renders all messages, each followed by a newline.
func (r Response) String() string {
	var sb strings.Builder
	for _, message := range r.messages {
		sb.WriteString(message)
		sb.WriteString("\n")
	}

	return sb.String()
}

func (r *Response) talk(message string) {
	r.messages = append(r.messages, message)
}

func (r *Response) record(event core.DomainEvent) {
	r.events = append(r.events, event)
}
