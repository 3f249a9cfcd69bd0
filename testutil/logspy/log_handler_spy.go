package logspy

import (
	"context"
	"log/slog"
	"sync"
)

// LogHandlerSpy is a slog.Handler that keeps every record it receives.
type LogHandlerSpy struct {
	mu      sync.Mutex
	records []slog.Record
}

// New creates an empty LogHandlerSpy.
func New() *LogHandlerSpy {
	return &LogHandlerSpy{}
}

// Logger returns a logger writing into the spy.
func (s *LogHandlerSpy) Logger() *slog.Logger {
	return slog.New(s)
}

// Handle implements slog.Handler.
func (s *LogHandlerSpy) Handle(_ context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record.Clone())

	return nil
}

// Enabled implements slog.Handler. All levels are captured.
func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler.
func (s *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

// WithGroup implements slog.Handler.
func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// Records returns a copy of the captured records.
func (s *LogHandlerSpy) Records() []slog.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]slog.Record, len(s.records))
	copy(records, s.records)

	return records
}

// HasLog starts a matcher for the first record with the given level and message.
func (s *LogHandlerSpy) HasLog(level slog.Level, message string) *RecordMatcher {
	for _, record := range s.Records() {
		if record.Level == level && record.Message == message {
			return &RecordMatcher{record: record, found: true}
		}
	}

	return &RecordMatcher{}
}

// RecordMatcher narrows a found record down by its attributes.
type RecordMatcher struct {
	record slog.Record
	found  bool
}

// WithAttr requires an attribute with the given key whose value renders as value.
func (m *RecordMatcher) WithAttr(key string, value string) *RecordMatcher {
	if !m.found {
		return m
	}

	matched := false
	m.record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == key && attr.Value.String() == value {
			matched = true
			return false
		}

		return true
	})

	m.found = matched

	return m
}

// WithAttrKey requires an attribute with the given key.
func (m *RecordMatcher) WithAttrKey(key string) *RecordMatcher {
	if !m.found {
		return m
	}

	matched := false
	m.record.Attrs(func(attr slog.Attr) bool {
		matched = attr.Key == key
		return !matched
	})

	m.found = matched

	return m
}

// Assert reports whether the record was found and all conditions held.
func (m *RecordMatcher) Assert() bool {
	return m.found
}
