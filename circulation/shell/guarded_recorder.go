package shell

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
)

const (
	defaultMaxConsecutiveFailures = 3
	defaultSuspendFor             = 30 * time.Second

	logMsgBreakerStateChanged = "journal: breaker state changed"
)

// Recorder journals the domain events of one command.
type Recorder interface {
	Record(ctx context.Context, events core.DomainEvents) error
}

// GuardOption configures a GuardedRecorder.
type GuardOption func(*guardConfig)

type guardConfig struct {
	maxConsecutiveFailures uint32
	suspendFor             time.Duration
	logger                 *slog.Logger
}

// WithMaxConsecutiveFailures sets after how many failed commands in a row journaling is suspended.
func WithMaxConsecutiveFailures(failures uint32) GuardOption {
	return func(c *guardConfig) {
		c.maxConsecutiveFailures = max(failures, 1)
	}
}

// WithSuspendFor sets how long journaling stays suspended before one trial command is let through.
func WithSuspendFor(d time.Duration) GuardOption {
	return func(c *guardConfig) {
		c.suspendFor = d
	}
}

// WithGuardLogger sets the logger for breaker state changes.
func WithGuardLogger(logger *slog.Logger) GuardOption {
	return func(c *guardConfig) {
		c.logger = logger
	}
}

// GuardedRecorder puts a circuit breaker in front of a Recorder, so that an unreachable
// journal database does not cost every command a full round of retries.
type GuardedRecorder struct {
	recorder Recorder
	breaker  *gobreaker.CircuitBreaker
}

// NewGuardedRecorder wraps recorder with a circuit breaker.
func NewGuardedRecorder(recorder Recorder, options ...GuardOption) *GuardedRecorder {
	config := &guardConfig{
		maxConsecutiveFailures: defaultMaxConsecutiveFailures,
		suspendFor:             defaultSuspendFor,
		logger:                 slog.New(slog.DiscardHandler),
	}

	for _, option := range options {
		option(config)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "circulation-journal",
		MaxRequests: 1,
		Timeout:     config.suspendFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.maxConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			config.logger.Warn(logMsgBreakerStateChanged, "breaker", name, "from", from.String(), "to", to.String())
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &GuardedRecorder{recorder: recorder, breaker: breaker}
}

// Record forwards to the wrapped recorder unless journaling is suspended.
func (g *GuardedRecorder) Record(ctx context.Context, events core.DomainEvents) error {
	_, err := g.breaker.Execute(func() (any, error) {
		return nil, g.recorder.Record(ctx, events)
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Join(ErrJournalSuspended, err)
	}

	return err
}
