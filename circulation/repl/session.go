package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
	"github.com/anders-schneider/LibrarySimulator/circulation/desk"
)

const (
	prompt              = "Library command: "
	msgReady            = "Ready for input. Type 'help()' for a list of commands."
	msgSpeakUp          = "What? Speak up!"
	msgDidNotUnderstand = "Sorry, I didn't understand: "
	msgTypeHelp         = "Type 'help()' for a list of the things I do understand."
	msgUnexpectedError  = "Unexpected error: "
	msgRenovations      = "The library is now closed for renovations."
)

// ErrReadingInputFailed is returned when the command input cannot be read.
var ErrReadingInputFailed = errors.New("reading command input failed")

// Recorder persists the domain events produced by a command.
type Recorder interface {
	Record(ctx context.Context, events core.DomainEvents) error
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRecorder journals the events of every command.
func WithRecorder(recorder Recorder) SessionOption {
	return func(s *Session) {
		s.recorder = recorder
	}
}

// WithLogger sets the logger for dispatched commands and journal failures.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session is one interactive conversation between the librarian and the desk.
type Session struct {
	library  *desk.Library
	recorder Recorder
	logger   *slog.Logger
}

// NewSession creates a session for the library.
func NewSession(library *desk.Library, options ...SessionOption) *Session {
	s := &Session{
		library: library,
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Run reads commands from in until quit, end of input or cancellation of ctx,
// and writes all desk output to out.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	p := &printer{w: out}

	p.println(strconv.Itoa(s.library.CollectionSize()) + " books in collection.")
	p.println(msgReady)
	p.println("")

	reader := bufio.NewReader(in)

	for p.err == nil {
		if err := ctx.Err(); err != nil {
			return err
		}

		p.print(prompt)

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.Join(ErrReadingInputFailed, err)
		}

		if err != nil && line == "" {
			p.println("")
			break
		}

		if quit := s.execute(ctx, p, strings.TrimSpace(line)); quit {
			break
		}
	}

	p.println(msgRenovations)

	return p.err
}

func (s *Session) execute(ctx context.Context, p *printer, line string) bool {
	if line == "" {
		p.println(msgSpeakUp)
		p.println("")
		return false
	}

	inv, err := Parse(line)
	if err == nil {
		var response desk.Response
		response, err = Dispatch(s.library, inv)
		if err == nil {
			s.logger.Debug(
				"command dispatched",
				"command", inv.Name,
				"arguments", len(inv.Arguments),
				"events", len(response.Events()),
			)

			p.print(response.String())
			p.println("")
			s.record(ctx, inv.Name, response.Events())

			return inv.Name == quitCommand
		}
	}

	switch {
	case errors.Is(err, ErrMalformedCommand), errors.Is(err, ErrUnknownCommand):
		s.logger.Debug("command not understood", "input", line, "error", err.Error())
		p.println(msgDidNotUnderstand + line)
		p.println(msgTypeHelp)
		p.println("")
	default:
		p.println(msgUnexpectedError + err.Error())
	}

	return false
}

func (s *Session) record(ctx context.Context, command string, events core.DomainEvents) {
	if s.recorder == nil || len(events) == 0 {
		return
	}

	if err := s.recorder.Record(ctx, events); err != nil {
		s.logger.Error("journaling command events failed", "command", command, "events", len(events), "error", err.Error())
	}
}

// printer remembers the first write error so that the loop can stop on it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(text string) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprint(p.w, text)
}

func (p *printer) println(text string) {
	p.print(text + "\n")
}
