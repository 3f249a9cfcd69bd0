// Command librarydesk runs the interactive library circulation desk.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/anders-schneider/LibrarySimulator/circulation/catalog"
	"github.com/anders-schneider/LibrarySimulator/circulation/core"
	"github.com/anders-schneider/LibrarySimulator/circulation/desk"
	"github.com/anders-schneider/LibrarySimulator/circulation/repl"
	"github.com/anders-schneider/LibrarySimulator/circulation/shell"
	"github.com/anders-schneider/LibrarySimulator/circulation/shell/config"
)

// ExitError carries the process exit code for a startup failure.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:], os.Getenv)
	stop()

	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the desk from flags and environment and runs one session on in/out.
// Logs go to errW.
func run(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	errW io.Writer,
	args []string,
	getenv func(string) string,
) error {
	cfg, shouldExit, err := parseFlags(args, errW, getenv)
	if err != nil {
		return err
	}

	if shouldExit {
		return nil
	}

	logger := config.NewLogger(errW, cfg.LogLevel, cfg.LogFormat)

	entries, err := catalog.LoadFile(cfg.CollectionPath)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}

	journal, closeJournal, err := openJournal(ctx, cfg, logger)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	defer closeJournal()

	library := desk.New()
	stocked := library.AddToCollection(entries...)

	logger.Info(
		"collection loaded",
		"path", cfg.CollectionPath,
		"books", library.CollectionSize(),
		"journal", cfg.JournalMode,
	)

	sessionOptions := []repl.SessionOption{repl.WithLogger(logger)}

	if journal != nil {
		recorder := shell.NewGuardedRecorder(journal, shell.WithGuardLogger(logger))

		if err = recorder.Record(ctx, stocked.Events()); err != nil {
			logger.Error("journaling the collection failed", "error", err.Error())
		}

		logger.Info("journal session started", "session_id", journal.SessionID().String())
		sessionOptions = append(sessionOptions, repl.WithRecorder(recorder))
	}

	err = repl.NewSession(library, sessionOptions...).Run(ctx, in, out)

	if journal != nil {
		logJournalSummary(context.WithoutCancel(ctx), journal, logger)
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// logJournalSummary reads the session's journal back and logs what the desk did.
func logJournalSummary(ctx context.Context, journal *shell.Journal, logger *slog.Logger) {
	history, err := journal.History(ctx)
	if err != nil {
		logger.Error("reading the journal failed", "session_id", journal.SessionID().String(), "error", err.Error())
		return
	}

	counts := make(map[string]int)
	rejected := 0

	for _, envelope := range history {
		counts[envelope.DomainEvent.IsEventType()]++

		if envelope.DomainEvent.IsErrorEvent() {
			rejected++
		}
	}

	logger.Info(
		"journal session ended",
		"session_id", journal.SessionID().String(),
		"events", len(history),
		"days", counts[core.LibraryOpenedEventType],
		"cards_issued", counts[core.LibraryCardIssuedEventType],
		"checkouts", counts[core.BookCopyCheckedOutEventType],
		"returns", counts[core.BookCopyCheckedInEventType],
		"overdue_notices", counts[core.OverdueNoticeIssuedEventType],
		"rejected", rejected,
	)
}
