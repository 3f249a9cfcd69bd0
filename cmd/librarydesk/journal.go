package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anders-schneider/LibrarySimulator/circulation/shell"
	"github.com/anders-schneider/LibrarySimulator/circulation/shell/config"
	"github.com/anders-schneider/LibrarySimulator/eventstore/memoryengine"
	"github.com/anders-schneider/LibrarySimulator/eventstore/postgresengine"
)

// ErrOpeningJournalFailed is returned when the configured journal cannot be set up.
var ErrOpeningJournalFailed = errors.New("opening the circulation journal failed")

func noop() {}

// openJournal returns the configured journal and a func releasing its resources.
// The journal is nil when journaling is off.
func openJournal(ctx context.Context, cfg config.Config, logger *slog.Logger) (*shell.Journal, func(), error) {
	switch cfg.JournalMode {
	case config.JournalMemory:
		journal, err := shell.NewJournal(
			memoryengine.NewEventStore(memoryengine.WithLogger(logger)),
			shell.WithJournalLogger(logger),
		)
		if err != nil {
			return nil, noop, errors.Join(ErrOpeningJournalFailed, err)
		}

		return journal, noop, nil

	case config.JournalPostgres:
		store, closeDB, err := openPostgresStore(ctx, cfg, logger)
		if err != nil {
			return nil, noop, errors.Join(ErrOpeningJournalFailed, err)
		}

		if err = store.EnsureTable(ctx); err != nil {
			closeDB()
			return nil, noop, errors.Join(ErrOpeningJournalFailed, err)
		}

		journal, err := shell.NewJournal(store, shell.WithJournalLogger(logger))
		if err != nil {
			closeDB()
			return nil, noop, errors.Join(ErrOpeningJournalFailed, err)
		}

		return journal, closeDB, nil

	default:
		return nil, noop, nil
	}
}

func openPostgresStore(
	ctx context.Context,
	cfg config.Config,
	logger *slog.Logger,
) (postgresengine.EventStore, func(), error) {
	options := []postgresengine.Option{
		postgresengine.WithTableName(cfg.JournalTable),
		postgresengine.WithLogger(logger),
	}

	switch cfg.DBAdapter {
	case config.DBAdapterSQL:
		db, err := config.OpenSQLDB(ctx, cfg.JournalDSN)
		if err != nil {
			return postgresengine.EventStore{}, noop, err
		}

		closeDB := func() { _ = db.Close() }

		store, err := postgresengine.NewEventStoreFromSQLDB(db, options...)
		if err != nil {
			closeDB()
			return postgresengine.EventStore{}, noop, err
		}

		return store, closeDB, nil

	case config.DBAdapterSQLX:
		db, err := config.OpenSQLX(ctx, cfg.JournalDSN)
		if err != nil {
			return postgresengine.EventStore{}, noop, err
		}

		closeDB := func() { _ = db.Close() }

		store, err := postgresengine.NewEventStoreFromSQLX(db, options...)
		if err != nil {
			closeDB()
			return postgresengine.EventStore{}, noop, err
		}

		return store, closeDB, nil

	default:
		pool, err := config.NewPGXPool(ctx, cfg.JournalDSN)
		if err != nil {
			return postgresengine.EventStore{}, noop, err
		}

		store, err := postgresengine.NewEventStoreFromPGXPool(pool, options...)
		if err != nil {
			pool.Close()
			return postgresengine.EventStore{}, noop, err
		}

		return store, pool.Close, nil
	}
}
