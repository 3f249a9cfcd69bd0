// Package postgresengine provides a PostgreSQL implementation of the event store.
//
// Events live in a single table. Query selects the dynamic event stream described by a
// Filter; Append inserts events in one statement that only writes when the highest
// sequence number of that same stream is still the one the caller expects.
//
// The engine runs on a pgxpool.Pool, a database/sql DB or a sqlx DB:
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	store, _ := postgresengine.NewEventStoreFromPGXPool(
//		pool,
//		postgresengine.WithTableName("circulation_journal"),
//		postgresengine.WithLogger(slog.Default()),
//	)
//
//	_ = store.EnsureTable(ctx)
//	events, maxSeq, _ := store.Query(ctx, filter)
//	err := store.Append(ctx, filter, maxSeq, newEvent)
package postgresengine
