package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"

	"github.com/anders-schneider/LibrarySimulator/eventstore"
	"github.com/anders-schneider/LibrarySimulator/eventstore/postgresengine/internal/adapters"
)

const (
	defaultEventTableName = "events"

	logMsgBuildQueryFailed         = "failed to build sql query"
	logMsgDBQueryFailed            = "database query execution failed"
	logMsgCloseRowsFailed          = "failed to close database rows"
	logMsgScanRowFailed            = "failed to scan database row"
	logMsgBuildStorableEventFailed = "failed to build storable event from database row"
	logMsgDBExecFailed             = "database execution failed"
	logMsgRowsAffectedFailed       = "failed to get rows affected count"
	logMsgQueryCompleted           = "query completed"
	logMsgEventsAppended           = "events appended"
	logMsgTableEnsured             = "events table ensured"
	logMsgConcurrencyConflict      = "concurrency conflict detected"
	logMsgSQLExecuted              = "executed sql for: "
	logMsgOperation                = "eventstore operation: "

	logAttrError            = "error"
	logAttrQuery            = "query"
	logAttrTable            = "table"
	logAttrEventType        = "event_type"
	logAttrEventCount       = "event_count"
	logAttrDurationMS       = "duration_ms"
	logAttrRowsAffected     = "rows_affected"
	logAttrExpectedSequence = "expected_sequence"

	logActionQuery  = "query"
	logActionAppend = "append"
	logActionEnsure = "ensure table"

	colEventType      = "event_type"
	colOccurredAt     = "occurred_at"
	colPayload        = "payload"
	colMetadata       = "metadata"
	colSequenceNumber = "sequence_number"

	cteContext      = "context"
	cteVals         = "vals"
	dialectPostgres = "postgres"
	aliasMaxSeq     = "max_seq"

	castText        = "?::text"
	castTimestamp   = "?::timestamp with time zone"
	castJsonb       = "?::jsonb"
	payloadContains = "? @> ?::jsonb"
)

const createTableDDL = `CREATE TABLE IF NOT EXISTS "%[1]s" (
	sequence_number bigserial PRIMARY KEY,
	event_type text NOT NULL,
	occurred_at timestamp with time zone NOT NULL,
	payload jsonb NOT NULL,
	metadata jsonb NOT NULL,
	appended_at timestamp with time zone NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS "%[1]s_event_type_idx" ON "%[1]s" (event_type);
CREATE INDEX IF NOT EXISTS "%[1]s_payload_idx" ON "%[1]s" USING gin (payload jsonb_path_ops);`

// EventStore is a PostgreSQL-backed event store for dynamic event streams.
type EventStore struct {
	db             adapters.DBAdapter
	eventTableName string
	logger         eventstore.Logger
}

// NewEventStoreFromPGXPool creates an EventStore on a pgx connection pool.
func NewEventStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (EventStore, error) {
	if db == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewPGXAdapter(db), options...)
}

// NewEventStoreFromSQLDB creates an EventStore on a database/sql connection pool.
func NewEventStoreFromSQLDB(db *sql.DB, options ...Option) (EventStore, error) {
	if db == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLAdapter(db), options...)
}

// NewEventStoreFromSQLX creates an EventStore on a sqlx connection pool.
func NewEventStoreFromSQLX(db *sqlx.DB, options ...Option) (EventStore, error) {
	if db == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLXAdapter(db), options...)
}

func newEventStore(db adapters.DBAdapter, options ...Option) (EventStore, error) {
	es := EventStore{
		db:             db,
		eventTableName: defaultEventTableName,
	}

	for _, option := range options {
		if err := option(&es); err != nil {
			return EventStore{}, err
		}
	}

	return es, nil
}

// EnsureTable creates the events table and its indexes unless they exist.
func (es EventStore) EnsureTable(ctx context.Context) error {
	ddl := fmt.Sprintf(createTableDDL, es.eventTableName)

	start := time.Now()
	_, execErr := es.db.Exec(ctx, ddl)
	es.logQueryWithDuration(ddl, logActionEnsure, time.Since(start))

	if execErr != nil {
		es.logError(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrTable, es.eventTableName)
		return errors.Join(eventstore.ErrCreatingEventsTableFailed, execErr)
	}

	es.logOperation(logMsgTableEnsured, logAttrTable, es.eventTableName)

	return nil
}

// Query returns the events matching the filter in sequence order and the highest sequence number
// among them, which is 0 for an empty stream.
func (es EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	sqlQuery, buildErr := es.buildSelectQuery(filter)
	if buildErr != nil {
		es.logError(logMsgBuildQueryFailed, logAttrError, buildErr.Error())
		return nil, 0, buildErr
	}

	start := time.Now()
	rows, queryErr := es.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	es.logQueryWithDuration(sqlQuery, logActionQuery, duration)

	if queryErr != nil {
		es.logError(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		return nil, 0, errors.Join(eventstore.ErrQueryingEventsFailed, queryErr)
	}
	defer es.closeRows(rows)

	events, maxSequenceNumber, scanErr := es.scanEvents(rows)
	if scanErr != nil {
		return nil, 0, scanErr
	}

	es.logOperation(
		logMsgQueryCompleted,
		logAttrEventCount, len(events),
		logAttrDurationMS, durationToMilliseconds(duration),
	)

	return events, maxSequenceNumber, nil
}

func (es EventStore) scanEvents(rows adapters.DBRows) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	events := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for rows.Next() {
		var (
			eventType      string
			occurredAt     time.Time
			payload        []byte
			metadata       []byte
			sequenceNumber uint
		)

		if err := rows.Scan(&eventType, &occurredAt, &payload, &metadata, &sequenceNumber); err != nil {
			es.logError(logMsgScanRowFailed, logAttrError, err.Error())
			return nil, 0, errors.Join(eventstore.ErrScanningDBRowFailed, err)
		}

		event, err := eventstore.BuildStorableEvent(eventType, occurredAt, payload, metadata)
		if err != nil {
			es.logError(logMsgBuildStorableEventFailed, logAttrError, err.Error(), logAttrEventType, eventType)
			return nil, 0, errors.Join(eventstore.ErrBuildingStorableEventFailed, err)
		}

		event.SequenceNumber = sequenceNumber
		events = append(events, event)
		maxSequenceNumber = sequenceNumber
	}

	if err := rows.Err(); err != nil {
		es.logError(logMsgScanRowFailed, logAttrError, err.Error())
		return nil, 0, errors.Join(eventstore.ErrScanningDBRowFailed, err)
	}

	return events, maxSequenceNumber, nil
}

func (es EventStore) closeRows(rows adapters.DBRows) {
	if err := rows.Close(); err != nil && es.logger != nil {
		es.logger.Warn(logMsgCloseRowsFailed, logAttrError, err.Error())
	}
}

// Append inserts the events atomically, but only if the highest sequence number of the stream the
// filter describes still equals expectedMaxSequenceNumber. Otherwise nothing is written and
// eventstore.ErrConcurrencyConflict is returned.
func (es EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	allEvents := append(eventstore.StorableEvents{event}, additionalEvents...)

	sqlQuery, buildErr := es.buildInsertQuery(allEvents, filter, expectedMaxSequenceNumber)
	if buildErr != nil {
		es.logError(logMsgBuildQueryFailed, logAttrError, buildErr.Error(), logAttrEventCount, len(allEvents))
		return buildErr
	}

	start := time.Now()
	result, execErr := es.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	es.logQueryWithDuration(sqlQuery, logActionAppend, duration)

	if execErr != nil {
		es.logError(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		return errors.Join(eventstore.ErrAppendingEventFailed, execErr)
	}

	rowsAffected, rowsErr := result.RowsAffected()
	if rowsErr != nil {
		es.logError(logMsgRowsAffectedFailed, logAttrError, rowsErr.Error())
		return errors.Join(eventstore.ErrGettingRowsAffectedFailed, rowsErr)
	}

	if rowsAffected < int64(len(allEvents)) {
		es.logOperation(
			logMsgConcurrencyConflict,
			logAttrEventCount, len(allEvents),
			logAttrRowsAffected, rowsAffected,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
		)

		return eventstore.ErrConcurrencyConflict
	}

	es.logOperation(
		logMsgEventsAppended,
		logAttrEventCount, len(allEvents),
		logAttrDurationMS, durationToMilliseconds(duration),
	)

	return nil
}

func (es EventStore) buildSelectQuery(filter eventstore.Filter) (string, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(es.eventTableName).
		Select(colEventType, colOccurredAt, colPayload, colMetadata, colSequenceNumber).
		Order(goqu.I(colSequenceNumber).Asc())

	where, err := whereClause(filter)
	if err != nil {
		return "", err
	}

	if where != nil {
		selectStmt = selectStmt.Where(where)
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// buildInsertQuery writes all events through one INSERT ... SELECT whose WHERE clause compares the
// stream's current max sequence number, computed in a CTE, against the expected one.
func (es EventStore) buildInsertQuery(
	events eventstore.StorableEvents,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (string, error) {

	builder := goqu.Dialect(dialectPostgres)

	contextStmt := builder.
		From(es.eventTableName).
		Select(goqu.MAX(colSequenceNumber).As(aliasMaxSeq))

	where, err := whereClause(filter)
	if err != nil {
		return "", err
	}

	if where != nil {
		contextStmt = contextStmt.Where(where)
	}

	var valsStmt *goqu.SelectDataset
	for _, event := range events {
		row := builder.Select(
			goqu.L(castText, event.EventType).As(colEventType),
			goqu.L(castTimestamp, event.OccurredAt).As(colOccurredAt),
			goqu.L(castJsonb, string(event.PayloadJSON)).As(colPayload),
			goqu.L(castJsonb, string(event.MetadataJSON)).As(colMetadata),
		)

		if valsStmt == nil {
			valsStmt = row
			continue
		}

		valsStmt = valsStmt.UnionAll(row)
	}

	vals := goqu.T(cteVals)

	insertStmt := builder.
		Insert(es.eventTableName).
		Cols(colEventType, colOccurredAt, colPayload, colMetadata).
		With(cteContext, contextStmt).
		With(cteVals, valsStmt).
		FromQuery(
			builder.From(cteContext, cteVals).
				Select(vals.Col(colEventType), vals.Col(colOccurredAt), vals.Col(colPayload), vals.Col(colMetadata)).
				Where(goqu.COALESCE(goqu.C(aliasMaxSeq), 0).Eq(goqu.V(expectedMaxSequenceNumber))),
		)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(eventstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// whereClause returns nil for a filter that matches every event.
func whereClause(filter eventstore.Filter) (exp.Expression, error) {
	if filter.IsEmpty() {
		return nil, nil
	}

	alternatives := make([]exp.Expression, 0, len(filter.Items()))

	for _, item := range filter.Items() {
		conditions := make([]exp.Expression, 0, 2)

		if len(item.EventTypes()) > 0 {
			conditions = append(conditions, goqu.C(colEventType).In(item.EventTypes()))
		}

		if len(item.Predicates()) > 0 {
			predicates := make([]exp.Expression, 0, len(item.Predicates()))

			for _, predicate := range item.Predicates() {
				containment, err := jsoniter.ConfigFastest.Marshal(map[string]string{predicate.Key(): predicate.Val()})
				if err != nil {
					return nil, errors.Join(eventstore.ErrBuildingQueryFailed, err)
				}

				predicates = append(predicates, goqu.L(payloadContains, goqu.C(colPayload), string(containment)))
			}

			if item.AllPredicatesMustMatch() {
				conditions = append(conditions, goqu.And(predicates...))
			} else {
				conditions = append(conditions, goqu.Or(predicates...))
			}
		}

		alternatives = append(alternatives, goqu.And(conditions...))
	}

	return goqu.Or(alternatives...), nil
}

func (es EventStore) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if es.logger != nil {
		es.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

func (es EventStore) logOperation(action string, args ...any) {
	if es.logger != nil {
		es.logger.Info(logMsgOperation+action, args...)
	}
}

func (es EventStore) logError(msg string, args ...any) {
	if es.logger != nil {
		es.logger.Error(msg, args...)
	}
}

func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
