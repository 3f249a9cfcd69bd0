package config

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// ErrConnectingToPostgresFailed is returned when a pool cannot be created or does not answer a ping.
var ErrConnectingToPostgresFailed = errors.New("connecting to postgres failed")

const (
	driverName = "postgres"

	maxOpenConnections = 4
	minConnections     = 1
	maxIdleConnections = 2
	maxConnLifetime    = time.Hour
	maxConnIdleTime    = 5 * time.Minute
	healthCheckPeriod  = time.Minute
	connectTimeout     = 5 * time.Second
)

// NewPGXPool creates and pings a pgx pool for the journal. A single desk session needs few connections.
func NewPGXPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Join(ErrConnectingToPostgresFailed, err)
	}

	poolConfig.MaxConns = maxOpenConnections
	poolConfig.MinConns = minConnections
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Join(ErrConnectingToPostgresFailed, err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Join(ErrConnectingToPostgresFailed, err)
	}

	return pool, nil
}

// OpenSQLDB opens and pings a database/sql pool using lib/pq.
func OpenSQLDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Join(ErrConnectingToPostgresFailed, err)
	}

	configurePool(db)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Join(ErrConnectingToPostgresFailed, err)
	}

	return db, nil
}

// OpenSQLX opens and pings a sqlx pool using lib/pq.
func OpenSQLX(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Join(ErrConnectingToPostgresFailed, err)
	}

	configurePool(db.DB)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Join(ErrConnectingToPostgresFailed, err)
	}

	return db, nil
}

func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(maxOpenConnections)
	db.SetMaxIdleConns(maxIdleConnections)
	db.SetConnMaxLifetime(maxConnLifetime)
	db.SetConnMaxIdleTime(maxConnIdleTime)
}
