// Package adapters lets the PostgreSQL engine run on pgxpool.Pool, sql.DB or sqlx.DB
// behind one small DBAdapter interface.
package adapters
