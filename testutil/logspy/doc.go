// Package logspy provides a slog.Handler that captures records so tests can assert on logging.
package logspy
