// Package config holds the runtime configuration of the circulation desk: validated
// settings, the structured logger, and the Postgres connection pools the journal can run on.
package config
