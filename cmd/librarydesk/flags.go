package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/anders-schneider/LibrarySimulator/circulation/shell/config"
)

// parseFlags builds the configuration from command-line flags and the DB_ADAPTER variable.
// It reports shouldExit when only the usage text was requested.
func parseFlags(args []string, output io.Writer, getenv func(string) string) (config.Config, bool, error) {
	cfg := config.Default()

	flagSet := flag.NewFlagSet("librarydesk", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
librarydesk - the circulation desk of a small lending library.

Usage:
  librarydesk [options]

Environment:
  DB_ADAPTER
    Postgres access layer for -journal=postgres: 'pgx' (default), 'sql' or 'sqlx'.

Options:
`)
		flagSet.PrintDefaults()
	}

	flagSet.StringVar(&cfg.CollectionPath, "collection", cfg.CollectionPath, "Path to the book collection file.")
	flagSet.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log output format. Options: 'text' or 'json'.")
	flagSet.StringVar(&cfg.JournalMode, "journal", cfg.JournalMode, "Circulation journal. Options: 'none', 'memory', 'postgres'.")
	flagSet.StringVar(&cfg.JournalDSN, "journal-dsn", "", "Postgres connection string for -journal=postgres.")
	flagSet.StringVar(&cfg.JournalTable, "journal-table", cfg.JournalTable, "Postgres table holding the journal.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config.Config{}, true, nil
		}

		return config.Config{}, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() > 0 {
		return config.Config{}, false, &ExitError{
			Code:    2,
			Message: "unexpected arguments: " + strings.Join(flagSet.Args(), " "),
		}
	}

	if adapter := getenv(config.EnvDBAdapter); adapter != "" {
		cfg.DBAdapter = adapter
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.JournalMode = strings.ToLower(cfg.JournalMode)
	cfg.DBAdapter = strings.ToLower(cfg.DBAdapter)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}
