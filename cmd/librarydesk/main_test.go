package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const collection = `("Contact", "Carl Sagan")
("Dune", "Frank Herbert")
`

func writeCollection(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "collection.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func runDesk(t *testing.T, input string, getenv func(string) string, args ...string) (string, string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}
	err := run(context.Background(), strings.NewReader(input), out, errW, args, getenv)

	return out.String(), errW.String(), err
}

func Test_Run_ServesASession(t *testing.T) {
	// arrange
	path := writeCollection(t, collection)

	// act
	out, _, err := runDesk(t, "open()\nsearch(\"dune\")\nquit()\n", env(nil), "-collection", path)

	// assert
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2 books in collection.\n"))
	assert.Contains(t, out, "Today is day 1.")
	assert.Contains(t, out, "1: Dune, by Frank Herbert")
	assert.True(t, strings.HasSuffix(out, "The library is now closed for renovations.\n"))
}

func Test_Run_JournalsInMemory(t *testing.T) {
	// arrange
	path := writeCollection(t, collection)

	// act
	_, logs, err := runDesk(
		t,
		"open()\nclose()\n",
		env(nil),
		"-collection", path, "-journal", "memory", "-log-level", "debug", "-log-format", "json",
	)

	// assert
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"journal session started"`)
	assert.Contains(t, logs, `"msg":"journal: events recorded"`)
	assert.Contains(t, logs, `"msg":"journal session ended"`)
	assert.Contains(t, logs, `"events":4`)
	assert.Contains(t, logs, `"days":1`)
	assert.NotContains(t, logs, `"level":"ERROR"`)
}

func Test_Run_PrintsUsageOnHelp(t *testing.T) {
	// act
	out, usage, err := runDesk(t, "", env(nil), "-h")

	// assert
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, usage, "Usage:")
	assert.Contains(t, usage, "DB_ADAPTER")
}

func Test_Run_RejectsInvalidConfiguration(t *testing.T) {
	testCases := []struct {
		description string
		args        []string
		env         map[string]string
		expected    string
	}{
		{
			description: "unknown flag",
			args:        []string{"-loud"},
			expected:    "flag provided but not defined: -loud",
		},
		{
			description: "positional argument",
			args:        []string{"books.txt"},
			expected:    "unexpected arguments: books.txt",
		},
		{
			description: "unknown log level",
			args:        []string{"-log-level", "chatty"},
			expected:    `LogLevel: "chatty" is not one of: debug, info, warn, error`,
		},
		{
			description: "postgres journal without dsn",
			args:        []string{"-journal", "postgres"},
			expected:    "JournalDSN: is required when JournalMode is postgres",
		},
		{
			description: "unknown db adapter",
			args:        []string{"-journal", "postgres", "-journal-dsn", "postgres://localhost/library"},
			env:         map[string]string{"DB_ADAPTER": "odbc"},
			expected:    `DBAdapter: "odbc" is not one of: pgx, sql, sqlx`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			_, _, err := runDesk(t, "", env(tc.env), tc.args...)

			// assert
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.expected)
		})
	}
}

func Test_Run_FailsOnMissingCollection(t *testing.T) {
	// act
	_, _, err := runDesk(t, "", env(nil), "-collection", filepath.Join(t.TempDir(), "missing.txt"))

	// assert
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
}

func Test_Run_FailsOnUnreachableJournalDatabase(t *testing.T) {
	// arrange
	path := writeCollection(t, collection)

	// act
	_, _, err := runDesk(
		t,
		"",
		env(nil),
		"-collection", path, "-journal", "postgres", "-journal-dsn", "postgres://desk@localhost:notaport/library",
	)

	// assert
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "opening the circulation journal failed")
}
