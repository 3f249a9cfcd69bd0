package repl_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
	"github.com/anders-schneider/LibrarySimulator/circulation/repl"
	"github.com/anders-schneider/LibrarySimulator/testutil/logspy"
)

type recorderSpy struct {
	recorded []core.DomainEvents
	err      error
}

func (r *recorderSpy) Record(_ context.Context, events core.DomainEvents) error {
	r.recorded = append(r.recorded, events)
	return r.err
}

func runSession(t *testing.T, input string, options ...repl.SessionOption) string {
	t.Helper()

	out := &bytes.Buffer{}
	err := repl.NewSession(newLibrary(), options...).Run(context.Background(), strings.NewReader(input), out)
	require.NoError(t, err)

	return out.String()
}

func Test_Session_PrintsGreetingResponsesAndFarewell(t *testing.T) {
	// act
	output := runSession(t, "open()\nquit()\nclose()\n")

	// assert
	expected := "2 books in collection.\n" +
		"Ready for input. Type 'help()' for a list of commands.\n\n" +
		"Library command: Today is day 1.\n\n" +
		"Library command: \n" +
		"The library is now closed for renovations.\n"
	assert.Equal(t, expected, output)
}

func Test_Session_EndsAtEndOfInput(t *testing.T) {
	output := runSession(t, "open()")

	assert.True(t, strings.HasSuffix(output, "Library command: \nThe library is now closed for renovations.\n"))
}

func Test_Session_HandlesBadInputWithoutStopping(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    string
	}{
		{
			description: "empty line",
			input:       "   ",
			expected:    "Library command: What? Speak up!\n\n",
		},
		{
			description: "unknown command",
			input:       "renovate()",
			expected: "Library command: Sorry, I didn't understand: renovate()\n" +
				"Type 'help()' for a list of the things I do understand.\n\n",
		},
		{
			description: "malformed command",
			input:       "serve(",
			expected: "Library command: Sorry, I didn't understand: serve(\n" +
				"Type 'help()' for a list of the things I do understand.\n\n",
		},
		{
			description: "wrong arguments",
			input:       "serve()",
			expected:    "Library command: Unexpected error: invalid arguments: serve() takes exactly 1 argument (0 given)\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			output := runSession(t, tc.input+"\nopen()\n")

			// assert
			assert.Contains(t, output, tc.expected)
			assert.Contains(t, output, "Today is day 1.")
		})
	}
}

func Test_Session_SurvivesVeryLongLines(t *testing.T) {
	// arrange
	longLine := "search(\"" + strings.Repeat("x", 200*1024) + "\""

	// act
	output := runSession(t, longLine+"\nopen()\n")

	// assert
	assert.Contains(t, output, "Sorry, I didn't understand: search(\"xxx")
	assert.Contains(t, output, "Today is day 1.")
	assert.True(t, strings.HasSuffix(output, "The library is now closed for renovations.\n"))
}

func Test_Session_RecordsCommandEvents(t *testing.T) {
	// arrange
	recorder := &recorderSpy{}

	// act
	runSession(t, "open()\nhelp()\nclose()\n", repl.WithRecorder(recorder))

	// assert
	require.Len(t, recorder.recorded, 2)
	assert.Equal(t, core.BuildLibraryOpened(1, fixedNow), recorder.recorded[0][0])
	assert.Equal(t, core.BuildLibraryClosed(1, fixedNow), recorder.recorded[1][0])
}

func Test_Session_LogsJournalFailuresAndContinues(t *testing.T) {
	// arrange
	recorder := &recorderSpy{err: errors.New("journal unavailable")}
	logs := logspy.New()

	// act
	output := runSession(t, "open()\nclose()\n", repl.WithRecorder(recorder), repl.WithLogger(logs.Logger()))

	// assert
	assert.Contains(t, output, "Goodnight.")
	assert.NotContains(t, output, "journal unavailable")
	assert.True(t, logs.HasLog(slog.LevelError, "journaling command events failed").
		WithAttr("command", "open").
		WithAttr("error", "journal unavailable").
		Assert())
	assert.True(t, logs.HasLog(slog.LevelDebug, "command dispatched").WithAttr("command", "close").Assert())
}

func Test_Session_StopsWhenContextIsCanceled(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	err := repl.NewSession(newLibrary()).Run(ctx, strings.NewReader("open()\n"), &bytes.Buffer{})

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}
