package repl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/anders-schneider/LibrarySimulator/circulation/repl"
)

func Test_Parse_AcceptsCommandShapes(t *testing.T) {
	testCases := []struct {
		input        string
		expectedName string
		expectedArgs []repl.Argument
	}{
		{input: "open()", expectedName: "open", expectedArgs: []repl.Argument{}},
		{input: "help", expectedName: "help"},
		{
			input:        `serve("Andy")`,
			expectedName: "serve",
			expectedArgs: []repl.Argument{{Value: cty.StringVal("Andy"), Raw: `"Andy"`}},
		},
		{
			input:        "check_out(1, 2.5)",
			expectedName: "check_out",
			expectedArgs: []repl.Argument{
				{Value: cty.NumberIntVal(1), Raw: "1"},
				{Value: cty.NumberFloatVal(2.5), Raw: "2.5"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			// act
			inv, err := repl.Parse(tc.input)

			// assert
			require.NoError(t, err)
			assert.Equal(t, tc.expectedName, inv.Name)
			require.Len(t, inv.Arguments, len(tc.expectedArgs))
			for i, expected := range tc.expectedArgs {
				assert.True(t, expected.Value.Equals(inv.Arguments[i].Value).True(), "argument %d", i)
				assert.Equal(t, expected.Raw, inv.Arguments[i].Raw)
			}
		})
	}
}

func Test_Parse_RejectsMalformedInput(t *testing.T) {
	testCases := []struct {
		description string
		input       string
	}{
		{description: "unbalanced parenthesis", input: "open("},
		{description: "attribute access", input: "library.open"},
		{description: "plain literal", input: "42"},
		{description: "variable argument", input: "serve(andy)"},
		{description: "expanded argument", input: "check_out([1, 2]...)"},
		{description: "trailing garbage", input: "open() close()"},
		{description: "single-quoted string", input: "search('Verne')"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			_, err := repl.Parse(tc.input)

			// assert
			assert.ErrorIs(t, err, repl.ErrMalformedCommand)

			var malformed *repl.MalformedCommandError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tc.input, malformed.Input)
		})
	}
}
