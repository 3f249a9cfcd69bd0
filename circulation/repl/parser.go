package repl

import (
	"math/big"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

const inputFilename = "<command>"

// Argument is one evaluated argument of a command call together with its source text.
type Argument struct {
	Value cty.Value
	Raw   string
}

// Invocation is a parsed command line.
type Invocation struct {
	Name      string
	Arguments []Argument
}

// Parse parses one trimmed, non-empty command line.
func Parse(input string) (Invocation, error) {
	src := []byte(input)

	expr, diags := hclsyntax.ParseExpression(src, inputFilename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return Invocation{}, &MalformedCommandError{Input: input, Reason: diags.Error()}
	}

	switch e := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(e.Traversal) != 1 {
			return Invocation{}, &MalformedCommandError{Input: input, Reason: "not a command name"}
		}

		return Invocation{Name: e.Traversal.RootName()}, nil

	case *hclsyntax.FunctionCallExpr:
		if e.ExpandFinal {
			return Invocation{}, &MalformedCommandError{Input: input, Reason: "argument expansion is not supported"}
		}

		arguments := make([]Argument, 0, len(e.Args))
		for _, arg := range e.Args {
			if len(arg.Variables()) > 0 {
				return Invocation{}, &MalformedCommandError{Input: input, Reason: "arguments must be literals"}
			}

			value, valDiags := arg.Value(nil)
			if valDiags.HasErrors() {
				return Invocation{}, &MalformedCommandError{Input: input, Reason: valDiags.Error()}
			}

			arguments = append(arguments, Argument{
				Value: value,
				Raw:   string(arg.Range().SliceBytes(src)),
			})
		}

		return Invocation{Name: e.Name, Arguments: arguments}, nil

	default:
		return Invocation{}, &MalformedCommandError{Input: input, Reason: "not a command call"}
	}
}

// asString returns the argument as a Go string when it is a known string value.
func (a Argument) asString() (string, bool) {
	if a.Value.IsNull() || !a.Value.IsKnown() || a.Value.Type() != cty.String {
		return "", false
	}

	return a.Value.AsString(), true
}

// asWholeNumber returns the argument as an int when it was typed as an integer literal
// that fits one. Integer-valued floats such as 1.0 or 2e0 are not integers.
func (a Argument) asWholeNumber() (int, bool) {
	if a.Value.IsNull() || !a.Value.IsKnown() || a.Value.Type() != cty.Number {
		return 0, false
	}

	if strings.ContainsAny(a.Raw, ".eE") {
		return 0, false
	}

	bf := a.Value.AsBigFloat()
	if !bf.IsInt() {
		return 0, false
	}

	n, accuracy := bf.Int64()
	if accuracy != big.Exact || int64(int(n)) != n {
		return 0, false
	}

	return int(n), true
}
