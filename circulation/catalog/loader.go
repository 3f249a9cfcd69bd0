package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
)

// ErrMalformedRecord is returned when a line is not a ("title", "author") pair.
var ErrMalformedRecord = errors.New("malformed collection record")

// ErrReadingCollectionFailed is returned when the collection cannot be read at all.
var ErrReadingCollectionFailed = errors.New("reading collection failed")

const recordFieldCount = 2

// LoadFile reads the collection file at path.
func LoadFile(path string) ([]core.CatalogEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadingCollectionFailed, err)
	}
	defer func() { _ = file.Close() }()

	return Parse(file, path)
}

// Parse reads collection records from r in order. The filename only appears in error messages.
func Parse(r io.Reader, filename string) ([]core.CatalogEntry, error) {
	entries := make([]core.CatalogEntry, 0)
	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		entry, err := parseRecord(line, filename, lineNumber)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrReadingCollectionFailed, err)
	}

	return entries, nil
}

func parseRecord(line string, filename string, lineNumber int) (core.CatalogEntry, error) {
	malformed := func(detail string) error {
		return errors.Join(ErrMalformedRecord, fmt.Errorf("%s:%d: %s", filename, lineNumber, detail))
	}

	if !strings.HasPrefix(line, "(") || !strings.HasSuffix(line, ")") {
		return core.CatalogEntry{}, malformed("record must be enclosed in parentheses")
	}

	// a parenthesised pair reads as an HCL tuple once the brackets are swapped
	source := "[" + line[1:len(line)-1] + "]"

	expr, diags := hclsyntax.ParseExpression([]byte(source), filename, hcl.Pos{Line: lineNumber, Column: 1, Byte: 0})
	if diags.HasErrors() {
		return core.CatalogEntry{}, malformed(diags.Error())
	}

	if _, isTuple := expr.(*hclsyntax.TupleConsExpr); !isTuple || len(expr.Variables()) > 0 {
		return core.CatalogEntry{}, malformed("record must be a pair of string literals")
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return core.CatalogEntry{}, malformed(diags.Error())
	}

	if !val.Type().IsTupleType() || val.LengthInt() != recordFieldCount {
		return core.CatalogEntry{}, malformed("record must have exactly two fields")
	}

	fields := make([]string, 0, recordFieldCount)
	for it := val.ElementIterator(); it.Next(); {
		_, v := it.Element()
		if v.IsNull() || v.Type() != cty.String {
			return core.CatalogEntry{}, malformed("title and author must be strings")
		}

		fields = append(fields, v.AsString())
	}

	return core.CatalogEntry{Title: fields[0], Author: fields[1]}, nil
}
