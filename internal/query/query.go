// Package query parses knight path queries from text.
//
// A query line holds two squares separated by whitespace, in any form
// board.ParseSquare accepts:
//
//	a1 h8
//	0,0 7,7
//	[ 3, 3 ] [ 3, 3 ]   # comment
//
// Blank lines and text after '#' are ignored.
package query

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/knight-moves-go/internal/board"
	"github.com/lgbarn/knight-moves-go/internal/errors"
)

// Query is one start/end pair and where it came from.
type Query struct {
	Start  board.Square
	End    board.Square
	Source string // file name, "" if not from a file
	Line   int    // 1-based line number, 0 if not from a file
}

// New returns a query with no source location.
func New(start, end board.Square) Query {
	return Query{Start: start, End: end}
}

// String returns "start -> end" in coordinate form.
func (q Query) String() string {
	return fmt.Sprintf("%v -> %v", q.Start, q.End)
}

// Key returns the comparable pair identifying the query.
func (q Query) Key() [2]board.Square {
	return [2]board.Square{q.Start, q.End}
}

// ParseArgs builds a query from two square arguments.
func ParseArgs(start, end string) (Query, error) {
	from, err := board.ParseSquare(start)
	if err != nil {
		return Query{}, errors.Wrap(err, "start")
	}
	to, err := board.ParseSquare(end)
	if err != nil {
		return Query{}, errors.Wrap(err, "end")
	}
	return New(from, to), nil
}

// ParseLine parses a single query line. ok is false for blank and
// comment-only lines.
func ParseLine(line string) (q Query, ok bool, err error) {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	fields := splitSquares(line)
	if len(fields) == 0 {
		return Query{}, false, nil
	}
	if len(fields) != 2 {
		return Query{}, false, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Expected: "two squares",
			Got:      fmt.Sprintf("%d field(s)", len(fields)),
		}
	}
	q, err = ParseArgs(fields[0], fields[1])
	if err != nil {
		return Query{}, false, &errors.ParseError{Err: err}
	}
	return q, true, nil
}

// ParseReader reads queries from r, one per line. name labels errors and
// each Query's Source. Parsing stops at the first malformed line.
func ParseReader(r io.Reader, name string) ([]Query, error) {
	var queries []Query
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		q, ok, err := ParseLine(scanner.Text())
		if err != nil {
			var parseErr *errors.ParseError
			if errors.As(err, &parseErr) {
				parseErr.File = name
				parseErr.Line = lineNum
			}
			return nil, err
		}
		if !ok {
			continue
		}
		q.Source = name
		q.Line = lineNum
		queries = append(queries, q)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return queries, nil
}

// splitSquares splits a line into square tokens. Whitespace inside brackets
// does not split, so "[ 1, 2 ] [ 3, 3 ]" yields two tokens.
func splitSquares(line string) []string {
	var fields []string
	var current strings.Builder
	depth := 0

	flush := func() {
		if current.Len() > 0 {
			fields = append(fields, current.String())
			current.Reset()
		}
	}

	for _, r := range line {
		switch {
		case r == '[' || r == '(':
			depth++
			current.WriteRune(r)
		case r == ']' || r == ')':
			if depth > 0 {
				depth--
			}
			current.WriteRune(r)
			if depth == 0 {
				flush()
			}
		case (r == ' ' || r == '\t') && depth == 0:
			flush()
		case (r == ' ' || r == '\t') && depth > 0:
			// dropped; board.ParseSquare trims inside brackets anyway
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return fields
}
