package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/knight-moves-go/internal/board"
	"github.com/lgbarn/knight-moves-go/internal/config"
	kerrors "github.com/lgbarn/knight-moves-go/internal/errors"
	"github.com/lgbarn/knight-moves-go/internal/pathfind"
	"github.com/lgbarn/knight-moves-go/internal/testutil"
)

func mustResult(t *testing.T, start, end board.Square) pathfind.Result {
	t.Helper()
	res, err := pathfind.ShortestPath(start, end)
	testutil.RequireNoError(t, err)
	return res
}

func TestFormatSquare(t *testing.T) {
	tests := []struct {
		sq       board.Square
		notation config.Notation
		want     string
	}{
		{board.Sq(0, 0), config.Coordinates, "[ 0, 0 ]"},
		{board.Sq(3, 4), config.Coordinates, "[ 3, 4 ]"},
		{board.Sq(3, 4), config.Algebraic, "d5"},
		{board.Sq(8, 0), config.Algebraic, "[ 8, 0 ]"},
	}

	for _, tt := range tests {
		if got := FormatSquare(tt.sq, tt.notation); got != tt.want {
			t.Errorf("FormatSquare(%v, %v) = %q, want %q", tt.sq, tt.notation, got, tt.want)
		}
	}
}

func TestFormatText(t *testing.T) {
	cfg := config.NewOutputConfig()

	tests := []struct {
		name  string
		start board.Square
		end   board.Square
		want  string
	}{
		{
			name:  "single move",
			start: board.Sq(0, 0),
			end:   board.Sq(1, 2),
			want:  "You made it in 1 move! Here's your path:\n[ 0, 0 ]\n[ 1, 2 ]\n",
		},
		{
			name:  "two moves",
			start: board.Sq(0, 0),
			end:   board.Sq(3, 3),
			want:  "You made it in 2 moves! Here's your path:\n[ 0, 0 ]\n[ 1, 2 ]\n[ 3, 3 ]\n",
		},
		{
			name:  "zero moves",
			start: board.Sq(3, 3),
			end:   board.Sq(3, 3),
			want:  "You made it in 0 moves! Here's your path:\n[ 3, 3 ]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, FormatText(mustResult(t, tt.start, tt.end), cfg), tt.want)
		})
	}
}

func TestFormatText_AlgebraicWithStats(t *testing.T) {
	cfg := &config.OutputConfig{Notation: config.Algebraic, IncludeStats: true}
	res := mustResult(t, board.Sq(0, 0), board.Sq(1, 2))

	got := FormatText(res, cfg)
	want := fmt.Sprintf("You made it in 1 move! Here's your path:\n(searched %d squares)\na1\nb3\n", res.Expanded)
	testutil.AssertEqual(t, got, want)
}

func TestFormatText_NotFound(t *testing.T) {
	res := pathfind.Result{Start: board.Sq(0, 0), End: board.Sq(7, 7)}
	testutil.AssertEqual(t, FormatText(res, config.NewOutputConfig()), "No path found!\n")
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, config.NewConfig())
	if _, ok := w.(*TextWriter); !ok {
		t.Fatalf("NewWriter() = %T, want *TextWriter", w)
	}

	testutil.RequireNoError(t, w.WriteResult(mustResult(t, board.Sq(0, 0), board.Sq(1, 2))))
	testutil.RequireNoError(t, w.WriteFailure(board.Sq(9, 9), board.Sq(0, 0), kerrors.ErrInvalidInput))
	testutil.RequireNoError(t, w.Close())

	out := buf.String()
	testutil.AssertContains(t, out, "You made it in 1 move!")
	testutil.AssertContains(t, out, "Error: invalid input")
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutputFormat(config.JSON).Build()
	w := NewWriter(&buf, cfg)

	testutil.RequireNoError(t, w.WriteResult(mustResult(t, board.Sq(0, 0), board.Sq(3, 3))))
	testutil.RequireNoError(t, w.WriteResult(pathfind.Result{Start: board.Sq(0, 0), End: board.Sq(7, 7)}))
	testutil.RequireNoError(t, w.WriteFailure(board.Sq(0, 8), board.Sq(0, 0), kerrors.ErrInvalidInput))

	if buf.Len() != 0 {
		t.Fatalf("JSON written before Close: %q", buf.String())
	}
	testutil.RequireNoError(t, w.Close())

	var doc JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(doc.Results) != 3 {
		t.Fatalf("len(Results) = %d, want 3", len(doc.Results))
	}

	found := doc.Results[0]
	testutil.AssertEqual(t, found, JSONResult{
		Start: JSONSquare{File: 0, Rank: 0, Name: "a1"},
		End:   JSONSquare{File: 3, Rank: 3, Name: "d4"},
		Found: true,
		Moves: 2,
		Path: []JSONSquare{
			{File: 0, Rank: 0, Name: "a1"},
			{File: 1, Rank: 2, Name: "b3"},
			{File: 3, Rank: 3, Name: "d4"},
		},
	})

	notFound := doc.Results[1]
	if notFound.Found || notFound.Moves != -1 || notFound.Path != nil {
		t.Errorf("not-found result = %+v", notFound)
	}

	failed := doc.Results[2]
	if failed.Error == "" || failed.Start.Name != "" {
		t.Errorf("failure result = %+v", failed)
	}
}

func TestJSONWriter_FlushEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf, config.NewOutputConfig())
	testutil.RequireNoError(t, w.Flush())
	if buf.Len() != 0 {
		t.Errorf("empty Flush wrote %q", buf.String())
	}
}

func TestResultToJSON_Stats(t *testing.T) {
	res := mustResult(t, board.Sq(0, 0), board.Sq(7, 7))

	withStats := ResultToJSON(res, &config.OutputConfig{IncludeStats: true})
	if withStats.Expanded != res.Expanded || withStats.Expanded == 0 {
		t.Errorf("Expanded = %d, want %d", withStats.Expanded, res.Expanded)
	}
	if withStats.Moves != 6 {
		t.Errorf("Moves = %d, want 6", withStats.Moves)
	}

	without := ResultToJSON(res, config.NewOutputConfig())
	if without.Expanded != 0 {
		t.Errorf("Expanded = %d without stats, want 0", without.Expanded)
	}
}

func TestFormatTable(t *testing.T) {
	table, err := pathfind.DistancesFrom(board.Sq(0, 0))
	testutil.RequireNoError(t, err)

	out := FormatTable(table, config.Algebraic)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10:\n%s", len(lines), out)
	}

	testutil.AssertEqual(t, lines[0], "Knight distances from a1:")
	testutil.AssertEqual(t, lines[9], "    a b c d e f g h")
	if !strings.HasPrefix(lines[1], "8 |") {
		t.Errorf("top row = %q, want rank 8", lines[1])
	}

	var want strings.Builder
	want.WriteString("1 |")
	for file := 0; file < 8; file++ {
		fmt.Fprintf(&want, " %d", table.At(board.Sq(file, 0)))
	}
	testutil.AssertEqual(t, lines[8], want.String())
	if !strings.HasPrefix(lines[8], "1 | 0 ") {
		t.Errorf("source square distance not 0: %q", lines[8])
	}
}

func TestFormatTable_Coordinates(t *testing.T) {
	table, err := pathfind.DistancesFrom(board.Sq(3, 3))
	testutil.RequireNoError(t, err)

	out := FormatTable(table, config.Coordinates)
	testutil.AssertContains(t, out, "Knight distances from [ 3, 3 ]:")
	testutil.AssertContains(t, out, "    0 1 2 3 4 5 6 7\n")
	testutil.AssertContains(t, out, "\n7 |")
	testutil.AssertNotContains(t, out, "-")
}

func TestWriteTable_Unreachable(t *testing.T) {
	table := &pathfind.DistanceTable{Source: board.Sq(0, 0)}
	for f := range table.Distances {
		for r := range table.Distances[f] {
			table.Distances[f][r] = pathfind.Unreachable
		}
	}
	table.Distances[0][0] = 0

	var buf bytes.Buffer
	testutil.RequireNoError(t, WriteTable(&buf, table, config.Algebraic))
	testutil.AssertContains(t, buf.String(), "1 | 0 - - - - - - -")
}
