package testutil

import (
	"testing"

	"github.com/lgbarn/knight-moves-go/internal/board"
)

// MustSquare parses a square in any form board.ParseSquare accepts.
// It calls t.Fatal if parsing fails.
func MustSquare(t testing.TB, text string) board.Square {
	t.Helper()
	sq, err := board.ParseSquare(text)
	if err != nil {
		t.Fatalf("MustSquare(%q): %v", text, err)
	}
	return sq
}

// MustPath parses each text as a square and returns the resulting path.
func MustPath(t testing.TB, texts ...string) board.Path {
	t.Helper()
	path := make(board.Path, 0, len(texts))
	for _, text := range texts {
		path = append(path, MustSquare(t, text))
	}
	return path
}

// AssertKnightPath checks that path runs from start to end by legal knight moves.
func AssertKnightPath(t testing.TB, path board.Path, start, end board.Square) {
	t.Helper()
	if len(path) == 0 {
		t.Errorf("path %v -> %v is empty", start, end)
		return
	}
	if path.Start() != start {
		t.Errorf("path starts at %v, want %v", path.Start(), start)
	}
	if path.End() != end {
		t.Errorf("path ends at %v, want %v", path.End(), end)
	}
	if !path.IsKnightTour() {
		t.Errorf("path %v contains a non-knight move", path)
	}
}
