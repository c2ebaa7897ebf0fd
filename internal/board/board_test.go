package board

import (
	"errors"
	"testing"

	kerrors "github.com/lgbarn/knight-moves-go/internal/errors"
)

func TestSquareValid(t *testing.T) {
	tests := []struct {
		name string
		sq   Square
		want bool
	}{
		{"a1", Sq(0, 0), true},
		{"h8", Sq(7, 7), true},
		{"centre", Sq(3, 4), true},
		{"file too low", Sq(-1, 0), false},
		{"file too high", Sq(8, 0), false},
		{"rank too low", Sq(0, -1), false},
		{"rank too high", Sq(0, 8), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sq.Valid(); got != tt.want {
				t.Errorf("%v.Valid() = %v; want %v", tt.sq, got, tt.want)
			}
		})
	}
}

func TestSquareValidate(t *testing.T) {
	if err := Sq(4, 4).Validate("start"); err != nil {
		t.Errorf("Validate() on board = %v; want nil", err)
	}

	err := Sq(8, 2).Validate("end")
	if !errors.Is(err, kerrors.ErrInvalidInput) {
		t.Fatalf("Validate() = %v; want ErrInvalidInput", err)
	}
	var sqErr *kerrors.SquareError
	if !errors.As(err, &sqErr) {
		t.Fatalf("Validate() = %T; want *SquareError", err)
	}
	if sqErr.Role != "end" || sqErr.File != 8 || sqErr.Rank != 2 {
		t.Errorf("SquareError = %+v; want role end at (8,2)", sqErr)
	}
}

func TestAllSquares(t *testing.T) {
	squares := AllSquares()
	if len(squares) != 64 {
		t.Fatalf("len(AllSquares()) = %d; want 64", len(squares))
	}
	seen := make(map[Square]bool)
	for i, sq := range squares {
		if sq.Index() != i {
			t.Errorf("AllSquares()[%d].Index() = %d", i, sq.Index())
		}
		seen[sq] = true
	}
	if len(seen) != 64 {
		t.Errorf("AllSquares() has %d distinct squares; want 64", len(seen))
	}
	if Sq(9, 9).Index() != -1 {
		t.Error("Index() of off-board square should be -1")
	}
}

func TestKnightMoves(t *testing.T) {
	tests := []struct {
		name string
		sq   Square
		want []Square
	}{
		{"corner a1", Sq(0, 0), []Square{Sq(1, 2), Sq(2, 1)}},
		{"corner h8", Sq(7, 7), []Square{Sq(6, 5), Sq(5, 6)}},
		{"centre d4", Sq(3, 3), []Square{
			Sq(4, 5), Sq(4, 1), Sq(2, 5), Sq(2, 1),
			Sq(5, 4), Sq(5, 2), Sq(1, 4), Sq(1, 2),
		}},
		{"edge b1", Sq(1, 0), []Square{Sq(2, 2), Sq(0, 2), Sq(3, 1)}},
		{"off board", Sq(8, 8), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KnightMoves(tt.sq)
			if len(got) != len(tt.want) {
				t.Fatalf("KnightMoves(%v) = %v; want %v", tt.sq, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("KnightMoves(%v)[%d] = %v; want %v", tt.sq, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestKnightMovesSymmetric(t *testing.T) {
	total := 0
	for _, from := range AllSquares() {
		for _, to := range KnightMoves(from) {
			total++
			if !IsKnightMove(from, to) {
				t.Errorf("IsKnightMove(%v, %v) = false for generated move", from, to)
			}
			if !contains(KnightMoves(to), from) {
				t.Errorf("%v -> %v has no reverse edge", from, to)
			}
		}
	}
	// 168 undirected edges on an 8x8 board.
	if total != 336 {
		t.Errorf("directed edge count = %d; want 336", total)
	}
}

func TestIsKnightMove(t *testing.T) {
	tests := []struct {
		from, to Square
		want     bool
	}{
		{Sq(0, 0), Sq(1, 2), true},
		{Sq(0, 0), Sq(2, 1), true},
		{Sq(4, 4), Sq(2, 3), true},
		{Sq(0, 0), Sq(0, 0), false},
		{Sq(0, 0), Sq(2, 2), false},
		{Sq(0, 0), Sq(1, 1), false},
		{Sq(0, 0), Sq(0, 3), false},
	}

	for _, tt := range tests {
		if got := IsKnightMove(tt.from, tt.to); got != tt.want {
			t.Errorf("IsKnightMove(%v, %v) = %v; want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestPath(t *testing.T) {
	p := Path{Sq(0, 0), Sq(2, 1), Sq(3, 3)}
	if p.Moves() != 2 {
		t.Errorf("Moves() = %d; want 2", p.Moves())
	}
	if p.Start() != Sq(0, 0) || p.End() != Sq(3, 3) {
		t.Errorf("Start/End = %v/%v", p.Start(), p.End())
	}
	if !p.IsKnightTour() {
		t.Error("IsKnightTour() = false; want true")
	}
	if (Path{Sq(0, 0), Sq(1, 1)}).IsKnightTour() {
		t.Error("IsKnightTour() = true for a diagonal step")
	}
	if (Path{}).Moves() != 0 {
		t.Error("empty Path.Moves() should be 0")
	}
}

func TestAlgebraic(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{Sq(0, 0), "a1"},
		{Sq(7, 0), "h1"},
		{Sq(0, 7), "a8"},
		{Sq(7, 7), "h8"},
		{Sq(3, 4), "d5"},
		{Sq(8, 0), ""},
	}

	for _, tt := range tests {
		if got := tt.sq.Algebraic(); got != tt.want {
			t.Errorf("%v.Algebraic() = %q; want %q", tt.sq, got, tt.want)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input string
		want  Square
	}{
		{"0,0", Sq(0, 0)},
		{"7,7", Sq(7, 7)},
		{"[3,3]", Sq(3, 3)},
		{"[ 1, 2 ]", Sq(1, 2)},
		{"(4,5)", Sq(4, 5)},
		{"  2 , 6  ", Sq(2, 6)},
		{"a1", Sq(0, 0)},
		{"H8", Sq(7, 7)},
		{"d5", Sq(3, 4)},
		// Well-formed but off the board; caught by Validate.
		{"8,0", Sq(8, 0)},
		{"-1,3", Sq(-1, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSquare(tt.input)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSquareInvalid(t *testing.T) {
	inputs := []string{"", "i1", "a9", "a", "1,2,3", "x,1", "1,", "[1,2", "e4e5"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSquare(input)
			if !errors.Is(err, kerrors.ErrInvalidInput) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidInput", input, err)
			}
		})
	}
}

func contains(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
