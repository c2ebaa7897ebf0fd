// Package board provides the squares and knight geometry of a standard chessboard.
package board

import (
	"fmt"

	"github.com/lgbarn/knight-moves-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	MinCoord = 0
	MaxCoord = BoardSize - 1
)

// Square is a board position. File and Rank are 0-based, so (0,0) is a1
// and (7,7) is h8. Square is comparable and can be used as a map key.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether both coordinates are on the board.
func (s Square) Valid() bool {
	return inRange(s.File) && inRange(s.Rank)
}

// Validate returns an ErrInvalidInput SquareError if s is off the board.
// role names the query endpoint for the message and may be empty.
func (s Square) Validate(role string) error {
	if s.Valid() {
		return nil
	}
	return &errors.SquareError{
		Err:  errors.ErrInvalidInput,
		Role: role,
		File: s.File,
		Rank: s.Rank,
	}
}

// Add returns the square reached by applying d. The result may be off the board.
func (s Square) Add(d Delta) Square {
	return Square{File: s.File + d.File, Rank: s.Rank + d.Rank}
}

// String returns the coordinate form "(file,rank)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
}

// Index returns the square number 0..63 (rank-major), or -1 if off the board.
func (s Square) Index() int {
	if !s.Valid() {
		return -1
	}
	return s.Rank*BoardSize + s.File
}

// AllSquares returns all 64 squares in index order.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for rank := MinCoord; rank <= MaxCoord; rank++ {
		for file := MinCoord; file <= MaxCoord; file++ {
			squares = append(squares, Square{File: file, Rank: rank})
		}
	}
	return squares
}

// Path is an ordered sequence of squares from a start square to an end square.
type Path []Square

// Moves returns the number of moves in the path (len-1), or 0 for an empty path.
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Start returns the first square. It panics on an empty path.
func (p Path) Start() Square {
	return p[0]
}

// End returns the last square. It panics on an empty path.
func (p Path) End() Square {
	return p[len(p)-1]
}

// IsKnightTour reports whether every consecutive pair in p is one knight move
// apart and every square is on the board.
func (p Path) IsKnightTour() bool {
	for i, sq := range p {
		if !sq.Valid() {
			return false
		}
		if i > 0 && !IsKnightMove(p[i-1], sq) {
			return false
		}
	}
	return true
}

func inRange(c int) bool {
	return c >= MinCoord && c <= MaxCoord
}
