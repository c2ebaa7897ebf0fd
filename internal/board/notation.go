package board

import (
	"strconv"
	"strings"

	"github.com/notnil/chess"

	"github.com/lgbarn/knight-moves-go/internal/errors"
)

var (
	algebraicNames [BoardSize][BoardSize]string
	squaresByName  = make(map[string]Square, BoardSize*BoardSize)
)

func init() {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		s := Square{File: int(sq.File()), Rank: int(sq.Rank())}
		name := sq.String()
		algebraicNames[s.File][s.Rank] = name
		squaresByName[name] = s
	}
}

// Algebraic returns the algebraic name of s ("a1".."h8"), or "" if s is off the board.
func (s Square) Algebraic() string {
	if !s.Valid() {
		return ""
	}
	return algebraicNames[s.File][s.Rank]
}

// ParseSquare parses a square in coordinate form ("3,4", "[3,4]", "[ 3, 4 ]",
// "(3,4)") or algebraic form ("d5"). Coordinate input that is well formed but
// off the board is returned as-is; callers validate it with Square.Validate.
func ParseSquare(text string) (Square, error) {
	s := strings.TrimSpace(text)
	if strings.Contains(s, ",") {
		return parseCoordinates(text, s)
	}
	if sq, ok := squaresByName[strings.ToLower(s)]; ok {
		return sq, nil
	}
	return Square{}, &errors.SquareError{Err: errors.ErrInvalidInput, Input: text}
}

func parseCoordinates(raw, s string) (Square, error) {
	s = trimBrackets(s)
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Square{}, &errors.SquareError{Err: errors.ErrInvalidInput, Input: raw}
	}
	file, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Square{}, &errors.SquareError{Err: errors.ErrInvalidInput, Input: raw}
	}
	rank, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Square{}, &errors.SquareError{Err: errors.ErrInvalidInput, Input: raw}
	}
	return Square{File: file, Rank: rank}, nil
}

// trimBrackets strips one matching pair of [] or () around s.
func trimBrackets(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '[' && last == ']') || (first == '(' && last == ')') {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
