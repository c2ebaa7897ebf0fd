package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/knight-moves-go/internal/board"
	"github.com/lgbarn/knight-moves-go/internal/config"
	"github.com/lgbarn/knight-moves-go/internal/pathfind"
)

// FormatSquare renders sq in the given notation: "[ 3, 4 ]" or "d5".
func FormatSquare(sq board.Square, notation config.Notation) string {
	if notation == config.Algebraic && sq.Valid() {
		return sq.Algebraic()
	}
	return fmt.Sprintf("[ %d, %d ]", sq.File, sq.Rank)
}

// FormatText renders a result in the report format:
//
//	You made it in 2 moves! Here's your path:
//	[ 0, 0 ]
//	[ 1, 2 ]
//	[ 3, 3 ]
func FormatText(res pathfind.Result, cfg *config.OutputConfig) string {
	if !res.Found {
		return "No path found!\n"
	}

	var sb strings.Builder
	moves := res.Moves()
	noun := "moves"
	if moves == 1 {
		noun = "move"
	}
	fmt.Fprintf(&sb, "You made it in %d %s! Here's your path:\n", moves, noun)
	if cfg.IncludeStats {
		fmt.Fprintf(&sb, "(searched %d squares)\n", res.Expanded)
	}
	for _, sq := range res.Path {
		sb.WriteString(FormatSquare(sq, cfg.Notation))
		sb.WriteByte('\n')
	}
	return sb.String()
}
