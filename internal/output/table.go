package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/knight-moves-go/internal/board"
	"github.com/lgbarn/knight-moves-go/internal/config"
	"github.com/lgbarn/knight-moves-go/internal/pathfind"
)

// FormatTable renders a distance table as a grid with the highest rank at the top.
// Unreachable squares are shown as '-'.
func FormatTable(table *pathfind.DistanceTable, notation config.Notation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Knight distances from %s:\n", FormatSquare(table.Source, notation))

	for rank := board.MaxCoord; rank >= board.MinCoord; rank-- {
		sb.WriteString(rankLabel(rank, notation))
		sb.WriteString(" |")
		for file := board.MinCoord; file <= board.MaxCoord; file++ {
			d := table.At(board.Sq(file, rank))
			if d == pathfind.Unreachable {
				sb.WriteString(" -")
			} else {
				fmt.Fprintf(&sb, " %d", d)
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("   ")
	for file := board.MinCoord; file <= board.MaxCoord; file++ {
		sb.WriteByte(' ')
		sb.WriteString(fileLabel(file, notation))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// WriteTable writes FormatTable output to w.
func WriteTable(w io.Writer, table *pathfind.DistanceTable, notation config.Notation) error {
	_, err := io.WriteString(w, FormatTable(table, notation))
	return err
}

func rankLabel(rank int, notation config.Notation) string {
	if notation == config.Algebraic {
		return fmt.Sprintf("%d", rank+1)
	}
	return fmt.Sprintf("%d", rank)
}

func fileLabel(file int, notation config.Notation) string {
	if notation == config.Algebraic {
		return string(rune('a' + file))
	}
	return fmt.Sprintf("%d", file)
}
