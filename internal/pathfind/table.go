package pathfind

import (
	"github.com/lgbarn/knight-moves-go/internal/board"
)

// Unreachable marks a square with no knight path from the source.
const Unreachable = -1

// DistanceTable holds knight distances from Source, indexed [file][rank].
type DistanceTable struct {
	Source    board.Square
	Distances [board.BoardSize][board.BoardSize]int
}

// At returns the distance to sq, or Unreachable for an off-board square.
func (t *DistanceTable) At(sq board.Square) int {
	if !sq.Valid() {
		return Unreachable
	}
	return t.Distances[sq.File][sq.Rank]
}

// Max returns the largest finite distance in the table.
func (t *DistanceTable) Max() int {
	longest := 0
	for _, sq := range board.AllSquares() {
		if d := t.At(sq); d > longest {
			longest = d
		}
	}
	return longest
}

// DistancesFrom returns the knight distance from source to every square.
func (f *Finder) DistancesFrom(source board.Square) (*DistanceTable, error) {
	if err := source.Validate("source"); err != nil {
		return nil, err
	}

	table := &DistanceTable{Source: source}
	for file := range table.Distances {
		for rank := range table.Distances[file] {
			table.Distances[file][rank] = Unreachable
		}
	}

	table.Distances[source.File][source.Rank] = 0
	queue := []board.Square{source}
	for head := 0; head < len(queue); head++ {
		current := queue[head]
		next := table.Distances[current.File][current.Rank] + 1
		for _, neighbor := range f.graph.Neighbors(current) {
			if !neighbor.Valid() || table.Distances[neighbor.File][neighbor.Rank] != Unreachable {
				continue
			}
			table.Distances[neighbor.File][neighbor.Rank] = next
			queue = append(queue, neighbor)
		}
	}
	return table, nil
}

// DistancesFrom runs Finder.DistancesFrom on the standard board.
func DistancesFrom(source board.Square) (*DistanceTable, error) {
	return defaultFinder.DistancesFrom(source)
}
