package board

// Delta is a (file, rank) offset.
type Delta struct {
	File int
	Rank int
}

// KnightDeltas lists the eight knight-move offsets. Neighbour generation
// follows this order, which fixes which shortest path a search reports.
var KnightDeltas = [8]Delta{
	{1, 2},
	{1, -2},
	{-1, 2},
	{-1, -2},
	{2, 1},
	{2, -1},
	{-2, 1},
	{-2, -1},
}

// KnightMoves returns the on-board squares a knight on sq can reach, in
// KnightDeltas order. It returns nil if sq itself is off the board.
func KnightMoves(sq Square) []Square {
	if !sq.Valid() {
		return nil
	}
	moves := make([]Square, 0, len(KnightDeltas))
	for _, d := range KnightDeltas {
		if next := sq.Add(d); next.Valid() {
			moves = append(moves, next)
		}
	}
	return moves
}

// IsKnightMove checks if a knight can move from one square to the other.
func IsKnightMove(from, to Square) bool {
	fileDiff := abs(to.File - from.File)
	rankDiff := abs(to.Rank - from.Rank)
	return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)
}

// KnightGraph is the 64-square knight-move graph.
type KnightGraph struct{}

// Neighbors returns the knight moves from sq.
func (KnightGraph) Neighbors(sq Square) []Square {
	return KnightMoves(sq)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
