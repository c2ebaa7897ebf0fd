package pathfind

import (
	"github.com/lgbarn/knight-moves-go/internal/board"
)

// Result is the outcome of a knight path query. Found is false when the end
// square cannot be reached; that is a normal result, not an error.
type Result struct {
	Start    board.Square
	End      board.Square
	Path     board.Path
	Found    bool
	Expanded int // squares dequeued by the search
}

// Moves returns the number of knight moves in the path, or -1 if no path was found.
func (r Result) Moves() int {
	if !r.Found {
		return -1
	}
	return r.Path.Moves()
}

// Options defines parameters for a Finder.
type Options struct {
	Graph Graph[board.Square]
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithGraph replaces the knight-move graph. Squares are still validated
// against the 8x8 board.
func WithGraph(graph Graph[board.Square]) Option {
	return func(options *Options) { options.Graph = graph }
}

// Finder computes shortest knight paths.
type Finder struct {
	graph Graph[board.Square]
}

// NewFinder creates a Finder over the standard knight-move graph.
func NewFinder(options ...Option) *Finder {
	opts := Options{Graph: board.KnightGraph{}}
	for _, option := range options {
		option(&opts)
	}
	return &Finder{graph: opts.Graph}
}

// ShortestPath returns the shortest knight path from start to end.
// Off-board squares fail with errors.ErrInvalidInput before any search.
func (f *Finder) ShortestPath(start, end board.Square) (Result, error) {
	if err := start.Validate("start"); err != nil {
		return Result{}, err
	}
	if err := end.Validate("end"); err != nil {
		return Result{}, err
	}

	res, err := breadthFirst(f.graph, start, end)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Start:    start,
		End:      end,
		Path:     board.Path(res.Path),
		Found:    res.Found,
		Expanded: res.Expanded,
	}, nil
}

var defaultFinder = NewFinder()

// ShortestPath runs Finder.ShortestPath on the standard board.
func ShortestPath(start, end board.Square) (Result, error) {
	return defaultFinder.ShortestPath(start, end)
}
