package output

import (
	"github.com/lgbarn/knight-moves-go/internal/board"
	"github.com/lgbarn/knight-moves-go/internal/config"
	"github.com/lgbarn/knight-moves-go/internal/pathfind"
)

// JSONSquare represents a square in JSON format.
type JSONSquare struct {
	File int    `json:"file"`
	Rank int    `json:"rank"`
	Name string `json:"name,omitempty"` // algebraic, empty when off the board
}

// JSONResult represents one query result in JSON format.
type JSONResult struct {
	Start    JSONSquare   `json:"start"`
	End      JSONSquare   `json:"end"`
	Found    bool         `json:"found"`
	Moves    int          `json:"moves"` // -1 when not found
	Path     []JSONSquare `json:"path,omitempty"`
	Expanded int          `json:"expanded,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// JSONOutput holds multiple results for document output.
type JSONOutput struct {
	Results []JSONResult `json:"results"`
}

// SquareToJSON converts a square to JSON format.
func SquareToJSON(sq board.Square) JSONSquare {
	return JSONSquare{File: sq.File, Rank: sq.Rank, Name: sq.Algebraic()}
}

// ResultToJSON converts a path result to JSON format.
func ResultToJSON(res pathfind.Result, cfg *config.OutputConfig) JSONResult {
	jr := JSONResult{
		Start: SquareToJSON(res.Start),
		End:   SquareToJSON(res.End),
		Found: res.Found,
		Moves: res.Moves(),
	}
	if res.Found {
		jr.Path = make([]JSONSquare, len(res.Path))
		for i, sq := range res.Path {
			jr.Path[i] = SquareToJSON(sq)
		}
	}
	if cfg.IncludeStats {
		jr.Expanded = res.Expanded
	}
	return jr
}

// FailureToJSON converts a failed query to JSON format.
func FailureToJSON(start, end board.Square, err error) JSONResult {
	return JSONResult{
		Start: SquareToJSON(start),
		End:   SquareToJSON(end),
		Moves: -1,
		Error: err.Error(),
	}
}
