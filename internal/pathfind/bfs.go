package pathfind

import (
	"github.com/lgbarn/knight-moves-go/internal/errors"
)

// Graph yields the neighbours of a node in a fixed order.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) []NodeType
}

// searchResult is the raw outcome of one breadth-first search.
type searchResult[NodeType comparable] struct {
	Path     []NodeType
	Found    bool
	Expanded int
}

// breadthFirst searches graph from startNode until goalNode is dequeued.
// An exhausted frontier is reported as Found == false with a nil error.
func breadthFirst[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
) (searchResult[NodeType], error) {
	queue := []NodeType{startNode}
	visited := map[NodeType]bool{startNode: true}
	cameFrom := make(map[NodeType]NodeType)

	expanded := 0
	for head := 0; head < len(queue); head++ {
		current := queue[head]
		expanded++

		if current == goalNode {
			path, err := reconstructPath(cameFrom, startNode, goalNode)
			if err != nil {
				return searchResult[NodeType]{Expanded: expanded}, err
			}
			return searchResult[NodeType]{Path: path, Found: true, Expanded: expanded}, nil
		}

		for _, neighbor := range graph.Neighbors(current) {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			cameFrom[neighbor] = current
			queue = append(queue, neighbor)
		}
	}

	return searchResult[NodeType]{Expanded: expanded}, nil
}

// reconstructPath walks cameFrom back from goal to start and returns the path
// in start-to-goal order. A break in the chain is an internal inconsistency.
func reconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	start NodeType,
	goal NodeType,
) ([]NodeType, error) {
	path := []NodeType{goal}
	current := goal
	for current != start {
		previous, ok := cameFrom[current]
		if !ok {
			return nil, errors.Wrapf(errors.ErrPathReconstruction, "no predecessor recorded for %v", current)
		}
		path = append(path, previous)
		current = previous
		if len(path) > len(cameFrom)+1 {
			return nil, errors.Wrapf(errors.ErrPathReconstruction, "predecessor cycle through %v", current)
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
