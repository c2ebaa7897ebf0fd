// Package pathfind finds shortest knight paths on a standard chessboard.
//
// It exposes two entry points:
//
//   - Finder.ShortestPath: breadth-first search from one square to another,
//     returning the first shortest path found under the fixed neighbour order.
//   - DistancesFrom: knight distances from one square to every square.
//
// Every call owns its search state; a Finder holds no mutable state and may be
// shared between goroutines.
package pathfind
