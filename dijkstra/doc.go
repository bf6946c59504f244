// SPDX-License-Identifier: MIT

// Package dijkstra computes exact uniform-cost distances over a maze.Maze,
// using the maze's own MoveCost (5 orthogonal, 7 diagonal) as edge weights.
//
// It is the optimality oracle for informed search: A* guided by a
// consistent heuristic must return a path whose cost equals ShortestCost.
//
// Complexity:
//
//   - Time:  O(N log N) with N = R×C cells (at most 8 relaxations per cell).
//   - Space: O(N) for the distance and predecessor matrices, plus the heap.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//
// Errors (sentinel):
//
//   - ErrNilMaze        if the provided maze pointer is nil.
//   - ErrSourceRange    if the source cell lies outside the grid.
//   - ErrBadMaxDistance if MaxDistance < 0.
package dijkstra
