// SPDX-License-Identifier: MIT

// Package astar implements A* search over a maze.Maze, from any cell to the
// maze's Exit, under an injected heuristic strategy.
//
// What
//
//   - Search runs one A* invocation and returns a Result with the found path,
//     its cost, and the generated/inspected counters and orders.
//   - The heuristic is a strategy value (Manhattan or Octile, or any type
//     implementing Heuristic) rather than one search routine per formula.
//   - Hooks (WithOnGenerate, WithOnInspect) observe node creation and expansion.
//
// Semantics
//
//   - The open set is a slice scanned linearly for the minimum f. Ties keep
//     the node that was generated first, so runs are fully reproducible.
//   - A better path to an open cell updates its g, f and parent in place; h is
//     never recomputed. At most one node per cell is ever open.
//   - A closed cell is never reopened. The search makes no optimality promise
//     for an arbitrary Heuristic; Octile is consistent with the 5/7 move
//     costs, so its paths are optimal.
//   - All search state (open, closed, cost matrix) is rebuilt on every call.
//
// Complexity (N = R×C cells)
//
//   - Time:   O(N²) worst case for the linear open-set scan.
//   - Memory: O(N) for the cost matrix and the sets.
//
// Errors
//
//   - ErrMazeNil: nil maze.
//   - ErrStartOutOfRange: start outside the grid (also matches maze.ErrOutOfRange).
//   - ErrOptionViolation: nil heuristic.
//
// "No path" is not an error: Result.Found is false and Result.Path is empty.
package astar
