// SPDX-License-Identifier: MIT

// Package maze models a rectangular grid environment for informed search:
// every cell is Free, Obstacle, Start or Exit, and the grid answers the
// topology, cost and heuristic queries an A* engine needs.
//
// What:
//
//   - Maze owns an R×C matrix of Kind values plus the Start and Exit coordinates.
//   - Neighbors enumerates the 8 compass cells in the fixed order
//     NW, N, NE, W, E, SW, S, SE, skipping obstacles and "corner cuts"
//     (a diagonal whose two flanking orthogonal cells are both obstacles).
//   - MoveCost charges 5 per orthogonal step and 7 per diagonal step.
//   - ManhattanDistance (weight 3) and OctileDistance (7/5, exact on an open
//     grid) estimate the remaining cost to Exit.
//   - Mutate applies stochastic dynamism under a maximum obstacle density.
//   - RelocateStart, RelocateExit and RelocateBoth move the endpoints along the border.
//
// Why:
//
//   - Classic "uninformed vs informed search" coursework: mazes that change
//     between agent steps force the planner to replan every iteration.
//
// Complexity:
//
//   - Neighbors, MoveCost, heuristics: O(1).
//   - PathCost: O(len(path)).
//   - Mutate: O(R×C) plus O(k) for the density-cap shuffle of k obstacles.
//   - Reachable: O(R×C×8) time, O(R×C) memory.
//
// File format (Load):
//
//	R
//	C
//	c00 c01 ... c0(C-1)
//	...
//
// with codes 0=free, 1=obstacle, 3=start, 4=exit. A file without a 3 (or 4)
// leaves Start (or Exit) at (0,0).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrFormat: malformed dimension, unknown cell code or truncated file.
//   - ErrOutOfRange: coordinate outside the grid.
//   - ErrInvalidPosition: illegal Start/Exit relocation; the grid is left untouched.
//   - ErrOptionViolation: invalid dynamics option (probability outside [0,1], etc.).
package maze
