// SPDX-License-Identifier: MIT

// Package report renders mazes, search traces and graph searches as fixed
// text layouts, and exports maze snapshots as PNG images.
//
// Text layouts:
//
//   - WriteMaze       dimensions, endpoints and the grid.
//   - WriteSearch     one A* run: instance, heuristic, 0-based generated and
//     inspected coordinates, the grid with the path drawn, the arrow-joined
//     path and its cost with two decimals.
//   - WriteIteration  one round of the navigation loop.
//   - WriteSummary    the outcome of the navigation loop.
//   - WriteGraphSearch one BFS/DFS run with 1-based node indices.
//   - WriteMatrix     the adjacency matrix, INF for missing edges.
//
// Grid coordinates stay 0-based while graph nodes are printed 1-based; both
// layouts are kept as their readers expect them.
//
// Symbols are configurable: DefaultSymbols prints the file codes
// ('0','1','3','4'), BlankSymbols prints free cells as spaces.
//
// Errors:
//
//   - ErrNilInput if a maze, graph or result is missing.
//   - ErrCellSize if a PNG cell size is below one pixel.
//   - Any error returned by the underlying writer.
package report
