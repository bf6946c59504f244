// SPDX-License-Identifier: MIT

// Package graph models the weighted undirected graph used by the
// uninformed searches: N nodes and a dense symmetric distance matrix.
//
// What:
//
//   - Matrix stores d(i,j) for every pair; NoEdge (-1) marks a missing
//     edge and the diagonal is 0.
//   - Two distinct nodes are adjacent iff their distance is strictly positive.
//   - Neighbors lists adjacent nodes in ascending index order, which fixes
//     the expansion order of bfs and dfs.
//   - Snapshot is the accumulated generated/inspected trace shared by both
//     searches.
//
// File format (Load):
//
//	N
//	d(0,1)
//	d(0,2)
//	...
//	d(N-2,N-1)
//
// one value per line, upper triangle in row-major order. Node indices are
// 0-based in the API and 1-based in reports.
//
// Complexity:
//
//   - Load: O(N²). Neighbors: O(N). Weight, HasEdge: O(1).
//
// Errors:
//
//   - ErrFormat: bad node count, unparsable or missing distance line.
//   - ErrOutOfRange: node index outside [0, N).
//   - ErrNoEdge: Weight or PathCost across a missing edge.
package graph
