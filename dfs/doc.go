// SPDX-License-Identifier: MIT

// Package dfs implements recursive depth-first search over a graph.Matrix
// with backtracking and a cumulative trace of generated and inspected nodes.
//
// Semantics:
//
//   - The start node is generated and a first snapshot is taken before any
//     node is inspected.
//   - On entering a node it is marked visited and inspected, a snapshot is
//     appended, and only then is it compared with the goal.
//   - Unvisited neighbours are generated in ascending index order, each one
//     immediately followed by a recursive descent (generation is lazy, not
//     all children at once).
//   - The first path that reaches the goal is returned; it is not
//     necessarily the cheapest.
//
// Complexity:
//
//   - Time:   O(N²) on the dense matrix.
//   - Memory: O(N) for the recursion stack and marks, plus O(N²) for the trace.
//
// Options:
//
//   - WithContext(ctx)  allows cancellation via context.Context.
//   - WithOnVisit(fn)   pre-order hook on inspection; error aborts traversal.
//   - WithLogger(l)     Debug trace per inspection.
//
// Errors:
//
//   - ErrGraphNil   if g is nil.
//   - ErrOutOfRange if start or goal is not a node.
//   - context.Canceled, or any error returned by OnVisit.
package dfs
