// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a graph.Matrix, including
// the randomized "multistart" restart policy used in the uninformed-search
// experiments.
//
// What
//
//   - BFS: textbook FIFO search from start; stops once goal is inspected.
//   - Multistart: per execution
//     1. inspect start and generate its unvisited neighbours with their weights;
//     2. pick the lightest ("best") and heaviest ("worst") neighbour and let an
//     unbiased coin from the rng.Source choose one of them;
//     3. run FIFO BFS from the chosen node only, keeping the visited marks of
//     step 1, so the start and its other neighbours are never re-entered;
//     4. success iff goal was marked visited; the path follows parent links
//     back to start.
//     Failed executions are retried up to MaxExecutions (default 10); after
//     that the last failing attempt is returned.
//   - Every step appends a cumulative graph.Snapshot to Result.Logs.
//
// Determinism
//
//	Neighbours are expanded in ascending index order. Ties on weight keep
//	ascending index order too, so "best" is the lowest-index lightest node and
//	"worst" the highest-index heaviest node. With a seeded rng.Source the whole
//	run is reproducible; the default source is seeded from crypto/rand.
//
// Complexity (N = nodes)
//
//   - BFS:        O(N²) on the dense matrix.
//   - Multistart: O(MaxExecutions · N²).
//
// Errors
//
//   - ErrGraphNil: nil graph.
//   - ErrOutOfRange: start or goal outside [0, N) (also matches graph.ErrOutOfRange).
//   - ErrOptionViolation: MaxExecutions < 1 or nil source.
//
// "No path" is not an error: Result.Found is false.
package bfs
