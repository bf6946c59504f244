// SPDX-License-Identifier: MIT

// Package lvmaze is a search playground: informed search (A*) on a grid
// maze that can change under the agent's feet, and uninformed search
// (BFS, DFS) on small weighted graphs.
//
// What is inside?
//
//	maze/     : grid cells, loader, 8-connected moves with the corner rule,
//	            5/7 move costs, relocation of Start/Exit, random mutation
//	astar/    : A* parameterized by a Heuristic (Manhattan, Octile)
//	dijkstra/ : uniform-cost search on the same maze, the optimality oracle
//	navigate/ : plan, take one step, mutate, repeat until Exit or give up
//	graph/    : symmetric weighted adjacency matrix and its loader
//	bfs/      : textbook BFS and the multistart variant with a coin flip
//	dfs/      : recursive DFS with a per-step trace
//	report/   : text reports and PNG snapshots
//	view/     : terminal viewer (tcell)
//	config/   : YAML run configuration
//	rng/      : pluggable random source
//
// Two programs sit on top: cmd/lvmaze (A* and the dynamic loop) and
// cmd/lvgraph (BFS/DFS).
//
// Quick ASCII example (3 = Start, 4 = Exit, 1 = obstacle):
//
//	3 0 0 0 0
//	0 0 0 0 0
//	0 1 1 1 1      A* with the octile heuristic walks down column 0,
//	0 0 0 0 0      slips diagonally under the wall and reaches (4,4)
//	0 0 0 0 4      for a cost of 34.
//
//	go install github.com/katalvlaran/lvmaze/cmd/lvmaze@latest
package lvmaze
