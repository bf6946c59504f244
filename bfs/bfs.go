// SPDX-License-Identifier: MIT

package bfs

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/graph"
)

// walker encapsulates the state of one BFS attempt.
type walker struct {
	g         *graph.Matrix
	goal      int
	visited   []bool
	parent    []int
	generated []int
	inspected []int
	seen      mapset.Set[int] // membership index for inspected
	logs      []graph.Snapshot
}

func newWalker(g *graph.Matrix, goal int) *walker {
	w := &walker{
		g:       g,
		goal:    goal,
		visited: make([]bool, g.Order()),
		parent:  make([]int, g.Order()),
		seen:    mapset.New[int](),
	}
	for i := range w.parent {
		w.parent[i] = -1
	}
	return w
}

func (w *walker) snapshot() {
	w.logs = append(w.logs, graph.Capture(w.generated, w.inspected))
}

// generate marks v visited from parent p (-1 for the root).
func (w *walker) generate(v, p int) {
	w.visited[v] = true
	w.parent[v] = p
	w.generated = append(w.generated, v)
}

// inspect records u once.
func (w *walker) inspect(u int) {
	if w.seen.Has(u) {
		return
	}
	w.seen.Put(u)
	w.inspected = append(w.inspected, u)
}

// drain runs FIFO BFS from the queue until goal is inspected or the queue
// empties. One snapshot is taken per inspected node.
func (w *walker) drain(queue []int) {
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		w.inspect(u)
		// generate unvisited neighbours in ascending index order
		nbs, _ := w.g.Neighbors(u)
		for _, v := range nbs {
			if !w.visited[v] {
				w.generate(v, u)
				queue = append(queue, v)
			}
		}
		w.snapshot()
		if u == w.goal {
			return
		}
	}
}

// result builds the Result of this attempt.
func (w *walker) result() *Result {
	res := &Result{Logs: w.logs, Selected: -1}
	if !w.visited[w.goal] {
		return res
	}
	var path []int
	for v := w.goal; v != -1; v = w.parent[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	res.Found = true
	res.Path = path
	res.Cost, _ = w.g.PathCost(path)
	return res
}

// BFS runs textbook breadth-first search from start and reports the first
// path to goal in the BFS tree.
func BFS(g *graph.Matrix, start, goal int, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	w := newWalker(g, goal)
	w.generate(start, -1)
	w.snapshot()
	w.drain([]int{start})

	res := w.result()
	res.Executions = 1
	o.Logger.WithField("found", res.Found).Debug("bfs: done")
	return res, nil
}
