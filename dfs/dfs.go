// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/graph"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	g         *graph.Matrix
	opts      Options
	goal      int
	visited   mapset.Set[int]
	parent    []int
	generated []int
	inspected []int
	logs      []graph.Snapshot
}

// Search runs DFS from start and returns the first path found to goal.
// A missing path is reported through Result.Found, not as an error.
func Search(g *graph.Matrix, start, goal int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	for _, v := range []int{start, goal} {
		if v < 0 || v >= g.Order() {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, v, g.Order())
		}
	}

	w := &dfsWalker{
		g:       g,
		opts:    o,
		goal:    goal,
		visited: mapset.New[int](),
		parent:  make([]int, g.Order()),
	}
	for i := range w.parent {
		w.parent[i] = -1
	}
	w.generated = append(w.generated, start)
	w.snapshot()

	found, err := w.traverse(start, 0)
	res := &Result{Logs: w.logs}
	if err != nil {
		return res, err
	}
	if found {
		for v := goal; v != -1; v = w.parent[v] {
			res.Path = append(res.Path, v)
		}
		for i, j := 0, len(res.Path)-1; i < j; i, j = i+1, j-1 {
			res.Path[i], res.Path[j] = res.Path[j], res.Path[i]
		}
		res.Found = true
		res.Cost, _ = g.PathCost(res.Path)
	}
	return res, nil
}

func (w *dfsWalker) snapshot() {
	w.logs = append(w.logs, graph.Capture(w.generated, w.inspected))
}

// traverse inspects u and recurses into each unvisited neighbour.
func (w *dfsWalker) traverse(u, depth int) (bool, error) {
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	w.visited.Put(u)
	w.inspected = append(w.inspected, u)
	w.snapshot()
	w.opts.Logger.WithFields(logrus.Fields{"node": u, "depth": depth}).Debug("dfs: inspect")
	if err := w.opts.OnVisit(u, depth); err != nil {
		return false, fmt.Errorf("dfs: OnVisit hook for %d: %w", u, err)
	}
	if u == w.goal {
		return true, nil
	}

	nbs, err := w.g.Neighbors(u)
	if err != nil {
		return false, fmt.Errorf("dfs: Neighbors(%d): %w", u, err)
	}
	for _, v := range nbs {
		if w.visited.Has(v) {
			continue
		}
		w.generated = append(w.generated, v)
		w.parent[v] = u
		found, err := w.traverse(v, depth+1)
		if err != nil || found {
			return found, err
		}
	}
	return false, nil
}
