// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmaze/maze"
)

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m    *maze.Maze
	opts Options
	res  *Result
	pq   nodePQ
}

// Dijkstra computes shortest distances from src to every cell of m.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMaze).
//  2. options must be valid (ErrBadMaxDistance).
//  3. src must be inside the grid (ErrSourceRange).
func Dijkstra(m *maze.Maze, src maze.Coord, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !m.InBounds(src) {
		return nil, fmt.Errorf("%w: %v", ErrSourceRange, src)
	}

	r := &runner{
		m:    m,
		opts: cfg,
		res: &Result{
			Source: src,
			Dist:   make([][]float64, m.Rows()),
			Prev:   make([][]maze.Coord, m.Rows()),
			seen:   make([][]bool, m.Rows()),
		},
		pq: make(nodePQ, 0, m.Rows()*m.Cols()),
	}
	r.init()
	r.process()
	return r.res, nil
}

// ShortestCost returns the cheapest cost from src to dst and whether dst is reachable.
func ShortestCost(m *maze.Maze, src, dst maze.Coord) (float64, bool, error) {
	res, err := Dijkstra(m, src)
	if err != nil {
		return 0, false, err
	}
	if !res.Reached(dst) {
		return math.Inf(1), false, nil
	}
	return res.Dist[dst.Row][dst.Col], true, nil
}

// init sets every distance to +Inf and pushes the source at 0.
func (r *runner) init() {
	inf := math.Inf(1)
	for i := range r.res.Dist {
		r.res.Dist[i] = make([]float64, r.m.Cols())
		r.res.Prev[i] = make([]maze.Coord, r.m.Cols())
		r.res.seen[i] = make([]bool, r.m.Cols())
		for j := range r.res.Dist[i] {
			r.res.Dist[i][j] = inf
		}
	}
	src := r.res.Source
	r.res.Dist[src.Row][src.Col] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{at: src, dist: 0})
}

// process pops cells in distance order and relaxes their neighbours.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the closest cell; stale heap entries are skipped.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.at
		if r.res.seen[u.Row][u.Col] {
			continue
		}
		// 2) The heap is ordered, so everything left is beyond the cap.
		if item.dist > r.opts.MaxDistance {
			break
		}
		// 3) Finalize u and relax its neighbours.
		r.res.seen[u.Row][u.Col] = true
		r.relax(u, item.dist)
	}
	// cells beyond the cap stay unreached
	if !math.IsInf(r.opts.MaxDistance, 1) {
		inf := math.Inf(1)
		for i := range r.res.Dist {
			for j := range r.res.Dist[i] {
				if !r.res.seen[i][j] {
					r.res.Dist[i][j] = inf
				}
			}
		}
	}
}

// relax improves every neighbour reachable from u.
func (r *runner) relax(u maze.Coord, d float64) {
	for _, v := range r.m.Neighbors(u) {
		nd := d + r.m.MoveCost(u, v)
		if nd >= r.res.Dist[v.Row][v.Col] {
			continue
		}
		r.res.Dist[v.Row][v.Col] = nd
		r.res.Prev[v.Row][v.Col] = u
		heap.Push(&r.pq, &nodeItem{at: v, dist: nd})
	}
}
