// SPDX-License-Identifier: MIT

package astar

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/maze"
)

// runner holds the mutable state of a single A* invocation.
type runner struct {
	m      *maze.Maze
	opts   Options
	goal   maze.Coord
	nodes  [][]Node               // cost matrix
	open   []maze.Coord           // insertion-ordered frontier
	opened mapset.Set[maze.Coord] // membership index for open
	closed mapset.Set[maze.Coord] // expanded cells
	res    *Result
}

// Search runs A* from start to m.Exit().
//
// Preconditions, in order: m non-nil (ErrMazeNil), options valid
// (ErrOptionViolation), start inside the grid (ErrStartOutOfRange).
// The maze is only read.
func Search(m *maze.Maze, start maze.Coord, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !m.InBounds(start) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrStartOutOfRange, start, m.Rows(), m.Cols())
	}

	r := &runner{
		m:      m,
		opts:   o,
		goal:   m.Exit(),
		nodes:  make([][]Node, m.Rows()),
		opened: mapset.New[maze.Coord](),
		closed: mapset.New[maze.Coord](),
		res:    &Result{Heuristic: o.Heuristic.Name()},
	}
	for i := range r.nodes {
		r.nodes[i] = make([]Node, m.Cols())
	}

	h := o.Heuristic.Estimate(m, start)
	r.generate(Node{Coord: start, G: 0, H: h, F: h})
	r.loop()

	return r.res, nil
}

// generate stores n in the cost matrix and appends it to open.
func (r *runner) generate(n Node) {
	r.nodes[n.Row][n.Col] = n
	r.open = append(r.open, n.Coord)
	r.opened.Put(n.Coord)
	r.res.Generated++
	r.res.GeneratedOrder = append(r.res.GeneratedOrder, n.Coord)
	r.opts.OnGenerate(n)
}

// popMin removes and returns the first open cell with the smallest f.
func (r *runner) popMin() Node {
	best := 0
	for i := 1; i < len(r.open); i++ {
		c := r.open[i]
		if r.nodes[c.Row][c.Col].F < r.nodes[r.open[best].Row][r.open[best].Col].F {
			best = i
		}
	}
	c := r.open[best]
	r.open = append(r.open[:best], r.open[best+1:]...)
	r.opened.Remove(c)
	return r.nodes[c.Row][c.Col]
}

// loop expands nodes until the goal is inspected or open is exhausted.
func (r *runner) loop() {
	for len(r.open) > 0 {
		cur := r.popMin()
		r.closed.Put(cur.Coord)
		r.res.Inspected++
		r.res.InspectedOrder = append(r.res.InspectedOrder, cur.Coord)
		r.opts.OnInspect(cur)
		r.opts.Logger.WithFields(logrus.Fields{
			"row":       cur.Row,
			"col":       cur.Col,
			"g":         cur.G,
			"h":         cur.H,
			"f":         cur.F,
			"generated": r.res.Generated,
			"inspected": r.res.Inspected,
		}).Debug("astar: inspect")

		if cur.Coord == r.goal {
			r.res.Found = true
			r.res.Cost = cur.G
			r.res.Path = r.reconstruct(cur.Coord)
			return
		}
		r.expand(cur)
	}
}

// expand generates or relaxes every legal neighbour of cur.
func (r *runner) expand(cur Node) {
	for _, nb := range r.m.Neighbors(cur.Coord) {
		if r.closed.Has(nb) {
			continue
		}
		g := cur.G + r.m.MoveCost(cur.Coord, nb)
		if r.opened.Has(nb) {
			n := &r.nodes[nb.Row][nb.Col]
			if g < n.G {
				n.G = g
				n.F = g + n.H
				n.Parent = cur.Coord
			}
			continue
		}
		h := r.opts.Heuristic.Estimate(r.m, nb)
		r.generate(Node{Coord: nb, G: g, H: h, F: g + h, Parent: cur.Coord, HasParent: true})
	}
}

// reconstruct follows parent links back from c and reverses them.
func (r *runner) reconstruct(c maze.Coord) []maze.Coord {
	var path []maze.Coord
	for {
		n := r.nodes[c.Row][c.Col]
		path = append(path, c)
		if !n.HasParent {
			break
		}
		c = n.Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
