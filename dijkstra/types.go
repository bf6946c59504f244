// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmaze/maze"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilMaze indicates that a nil *maze.Maze was passed.
	ErrNilMaze = errors.New("dijkstra: maze is nil")

	// ErrSourceRange indicates the source cell is outside the grid.
	ErrSourceRange = fmt.Errorf("dijkstra: source %w", maze.ErrOutOfRange)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the search.
//
// MaxDistance – cells farther than this are left at +Inf. Default +Inf.
type Options struct {
	MaxDistance float64
	err         error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithMaxDistance caps exploration at limit. Negative values surface as
// ErrBadMaxDistance when the search runs.
func WithMaxDistance(limit float64) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: got %g", ErrBadMaxDistance, limit)
			return
		}
		o.MaxDistance = limit
	}
}

// Result holds the distance and predecessor matrices of one run.
type Result struct {
	Source maze.Coord
	Dist   [][]float64 // +Inf for unreached cells
	Prev   [][]maze.Coord
	seen   [][]bool
}

// Reached reports whether c was reached from the source.
func (r *Result) Reached(c maze.Coord) bool {
	if c.Row < 0 || c.Row >= len(r.Dist) || c.Col < 0 || c.Col >= len(r.Dist[0]) {
		return false
	}
	return !math.IsInf(r.Dist[c.Row][c.Col], 1)
}

// PathTo reconstructs the cheapest path from Source to dest.
func (r *Result) PathTo(dest maze.Coord) ([]maze.Coord, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("dijkstra: no path to %v", dest)
	}
	path := []maze.Coord{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Prev[cur.Row][cur.Col]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// nodeItem represents a cell and its tentative distance from the source.
type nodeItem struct {
	at   maze.Coord
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap exchanges two entries.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; used by container/heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes the last element; used by container/heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
