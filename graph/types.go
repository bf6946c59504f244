// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"fmt"
)

// NoEdge marks the absence of an edge in the distance matrix.
const NoEdge = -1.0

// Sentinel errors for graph operations.
var (
	// ErrFormat indicates a malformed or truncated graph file.
	ErrFormat = errors.New("graph: malformed instance")
	// ErrOutOfRange indicates a node index outside the graph.
	ErrOutOfRange = errors.New("graph: node index out of range")
	// ErrNoEdge indicates a query across a missing edge.
	ErrNoEdge = errors.New("graph: no edge between nodes")
)

// Snapshot is the cumulative search state recorded at one step.
type Snapshot struct {
	Generated []int
	Inspected []int
}

// Capture copies the current generated/inspected slices.
func Capture(generated, inspected []int) Snapshot {
	return Snapshot{
		Generated: append([]int(nil), generated...),
		Inspected: append([]int(nil), inspected...),
	}
}

// Matrix is a symmetric weighted adjacency matrix.
type Matrix struct {
	n     int
	dist  [][]float64
	edges int
}

// New returns an n-node graph with no edges.
func New(n int) (*Matrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: node count must be ≥ 1, got %d", ErrFormat, n)
	}
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = NoEdge
			}
		}
	}
	return &Matrix{n: n, dist: d}, nil
}

// check validates a node index.
func (g *Matrix) check(i int) error {
	if i < 0 || i >= g.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, g.n)
	}
	return nil
}

// SetWeight stores w symmetrically for i≠j. Positive weights form an edge;
// NoEdge (or any non-positive value) removes it.
func (g *Matrix) SetWeight(i, j int, w float64) error {
	if err := g.check(i); err != nil {
		return err
	}
	if err := g.check(j); err != nil {
		return err
	}
	if i == j {
		return fmt.Errorf("%w: self loop at %d", ErrOutOfRange, i)
	}
	if g.dist[i][j] > 0 {
		g.edges--
	}
	if w > 0 {
		g.edges++
	}
	g.dist[i][j], g.dist[j][i] = w, w
	return nil
}

// Order returns the node count N.
func (g *Matrix) Order() int { return g.n }

// EdgeCount returns the number of pairs with a positive distance.
func (g *Matrix) EdgeCount() int { return g.edges }

// Distance returns the raw matrix entry, NoEdge included.
func (g *Matrix) Distance(i, j int) (float64, error) {
	if err := g.check(i); err != nil {
		return 0, err
	}
	if err := g.check(j); err != nil {
		return 0, err
	}
	return g.dist[i][j], nil
}

// HasEdge reports whether d(i,j) > 0.
func (g *Matrix) HasEdge(i, j int) (bool, error) {
	d, err := g.Distance(i, j)
	if err != nil {
		return false, err
	}
	return d > 0, nil
}

// Weight returns d(i,j), or ErrNoEdge when the nodes are not adjacent.
func (g *Matrix) Weight(i, j int) (float64, error) {
	d, err := g.Distance(i, j)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %d-%d", ErrNoEdge, i, j)
	}
	return d, nil
}

// Neighbors returns the nodes adjacent to i in ascending order.
func (g *Matrix) Neighbors(i int) ([]int, error) {
	if err := g.check(i); err != nil {
		return nil, err
	}
	out := make([]int, 0, g.n)
	for j, d := range g.dist[i] {
		if d > 0 {
			out = append(out, j)
		}
	}
	return out, nil
}

// PathCost sums the edge weights along path. Paths shorter than two nodes cost 0.
func (g *Matrix) PathCost(path []int) (float64, error) {
	total := 0.0
	for k := 1; k < len(path); k++ {
		w, err := g.Weight(path[k-1], path[k])
		if err != nil {
			return 0, err
		}
		total += w
	}
	return total, nil
}
