// SPDX-License-Identifier: MIT

package maze

import "math"

// Neighbors returns the legal one-step successors of c in the order
// NW, N, NE, W, E, SW, S, SE. A candidate is legal when it is in bounds,
// not an obstacle and, for diagonals, not both flanking orthogonal cells
// are obstacles. The kind of c itself is not inspected.
// Complexity: O(1).
func (m *Maze) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(compass))
	for _, d := range compass {
		n := Coord{c.Row + d[0], c.Col + d[1]}
		if m.CanStep(c, n) {
			out = append(out, n)
		}
	}
	return out
}

// CanStep reports whether a single move from a to b is legal under the
// Neighbors rule.
func (m *Maze) CanStep(a, b Coord) bool {
	if !a.Adjacent(b) || m.blocked(b) {
		return false
	}
	if a.Diagonal(b) {
		// corner cut: both cells sharing an edge with a and b are walls
		if m.blocked(Coord{a.Row, b.Col}) && m.blocked(Coord{b.Row, a.Col}) {
			return false
		}
	}
	return true
}

// MoveCost returns 5 for an orthogonal step, 7 for a diagonal step and
// +Inf when b is not a legal single step from a.
// Complexity: O(1).
func (m *Maze) MoveCost(a, b Coord) float64 {
	if !m.CanStep(a, b) {
		return math.Inf(1)
	}
	if a.Diagonal(b) {
		return DiagonalCost
	}
	return OrthogonalCost
}

// PathCost sums MoveCost over consecutive pairs. Paths shorter than two
// cells cost 0; any illegal step makes the total +Inf.
// Complexity: O(len(path)).
func (m *Maze) PathCost(path []Coord) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += m.MoveCost(path[i-1], path[i])
	}
	return total
}

// ManhattanDistance returns 3·(|Δrow|+|Δcol|). It drops by at most 3 per
// orthogonal and 6 per diagonal step, so it never exceeds MoveCost totals.
func ManhattanDistance(a, b Coord) float64 {
	return ManhattanWeight * float64(abs(a.Row-b.Row)+abs(a.Col-b.Col))
}

// OctileDistance returns 7·min(Δ) + 5·(max(Δ)−min(Δ)), the exact cost of
// an unobstructed path under MoveCost.
func OctileDistance(a, b Coord) float64 {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	lo, hi := dr, dc
	if lo > hi {
		lo, hi = hi, lo
	}
	return DiagonalCost*float64(lo) + OrthogonalCost*float64(hi-lo)
}
