// SPDX-License-Identifier: MIT

package maze

import "github.com/zyedidia/generic/mapset"

// Reachable reports whether to can be reached from from through legal
// moves. It runs a breadth-first flood over Neighbors.
// Complexity: O(R×C×8) time, O(R×C) memory.
func (m *Maze) Reachable(from, to Coord) bool {
	if !m.InBounds(from) || !m.InBounds(to) {
		return false
	}
	if from == to {
		return true
	}
	visited := mapset.New[Coord]()
	visited.Put(from)
	queue := []Coord{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range m.Neighbors(cur) {
			if visited.Has(n) {
				continue
			}
			if n == to {
				return true
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return false
}

// Solvable reports whether Exit is reachable from Start.
func (m *Maze) Solvable() bool { return m.Reachable(m.start, m.exit) }

// Components partitions the passable cells into regions connected by legal
// moves. Regions appear in row-major order of their first cell; cells within
// a region appear in flood order.
// Complexity: O(R×C×8) time, O(R×C) memory.
func (m *Maze) Components() [][]Coord {
	seen := mapset.New[Coord]()
	var comps [][]Coord
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			c0 := Coord{Row: r, Col: c}
			if m.blocked(c0) || seen.Has(c0) {
				continue
			}
			seen.Put(c0)
			comp := []Coord{c0}
			for qi := 0; qi < len(comp); qi++ {
				for _, n := range m.Neighbors(comp[qi]) {
					if !seen.Has(n) {
						seen.Put(n)
						comp = append(comp, n)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}
