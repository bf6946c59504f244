// SPDX-License-Identifier: MIT

// Package maze provides the Maze grid environment. A Maze is mutable: its
// owner may relocate Start/Exit or apply dynamism between searches, while
// search engines only read it.
package maze

import "fmt"

// Move costs. The 7/5 ratio is 1.4 (≈√2) scaled by 5.
const (
	OrthogonalCost = 5.0
	DiagonalCost   = 7.0
	// ManhattanWeight scales the Manhattan heuristic.
	ManhattanWeight = 3.0
)

// compass lists the 8 neighbour offsets (dRow, dCol) in the fixed
// enumeration order NW, N, NE, W, E, SW, S, SE.
var compass = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Maze is an R×C grid with exactly one Start and one Exit cell.
type Maze struct {
	rows, cols int
	cells      [][]Kind
	start      Coord
	exit       Coord
}

// FromCodes builds a Maze from a rectangular matrix of instance codes.
// It deep-copies the input. The last cell coded 3 (resp. 4) becomes Start
// (resp. Exit); when none is present the coordinate stays (0,0).
// Complexity: O(R×C).
func FromCodes(codes [][]int) (*Maze, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(codes), len(codes[0])
	for _, row := range codes {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	m := newBlank(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			k, err := KindFromCode(codes[r][c])
			if err != nil {
				return nil, fmt.Errorf("%w at %v", err, Coord{r, c})
			}
			m.place(Coord{r, c}, k)
		}
	}
	return m, nil
}

// newBlank allocates an all-Free grid.
func newBlank(rows, cols int) *Maze {
	cells := make([][]Kind, rows)
	for r := range cells {
		cells[r] = make([]Kind, cols)
	}
	return &Maze{rows: rows, cols: cols, cells: cells}
}

// place writes k at c and tracks Start/Exit coordinates.
func (m *Maze) place(c Coord, k Kind) {
	m.cells[c.Row][c.Col] = k
	switch k {
	case Start:
		m.start = c
	case Exit:
		m.exit = c
	}
}

// Rows returns the row count R.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the column count C.
func (m *Maze) Cols() int { return m.cols }

// Start returns the Start coordinate.
func (m *Maze) Start() Coord { return m.start }

// Exit returns the Exit coordinate.
func (m *Maze) Exit() Coord { return m.exit }

// InBounds reports whether c lies inside the grid.
// Complexity: O(1).
func (m *Maze) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < m.rows && c.Col >= 0 && c.Col < m.cols
}

// IsBorder reports whether c is an in-bounds cell on the outer frame.
func (m *Maze) IsBorder(c Coord) bool {
	if !m.InBounds(c) {
		return false
	}
	return c.Row == 0 || c.Col == 0 || c.Row == m.rows-1 || c.Col == m.cols-1
}

// At returns the kind of cell c.
func (m *Maze) At(c Coord) (Kind, error) {
	if !m.InBounds(c) {
		return Free, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfRange, c, m.rows, m.cols)
	}
	return m.cells[c.Row][c.Col], nil
}

// kind is the unchecked variant of At for in-bounds coordinates.
func (m *Maze) kind(c Coord) Kind { return m.cells[c.Row][c.Col] }

// blocked reports whether c is out of bounds or an obstacle.
func (m *Maze) blocked(c Coord) bool {
	return !m.InBounds(c) || m.kind(c) == Obstacle
}

// SetKind turns a non-endpoint cell into Free or Obstacle.
// Start and Exit can only be moved through the Relocate methods.
func (m *Maze) SetKind(c Coord, k Kind) error {
	if !m.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfRange, c)
	}
	if k != Free && k != Obstacle {
		return fmt.Errorf("%w: SetKind accepts only free/obstacle, got %v", ErrInvalidPosition, k)
	}
	if c == m.start || c == m.exit {
		return fmt.Errorf("%w: %v holds an endpoint", ErrInvalidPosition, c)
	}
	m.cells[c.Row][c.Col] = k
	return nil
}

// ObstacleCount returns the number of Obstacle cells.
// Complexity: O(R×C).
func (m *Maze) ObstacleCount() int {
	n := 0
	for r := range m.cells {
		for _, k := range m.cells[r] {
			if k == Obstacle {
				n++
			}
		}
	}
	return n
}

// ObstaclePercent returns the obstacle share as a truncated integer percentage.
func (m *Maze) ObstaclePercent() int {
	return m.ObstacleCount() * 100 / (m.rows * m.cols)
}

// Codes returns a deep copy of the grid as instance codes.
func (m *Maze) Codes() [][]int {
	out := make([][]int, m.rows)
	for r := range m.cells {
		out[r] = make([]int, m.cols)
		for c, k := range m.cells[r] {
			out[r][c] = k.Code()
		}
	}
	return out
}

// Clone returns an independent deep copy of m.
func (m *Maze) Clone() *Maze {
	cp := newBlank(m.rows, m.cols)
	for r := range m.cells {
		copy(cp.cells[r], m.cells[r])
	}
	cp.start, cp.exit = m.start, m.exit
	return cp
}
