// SPDX-License-Identifier: MIT

package maze

import "fmt"

// checkBorder validates a relocation target.
func (m *Maze) checkBorder(role string, c Coord) error {
	if !m.IsBorder(c) {
		return fmt.Errorf("%w: %s %v must be on the border of a %dx%d grid",
			ErrInvalidPosition, role, c, m.rows, m.cols)
	}
	return nil
}

// RelocateStart moves Start to the border cell c. The vacated cell takes
// the kind c held before the move, so an obstacle at c swaps places with
// Start. Targeting the Exit cell fails with ErrInvalidPosition.
// On error the grid is unchanged.
func (m *Maze) RelocateStart(c Coord) error {
	if err := m.checkBorder("start", c); err != nil {
		return err
	}
	if c == m.exit {
		return fmt.Errorf("%w: start %v coincides with exit", ErrInvalidPosition, c)
	}
	prev := m.kind(c)
	m.cells[m.start.Row][m.start.Col] = prev
	m.place(c, Start)
	return nil
}

// RelocateExit is the Exit counterpart of RelocateStart.
func (m *Maze) RelocateExit(c Coord) error {
	if err := m.checkBorder("exit", c); err != nil {
		return err
	}
	if c == m.start {
		return fmt.Errorf("%w: exit %v coincides with start", ErrInvalidPosition, c)
	}
	prev := m.kind(c)
	m.cells[m.exit.Row][m.exit.Col] = prev
	m.place(c, Exit)
	return nil
}

// RelocateBoth moves Start to s and Exit to e. Both vacated cells become
// Free. s and e must be distinct border cells.
func (m *Maze) RelocateBoth(s, e Coord) error {
	if err := m.checkBorder("start", s); err != nil {
		return err
	}
	if err := m.checkBorder("exit", e); err != nil {
		return err
	}
	if s == e {
		return fmt.Errorf("%w: start and exit both at %v", ErrInvalidPosition, s)
	}
	m.cells[m.start.Row][m.start.Col] = Free
	m.cells[m.exit.Row][m.exit.Col] = Free
	m.place(s, Start)
	m.place(e, Exit)
	return nil
}
