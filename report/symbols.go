// SPDX-License-Identifier: MIT

package report

import (
	"errors"

	"github.com/katalvlaran/lvmaze/maze"
)

// Sentinel errors for report output.
var (
	// ErrNilInput indicates a missing maze, graph or result.
	ErrNilInput = errors.New("report: nil input")

	// ErrCellSize indicates a non-positive PNG cell size.
	ErrCellSize = errors.New("report: cell size must be ≥ 1 pixel")
)

// separator splits report sections.
const separator = "--------------------------------------------------"

// Symbols maps cell kinds and overlay marks to display runes.
type Symbols struct {
	Free     rune
	Obstacle rune
	Start    rune
	Exit     rune
	Agent    rune
	Path     rune
	Trail    rune
}

// DefaultSymbols prints the instance-file codes.
func DefaultSymbols() Symbols {
	return Symbols{
		Free:     '0',
		Obstacle: '1',
		Start:    '3',
		Exit:     '4',
		Agent:    'A',
		Path:     '*',
		Trail:    '.',
	}
}

// BlankSymbols is DefaultSymbols with free cells shown as spaces.
func BlankSymbols() Symbols {
	s := DefaultSymbols()
	s.Free = ' '
	return s
}

// Kind returns the rune for a bare cell kind.
func (s Symbols) Kind(k maze.Kind) rune {
	switch k {
	case maze.Obstacle:
		return s.Obstacle
	case maze.Start:
		return s.Start
	case maze.Exit:
		return s.Exit
	default:
		return s.Free
	}
}

// Overlay marks cells drawn on top of the grid.
// Precedence: agent, then any non-free cell, then path, then trail.
type Overlay struct {
	Agent    maze.Coord
	HasAgent bool
	Path     []maze.Coord
	Trail    []maze.Coord
}

// Mark is the overlay layer covering a cell.
type Mark int

const (
	MarkNone Mark = iota
	MarkTrail
	MarkPath
	MarkAgent
)

// Marks resolves the overlay into a per-cell layer for an rows×cols grid.
// Coordinates outside the grid are ignored.
func (ov Overlay) Marks(rows, cols int) [][]Mark {
	out := make([][]Mark, rows)
	for r := range out {
		out[r] = make([]Mark, cols)
	}
	set := func(c maze.Coord, mk Mark) {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return
		}
		if out[c.Row][c.Col] < mk {
			out[c.Row][c.Col] = mk
		}
	}
	for _, c := range ov.Trail {
		set(c, MarkTrail)
	}
	for _, c := range ov.Path {
		set(c, MarkPath)
	}
	if ov.HasAgent {
		set(ov.Agent, MarkAgent)
	}
	return out
}

// Cell returns the rune for kind k under overlay mark mk.
func (s Symbols) Cell(k maze.Kind, mk Mark) rune {
	if mk == MarkAgent {
		return s.Agent
	}
	if k != maze.Free {
		return s.Kind(k)
	}
	switch mk {
	case MarkPath:
		return s.Path
	case MarkTrail:
		return s.Trail
	default:
		return s.Kind(k)
	}
}
