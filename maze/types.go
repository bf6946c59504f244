// SPDX-License-Identifier: MIT

package maze

import "fmt"

// Kind classifies a cell. The numeric values are the instance-file codes.
type Kind int

const (
	// Free is a passable empty cell (code 0).
	Free Kind = 0
	// Obstacle blocks movement (code 1).
	Obstacle Kind = 1
	// Start marks the agent's entry cell (code 3).
	Start Kind = 3
	// Exit marks the goal cell (code 4).
	Exit Kind = 4
)

// KindFromCode decodes an instance-file code.
func KindFromCode(code int) (Kind, error) {
	switch Kind(code) {
	case Free, Obstacle, Start, Exit:
		return Kind(code), nil
	default:
		return Free, fmt.Errorf("%w: unknown cell code %d", ErrFormat, code)
	}
}

// Code returns the instance-file code of k.
func (k Kind) Code() int { return int(k) }

// Passable reports whether an agent may stand on a cell of kind k.
func (k Kind) Passable() bool { return k != Obstacle }

// String returns a human-readable name.
func (k Kind) String() string {
	switch k {
	case Free:
		return "free"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Coord addresses a cell by 0-based row and column.
type Coord struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether o is one of the 8 compass neighbours of c.
func (c Coord) Adjacent(o Coord) bool {
	dr, dc := abs(o.Row-c.Row), abs(o.Col-c.Col)
	return dr <= 1 && dc <= 1 && (dr|dc) != 0
}

// Diagonal reports whether o is a diagonal neighbour of c.
func (c Coord) Diagonal(o Coord) bool {
	return abs(o.Row-c.Row) == 1 && abs(o.Col-c.Col) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
