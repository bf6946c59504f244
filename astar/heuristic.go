// SPDX-License-Identifier: MIT

package astar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/maze"
)

// Heuristic estimates the cost from a cell to the maze's Exit.
type Heuristic interface {
	Name() string
	Estimate(m *maze.Maze, c maze.Coord) float64
}

// HeuristicFunc adapts a distance function to the Heuristic interface.
type HeuristicFunc struct {
	Label string
	Dist  func(a, b maze.Coord) float64
}

// Name returns the label.
func (h HeuristicFunc) Name() string { return h.Label }

// Estimate measures the distance from c to m.Exit().
func (h HeuristicFunc) Estimate(m *maze.Maze, c maze.Coord) float64 {
	return h.Dist(c, m.Exit())
}

type manhattan struct{}

func (manhattan) Name() string { return "manhattan" }

func (manhattan) Estimate(m *maze.Maze, c maze.Coord) float64 {
	return maze.ManhattanDistance(c, m.Exit())
}

type octile struct{}

func (octile) Name() string { return "octile" }

func (octile) Estimate(m *maze.Maze, c maze.Coord) float64 {
	return maze.OctileDistance(c, m.Exit())
}

// Built-in strategies. Both are comparable with ==.
var (
	// Manhattan weights the orthogonal distance by 3.
	Manhattan Heuristic = manhattan{}
	// Octile is the exact obstacle-free cost under the 5/7 move costs.
	Octile Heuristic = octile{}
)

// Heuristics lists the built-in strategies in menu order.
func Heuristics() []Heuristic { return []Heuristic{Manhattan, Octile} }

// HeuristicByName resolves a case-insensitive strategy name.
func HeuristicByName(name string) (Heuristic, error) {
	for _, h := range Heuristics() {
		if strings.EqualFold(h.Name(), strings.TrimSpace(name)) {
			return h, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown heuristic %q", ErrOptionViolation, name)
}
