// SPDX-License-Identifier: MIT

package astar

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/maze"
)

// Sentinel errors for A* execution.
var (
	// ErrMazeNil is returned if a nil maze pointer is passed.
	ErrMazeNil = errors.New("astar: maze is nil")

	// ErrStartOutOfRange is returned when the start cell lies outside the grid.
	ErrStartOutOfRange = fmt.Errorf("astar: start %w", maze.ErrOutOfRange)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Node is one entry of the cost matrix.
type Node struct {
	maze.Coord
	G, H, F   float64
	Parent    maze.Coord
	HasParent bool // false only for the start node
}

// Result holds the outcome of one A* invocation.
type Result struct {
	Found          bool
	Path           []maze.Coord // start … exit; empty when !Found
	Cost           float64      // g of the exit node; 0 when !Found
	Generated      int
	Inspected      int
	GeneratedOrder []maze.Coord
	InspectedOrder []maze.Coord
	Heuristic      string
}

// Options holds parameters and callbacks for Search.
type Options struct {
	// Heuristic estimates the remaining cost to Exit.
	Heuristic Heuristic

	// Logger receives Debug traces of every inspection.
	Logger logrus.FieldLogger

	// OnGenerate is called after a node is created and pushed to open.
	OnGenerate func(n Node)

	// OnInspect is called after a node is moved to closed.
	OnInspect func(n Node)

	err error
}

// Option configures Search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Octile, a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic:  Octile,
		Logger:     discardLogger(),
		OnGenerate: func(Node) {},
		OnInspect:  func(Node) {},
	}
}

// WithHeuristic selects the heuristic strategy. A nil value is an
// ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithLogger routes Debug traces to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnGenerate registers a callback run on every generated node.
func WithOnGenerate(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGenerate = fn
		}
	}
}

// WithOnInspect registers a callback run on every inspected node.
func WithOnInspect(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnInspect = fn
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
