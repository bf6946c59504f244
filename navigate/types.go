// SPDX-License-Identifier: MIT

package navigate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/rng"
)

// DefaultMaxFailures is the consecutive-failure cap.
const DefaultMaxFailures = 5

// Sentinel errors for navigation.
var (
	// ErrMazeNil is returned if a nil maze pointer is passed.
	ErrMazeNil = errors.New("navigate: maze is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("navigate: invalid option supplied")
)

// Mutator changes the maze between iterations.
type Mutator interface {
	Mutate(m *maze.Maze) error
}

// MutatorFunc adapts a function to the Mutator interface.
type MutatorFunc func(m *maze.Maze) error

// Mutate calls f(m).
func (f MutatorFunc) Mutate(m *maze.Maze) error { return f(m) }

// NoMutation leaves the maze static.
var NoMutation Mutator = MutatorFunc(func(*maze.Maze) error { return nil })

// dynamicsMutator applies maze.Mutate with a fixed source and parameters.
type dynamicsMutator struct {
	src  rng.Source
	opts []maze.DynamicsOption
}

func (d dynamicsMutator) Mutate(m *maze.Maze) error {
	return m.Mutate(d.src, d.opts...)
}

// Reason tells why Run stopped.
type Reason int

const (
	// ReasonReached means the agent stands on Exit.
	ReasonReached Reason = iota
	// ReasonFailures means MaxFailures consecutive plans failed.
	ReasonFailures
	// ReasonIterationCap means MaxIterations was hit.
	ReasonIterationCap
)

// String names the reason.
func (r Reason) String() string {
	switch r {
	case ReasonReached:
		return "reached exit"
	case ReasonFailures:
		return "too many consecutive failures"
	case ReasonIterationCap:
		return "iteration cap"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Iteration describes one plan-and-step round.
type Iteration struct {
	Index          int        // 1-based
	From           maze.Coord // agent position when planning
	Position       maze.Coord // agent position after the step
	Found          bool
	Planned        []maze.Coord
	Generated      int
	Inspected      int
	GeneratedOrder []maze.Coord
	InspectedOrder []maze.Coord
	TotalGenerated int
	TotalInspected int
	Failures       int // consecutive failures after this round
}

// Result is the outcome of Run.
type Result struct {
	Success             bool
	Reason              Reason
	Iterations          int
	Steps               int
	Generated           int
	Inspected           int
	Trajectory          []maze.Coord
	Cost                float64
	ConsecutiveFailures int
	History             []Iteration
}

// Options configures Run.
type Options struct {
	Ctx           context.Context
	Heuristic     astar.Heuristic
	Source        rng.Source
	Mutator       Mutator
	Dynamics      []maze.DynamicsOption
	MaxFailures   int
	MaxIterations int // 0 = unlimited
	Logger        logrus.FieldLogger
	OnIteration   func(it Iteration, m *maze.Maze) error

	err error
}

// Option configures Run via functional arguments.
type Option func(*Options)

// DefaultOptions returns Octile, an entropy source, the default dynamics,
// a failure cap of 5 and no iteration cap.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		Ctx:         context.Background(),
		Heuristic:   astar.Octile,
		MaxFailures: DefaultMaxFailures,
		Logger:      l,
		OnIteration: func(Iteration, *maze.Maze) error { return nil },
	}
}

// WithContext sets a custom context for cancellation between iterations.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic selects the planner's heuristic.
func WithHeuristic(h astar.Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithSource sets the random source of the default mutator.
func WithSource(src rng.Source) Option {
	return func(o *Options) {
		if src == nil {
			o.err = fmt.Errorf("%w: random source is nil", ErrOptionViolation)
			return
		}
		o.Source = src
	}
}

// WithMutator replaces the default dynamics with m.
func WithMutator(m Mutator) Option {
	return func(o *Options) {
		if m == nil {
			o.err = fmt.Errorf("%w: mutator is nil", ErrOptionViolation)
			return
		}
		o.Mutator = m
	}
}

// WithDynamics passes options to the default mutator.
func WithDynamics(opts ...maze.DynamicsOption) Option {
	return func(o *Options) {
		o.Dynamics = append(o.Dynamics, opts...)
	}
}

// WithMaxFailures sets the consecutive-failure cap (n ≥ 1).
func WithMaxFailures(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxFailures must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxFailures = n
	}
}

// WithMaxIterations bounds the total number of iterations; 0 disables it.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithLogger routes Info/Warn traces to l. The planner logs to it at Debug.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnIteration registers a callback run after every step, before the
// maze mutates. Returning an error stops Run.
func WithOnIteration(fn func(it Iteration, m *maze.Maze) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}
