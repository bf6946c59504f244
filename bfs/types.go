// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/graph"
	"github.com/katalvlaran/lvmaze/rng"
)

// DefaultMaxExecutions caps Multistart restarts.
const DefaultMaxExecutions = 10

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOutOfRange is returned when start or goal is not a node.
	ErrOutOfRange = fmt.Errorf("bfs: %w", graph.ErrOutOfRange)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Execution summarizes one Multistart attempt.
type Execution struct {
	Index    int // 1-based
	Best     int // -1 when start had no unvisited neighbour
	Worst    int
	Selected int
	Found    bool
}

// Result holds the outcome of a search.
type Result struct {
	Found      bool
	Path       []int
	Cost       float64
	Logs       []graph.Snapshot
	Executions int // attempts run; 0 when start == goal
	Selected   int // second start of the returned attempt, -1 if none
}

// Options holds parameters and callbacks.
type Options struct {
	// Source drives the best/worst coin flip.
	Source rng.Source

	// MaxExecutions bounds Multistart attempts.
	MaxExecutions int

	// Logger receives Debug traces per execution.
	Logger logrus.FieldLogger

	// OnExecution is called after every Multistart attempt.
	OnExecution func(e Execution)

	err error
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns an entropy source, 10 executions, a discarding
// logger and a no-op hook. The source is created lazily.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		MaxExecutions: DefaultMaxExecutions,
		Logger:        l,
		OnExecution:   func(Execution) {},
	}
}

// WithSource sets the random source.
func WithSource(src rng.Source) Option {
	return func(o *Options) {
		if src == nil {
			o.err = fmt.Errorf("%w: random source is nil", ErrOptionViolation)
			return
		}
		o.Source = src
	}
}

// WithMaxExecutions sets the restart cap (n ≥ 1).
func WithMaxExecutions(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxExecutions must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExecutions = n
	}
}

// WithLogger routes traces to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExecution registers a callback run after each Multistart attempt.
func WithOnExecution(fn func(e Execution)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExecution = fn
		}
	}
}

// prepare applies opts and validates the endpoints.
func prepare(g *graph.Matrix, start, goal int, opts []Option) (Options, error) {
	o := DefaultOptions()
	if g == nil {
		return o, ErrGraphNil
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	for _, v := range []int{start, goal} {
		if v < 0 || v >= g.Order() {
			return o, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, v, g.Order())
		}
	}
	return o, nil
}
