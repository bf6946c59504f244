// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/graph"
)

// Sentinel errors for DFS.
var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOutOfRange is returned when start or goal is not a node.
	ErrOutOfRange = fmt.Errorf("dfs: %w", graph.ErrOutOfRange)
)

// Options configures DFS.
type Options struct {
	// Ctx allows cancellation between inspections.
	Ctx context.Context

	// OnVisit is called when a node is inspected, with its depth.
	OnVisit func(node, depth int) error

	// Logger receives Debug traces.
	Logger logrus.FieldLogger
}

// Option configures DFS via functional arguments.
type Option func(*Options)

// DefaultOptions returns Background, a no-op hook and a discarding logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
		Logger:  l,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook; returning an error stops DFS.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
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

// Result holds the outcome of DFS.
type Result struct {
	Found bool
	Path  []int
	Cost  float64
	Logs  []graph.Snapshot
}
