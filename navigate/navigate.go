// SPDX-License-Identifier: MIT

package navigate

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/rng"
)

// walker holds the mutable state of one navigation run.
type walker struct {
	m    *maze.Maze
	opts Options
	pos  maze.Coord
	res  *Result
}

// Run drives the agent from m.Start() to m.Exit(), mutating m in place
// between iterations. On error the partial Result is returned alongside it.
func Run(m *maze.Maze, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Mutator == nil {
		if o.Source == nil {
			o.Source = rng.NewEntropy()
		}
		o.Mutator = dynamicsMutator{src: o.Source, opts: o.Dynamics}
	}

	w := &walker{
		m:    m,
		opts: o,
		pos:  m.Start(),
		res: &Result{
			Reason:     ReasonReached,
			Trajectory: []maze.Coord{m.Start()},
		},
	}
	err := w.loop()
	w.res.Steps = len(w.res.Trajectory) - 1
	w.res.Cost = m.PathCost(w.res.Trajectory)
	w.res.Success = err == nil && w.res.Reason == ReasonReached && w.pos == m.Exit()

	log := o.Logger.WithFields(logrus.Fields{
		"iterations": w.res.Iterations,
		"steps":      w.res.Steps,
		"generated":  w.res.Generated,
		"inspected":  w.res.Inspected,
		"reason":     w.res.Reason.String(),
	})
	if w.res.Success {
		log.Info("navigate: exit reached")
	} else {
		log.Warn("navigate: stopped before exit")
	}
	return w.res, err
}

// loop runs iterations until a terminal condition or an error.
func (w *walker) loop() error {
	for w.pos != w.m.Exit() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}
		if w.opts.MaxIterations > 0 && w.res.Iterations >= w.opts.MaxIterations {
			w.res.Reason = ReasonIterationCap
			return nil
		}

		it, err := w.step()
		if err != nil {
			return err
		}
		if err = w.opts.OnIteration(it, w.m); err != nil {
			return fmt.Errorf("navigate: OnIteration error at iteration %d: %w", it.Index, err)
		}

		switch {
		case it.Found && (w.pos == w.m.Exit() || len(it.Planned) == 1):
			w.res.Reason = ReasonReached
			return nil
		case !it.Found && w.res.ConsecutiveFailures >= w.opts.MaxFailures:
			w.res.Reason = ReasonFailures
			return nil
		}

		if err = w.opts.Mutator.Mutate(w.m); err != nil {
			return fmt.Errorf("navigate: mutate after iteration %d: %w", it.Index, err)
		}
	}
	return nil
}

// step plans from the current position and advances one cell on success.
func (w *walker) step() (Iteration, error) {
	w.res.Iterations++
	it := Iteration{Index: w.res.Iterations, From: w.pos}

	plan, err := astar.Search(w.m, w.pos,
		astar.WithHeuristic(w.opts.Heuristic),
		astar.WithLogger(w.opts.Logger),
	)
	if err != nil {
		return it, fmt.Errorf("navigate: planning from %v: %w", w.pos, err)
	}

	it.Found = plan.Found
	it.Planned = plan.Path
	it.Generated, it.Inspected = plan.Generated, plan.Inspected
	it.GeneratedOrder, it.InspectedOrder = plan.GeneratedOrder, plan.InspectedOrder

	log := w.opts.Logger.WithFields(logrus.Fields{
		"iteration": it.Index,
		"row":       w.pos.Row,
		"col":       w.pos.Col,
		"generated": plan.Generated,
		"inspected": plan.Inspected,
	})
	if plan.Found {
		w.res.ConsecutiveFailures = 0
		w.res.Generated += plan.Generated
		w.res.Inspected += plan.Inspected
		if len(plan.Path) >= 2 {
			w.pos = plan.Path[1]
			w.res.Trajectory = append(w.res.Trajectory, w.pos)
		}
		log.WithField("cost", plan.Cost).Info("navigate: step")
	} else {
		w.res.ConsecutiveFailures++
		log.WithField("failures", w.res.ConsecutiveFailures).Warn("navigate: no path")
	}

	it.Position = w.pos
	it.TotalGenerated, it.TotalInspected = w.res.Generated, w.res.Inspected
	it.Failures = w.res.ConsecutiveFailures
	w.res.History = append(w.res.History, it)
	return it, nil
}
