// SPDX-License-Identifier: MIT

// Package navigate simulates an agent walking a maze that changes under
// its feet: plan with A*, take one step, let the maze mutate, repeat.
//
// What
//
//   - Run starts the agent on the maze's Start cell and loops until it
//     stands on Exit, or until MaxFailures consecutive plans find no path.
//   - Each successful plan moves the agent to the second cell of the
//     planned path; the plan itself is discarded.
//   - After every non-terminal iteration the Mutator runs (by default
//     maze.Mutate with a seeded or entropy rng.Source).
//   - WithOnIteration observes the maze after each step and before the
//     mutation, which is where reports and viewers hook in.
//
// Termination
//
//	ReasonReached:      the agent stands on Exit.
//	ReasonFailures:     MaxFailures (default 5) consecutive planning failures.
//	ReasonIterationCap: optional WithMaxIterations bound hit (off by default).
//
// Statistics
//
//	Result.Generated/Inspected sum only iterations whose plan succeeded.
//	Result.Cost is maze.PathCost(Trajectory) on the final grid, so a cell
//	that turned into an obstacle after the agent left it does not count.
//
// Errors
//
//   - ErrMazeNil: nil maze.
//   - ErrOptionViolation: MaxFailures < 1, MaxIterations < 0, nil mutator/source.
//   - Context, hook and mutator errors are returned with the partial Result.
package navigate
