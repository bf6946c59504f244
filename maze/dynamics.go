// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/rng"
)

// Default dynamics parameters.
const (
	DefaultObstacleIn         = 0.5
	DefaultObstacleOut        = 0.5
	DefaultMaxObstaclePercent = 25
)

// Dynamics configures Mutate.
//
// ObstacleIn         – probability a Free cell becomes an Obstacle.
// ObstacleOut        – probability an Obstacle becomes Free.
// MaxObstaclePercent – density cap; at or above it, random obstacles are
//
//	cleared until the count is floor(MaxObstaclePercent·R·C/100).
type Dynamics struct {
	ObstacleIn         float64
	ObstacleOut        float64
	MaxObstaclePercent int
}

// DynamicsOption customizes a Dynamics value.
type DynamicsOption func(*Dynamics)

// DefaultDynamics returns pin=0.5, pout=0.5 and a 25% cap.
func DefaultDynamics() Dynamics {
	return Dynamics{
		ObstacleIn:         DefaultObstacleIn,
		ObstacleOut:        DefaultObstacleOut,
		MaxObstaclePercent: DefaultMaxObstaclePercent,
	}
}

// WithObstacleIn sets the Free→Obstacle probability.
func WithObstacleIn(p float64) DynamicsOption {
	return func(d *Dynamics) { d.ObstacleIn = p }
}

// WithObstacleOut sets the Obstacle→Free probability.
func WithObstacleOut(p float64) DynamicsOption {
	return func(d *Dynamics) { d.ObstacleOut = p }
}

// WithMaxObstaclePercent sets the density cap in whole percent.
func WithMaxObstaclePercent(pct int) DynamicsOption {
	return func(d *Dynamics) { d.MaxObstaclePercent = pct }
}

// WithDynamics replaces every field at once.
func WithDynamics(v Dynamics) DynamicsOption {
	return func(d *Dynamics) { *d = v }
}

// Validate checks probabilities lie in [0,1] and the cap in [0,100].
func (d Dynamics) Validate() error {
	if d.ObstacleIn < 0 || d.ObstacleIn > 1 {
		return fmt.Errorf("%w: obstacle_in %.3f not in [0,1]", ErrOptionViolation, d.ObstacleIn)
	}
	if d.ObstacleOut < 0 || d.ObstacleOut > 1 {
		return fmt.Errorf("%w: obstacle_out %.3f not in [0,1]", ErrOptionViolation, d.ObstacleOut)
	}
	if d.MaxObstaclePercent < 0 || d.MaxObstaclePercent > 100 {
		return fmt.Errorf("%w: max obstacle percent %d not in [0,100]", ErrOptionViolation, d.MaxObstaclePercent)
	}
	return nil
}

// Mutate applies one round of stochastic dynamism.
//
// Step 1 visits every cell except the Start and Exit coordinates in
// row-major order and
// draws U~U(0,1) from src: Free turns Obstacle when U ≥ 1−ObstacleIn,
// Obstacle turns Free when U ≥ 1−ObstacleOut.
//
// Step 2, when the truncated obstacle percentage is at least
// MaxObstaclePercent, shuffles the obstacle list with src and clears
// count − floor(MaxObstaclePercent·R·C/100) obstacles from its head.
//
// Start and Exit never change. Complexity: O(R×C).
func (m *Maze) Mutate(src rng.Source, opts ...DynamicsOption) error {
	cfg := DefaultDynamics()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if src == nil {
		return fmt.Errorf("%w: nil random source", ErrOptionViolation)
	}

	var obstacles []Coord
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if at := (Coord{r, c}); at == m.start || at == m.exit {
				continue
			}
			// a 3 or 4 left behind by a later duplicate counts as Free
			k := m.cells[r][c]
			u := src.Float64()
			switch {
			case k != Obstacle && u >= 1-cfg.ObstacleIn:
				k = Obstacle
			case k == Obstacle && u >= 1-cfg.ObstacleOut:
				k = Free
			}
			m.cells[r][c] = k
			if k == Obstacle {
				obstacles = append(obstacles, Coord{r, c})
			}
		}
	}

	total := m.rows * m.cols
	if len(obstacles)*100/total < cfg.MaxObstaclePercent {
		return nil
	}
	excess := len(obstacles) - cfg.MaxObstaclePercent*total/100
	if excess <= 0 {
		return nil
	}
	src.Shuffle(len(obstacles), func(i, j int) {
		obstacles[i], obstacles[j] = obstacles[j], obstacles[i]
	})
	for _, c := range obstacles[:excess] {
		m.cells[c.Row][c.Col] = Free
	}
	return nil
}
