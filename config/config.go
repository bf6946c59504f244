// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/navigate"
	"github.com/katalvlaran/lvmaze/report"
)

// ErrInvalid wraps every load or validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root document.
type Config struct {
	Heuristic  string     `yaml:"heuristic"`
	Seed       int64      `yaml:"seed"` // 0 selects an entropy source
	Dynamics   Dynamics   `yaml:"dynamics"`
	Navigation Navigation `yaml:"navigation"`
	BFS        BFS        `yaml:"bfs"`
	Render     Render     `yaml:"render"`
	Log        Log        `yaml:"log"`
}

// Dynamics mirrors maze.Dynamics.
type Dynamics struct {
	ObstacleIn         float64 `yaml:"obstacle_in"`
	ObstacleOut        float64 `yaml:"obstacle_out"`
	MaxObstaclePercent int     `yaml:"max_obstacle_percent"`
}

// Navigation bounds the dynamic loop.
type Navigation struct {
	MaxFailures   int `yaml:"max_failures"`
	MaxIterations int `yaml:"max_iterations"` // 0 means unlimited
}

// BFS bounds multistart BFS.
type BFS struct {
	MaxExecutions int `yaml:"max_executions"`
}

// Render holds one-character display symbols.
type Render struct {
	Free     string `yaml:"free"`
	Obstacle string `yaml:"obstacle"`
	Start    string `yaml:"start"`
	Exit     string `yaml:"exit"`
	Agent    string `yaml:"agent"`
	Path     string `yaml:"path"`
	Trail    string `yaml:"trail"`
}

// Log selects the logrus level.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	sym := report.DefaultSymbols()
	d := maze.DefaultDynamics()
	return Config{
		Heuristic: astar.Octile.Name(),
		Dynamics: Dynamics{
			ObstacleIn:         d.ObstacleIn,
			ObstacleOut:        d.ObstacleOut,
			MaxObstaclePercent: d.MaxObstaclePercent,
		},
		Navigation: Navigation{MaxFailures: navigate.DefaultMaxFailures},
		BFS:        BFS{MaxExecutions: bfs.DefaultMaxExecutions},
		Render: Render{
			Free:     string(sym.Free),
			Obstacle: string(sym.Obstacle),
			Start:    string(sym.Start),
			Exit:     string(sym.Exit),
			Agent:    string(sym.Agent),
			Path:     string(sym.Path),
			Trail:    string(sym.Trail),
		},
		Log: Log{Level: logrus.InfoLevel.String()},
	}
}

// Load reads a YAML document over Default and validates it.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("%w: read: %w", ErrInvalid, err)
	}
	if err = yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg, cfg.Validate()
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Default(), fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	defer f.Close()
	return Load(f)
}

// Write encodes cfg as YAML.
func Write(w io.Writer, cfg Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("yaml.Marshal: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// Validate checks every field against the ranges the engines accept.
func (c Config) Validate() error {
	if _, err := astar.HeuristicByName(c.Heuristic); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.MazeDynamics().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Navigation.MaxFailures < 1 {
		return fmt.Errorf("%w: navigation.max_failures must be ≥ 1, got %d", ErrInvalid, c.Navigation.MaxFailures)
	}
	if c.Navigation.MaxIterations < 0 {
		return fmt.Errorf("%w: navigation.max_iterations must be ≥ 0, got %d", ErrInvalid, c.Navigation.MaxIterations)
	}
	if c.BFS.MaxExecutions < 1 {
		return fmt.Errorf("%w: bfs.max_executions must be ≥ 1, got %d", ErrInvalid, c.BFS.MaxExecutions)
	}
	for _, f := range []struct{ key, val string }{
		{"free", c.Render.Free},
		{"obstacle", c.Render.Obstacle},
		{"start", c.Render.Start},
		{"exit", c.Render.Exit},
		{"agent", c.Render.Agent},
		{"path", c.Render.Path},
		{"trail", c.Render.Trail},
	} {
		if utf8.RuneCountInString(f.val) != 1 {
			return fmt.Errorf("%w: render.%s must be one character, got %q", ErrInvalid, f.key, f.val)
		}
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// HeuristicValue resolves the configured heuristic.
func (c Config) HeuristicValue() (astar.Heuristic, error) {
	return astar.HeuristicByName(c.Heuristic)
}

// MazeDynamics converts the dynamics section.
func (c Config) MazeDynamics() maze.Dynamics {
	return maze.Dynamics{
		ObstacleIn:         c.Dynamics.ObstacleIn,
		ObstacleOut:        c.Dynamics.ObstacleOut,
		MaxObstaclePercent: c.Dynamics.MaxObstaclePercent,
	}
}

// Symbols converts the render section; call after Validate.
func (c Config) Symbols() report.Symbols {
	first := func(s string) rune {
		r, _ := utf8.DecodeRuneInString(s)
		return r
	}
	return report.Symbols{
		Free:     first(c.Render.Free),
		Obstacle: first(c.Render.Obstacle),
		Start:    first(c.Render.Start),
		Exit:     first(c.Render.Exit),
		Agent:    first(c.Render.Agent),
		Path:     first(c.Render.Path),
		Trail:    first(c.Render.Trail),
	}
}

// Level returns the parsed log level, Info when unparsable.
func (c Config) Level() logrus.Level {
	l, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return l
}
