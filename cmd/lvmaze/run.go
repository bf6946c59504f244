// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/navigate"
	"github.com/katalvlaran/lvmaze/report"
	"github.com/katalvlaran/lvmaze/rng"
	"github.com/katalvlaran/lvmaze/view"
)

const (
	pngCellPx  = 16
	watchDelay = 300 * time.Millisecond
)

// newScreen and createOutput are replaced in tests.
var (
	newScreen    = tcell.NewScreen
	createOutput = func(name string) (io.WriteCloser, error) { return os.Create(name) }
)

// session carries everything one invocation needs.
type session struct {
	args cliArgs
	cfg  config.Config
	log  *logrus.Logger
	out  io.Writer
	m    *maze.Maze
	h    astar.Heuristic
	sym  report.Symbols
}

func run(args []string, stdout, stderr io.Writer, log *logrus.Logger) (err error) {
	a, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(a)
	if err != nil {
		return err
	}
	log.SetLevel(cfg.Level())
	if a.dumpConfig {
		return config.Write(stdout, cfg)
	}

	m, err := maze.LoadFile(a.input)
	if err != nil {
		return err
	}
	if err = relocate(m, a); err != nil {
		return err
	}
	h, err := cfg.HeuristicValue()
	if err != nil {
		return err
	}

	out := stdout
	if a.output != "" {
		f, ferr := createOutput(a.output)
		if ferr != nil {
			return fmt.Errorf("lvmaze: output: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("lvmaze: output: %w", cerr)
			}
		}()
		out = f
	}

	s := &session{args: a, cfg: cfg, log: log, out: out, m: m, h: h, sym: cfg.Symbols()}
	log.WithFields(logrus.Fields{
		"input":     a.input,
		"rows":      m.Rows(),
		"cols":      m.Cols(),
		"heuristic": h.Name(),
		"regions":   len(m.Components()),
		"solvable":  m.Solvable(),
		"dynamic":   a.dynamic,
	}).Info("lvmaze: maze loaded")

	if a.dynamic {
		return s.dynamic()
	}
	return s.static()
}

// static runs A* once and writes the search report.
func (s *session) static() error {
	res, err := astar.Search(s.m, s.m.Start(), astar.WithHeuristic(s.h), astar.WithLogger(s.log))
	if err != nil {
		return err
	}
	err = report.WriteSearch(s.out, report.SearchReport{
		Instance: s.args.input,
		Maze:     s.m,
		Result:   res,
		Symbols:  s.sym,
	})
	if err != nil {
		return err
	}
	if s.args.compare {
		if err = s.compare(res); err != nil {
			return err
		}
	}
	ov := report.Overlay{Path: res.Path}
	if s.args.png != "" {
		if err = report.SavePNG(s.args.png, s.m, ov, pngCellPx); err != nil {
			return err
		}
	}
	if s.args.watch {
		return s.show([]view.Frame{{Maze: s.m, Overlay: ov, Caption: fmt.Sprintf("%s: %d inspected", res.Heuristic, res.Inspected)}})
	}
	return nil
}

// compare prints the Dijkstra optimum next to the A* cost.
func (s *session) compare(res *astar.Result) error {
	best, ok, err := dijkstra.ShortestCost(s.m, s.m.Start(), s.m.Exit())
	if err != nil {
		return err
	}
	if !ok {
		_, err = fmt.Fprintln(s.out, "Optimal cost: unreachable")
		return err
	}
	if res.Found && res.Cost > best {
		s.log.WithFields(logrus.Fields{"astar": res.Cost, "optimal": best}).Warn("lvmaze: A* path is not optimal")
	}
	_, err = fmt.Fprintf(s.out, "Optimal cost: %.2f\n", best)
	return err
}

// dynamic runs the navigation loop with a per-iteration trace.
func (s *session) dynamic() error {
	var src rng.Source
	if s.cfg.Seed != 0 {
		src = rng.New(s.cfg.Seed)
	} else {
		seed := rng.EntropySeed()
		s.log.WithField("seed", seed).Info("lvmaze: entropy seed")
		src = rng.New(seed)
	}

	if err := report.WriteMaze(s.out, s.m, s.sym); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(s.out, "=================================================="); err != nil {
		return err
	}

	var (
		trail  []maze.Coord
		frames []view.Frame
	)
	hook := func(it navigate.Iteration, m *maze.Maze) error {
		trail = append(trail, it.From)
		if s.args.watch {
			frames = append(frames, view.Frame{
				Maze:    m.Clone(),
				Overlay: report.Overlay{Agent: it.Position, HasAgent: true, Path: it.Planned, Trail: append([]maze.Coord(nil), trail...)},
				Caption: fmt.Sprintf("iteration %d  failures %d", it.Index, it.Failures),
			})
		}
		return report.WriteIteration(s.out, it, m, trail, s.sym)
	}

	res, err := navigate.Run(s.m,
		navigate.WithHeuristic(s.h),
		navigate.WithSource(src),
		navigate.WithDynamics(maze.WithDynamics(s.cfg.MazeDynamics())),
		navigate.WithMaxFailures(s.cfg.Navigation.MaxFailures),
		navigate.WithMaxIterations(s.cfg.Navigation.MaxIterations),
		navigate.WithLogger(s.log),
		navigate.WithOnIteration(hook),
	)
	if err != nil {
		return err
	}
	if err = report.WriteSummary(s.out, res); err != nil {
		return err
	}

	last := res.Trajectory[len(res.Trajectory)-1]
	ov := report.Overlay{Agent: last, HasAgent: true, Trail: res.Trajectory}
	if s.args.png != "" {
		if err = report.SavePNG(s.args.png, s.m, ov, pngCellPx); err != nil {
			return err
		}
	}
	if s.args.watch {
		frames = append(frames, view.Frame{Maze: s.m, Overlay: ov, Caption: res.Reason.String()})
		return s.show(frames)
	}
	return nil
}

// show replays frames on the terminal and waits for a key.
func (s *session) show(frames []view.Frame) error {
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("lvmaze: screen: %w", err)
	}
	if err = screen.Init(); err != nil {
		return fmt.Errorf("lvmaze: screen: %w", err)
	}
	defer screen.Fini()
	v, err := view.New(screen, s.sym)
	if err != nil {
		return err
	}
	defer v.Close()

	ctx := context.Background()
	quit, err := v.Replay(ctx, frames, watchDelay)
	if err != nil || quit {
		return err
	}
	return v.WaitKey(ctx)
}
