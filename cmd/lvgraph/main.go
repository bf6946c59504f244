// SPDX-License-Identifier: MIT

// Command lvgraph runs multistart BFS, textbook BFS or DFS between two nodes
// of a weighted graph and writes the step-by-step trace.
//
// Usage:
//
//	lvgraph -i graph.txt -s START -g GOAL [-a bfs|dfs|plain] [-o out.txt]
//	        [-c lvmaze.yaml] [-r SEED] [-x N] [-M] [-v]
//
// START and GOAL are 1-based, as printed in the report.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akamensky/argparse"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/dfs"
	"github.com/katalvlaran/lvmaze/graph"
	"github.com/katalvlaran/lvmaze/report"
	"github.com/katalvlaran/lvmaze/rng"
)

var errUsage = errors.New("lvgraph: invalid arguments")

type cliArgs struct {
	input         string
	start         int
	goal          int
	algorithm     string
	output        string
	configFile    string
	seed          int
	maxExecutions int
	matrix        bool
	verbose       bool
}

func parseArgs(args []string, stderr io.Writer) (cliArgs, error) {
	parser := argparse.NewParser("lvgraph", "Uninformed search (BFS/DFS) over a weighted graph")

	input := parser.String("i", "input", &argparse.Options{Required: true, Help: "Graph instance file"})
	start := parser.Int("s", "start", &argparse.Options{Required: true, Help: "Origin node (1-based)"})
	goal := parser.Int("g", "goal", &argparse.Options{Required: true, Help: "Destination node (1-based)"})
	algorithm := parser.Selector("a", "algorithm", []string{"bfs", "dfs", "plain"},
		&argparse.Options{Default: "bfs", Help: "bfs (multistart), dfs, or plain FIFO bfs"})
	output := parser.String("o", "output", &argparse.Options{Help: "Report file (default stdout)"})
	configFile := parser.String("c", "config", &argparse.Options{Help: "YAML configuration file"})
	seed := parser.Int("r", "seed", &argparse.Options{Default: -1, Help: "Random seed, 0 for entropy (overrides config)"})
	maxExecutions := parser.Int("x", "max-executions", &argparse.Options{Default: -1, Help: "Multistart execution cap (overrides config)"})
	matrix := parser.Flag("M", "matrix", &argparse.Options{Help: "Print the adjacency matrix before the trace"})
	verbose := parser.Flag("v", "verbose", &argparse.Options{Help: "Debug logging"})

	if err := parser.Parse(args); err != nil {
		fmt.Fprint(stderr, parser.Usage(err))
		return cliArgs{}, errUsage
	}
	return cliArgs{
		input:         *input,
		start:         *start,
		goal:          *goal,
		algorithm:     *algorithm,
		output:        *output,
		configFile:    *configFile,
		seed:          *seed,
		maxExecutions: *maxExecutions,
		matrix:        *matrix,
		verbose:       *verbose,
	}, nil
}

func loadConfig(a cliArgs) (config.Config, error) {
	cfg := config.Default()
	if a.configFile != "" {
		var err error
		if cfg, err = config.LoadFile(a.configFile); err != nil {
			return cfg, err
		}
	}
	if a.seed >= 0 {
		cfg.Seed = int64(a.seed)
	}
	if a.maxExecutions >= 0 {
		cfg.BFS.MaxExecutions = a.maxExecutions
	}
	if a.verbose {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
	return cfg, cfg.Validate()
}

func run(args []string, stdout, stderr io.Writer, log *logrus.Logger) error {
	a, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(a)
	if err != nil {
		return err
	}
	log.SetLevel(cfg.Level())

	g, err := graph.LoadFile(a.input)
	if err != nil {
		return err
	}
	start, goal := a.start-1, a.goal-1

	out := stdout
	if a.output != "" {
		f, err := os.Create(a.output)
		if err != nil {
			return fmt.Errorf("lvgraph: output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if a.matrix {
		if err = report.WriteMatrix(out, g); err != nil {
			return err
		}
	}

	rep := report.GraphReport{Graph: g, Start: start, Goal: goal}
	switch a.algorithm {
	case "dfs":
		res, err := dfs.Search(g, start, goal, dfs.WithLogger(log))
		if err != nil {
			return err
		}
		rep.Algorithm = "DFS"
		rep.Found, rep.Path, rep.Cost, rep.Logs = res.Found, res.Path, res.Cost, res.Logs
	case "plain":
		res, err := bfs.BFS(g, start, goal, bfs.WithLogger(log))
		if err != nil {
			return err
		}
		rep.Algorithm = "BFS"
		rep.Found, rep.Path, rep.Cost, rep.Logs = res.Found, res.Path, res.Cost, res.Logs
	default:
		res, err := bfs.Multistart(g, start, goal,
			bfs.WithSource(source(cfg, log)),
			bfs.WithMaxExecutions(cfg.BFS.MaxExecutions),
			bfs.WithLogger(log),
			bfs.WithOnExecution(func(e bfs.Execution) {
				log.WithFields(logrus.Fields{
					"execution": e.Index,
					"best":      oneBased(e.Best),
					"worst":     oneBased(e.Worst),
					"selected":  oneBased(e.Selected),
					"found":     e.Found,
				}).Info("lvgraph: execution")
			}),
		)
		if err != nil {
			return err
		}
		rep.Algorithm = "BFS (multistart)"
		rep.Executions = res.Executions
		rep.Found, rep.Path, rep.Cost, rep.Logs = res.Found, res.Path, res.Cost, res.Logs
	}
	log.WithFields(logrus.Fields{
		"algorithm": rep.Algorithm,
		"found":     rep.Found,
		"cost":      rep.Cost,
	}).Info("lvgraph: search finished")
	return report.WriteGraphSearch(out, rep)
}

// source returns a seeded generator, logging the seed it drew when the
// configuration asks for entropy.
func source(cfg config.Config, log logrus.FieldLogger) rng.Source {
	if cfg.Seed != 0 {
		return rng.New(cfg.Seed)
	}
	seed := rng.EntropySeed()
	log.WithField("seed", seed).Info("lvgraph: entropy seed")
	return rng.New(seed)
}

// oneBased converts a node index for display, keeping -1 as "none".
func oneBased(i int) int {
	if i < 0 {
		return i
	}
	return i + 1
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if err := run(os.Args, os.Stdout, os.Stderr, log); err != nil {
		if !errors.Is(err, errUsage) {
			log.WithError(err).Error("lvgraph: run failed")
		}
		os.Exit(1)
	}
}
