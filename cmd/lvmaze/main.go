// SPDX-License-Identifier: MIT

// Command lvmaze runs A* over a grid maze, either once on the static grid
// or as a dynamic navigation loop where the maze mutates between steps.
//
// Usage:
//
//	lvmaze -i maze.txt [-o out.txt] [-c lvmaze.yaml] [-H octile|manhattan]
//	       [-s SEED] [-d] [-m N] [-S r,c] [-e r,c] [-p out.png] [-w] [-C] [-v]
//	lvmaze -D [-c lvmaze.yaml]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/maze"
)

// errUsage marks a command-line error already reported with usage text.
var errUsage = errors.New("lvmaze: invalid arguments")

// cliArgs holds parsed flags; negative numbers mean "not given".
type cliArgs struct {
	input         string
	output        string
	configFile    string
	heuristic     string
	seed          int
	dynamic       bool
	maxIterations int
	start         string
	exit          string
	png           string
	watch         bool
	compare       bool
	dumpConfig    bool
	verbose       bool
}

func parseArgs(args []string, stderr io.Writer) (cliArgs, error) {
	parser := argparse.NewParser("lvmaze", "A* search over a static or dynamic grid maze")

	input := parser.String("i", "input", &argparse.Options{Help: "Maze instance file"})
	output := parser.String("o", "output", &argparse.Options{Help: "Report file (default stdout)"})
	configFile := parser.String("c", "config", &argparse.Options{Help: "YAML configuration file"})
	heuristic := parser.Selector("H", "heuristic", []string{"octile", "manhattan"},
		&argparse.Options{Help: "Heuristic (overrides config)"})
	seed := parser.Int("s", "seed", &argparse.Options{Default: -1, Help: "Random seed, 0 for entropy (overrides config)"})
	dynamic := parser.Flag("d", "dynamic", &argparse.Options{Help: "Run the dynamic navigation loop"})
	maxIterations := parser.Int("m", "max-iterations", &argparse.Options{Default: -1, Help: "Iteration cap for the dynamic loop, 0 for none"})
	start := parser.String("S", "start", &argparse.Options{Help: "Relocate Start to the border cell r,c"})
	exit := parser.String("e", "exit", &argparse.Options{Help: "Relocate Exit to the border cell r,c"})
	png := parser.String("p", "png", &argparse.Options{Help: "Write a PNG snapshot of the result"})
	watch := parser.Flag("w", "watch", &argparse.Options{Help: "Show the run in the terminal"})
	compare := parser.Flag("C", "compare", &argparse.Options{Help: "Compare the A* cost with the Dijkstra optimum"})
	dumpConfig := parser.Flag("D", "dump-config", &argparse.Options{Help: "Print the effective configuration and exit"})
	verbose := parser.Flag("v", "verbose", &argparse.Options{Help: "Debug logging"})

	if err := parser.Parse(args); err != nil {
		fmt.Fprint(stderr, parser.Usage(err))
		return cliArgs{}, errUsage
	}
	if *input == "" && !*dumpConfig {
		fmt.Fprint(stderr, parser.Usage("an input file is required"))
		return cliArgs{}, errUsage
	}
	return cliArgs{
		input:         *input,
		output:        *output,
		configFile:    *configFile,
		heuristic:     *heuristic,
		seed:          *seed,
		dynamic:       *dynamic,
		maxIterations: *maxIterations,
		start:         *start,
		exit:          *exit,
		png:           *png,
		watch:         *watch,
		compare:       *compare,
		dumpConfig:    *dumpConfig,
		verbose:       *verbose,
	}, nil
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(a cliArgs) (config.Config, error) {
	cfg := config.Default()
	if a.configFile != "" {
		var err error
		if cfg, err = config.LoadFile(a.configFile); err != nil {
			return cfg, err
		}
	}
	if a.heuristic != "" {
		cfg.Heuristic = a.heuristic
	}
	if a.seed >= 0 {
		cfg.Seed = int64(a.seed)
	}
	if a.maxIterations >= 0 {
		cfg.Navigation.MaxIterations = a.maxIterations
	}
	if a.verbose {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
	return cfg, cfg.Validate()
}

// parseCoord reads "r,c".
func parseCoord(s string) (maze.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return maze.Coord{}, fmt.Errorf("lvmaze: coordinate %q is not r,c", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return maze.Coord{}, fmt.Errorf("lvmaze: coordinate %q: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return maze.Coord{}, fmt.Errorf("lvmaze: coordinate %q: %w", s, err)
	}
	return maze.Coord{Row: r, Col: c}, nil
}

// relocate applies --start and --exit.
func relocate(m *maze.Maze, a cliArgs) error {
	var s, e maze.Coord
	var err error
	if a.start != "" {
		if s, err = parseCoord(a.start); err != nil {
			return err
		}
	}
	if a.exit != "" {
		if e, err = parseCoord(a.exit); err != nil {
			return err
		}
	}
	switch {
	case a.start != "" && a.exit != "":
		return m.RelocateBoth(s, e)
	case a.start != "":
		return m.RelocateStart(s)
	case a.exit != "":
		return m.RelocateExit(e)
	}
	return nil
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if err := run(os.Args, os.Stdout, os.Stderr, log); err != nil {
		if !errors.Is(err, errUsage) {
			log.WithError(err).Error("lvmaze: run failed")
		}
		os.Exit(1)
	}
}
