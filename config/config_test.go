package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/report"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, maze.DefaultDynamics(), cfg.MazeDynamics())
	assert.Equal(t, report.DefaultSymbols(), cfg.Symbols())
	assert.Equal(t, 5, cfg.Navigation.MaxFailures)
	assert.Equal(t, 10, cfg.BFS.MaxExecutions)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())

	h, err := cfg.HeuristicValue()
	require.NoError(t, err)
	assert.Equal(t, astar.Octile.Name(), h.Name())
}

func TestLoad_Partial(t *testing.T) {
	doc := `
heuristic: Manhattan
seed: 42
dynamics:
  obstacle_in: 0.1
render:
  free: " "
log:
  level: debug
`
	cfg, err := config.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 0.1, cfg.Dynamics.ObstacleIn)
	assert.Equal(t, 0.5, cfg.Dynamics.ObstacleOut, "untouched keys keep defaults")
	assert.Equal(t, report.BlankSymbols(), cfg.Symbols())
	assert.Equal(t, logrus.DebugLevel, cfg.Level())

	h, err := cfg.HeuristicValue()
	require.NoError(t, err)
	assert.Equal(t, "manhattan", h.Name())
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":     "colour: red\n",
		"bad type":        "seed: [1, 2]\n",
		"heuristic":       "heuristic: euclid\n",
		"probability":     "dynamics:\n  obstacle_in: 1.5\n",
		"cap":             "dynamics:\n  max_obstacle_percent: 101\n",
		"failures":        "navigation:\n  max_failures: 0\n",
		"iterations":      "navigation:\n  max_iterations: -1\n",
		"executions":      "bfs:\n  max_executions: 0\n",
		"symbol too long": "render:\n  path: \"**\"\n",
		"symbol empty":    "render:\n  trail: \"\"\n",
		"log level":       "log:\n  level: loud\n",
		"malformed yaml":  "heuristic: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(strings.NewReader(doc))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_DynamicsErrorChain(t *testing.T) {
	_, err := config.Load(strings.NewReader("dynamics:\n  obstacle_out: -0.1\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	require.ErrorIs(t, err, maze.ErrOptionViolation)
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Heuristic = "manhattan"
	cfg.Seed = 7
	cfg.Render.Obstacle = "#"

	var buf bytes.Buffer
	require.NoError(t, config.Write(&buf, cfg))
	assert.Contains(t, buf.String(), "max_obstacle_percent: 25")

	got, err := config.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lvmaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 3\n"), 0o644))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cfg.Seed)

	_, err = config.LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, config.ErrInvalid)
	require.ErrorIs(t, err, os.ErrNotExist)
}
