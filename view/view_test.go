package view_test

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/report"
	"github.com/katalvlaran/lvmaze/view"
)

func screen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(20, 8)
	t.Cleanup(s.Fini)
	return s
}

func small(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.FromCodes([][]int{
		{3, 0, 0},
		{0, 1, 0},
		{0, 0, 4},
	})
	require.NoError(t, err)
	return m
}

// runeAt reads the rune shown at (x, y).
func runeAt(t *testing.T, s tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := s.GetContents()
	cell := cells[y*w+x]
	require.NotEmpty(t, cell.Runes)
	return cell.Runes[0]
}

func TestDraw(t *testing.T) {
	s := screen(t)
	ov := report.Overlay{
		Agent:    maze.Coord{Row: 0, Col: 1},
		HasAgent: true,
		Path:     []maze.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	}
	require.NoError(t, view.Draw(s, small(t), ov, report.DefaultSymbols(), "iter 1"))

	assert.Equal(t, '3', runeAt(t, s, 0, 0))
	assert.Equal(t, 'A', runeAt(t, s, 2, 0))
	assert.Equal(t, '0', runeAt(t, s, 4, 0))
	assert.Equal(t, '1', runeAt(t, s, 2, 1))
	assert.Equal(t, '*', runeAt(t, s, 4, 1))
	assert.Equal(t, '4', runeAt(t, s, 4, 2))
	assert.Equal(t, ' ', runeAt(t, s, 1, 0))
	assert.Equal(t, 'i', runeAt(t, s, 0, 4))
	assert.Equal(t, '1', runeAt(t, s, 5, 4))
}

func TestDraw_Errors(t *testing.T) {
	assert.ErrorIs(t, view.Draw(nil, small(t), report.Overlay{}, report.DefaultSymbols(), ""), view.ErrNilScreen)
	assert.ErrorIs(t, view.Draw(screen(t), nil, report.Overlay{}, report.DefaultSymbols(), ""), report.ErrNilInput)
}

func frames(t *testing.T) []view.Frame {
	m := small(t)
	return []view.Frame{
		{Maze: m, Overlay: report.Overlay{Agent: m.Start(), HasAgent: true}, Caption: "one"},
		{Maze: m, Overlay: report.Overlay{Agent: m.Exit(), HasAgent: true}, Caption: "two"},
	}
}

func viewer(t *testing.T, s tcell.Screen) *view.Viewer {
	t.Helper()
	v, err := view.New(s, report.DefaultSymbols())
	require.NoError(t, err)
	t.Cleanup(v.Close)
	return v
}

func TestReplay_AllFrames(t *testing.T) {
	s := screen(t)
	quit, err := viewer(t, s).Replay(context.Background(), frames(t), time.Millisecond)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, 'A', runeAt(t, s, 4, 2))
	assert.Equal(t, 't', runeAt(t, s, 0, 4))
}

func TestReplay_Quit(t *testing.T) {
	s := screen(t)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	quit, err := viewer(t, s).Replay(ctx, frames(t), time.Minute)
	require.NoError(t, err)
	assert.True(t, quit)
	assert.Equal(t, 'o', runeAt(t, s, 0, 4), "stopped on the first frame")
}

func TestReplay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	quit, err := viewer(t, screen(t)).Replay(ctx, frames(t), time.Minute)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, quit)
}

// TestReplay_KeepsKeysForWaitKey presses a key during the replay and
// expects the same viewer to hand it to WaitKey afterwards.
func TestReplay_KeepsKeysForWaitKey(t *testing.T) {
	s := screen(t)
	v := viewer(t, s)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	quit, err := v.Replay(context.Background(), frames(t), time.Millisecond)
	require.NoError(t, err)
	require.False(t, quit)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, v.WaitKey(ctx))
}

func TestWaitKey(t *testing.T) {
	s := screen(t)
	v := viewer(t, s)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, v.WaitKey(ctx))

	_, err := view.New(nil, report.DefaultSymbols())
	assert.ErrorIs(t, err, view.ErrNilScreen)
}

func TestWaitKey_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, viewer(t, screen(t)).WaitKey(ctx), context.Canceled)
}
