// SPDX-License-Identifier: MIT

package view

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/report"
)

// ErrNilScreen is returned when no screen is supplied.
var ErrNilScreen = errors.New("view: nil screen")

// Frame is one picture of a replay.
type Frame struct {
	Maze    *maze.Maze
	Overlay report.Overlay
	Caption string
}

// Styles per cell kind and overlay mark.
var (
	styleFree     = tcell.StyleDefault
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStart    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleExit     = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	stylePath     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleTrail    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleAgent    = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
)

func style(k maze.Kind, mk report.Mark) tcell.Style {
	if mk == report.MarkAgent {
		return styleAgent
	}
	switch k {
	case maze.Obstacle:
		return styleObstacle
	case maze.Start:
		return styleStart
	case maze.Exit:
		return styleExit
	}
	switch mk {
	case report.MarkPath:
		return stylePath
	case report.MarkTrail:
		return styleTrail
	}
	return styleFree
}

// Draw clears s and renders m with ov on top, one cell every two columns.
// caption, when non-empty, is printed below the grid.
func Draw(s tcell.Screen, m *maze.Maze, ov report.Overlay, sym report.Symbols, caption string) error {
	if s == nil {
		return ErrNilScreen
	}
	if m == nil {
		return report.ErrNilInput
	}
	s.Clear()
	marks := ov.Marks(m.Rows(), m.Cols())
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			k, _ := m.At(maze.Coord{Row: r, Col: c})
			mk := marks[r][c]
			s.SetContent(2*c, r, sym.Cell(k, mk), nil, style(k, mk))
		}
	}
	for i, ch := range []rune(caption) {
		s.SetContent(i, m.Rows()+1, ch, nil, tcell.StyleDefault)
	}
	s.Show()
	return nil
}

// Viewer plays frames on a screen. It is the only reader of the screen's
// event queue from New until Close, so keys pressed between frames are
// kept for the next read.
type Viewer struct {
	s    tcell.Screen
	sym  report.Symbols
	evs  chan tcell.Event
	stop chan struct{}
	once sync.Once

	pending bool // a key arrived during Replay and was not a quit key
}

// New starts forwarding events from an initialized screen s.
func New(s tcell.Screen, sym report.Symbols) (*Viewer, error) {
	if s == nil {
		return nil, ErrNilScreen
	}
	v := &Viewer{
		s:    s,
		sym:  sym,
		evs:  make(chan tcell.Event),
		stop: make(chan struct{}),
	}
	go s.ChannelEvents(v.evs, v.stop)
	return v, nil
}

// Close stops event forwarding. It does not finalize the screen.
func (v *Viewer) Close() {
	v.once.Do(func() { close(v.stop) })
}

// Replay draws frames one after another, waiting delay between them.
// quit reports whether the user pressed Esc, Ctrl-C or q; err is the
// context error when ctx ends first.
func (v *Viewer) Replay(ctx context.Context, frames []Frame, delay time.Duration) (quit bool, err error) {
	for _, f := range frames {
		if err = Draw(v.s, f.Maze, f.Overlay, v.sym, f.Caption); err != nil {
			return false, err
		}
		if quit, err = v.pause(ctx, delay); quit || err != nil {
			return quit, err
		}
	}
	return false, nil
}

// pause waits for delay, reporting whether the user asked to quit.
func (v *Viewer) pause(ctx context.Context, delay time.Duration) (bool, error) {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case ev, ok := <-v.evs:
			if !ok || isQuit(ev) {
				return true, nil
			}
			if _, key := ev.(*tcell.EventKey); key {
				v.pending = true
			}
		case <-timer.C:
			return false, nil
		}
	}
}

// WaitKey blocks until a key is pressed, the screen is finalized or ctx
// ends. A key already pressed during Replay counts.
func (v *Viewer) WaitKey(ctx context.Context) error {
	if v.pending {
		v.pending = false
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-v.evs:
			if !ok {
				return nil
			}
			if _, key := ev.(*tcell.EventKey); key {
				return nil
			}
		}
	}
}

func isQuit(ev tcell.Event) bool {
	k, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch k.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return k.Rune() == 'q'
	}
	return false
}
