// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/lvmaze/maze"
)

// Palette used by the PNG export.
var (
	colorFree     = color.White
	colorObstacle = color.RGBA{40, 40, 40, 255}
	colorStart    = color.RGBA{0, 170, 0, 255}
	colorExit     = color.RGBA{0, 0, 220, 255}
	colorTrail    = color.RGBA{255, 220, 150, 255}
	colorPath     = color.RGBA{220, 0, 0, 255}
	colorAgent    = color.RGBA{255, 140, 0, 255}
)

// draw renders m and ov into a new context; cellPx is the side of one cell.
func draw(m *maze.Maze, ov Overlay, cellPx int) (*gg.Context, error) {
	if m == nil {
		return nil, ErrNilInput
	}
	if cellPx < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrCellSize, cellPx)
	}
	px := float64(cellPx)
	dc := gg.NewContext(m.Cols()*cellPx, m.Rows()*cellPx)
	dc.SetColor(colorFree)
	dc.Clear()

	center := func(c maze.Coord) (float64, float64) {
		return float64(c.Col)*px + px/2, float64(c.Row)*px + px/2
	}

	marks := ov.Marks(m.Rows(), m.Cols())
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			k, _ := m.At(maze.Coord{Row: r, Col: c})
			var fill color.Color
			switch {
			case k == maze.Obstacle:
				fill = colorObstacle
			case k == maze.Start:
				fill = colorStart
			case k == maze.Exit:
				fill = colorExit
			case marks[r][c] == MarkTrail:
				fill = colorTrail
			default:
				continue
			}
			dc.SetColor(fill)
			dc.DrawRectangle(float64(c)*px, float64(r)*px, px, px)
			dc.Fill()
		}
	}

	if len(ov.Path) > 1 {
		dc.SetColor(colorPath)
		dc.SetLineWidth(px / 4)
		x, y := center(ov.Path[0])
		dc.MoveTo(x, y)
		for _, c := range ov.Path[1:] {
			x, y = center(c)
			dc.LineTo(x, y)
		}
		dc.Stroke()
	}

	if ov.HasAgent && m.InBounds(ov.Agent) {
		x, y := center(ov.Agent)
		dc.SetColor(colorAgent)
		dc.DrawCircle(x, y, px/3)
		dc.Fill()
	}
	return dc, nil
}

// EncodePNG writes a PNG snapshot of m with ov drawn on top.
func EncodePNG(w io.Writer, m *maze.Maze, ov Overlay, cellPx int) error {
	dc, err := draw(m, ov, cellPx)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG writes the snapshot to path.
func SavePNG(path string, m *maze.Maze, ov Overlay, cellPx int) error {
	dc, err := draw(m, ov, cellPx)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}
