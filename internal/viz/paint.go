package viz

import (
	"math"

	"github.com/san-kum/polyview/internal/render"
)

// Paint draws frame onto c in order: grid lines first, then each polygon
// filled with its shaded color. Polygons with an outline get their edges
// erased so adjacent faces stay distinguishable in braille. The frame is
// expected to be composed at the canvas pixel size.
func Paint(c *Canvas, frame render.Frame) {
	for _, l := range frame.Grid {
		c.DrawLineColor(
			int(math.Floor(l.From.X)), int(math.Floor(l.From.Y)),
			int(math.Floor(l.To.X)), int(math.Floor(l.To.Y)),
			frame.GridColor,
		)
	}
	for _, p := range frame.Polygons {
		c.FillPolygon(p.Points, p.Fill)
		if p.OutlineWidth > 0 {
			c.ErasePolygon(p.Points)
		}
	}
}

// Snapshot renders frame into a fresh canvas of cols x rows cells.
func Snapshot(frame render.Frame, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	Paint(c, frame)
	return c
}
