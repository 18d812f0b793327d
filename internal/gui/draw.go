package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/palette"
	"github.com/san-kum/polyview/internal/render"
)

// DrawFrame paints grid lines and polygons in frame order. Must be called
// between BeginDrawing and EndDrawing.
func DrawFrame(frame render.Frame) {
	grid := toColor(frame.GridColor)
	for _, l := range frame.Grid {
		rl.DrawLineV(toVec(l.From), toVec(l.To), grid)
	}

	for _, p := range frame.Polygons {
		if len(p.Points) < 3 {
			continue
		}
		rl.DrawTriangleFan(fan(p.Points), toColor(p.Fill))
		if p.OutlineWidth > 0 {
			outline := toColor(p.Outline)
			for i := range p.Points {
				next := p.Points[(i+1)%len(p.Points)]
				rl.DrawLineEx(toVec(p.Points[i]), toVec(next), float32(p.OutlineWidth), outline)
			}
		}
	}
}

// fan orders points the way raylib expects for a visible triangle fan:
// counter-clockwise on screen, which has a negative shoelace area once y
// points down.
func fan(pts []geom.Point2D) []rl.Vector2 {
	out := make([]rl.Vector2, len(pts))
	if geom.SignedArea(pts) > 0 {
		for i, p := range pts {
			out[len(pts)-1-i] = toVec(p)
		}
		return out
	}
	for i, p := range pts {
		out[i] = toVec(p)
	}
	return out
}

func toVec(p geom.Point2D) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func toColor(c palette.Color) rl.Color {
	n := c.NRGBA()
	return rl.NewColor(n.R, n.G, n.B, n.A)
}
