package render

import (
	"math"

	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/mesh"
	"github.com/san-kum/polyview/internal/palette"
)

// Polygon is one face ready to paint.
type Polygon struct {
	Points       []geom.Point2D
	Fill         palette.Color
	Outline      palette.Color
	OutlineWidth float64
	Depth        float64
	Intensity    float64
}

// Line is a segment of the background grid.
type Line struct {
	From, To geom.Point2D
}

// Frame is the output of one render: polygons in draw order.
type Frame struct {
	Width, Height int
	Background    palette.Color
	Grid          []Line
	GridColor     palette.Color
	Polygons      []Polygon
}

// Projection holds the fixed camera used by Compose.
type Projection struct {
	FOV            float64
	ViewerDistance float64
}

// DefaultProjection is fov 1.5 at distance 4.
var DefaultProjection = Projection{FOV: geom.DefaultFOV, ViewerDistance: geom.DefaultViewerDistance}

// Compose projects rotated, sorted faces onto a width x height canvas. The
// face order is kept. Degenerate faces are still emitted with ambient
// shading so the mesh shows no gaps.
func Compose(faces []mesh.Face, width, height int, proj Projection, light geom.Point3D, pal palette.Palette) []Polygon {
	scale := ScaleFactor * math.Min(float64(width), float64(height))
	cx, cy := float64(width)/2, float64(height)/2

	polys := make([]Polygon, 0, len(faces))
	for _, f := range faces {
		pts := make([]geom.Point2D, len(f.Vertices))
		for i, v := range f.Vertices {
			pts[i] = v.Project(proj.FOV, proj.ViewerDistance).Scale(scale).Translate(cx, cy)
		}
		in := Intensity(f, light)
		polys = append(polys, Polygon{
			Points:       pts,
			Fill:         Shade(f.Color, in),
			Outline:      pal.Outline,
			OutlineWidth: pal.OutlineWidth,
			Depth:        f.AverageZ(),
			Intensity:    in,
		})
	}
	return polys
}

// Grid returns evenly spaced horizontal and vertical lines covering the
// canvas, centered on its midpoint. It does not depend on the shape.
func Grid(width, height int, spacing float64) []Line {
	if spacing <= 0 || width <= 0 || height <= 0 {
		return nil
	}
	w, h := float64(width), float64(height)
	cx, cy := w/2, h/2

	var lines []Line
	for x := math.Mod(cx, spacing); x <= w; x += spacing {
		lines = append(lines, Line{From: geom.Point2D{X: x}, To: geom.Point2D{X: x, Y: h}})
	}
	for y := math.Mod(cy, spacing); y <= h; y += spacing {
		lines = append(lines, Line{From: geom.Point2D{Y: y}, To: geom.Point2D{X: w, Y: y}})
	}
	return lines
}
