package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/palette"
	"github.com/san-kum/polyview/internal/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Rasterize draws frame into an RGBA image of the frame's size with
// anti-aliased fills and outlines.
func Rasterize(frame render.Frame) *image.RGBA {
	w, h := max(frame.Width, 1), max(frame.Height, 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(frame.Background.NRGBA()), image.Point{}, draw.Src)

	// geometry outside the image plus a small margin is dropped
	clip := geom.Rect{MinX: -4, MinY: -4, MaxX: float64(w) + 4, MaxY: float64(h) + 4}

	z := vector.NewRasterizer(w, h)
	for _, l := range frame.Grid {
		strokeSegment(z, l.From, l.To, 1, clip)
	}
	if len(frame.Grid) > 0 {
		fill(img, z, frame.GridColor)
	}

	for _, p := range frame.Polygons {
		if len(p.Points) < 3 {
			continue
		}
		if pts := geom.ClipPolygon(p.Points, clip); len(pts) >= 3 {
			z.Reset(w, h)
			z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
			for _, pt := range pts[1:] {
				z.LineTo(float32(pt.X), float32(pt.Y))
			}
			z.ClosePath()
			fill(img, z, p.Fill)
		}

		if p.OutlineWidth > 0 && p.Outline.A > 0 {
			z.Reset(w, h)
			for i := range p.Points {
				strokeSegment(z, p.Points[i], p.Points[(i+1)%len(p.Points)], p.OutlineWidth, clip)
			}
			fill(img, z, p.Outline)
		}
	}
	return img
}

func fill(img *image.RGBA, z *vector.Rasterizer, c palette.Color) {
	z.DrawOp = draw.Over
	z.Draw(img, img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})
	z.Reset(img.Bounds().Dx(), img.Bounds().Dy())
}

// strokeSegment adds a width-wide quad covering the part of a->b inside
// clip to the rasterizer path.
func strokeSegment(z *vector.Rasterizer, a, b geom.Point2D, width float64, clip geom.Rect) {
	a, b, ok := geom.ClipSegment(a, b, clip)
	if !ok {
		return
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	z.ClosePath()
}

// DrawLabel writes text in the top-left corner using the 7x13 bitmap face.
func DrawLabel(img draw.Image, text string, c color.Color) {
	if text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(6, 16),
	}
	d.DrawString(text)
}

// WritePNG rasterizes a single frame.
func WritePNG(w io.Writer, frame render.Frame, caption string) error {
	img := Rasterize(frame)
	DrawLabel(img, caption, color.White)
	return png.Encode(w, img)
}
