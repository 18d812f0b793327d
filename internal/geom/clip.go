package geom

import "math"

// Rect is an axis-aligned screen rectangle, bounds inclusive.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

func finite(p Point2D) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// ClipSegment trims a-b to r (Liang-Barsky). ok is false when no part of
// the segment lies inside r or an endpoint is not finite.
func ClipSegment(a, b Point2D, r Rect) (Point2D, Point2D, bool) {
	if !finite(a) || !finite(b) {
		return a, b, false
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X - r.MinX},
		{dx, r.MaxX - a.X},
		{-dy, a.Y - r.MinY},
		{dy, r.MaxY - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return Point2D{a.X + t0*dx, a.Y + t0*dy}, Point2D{a.X + t1*dx, a.Y + t1*dy}, true
}

// ClipPolygon clips pts against r (Sutherland-Hodgman). The result is empty
// when the polygon misses r or has a non-finite vertex.
func ClipPolygon(pts []Point2D, r Rect) []Point2D {
	for _, p := range pts {
		if !finite(p) {
			return nil
		}
	}
	out := pts
	planes := []struct {
		inside func(Point2D) bool
		cross  func(a, b Point2D) Point2D
	}{
		{func(p Point2D) bool { return p.X >= r.MinX }, func(a, b Point2D) Point2D { return atX(a, b, r.MinX) }},
		{func(p Point2D) bool { return p.X <= r.MaxX }, func(a, b Point2D) Point2D { return atX(a, b, r.MaxX) }},
		{func(p Point2D) bool { return p.Y >= r.MinY }, func(a, b Point2D) Point2D { return atY(a, b, r.MinY) }},
		{func(p Point2D) bool { return p.Y <= r.MaxY }, func(a, b Point2D) Point2D { return atY(a, b, r.MaxY) }},
	}
	for _, pl := range planes {
		if len(out) == 0 {
			return nil
		}
		in := out
		out = make([]Point2D, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case pl.inside(cur):
				if !pl.inside(prev) {
					out = append(out, pl.cross(prev, cur))
				}
				out = append(out, cur)
			case pl.inside(prev):
				out = append(out, pl.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func atX(a, b Point2D, x float64) Point2D {
	t := (x - a.X) / (b.X - a.X)
	return Point2D{x, a.Y + t*(b.Y-a.Y)}
}

func atY(a, b Point2D, y float64) Point2D {
	t := (y - a.Y) / (b.Y - a.Y)
	return Point2D{a.X + t*(b.X-a.X), y}
}
