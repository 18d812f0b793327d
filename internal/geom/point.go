package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3D is a point or direction in object space.
type Point3D struct {
	X, Y, Z float64
}

// Point2D is a projected offset from the canvas center.
type Point2D struct {
	X, Y float64
}

// P is shorthand for Point3D{x, y, z}.
func P(x, y, z float64) Point3D { return Point3D{x, y, z} }

// Point3D methods.
func (p Point3D) Add(o Point3D) Point3D      { return Point3D{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p Point3D) Sub(o Point3D) Point3D      { return Point3D{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p Point3D) Scale(s float64) Point3D    { return Point3D{p.X * s, p.Y * s, p.Z * s} }
func (p Point3D) Dot(o Point3D) float64      { return p.X*o.X + p.Y*o.Y + p.Z*o.Z }
func (p Point3D) Length() float64            { return math.Sqrt(p.Dot(p)) }
func (p Point3D) Distance(o Point3D) float64 { return p.Sub(o).Length() }
func (p Point3D) Cross(o Point3D) Point3D {
	return Point3D{p.Y*o.Z - p.Z*o.Y, p.Z*o.X - p.X*o.Z, p.X*o.Y - p.Y*o.X}
}

// Normalize returns the unit vector, or the zero vector for a zero input.
func (p Point3D) Normalize() Point3D {
	if l := p.Length(); l != 0 {
		return p.Scale(1 / l)
	}
	return Point3D{}
}

// ApproxEqual reports whether every component differs by at most tol.
func (p Point3D) ApproxEqual(o Point3D, tol float64) bool {
	return math.Abs(p.X-o.X) <= tol && math.Abs(p.Y-o.Y) <= tol && math.Abs(p.Z-o.Z) <= tol
}

func (p Point3D) vec() mgl64.Vec3 { return mgl64.Vec3{p.X, p.Y, p.Z} }

func fromVec(v mgl64.Vec3) Point3D { return Point3D{v[0], v[1], v[2]} }

// Scale returns the offset multiplied by s.
func (p Point2D) Scale(s float64) Point2D { return Point2D{p.X * s, p.Y * s} }

// Translate moves the offset by (dx, dy).
func (p Point2D) Translate(dx, dy float64) Point2D { return Point2D{p.X + dx, p.Y + dy} }

// SignedArea is the shoelace area of a closed polygon. It is positive when
// the points run counter-clockwise in a y-up frame.
func SignedArea(pts []Point2D) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}
