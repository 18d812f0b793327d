package mesh

import (
	"math"

	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/palette"
)

// Tessellation constants.
const (
	SphereSegments     = 16
	SphereRings        = 12
	HemisphereRings    = 8
	CylinderSegments   = 20
	ConeSegments       = 20
	TorusMajorSegments = 24
	TorusMinorSegments = 12
)

// FaceCount returns the number of faces Build emits for k.
func FaceCount(k Kind) int {
	switch k {
	case Cube, RectangularPrism:
		return 6
	case Pyramid, TriangularPrism:
		return 5
	case Cone:
		return 2 * ConeSegments
	case Cylinder:
		return 3 * CylinderSegments
	case Sphere:
		return SphereSegments * SphereRings
	case Hemisphere:
		return SphereSegments*HemisphereRings + SphereSegments
	case Torus:
		return TorusMajorSegments * TorusMinorSegments
	}
	return 0
}

// Build returns the object-space faces for kind k. Params are not
// validated; non-positive dimensions yield degenerate faces. An unknown
// kind yields nil.
func Build(k Kind, p Params, pal palette.Palette) []Face {
	switch k {
	case Cube:
		return BuildCube(p.Side, pal)
	case Sphere:
		return BuildSphere(p.Radius, pal)
	case Cylinder:
		return BuildCylinder(p.Radius, p.Height, pal)
	case Cone:
		return BuildCone(p.Radius, p.Height, pal)
	case Pyramid:
		return BuildPyramid(p.Side, p.Height, pal)
	case RectangularPrism:
		return BuildRectangularPrism(p.Length, p.Width, p.Depth, pal)
	case TriangularPrism:
		return BuildTriangularPrism(p.Side, p.Length, pal)
	case Torus:
		return BuildTorus(p.MajorRadius, p.MinorRadius, pal)
	case Hemisphere:
		return BuildHemisphere(p.Radius, pal)
	}
	return nil
}

func BuildCube(side float64, pal palette.Palette) []Face {
	return box(side, side, side, pal)
}

// BuildRectangularPrism spans length on X, width on Y and depth on Z.
func BuildRectangularPrism(length, width, depth float64, pal palette.Palette) []Face {
	return box(length, width, depth, pal)
}

func box(sx, sy, sz float64, pal palette.Palette) []Face {
	x, y, z := sx/2, sy/2, sz/2
	v := [8]geom.Point3D{
		{X: -x, Y: -y, Z: -z}, {X: x, Y: -y, Z: -z}, {X: x, Y: y, Z: -z}, {X: -x, Y: y, Z: -z},
		{X: -x, Y: -y, Z: z}, {X: x, Y: -y, Z: z}, {X: x, Y: y, Z: z}, {X: -x, Y: y, Z: z},
	}
	quads := [6][4]int{
		{0, 3, 2, 1}, // front  (-z)
		{6, 7, 4, 5}, // back   (+z)
		{7, 3, 0, 4}, // left   (-x)
		{2, 6, 5, 1}, // right  (+x)
		{7, 6, 2, 3}, // top    (+y)
		{0, 1, 5, 4}, // bottom (-y)
	}
	faces := make([]Face, 0, len(quads))
	for i, q := range quads {
		faces = append(faces, face(pal.Face(i%3), v[q[0]], v[q[1]], v[q[2]], v[q[3]]))
	}
	return faces
}

// spherePoint maps polar angle theta (0 at +Y) and azimuth phi to the
// sphere of radius r.
func spherePoint(r, theta, phi float64) geom.Point3D {
	return geom.Point3D{
		X: r * math.Sin(theta) * math.Cos(phi),
		Y: r * math.Cos(theta),
		Z: r * math.Sin(theta) * math.Sin(phi),
	}
}

// uvBand emits one quad per (ring, segment) cell for theta in [0, thetaMax].
func uvBand(r, thetaMax float64, rings, segments int, pal palette.Palette, faces []Face) []Face {
	for i := 0; i < rings; i++ {
		t0 := thetaMax * float64(i) / float64(rings)
		t1 := thetaMax * float64(i+1) / float64(rings)
		for j := 0; j < segments; j++ {
			p0 := 2 * math.Pi * float64(j) / float64(segments)
			p1 := 2 * math.Pi * float64(j+1) / float64(segments)
			faces = append(faces, face(pal.Face(j%2),
				spherePoint(r, t0, p0),
				spherePoint(r, t0, p1),
				spherePoint(r, t1, p1),
				spherePoint(r, t1, p0),
			))
		}
	}
	return faces
}

func BuildSphere(radius float64, pal palette.Palette) []Face {
	faces := make([]Face, 0, SphereSegments*SphereRings)
	return uvBand(radius, math.Pi, SphereRings, SphereSegments, pal, faces)
}

// BuildHemisphere builds the upper dome (y >= 0) closed by a triangle fan
// on the equator. The cap faces -Y.
func BuildHemisphere(radius float64, pal palette.Palette) []Face {
	faces := make([]Face, 0, SphereSegments*HemisphereRings+SphereSegments)
	faces = uvBand(radius, math.Pi/2, HemisphereRings, SphereSegments, pal, faces)

	center := geom.Point3D{}
	for j := 0; j < SphereSegments; j++ {
		p1 := ringPoint(radius, 0, j, SphereSegments)
		p2 := ringPoint(radius, 0, j+1, SphereSegments)
		faces = append(faces, face(pal.Face(2), center, p1, p2))
	}
	return faces
}

// ringPoint is point k of an n-gon of radius r in the plane y.
func ringPoint(r, y float64, k, n int) geom.Point3D {
	a := 2 * math.Pi * float64(k) / float64(n)
	return geom.Point3D{X: r * math.Cos(a), Y: y, Z: r * math.Sin(a)}
}

func BuildCylinder(radius, height float64, pal palette.Palette) []Face {
	n := CylinderSegments
	h := height / 2
	top, bottom := geom.Point3D{Y: h}, geom.Point3D{Y: -h}

	faces := make([]Face, 0, 3*n)
	for k := 0; k < n; k++ {
		b0, b1 := ringPoint(radius, -h, k, n), ringPoint(radius, -h, k+1, n)
		t0, t1 := ringPoint(radius, h, k, n), ringPoint(radius, h, k+1, n)
		faces = append(faces, face(pal.Face(k%2), b0, t0, t1, b1))
	}
	for k := 0; k < n; k++ {
		faces = append(faces, face(pal.Face(2), top, ringPoint(radius, h, k+1, n), ringPoint(radius, h, k, n)))
	}
	for k := 0; k < n; k++ {
		faces = append(faces, face(pal.Face(2), bottom, ringPoint(radius, -h, k, n), ringPoint(radius, -h, k+1, n)))
	}
	return faces
}

func BuildCone(radius, height float64, pal palette.Palette) []Face {
	n := ConeSegments
	h := height / 2
	apex, base := geom.Point3D{Y: h}, geom.Point3D{Y: -h}

	faces := make([]Face, 0, 2*n)
	for k := 0; k < n; k++ {
		faces = append(faces, face(pal.Face(k%2), apex, ringPoint(radius, -h, k+1, n), ringPoint(radius, -h, k, n)))
	}
	for k := 0; k < n; k++ {
		faces = append(faces, face(pal.Face(2), base, ringPoint(radius, -h, k, n), ringPoint(radius, -h, k+1, n)))
	}
	return faces
}

// BuildPyramid puts a square base of the given side at y = -height/2 and
// the apex at y = +height/2.
func BuildPyramid(side, height float64, pal palette.Palette) []Face {
	s, h := side/2, height/2
	b := [4]geom.Point3D{
		{X: -s, Y: -h, Z: -s},
		{X: s, Y: -h, Z: -s},
		{X: s, Y: -h, Z: s},
		{X: -s, Y: -h, Z: s},
	}
	apex := geom.Point3D{Y: h}

	faces := make([]Face, 0, 5)
	for i := 0; i < 4; i++ {
		faces = append(faces, face(pal.Face(i%2), b[(i+1)%4], b[i], apex))
	}
	faces = append(faces, face(pal.Face(2), b[0], b[1], b[2], b[3]))
	return faces
}

// BuildTriangularPrism extrudes an equilateral triangle of the given side
// along Z by length.
func BuildTriangularPrism(side, length float64, pal palette.Palette) []Face {
	th := side * math.Sqrt(3) / 2
	z := length / 2
	tri := func(z float64) (a, b, c geom.Point3D) {
		return geom.Point3D{X: -side / 2, Y: -th / 2, Z: z},
			geom.Point3D{X: side / 2, Y: -th / 2, Z: z},
			geom.Point3D{X: 0, Y: th / 2, Z: z}
	}
	af, bf, cf := tri(-z)
	ab, bb, cb := tri(z)

	return []Face{
		face(pal.Face(0), af, cf, bf),
		face(pal.Face(0), ab, bb, cb),
		face(pal.Face(1), af, bf, bb, ab),
		face(pal.Face(2), bf, cf, cb, bb),
		face(pal.Face(1), cf, af, ab, cb),
	}
}

func BuildTorus(major, minor float64, pal palette.Palette) []Face {
	point := func(theta, phi float64) geom.Point3D {
		ring := major + minor*math.Cos(phi)
		return geom.Point3D{
			X: ring * math.Cos(theta),
			Y: minor * math.Sin(phi),
			Z: ring * math.Sin(theta),
		}
	}

	faces := make([]Face, 0, TorusMajorSegments*TorusMinorSegments)
	for i := 0; i < TorusMajorSegments; i++ {
		t0 := 2 * math.Pi * float64(i) / TorusMajorSegments
		t1 := 2 * math.Pi * float64(i+1) / TorusMajorSegments
		for j := 0; j < TorusMinorSegments; j++ {
			p0 := 2 * math.Pi * float64(j) / TorusMinorSegments
			p1 := 2 * math.Pi * float64(j+1) / TorusMinorSegments
			faces = append(faces, face(pal.Face((i+j)%2),
				point(t0, p0),
				point(t0, p1),
				point(t1, p1),
				point(t1, p0),
			))
		}
	}
	return faces
}
