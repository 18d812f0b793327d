package geom

import "github.com/go-gl/mathgl/mgl64"

const (
	DefaultFOV            = 1.5
	DefaultViewerDistance = 4.0

	// projectionEpsilon keeps the perspective divide finite when a point
	// sits exactly at -viewerDistance.
	projectionEpsilon = 1e-6
)

// RotateX rotates the point about the X axis by angle degrees.
func (p Point3D) RotateX(angle float64) Point3D {
	return fromVec(mgl64.Rotate3DX(mgl64.DegToRad(angle)).Mul3x1(p.vec()))
}

// RotateY rotates the point about the Y axis by angle degrees.
func (p Point3D) RotateY(angle float64) Point3D {
	return fromVec(mgl64.Rotate3DY(mgl64.DegToRad(angle)).Mul3x1(p.vec()))
}

// RotateZ rotates the point about the Z axis by angle degrees.
func (p Point3D) RotateZ(angle float64) Point3D {
	return fromVec(mgl64.Rotate3DZ(mgl64.DegToRad(angle)).Mul3x1(p.vec()))
}

// Rotate applies r as X, then Y, then Z.
func (p Point3D) Rotate(r Rotation) Point3D {
	return p.RotateX(r.X).RotateY(r.Y).RotateZ(r.Z)
}

// Project applies a perspective divide and returns the screen offset with
// Y pointing down. The result is in object-space units, not pixels.
func (p Point3D) Project(fov, viewerDistance float64) Point2D {
	factor := fov / (viewerDistance + p.Z + projectionEpsilon)
	return Point2D{p.X * factor, -p.Y * factor}
}

// Matrix returns the combined rotation matrix for r, equivalent to
// calling Rotate on every point. Useful when transforming many points.
func (r Rotation) Matrix() mgl64.Mat3 {
	rx := mgl64.Rotate3DX(mgl64.DegToRad(r.X))
	ry := mgl64.Rotate3DY(mgl64.DegToRad(r.Y))
	rz := mgl64.Rotate3DZ(mgl64.DegToRad(r.Z))
	return rz.Mul3(ry).Mul3(rx)
}

// Transform applies a matrix built by Rotation.Matrix.
func (p Point3D) Transform(m mgl64.Mat3) Point3D {
	return fromVec(m.Mul3x1(p.vec()))
}
