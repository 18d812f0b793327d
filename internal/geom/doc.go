// Package geom provides the 3D vector math used by the shape pipeline.
//
//   - [Point3D]: immutable object-space point with axis rotations
//   - [Point2D]: projected offset, still in object-space units
//   - [Rotation]: caller-owned rotation angles in degrees
//
// Rotations are applied in the fixed extrinsic order X, then Y, then Z.
// Every operation returns a new value; inputs are never mutated.
package geom
