package mesh

import (
	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/palette"
)

// Face is a planar polygon with at least three vertices.
type Face struct {
	Vertices []geom.Point3D
	Color    palette.Color
}

func face(c palette.Color, vs ...geom.Point3D) Face {
	return Face{Vertices: vs, Color: c}
}

// Normal returns (v1-v0)×(v2-v0), unnormalized.
func (f Face) Normal() geom.Point3D {
	if len(f.Vertices) < 3 {
		return geom.Point3D{}
	}
	v0, v1, v2 := f.Vertices[0], f.Vertices[1], f.Vertices[2]
	return v1.Sub(v0).Cross(v2.Sub(v0))
}

// Centroid is the mean of the vertices.
func (f Face) Centroid() geom.Point3D {
	var c geom.Point3D
	for _, v := range f.Vertices {
		c = c.Add(v)
	}
	if n := len(f.Vertices); n > 0 {
		c = c.Scale(1 / float64(n))
	}
	return c
}

// AverageZ is the mean Z of the vertices, the painter's sort key.
func (f Face) AverageZ() float64 {
	if len(f.Vertices) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range f.Vertices {
		sum += v.Z
	}
	return sum / float64(len(f.Vertices))
}
