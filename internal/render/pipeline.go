package render

import (
	"math"
	"sort"

	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/mesh"
	"github.com/san-kum/polyview/internal/palette"
)

const (
	// AmbientIntensity is used alone when a face has no usable normal.
	AmbientIntensity = 0.4
	DiffuseWeight    = 0.6
	MinIntensity     = 0.2
	MaxIntensity     = 1.0

	// ScaleFactor converts projected units to pixels: 0.6 * min(w, h).
	ScaleFactor = 0.6

	degenerateLength = 1e-9
)

// LightDirection points from the shape toward the light: up, to the left
// and toward the viewer, who sits on the -Z side.
var LightDirection = geom.Point3D{X: -0.4, Y: 0.6, Z: -1}

// Transform returns new faces with every vertex rotated by r. The input is
// not modified.
func Transform(faces []mesh.Face, r geom.Rotation) []mesh.Face {
	m := r.Matrix()
	out := make([]mesh.Face, len(faces))
	for i, f := range faces {
		vs := make([]geom.Point3D, len(f.Vertices))
		for j, v := range f.Vertices {
			vs[j] = v.Transform(m)
		}
		out[i] = mesh.Face{Vertices: vs, Color: f.Color}
	}
	return out
}

// DepthSort orders faces in place by descending average Z so the farthest
// face comes first. Faces with equal depth keep their generation order.
func DepthSort(faces []mesh.Face) {
	keys := make([]float64, len(faces))
	for i, f := range faces {
		keys[i] = f.AverageZ()
	}
	idx := make([]int, len(faces))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return keys[idx[a]] > keys[idx[b]] })

	sorted := make([]mesh.Face, len(faces))
	for i, j := range idx {
		sorted[i] = faces[j]
	}
	copy(faces, sorted)
}

// Intensity returns the flat light intensity of a rotated face for the
// given light direction, in [MinIntensity, MaxIntensity].
func Intensity(f mesh.Face, light geom.Point3D) float64 {
	n := f.Normal()
	nl, ll := n.Length(), light.Length()
	if nl < degenerateLength || ll < degenerateLength {
		return AmbientIntensity
	}
	cos := n.Dot(light) / (nl * ll)
	return clamp(cos*DiffuseWeight+AmbientIntensity, MinIntensity, MaxIntensity)
}

// Shade scales the RGB channels of base by intensity. Alpha is unchanged.
func Shade(base palette.Color, intensity float64) palette.Color {
	return base.Scale(intensity)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
