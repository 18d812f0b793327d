package render

import (
	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/mesh"
	"github.com/san-kum/polyview/internal/palette"
)

// Scene is everything one frame depends on.
type Scene struct {
	Kind     mesh.Kind
	Params   mesh.Params
	Rotation geom.Rotation
	Width    int
	Height   int
	Palette  palette.Palette
	// GridSpacing > 0 adds the decorative background grid.
	GridSpacing float64
}

// Renderer runs the pipeline. The zero value is not usable; call New.
type Renderer struct {
	Projection Projection
	Light      geom.Point3D
	cache      *mesh.Cache
}

// New returns a renderer with the default projection and light. A nil
// cache rebuilds the mesh every frame.
func New(cache *mesh.Cache) *Renderer {
	return &Renderer{
		Projection: DefaultProjection,
		Light:      LightDirection,
		cache:      cache,
	}
}

// Faces returns the object-space mesh for the scene.
func (r *Renderer) Faces(s Scene) []mesh.Face {
	if r.cache != nil {
		return r.cache.Faces(s.Kind, s.Params, s.Palette)
	}
	return mesh.Build(s.Kind, s.Params, s.Palette)
}

// Render produces the frame for s. It does not validate the scene.
func (r *Renderer) Render(s Scene) Frame {
	faces := Transform(r.Faces(s), s.Rotation)
	DepthSort(faces)

	f := Frame{
		Width:      s.Width,
		Height:     s.Height,
		Background: s.Palette.Background,
		GridColor:  s.Palette.Grid,
		Polygons:   Compose(faces, s.Width, s.Height, r.Projection, r.Light, s.Palette),
	}
	if s.GridSpacing > 0 {
		f.Grid = Grid(s.Width, s.Height, s.GridSpacing)
	}
	return f
}
