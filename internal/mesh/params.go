package mesh

import "math"

const (
	DefaultSide        = 1.0
	DefaultRadius      = 1.0
	DefaultHeight      = 1.5
	DefaultLength      = 1.5
	DefaultWidth       = 1.0
	DefaultDepth       = 0.8
	DefaultMajorRadius = 1.0
	DefaultMinorRadius = 0.3
)

// Params carries every dimension a shape may need. Builders read only the
// fields listed by Fields for their kind.
type Params struct {
	Side        float64 `yaml:"side" json:"side,omitempty"`
	Radius      float64 `yaml:"radius" json:"radius,omitempty"`
	Height      float64 `yaml:"height" json:"height,omitempty"`
	Length      float64 `yaml:"length" json:"length,omitempty"`
	Width       float64 `yaml:"width" json:"width,omitempty"`
	Depth       float64 `yaml:"depth" json:"depth,omitempty"`
	MajorRadius float64 `yaml:"major_radius" json:"major_radius,omitempty"`
	MinorRadius float64 `yaml:"minor_radius" json:"minor_radius,omitempty"`
}

func DefaultParams() Params {
	return Params{
		Side:        DefaultSide,
		Radius:      DefaultRadius,
		Height:      DefaultHeight,
		Length:      DefaultLength,
		Width:       DefaultWidth,
		Depth:       DefaultDepth,
		MajorRadius: DefaultMajorRadius,
		MinorRadius: DefaultMinorRadius,
	}
}

// Fields returns the dimension names kind k reads.
func Fields(k Kind) []string {
	switch k {
	case Cube:
		return []string{"side"}
	case Sphere, Hemisphere:
		return []string{"radius"}
	case Cylinder, Cone:
		return []string{"radius", "height"}
	case Pyramid:
		return []string{"side", "height"}
	case RectangularPrism:
		return []string{"length", "width", "depth"}
	case TriangularPrism:
		return []string{"side", "length"}
	case Torus:
		return []string{"major_radius", "minor_radius"}
	}
	return nil
}

// Get returns the named dimension.
func (p Params) Get(field string) float64 {
	switch field {
	case "side":
		return p.Side
	case "radius":
		return p.Radius
	case "height":
		return p.Height
	case "length":
		return p.Length
	case "width":
		return p.Width
	case "depth":
		return p.Depth
	case "major_radius":
		return p.MajorRadius
	case "minor_radius":
		return p.MinorRadius
	}
	return 0
}

// Set assigns the named dimension and reports whether the name is known.
func (p *Params) Set(field string, v float64) bool {
	switch field {
	case "side":
		p.Side = v
	case "radius":
		p.Radius = v
	case "height":
		p.Height = v
	case "length":
		p.Length = v
	case "width":
		p.Width = v
	case "depth":
		p.Depth = v
	case "major_radius":
		p.MajorRadius = v
	case "minor_radius":
		p.MinorRadius = v
	default:
		return false
	}
	return true
}

// WithDefaults fills zero fields from DefaultParams.
func (p Params) WithDefaults() Params {
	d := DefaultParams()
	for _, f := range []string{"side", "radius", "height", "length", "width", "depth", "major_radius", "minor_radius"} {
		if p.Get(f) == 0 {
			p.Set(f, d.Get(f))
		}
	}
	return p
}

// Validate checks the fields kind k reads. Builders never call it: the
// caller is expected to validate before rendering.
func (p Params) Validate(k Kind) error {
	if !k.Valid() {
		return ErrUnknownKind
	}
	for _, f := range Fields(k) {
		v := p.Get(f)
		if !(v > 0) || math.IsInf(v, 0) {
			return &ParamError{Kind: k, Field: f, Value: v}
		}
	}
	return nil
}
