package mesh

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported primitives.
type Kind int

const (
	Cube Kind = iota
	Sphere
	Cylinder
	Cone
	Pyramid
	RectangularPrism
	TriangularPrism
	Torus
	Hemisphere
)

var kindNames = [...]string{
	Cube:             "cube",
	Sphere:           "sphere",
	Cylinder:         "cylinder",
	Cone:             "cone",
	Pyramid:          "pyramid",
	RectangularPrism: "rectangular_prism",
	TriangularPrism:  "triangular_prism",
	Torus:            "torus",
	Hemisphere:       "hemisphere",
}

var kindInfo = map[Kind]string{
	Cube:             "six square faces",
	Sphere:           "uv sphere, 16x12",
	Cylinder:         "20 segments with caps",
	Cone:             "20 segments with base",
	Pyramid:          "square base, one apex",
	RectangularPrism: "length x width x depth box",
	TriangularPrism:  "equilateral caps",
	Torus:            "24x12 ring",
	Hemisphere:       "dome with equator cap",
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is one of the enumerated kinds.
func (k Kind) Valid() bool { return k >= Cube && k <= Hemisphere }

// Description is a short human label for menus.
func (k Kind) Description() string { return kindInfo[k] }

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := Cube; k <= Hemisphere; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind accepts the canonical names plus a few spellings used on the
// command line ("rect-prism", "RectangularPrism", "tri_prism").
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "_", " ", "_").Replace(n)
	for k, s := range kindNames {
		if n == s || n == strings.ReplaceAll(s, "_", "") {
			return Kind(k), nil
		}
	}
	switch n {
	case "box", "rect_prism", "rectprism":
		return RectangularPrism, nil
	case "tri_prism", "triprism", "prism":
		return TriangularPrism, nil
	case "donut":
		return Torus, nil
	case "dome":
		return Hemisphere, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
