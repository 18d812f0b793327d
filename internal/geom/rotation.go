package geom

import (
	"fmt"
	"math"
)

// Rotation holds the caller-owned rotation angles in degrees. Any real
// value is accepted; angles are taken modulo 360.
type Rotation struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// Normalized maps every angle into [0, 360).
func (r Rotation) Normalized() Rotation {
	return Rotation{wrapDegrees(r.X), wrapDegrees(r.Y), wrapDegrees(r.Z)}
}

// Add returns the component-wise sum.
func (r Rotation) Add(o Rotation) Rotation {
	return Rotation{r.X + o.X, r.Y + o.Y, r.Z + o.Z}
}

func (r Rotation) String() string {
	return fmt.Sprintf("(%.1f°, %.1f°, %.1f°)", r.X, r.Y, r.Z)
}

func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// -0 and values that round up to 360
	if a >= 360 || a == 0 {
		return 0
	}
	return a
}
