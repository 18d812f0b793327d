package palette

import (
	"math"
	"testing"
)

func TestScaleClampsAndKeepsAlpha(t *testing.T) {
	c := RGBA(0.5, 0.8, 1.0, 0.7)

	dim := c.Scale(0.5)
	if math.Abs(dim.R-0.25) > 1e-12 || math.Abs(dim.G-0.4) > 1e-12 || math.Abs(dim.B-0.5) > 1e-12 {
		t.Errorf("unexpected scaled color %+v", dim)
	}
	if dim.A != 0.7 {
		t.Errorf("alpha changed: %v", dim.A)
	}

	bright := c.Scale(2)
	if bright.R != 1 || bright.G != 1 || bright.B != 1 {
		t.Errorf("expected clamped to 1, got %+v", bright)
	}
}

func TestHex(t *testing.T) {
	c, err := Hex("#ff0000", 1)
	if err != nil {
		t.Fatalf("hex failed: %v", err)
	}
	if c.R != 1 || c.G != 0 || c.B != 0 {
		t.Errorf("unexpected color %+v", c)
	}

	if _, err := Hex("red", 1); err == nil {
		t.Error("expected error for malformed hex")
	}
}

func TestFaceWraps(t *testing.T) {
	p := Default
	if p.Face(0) != p.Face(len(p.Faces)) {
		t.Error("face lookup should wrap")
	}
	empty := Palette{}
	if empty.Face(4) != Default.Face(4) {
		t.Error("empty palette should fall back to default")
	}
}

func TestNRGBA(t *testing.T) {
	got := RGBA(1, 0.5, 0, 0.5).NRGBA()
	if got.R != 255 || got.G != 128 || got.B != 0 || got.A != 128 {
		t.Errorf("unexpected NRGBA %+v", got)
	}
}
