package mesh

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"cube", Cube},
		{"Sphere", Sphere},
		{"rectangular_prism", RectangularPrism},
		{"rect-prism", RectangularPrism},
		{"RectangularPrism", RectangularPrism},
		{"triangular-prism", TriangularPrism},
		{"donut", Torus},
		{" hemisphere ", Hemisphere},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Errorf("ParseKind(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseKind("dodecahedron"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestKindTextRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatalf("marshal %s: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(b); err != nil || back != k {
			t.Errorf("round trip %s -> %q -> %s (%v)", k, b, back, err)
		}
	}
}

func TestValidate(t *testing.T) {
	p := DefaultParams()
	for _, k := range Kinds() {
		if err := p.Validate(k); err != nil {
			t.Errorf("%s defaults invalid: %v", k, err)
		}
	}

	p.MinorRadius = -1
	err := p.Validate(Torus)
	var pe *ParamError
	if !errors.As(err, &pe) || pe.Field != "minor_radius" {
		t.Fatalf("expected ParamError on minor_radius, got %v", err)
	}
	if !errors.Is(err, ErrNonPositive) {
		t.Error("ParamError should unwrap to ErrNonPositive")
	}

	if err := p.Validate(Cube); err != nil {
		t.Errorf("cube does not read minor_radius: %v", err)
	}
}

func TestWithDefaults(t *testing.T) {
	p := Params{Side: 3}.WithDefaults()
	if p.Side != 3 || p.Radius != DefaultRadius || p.MinorRadius != DefaultMinorRadius {
		t.Errorf("unexpected params %+v", p)
	}
}
