package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/palette"
)

func square(x0, y0, x1, y1 float64) []geom.Point2D {
	return []geom.Point2D{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	c.Set(3, 3)
	if c.Grid[0][0] != rune(brailleBlank|0x1) {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != rune(brailleBlank|0x80) {
		t.Errorf("expected dot 8, got %U", c.Grid[0][1])
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != brailleBlank {
		t.Errorf("expected blank after unset, got %U", c.Grid[0][0])
	}

	// out of range is ignored
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)
}

func TestCanvasPixelSize(t *testing.T) {
	w, h := NewCanvas(10, 5).PixelSize()
	if w != 20 || h != 20 {
		t.Errorf("expected 20x20, got %dx%d", w, h)
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(5, 2)
	c.DrawLine(0, 0, 9, 7)
	if !c.IsSet(0, 0) || !c.IsSet(9, 7) {
		t.Error("line endpoints should be set")
	}
	c.EraseLine(0, 0, 9, 7)
	if c.IsSet(0, 0) || c.IsSet(9, 7) {
		t.Error("erase should clear endpoints")
	}
}

func TestFillPolygonCoversInterior(t *testing.T) {
	c := NewCanvas(10, 5)
	red := palette.MustHex("#ff0000", 1)

	c.FillPolygon(square(2, 2, 10, 10), red)

	for y := 2; y < 10; y++ {
		for x := 2; x < 10; x++ {
			if !c.IsSet(x, y) {
				t.Fatalf("pixel (%d,%d) should be filled", x, y)
			}
		}
	}
	for _, p := range [][2]int{{1, 5}, {10, 5}, {5, 1}, {5, 10}} {
		if c.IsSet(p[0], p[1]) {
			t.Errorf("pixel %v outside the square is set", p)
		}
	}
}

func TestFillPolygonEvenOdd(t *testing.T) {
	// a ring made of an outer square and a reversed inner square joined at
	// one corner
	pts := []geom.Point2D{
		{X: 0, Y: 0}, {X: 16, Y: 0}, {X: 16, Y: 16}, {X: 0, Y: 16}, {X: 0, Y: 0},
		{X: 4, Y: 4}, {X: 4, Y: 12}, {X: 12, Y: 12}, {X: 12, Y: 4}, {X: 4, Y: 4},
	}
	c := NewCanvas(10, 5)
	c.FillPolygon(pts, palette.Default.Faces[0])

	if !c.IsSet(1, 8) {
		t.Error("ring body should be filled")
	}
	if c.IsSet(8, 8) {
		t.Error("ring hole should stay empty")
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	c := NewCanvas(4, 2)
	c.FillPolygon([]geom.Point2D{{X: 1, Y: 1}, {X: 5, Y: 5}}, palette.Default.Faces[0])
	c.FillPolygon([]geom.Point2D{{X: 1, Y: 1}, {X: 3, Y: 3}, {X: 5, Y: 5}}, palette.Default.Faces[0])
	if strings.Trim(c.String(), string(rune(brailleBlank))+"\n") != "" {
		t.Error("degenerate polygons should not paint")
	}
}

func TestColorStringTintsCells(t *testing.T) {
	c := NewCanvas(4, 1)
	c.FillPolygon(square(0, 0, 4, 4), palette.MustHex("#ff0000", 1))

	plain := c.String()
	colored := c.ColorString()
	if !strings.Contains(plain, "⣿") {
		t.Errorf("expected full cells, got %q", plain)
	}
	if len(colored) < len(plain) {
		t.Error("colored output should not be shorter than plain output")
	}
}

func TestClearResetsTint(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SetColor(0, 0, palette.Default.Faces[0])
	c.Clear()
	if c.IsSet(0, 0) || c.tinted[0][0] {
		t.Error("clear should drop dots and tint")
	}
}
