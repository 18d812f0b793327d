package mesh

import (
	"sync"
	"testing"

	"github.com/san-kum/polyview/internal/palette"
)

func TestCacheHitsOnEqualKey(t *testing.T) {
	c := NewCache(0)
	p := DefaultParams()

	a := c.Faces(Torus, p, palette.Default)
	b := c.Faces(Torus, p, palette.Default)
	if &a[0] != &b[0] {
		t.Error("expected the same cached slice")
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d/%d", hits, misses)
	}

	p.MinorRadius = 0.5
	c.Faces(Torus, p, palette.Default)
	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}
}

func TestCacheSeparatesSameNamedPalettes(t *testing.T) {
	c := NewCache(0)
	red := palette.Palette{Faces: []palette.Color{palette.MustHex("#ff0000", 1)}}
	blue := palette.Palette{Faces: []palette.Color{palette.MustHex("#0000ff", 1)}}

	a := c.Faces(Cube, DefaultParams(), red)
	b := c.Faces(Cube, DefaultParams(), blue)
	if a[0].Color != red.Faces[0] || b[0].Color != blue.Faces[0] {
		t.Errorf("unnamed palettes shared an entry: %s and %s", a[0].Color.Hex(), b[0].Color.Hex())
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}

	renamed := palette.Default
	renamed.Name = "other"
	c.Faces(Cube, DefaultParams(), palette.Default)
	if x, y := c.Faces(Cube, DefaultParams(), renamed), c.Faces(Cube, DefaultParams(), palette.Default); &x[0] != &y[0] {
		t.Error("equal face colors should share an entry")
	}
}

func TestCacheLimit(t *testing.T) {
	c := NewCache(2)
	for _, k := range []Kind{Cube, Sphere, Cone} {
		c.Faces(k, DefaultParams(), palette.Default)
	}
	if c.Len() > 2 {
		t.Errorf("cache exceeded limit: %d", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k := Kinds()[i%len(Kinds())]
			if got := len(c.Faces(k, DefaultParams(), palette.Default)); got != FaceCount(k) {
				t.Errorf("%s: got %d faces", k, got)
			}
		}(i)
	}
	wg.Wait()
}
