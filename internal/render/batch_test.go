package render

import (
	"context"
	"errors"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/mesh"
	"github.com/san-kum/polyview/internal/palette"
)

func sweep(n int) []Scene {
	scenes := make([]Scene, n)
	for i := range scenes {
		scenes[i] = Scene{
			Kind:     mesh.Torus,
			Params:   mesh.DefaultParams(),
			Rotation: geom.Rotation{X: 30, Y: float64(i) * 360 / float64(n)},
			Width:    160,
			Height:   120,
			Palette:  palette.Default,
		}
	}
	return scenes
}

func TestRenderAllMatchesSequential(t *testing.T) {
	scenes := sweep(24)
	r := New(mesh.NewCache(0))

	frames, err := r.RenderAll(context.Background(), scenes)
	if err != nil {
		t.Fatalf("render all: %v", err)
	}
	if len(frames) != len(scenes) {
		t.Fatalf("expected %d frames, got %d", len(scenes), len(frames))
	}
	for i, s := range scenes {
		if !reflect.DeepEqual(frames[i], r.Render(s)) {
			t.Fatalf("frame %d differs from sequential render", i)
		}
	}
}

func TestRenderAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).RenderAll(ctx, sweep(8))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestParallelForCoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 3, 17, 100} {
		var seen [100]int32
		parallelFor(n, 4, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		for i := 0; i < n; i++ {
			if seen[i] != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, seen[i])
			}
		}
	}
}
