package storage

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/mesh"
	"github.com/san-kum/polyview/internal/palette"
	"github.com/san-kum/polyview/internal/render"
)

func testScene() render.Scene {
	return render.Scene{
		Kind:     mesh.Pyramid,
		Params:   mesh.DefaultParams(),
		Rotation: geom.Rotation{X: 15, Y: 30},
		Width:    200,
		Height:   120,
		Palette:  palette.Default,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	scene := testScene()
	frame := render.New(nil).Render(scene)

	id, err := st.Save(scene, frame)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == "" {
		t.Error("expected non-empty snapshot id")
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Shape != "pyramid" {
		t.Errorf("expected shape 'pyramid', got '%s'", meta.Shape)
	}
	if meta.Faces != 5 {
		t.Errorf("expected 5 faces, got %d", meta.Faces)
	}
	if meta.Rotation != scene.Rotation {
		t.Errorf("expected rotation %v, got %v", scene.Rotation, meta.Rotation)
	}
	if meta.Metrics["polygons"] != 5 {
		t.Errorf("expected polygons metric 5, got %f", meta.Metrics["polygons"])
	}

	polys, err := st.LoadPolygons(id)
	if err != nil {
		t.Fatalf("load polygons failed: %v", err)
	}
	if len(polys) != len(frame.Polygons) {
		t.Fatalf("expected %d polygons, got %d", len(frame.Polygons), len(polys))
	}
	for i, p := range polys {
		want := frame.Polygons[i]
		if len(p.Points) != len(want.Points) {
			t.Errorf("polygon %d: expected %d points, got %d", i, len(want.Points), len(p.Points))
			continue
		}
		if math.Abs(p.Points[0].X-want.Points[0].X) > 1e-5 {
			t.Errorf("polygon %d: x %f, want %f", i, p.Points[0].X, want.Points[0].X)
		}
		if p.Fill.Hex() != want.Fill.Hex() {
			t.Errorf("polygon %d: fill %s, want %s", i, p.Fill.Hex(), want.Fill.Hex())
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	scene := testScene()
	frame := render.New(nil).Render(scene)
	for i := 0; i < 3; i++ {
		if _, err := st.Save(scene, frame); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	// stray directories are skipped
	if err := os.MkdirAll(filepath.Join(st.baseDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	snaps, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(snaps) != 3 {
		t.Errorf("expected 3 snapshots, got %d", len(snaps))
	}
}

func TestStoreSaveFailureLeavesNoDir(t *testing.T) {
	base := t.TempDir()
	st := New(base)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	scene := testScene()
	frame := render.New(nil).Render(scene)
	frame.Polygons[0].Depth = math.NaN() // json cannot encode the depth metrics

	if _, err := st.Save(scene, frame); err == nil {
		t.Fatal("expected save to fail")
	}
	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("failed save left %d entries behind", len(entries))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "missing"))
	snaps, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("expected no snapshots, got %d", len(snaps))
	}
}

func TestStoreLoadNotFound(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("../etc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for invalid id, got %v", err)
	}
	if _, err := st.Load("3f1c2a5e-8d6b-4c1e-9a7f-0b2d4e6f8a10"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
	if _, err := st.LoadPolygons("3f1c2a5e-8d6b-4c1e-9a7f-0b2d4e6f8a10"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown polygons, got %v", err)
	}
}

func TestFrameMetricsEmpty(t *testing.T) {
	m := FrameMetrics(render.Frame{})
	if m["polygons"] != 0 {
		t.Errorf("expected 0 polygons, got %f", m["polygons"])
	}
	if _, ok := m["depth_min"]; ok {
		t.Error("empty frame should not report depth")
	}
}
