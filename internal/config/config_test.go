package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/mesh"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Shape != "cube" {
		t.Errorf("expected shape cube, got %s", cfg.Shape)
	}
	if cfg.Params.Height != 1.5 || cfg.Params.MinorRadius != 0.3 {
		t.Errorf("unexpected default params %+v", cfg.Params)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")

	cfg := DefaultConfig()
	cfg.Shape = "torus"
	cfg.Params.MajorRadius = 1.2
	cfg.Rotation = geom.Rotation{X: 30, Y: -45}
	cfg.AutoRotate = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Shape != "torus" || loaded.Params.MajorRadius != 1.2 {
		t.Errorf("unexpected loaded config %+v", loaded)
	}
	if loaded.Rotation != cfg.Rotation || !loaded.AutoRotate {
		t.Errorf("rotation not preserved: %+v", loaded.Rotation)
	}

	k, err := loaded.Kind()
	if err != nil || k != mesh.Torus {
		t.Errorf("expected torus kind, got %v (%v)", k, err)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	cfg := &Config{Shape: "sphere"}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Shape != "sphere" {
		t.Errorf("expected sphere, got %s", loaded.Shape)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"unknown shape", func(c *Config) { c.Shape = "blob" }, mesh.ErrUnknownKind},
		{"zero side", func(c *Config) { c.Params.Side = 0 }, mesh.ErrNonPositive},
		{"negative radius", func(c *Config) { c.Shape = "sphere"; c.Params.Radius = -1 }, mesh.ErrNonPositive},
		{"zero canvas", func(c *Config) { c.Canvas.Cols = 0 }, ErrInvalidCanvas},
		{"zero period", func(c *Config) { c.PeriodMs = 0 }, ErrInvalidPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("torus", "donut")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Rotation.X != 60 || !cfg.AutoRotate {
		t.Errorf("unexpected preset %+v", cfg)
	}

	cfg.Rotation.X = 0
	if GetPreset("torus", "donut").Rotation.X != 60 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("torus", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "donut") != nil {
		t.Error("expected nil for nonexistent shape")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for shape, presets := range Presets {
		for name, cfg := range presets {
			if cfg.Shape != shape {
				t.Errorf("%s/%s has shape %s", shape, name, cfg.Shape)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s/%s invalid: %v", shape, name, err)
			}
		}
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("cube")
	if len(presets) != 3 || presets[0] != "big" {
		t.Errorf("expected sorted cube presets, got %v", presets)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent shape")
	}
}
