package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/san-kum/polyview/internal/config"
	"github.com/san-kum/polyview/internal/mesh"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	configFile, preset = "", ""
	dragDX, dragDY, elapsed = 0, 0, 0

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerSceneFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return fs
}

func TestBuildConfigDefaults(t *testing.T) {
	cfg, err := buildConfig(parseFlags(t), viper.New(), nil)
	if err != nil {
		t.Fatalf("build config: %v", err)
	}
	if cfg.Shape != "cube" || cfg.Params != mesh.DefaultParams() {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestBuildConfigFlagsOverride(t *testing.T) {
	fs := parseFlags(t, "--major=1.4", "--minor=0.2", "--rx=30", "--auto", "--period=4s")
	cfg, err := buildConfig(fs, viper.New(), []string{"donut"})
	if err != nil {
		t.Fatalf("build config: %v", err)
	}
	if cfg.Shape != "torus" {
		t.Errorf("alias should resolve to torus, got %s", cfg.Shape)
	}
	if cfg.Params.MajorRadius != 1.4 || cfg.Params.MinorRadius != 0.2 {
		t.Errorf("params not applied: %+v", cfg.Params)
	}
	if cfg.Rotation.X != 30 || !cfg.AutoRotate || cfg.PeriodMs != 4000 {
		t.Errorf("rotation flags not applied: %+v", cfg)
	}
}

func TestBuildConfigPreset(t *testing.T) {
	fs := parseFlags(t, "--preset=donut", "--rx=10")
	cfg, err := buildConfig(fs, viper.New(), []string{"torus"})
	if err != nil {
		t.Fatalf("build config: %v", err)
	}
	if !cfg.AutoRotate {
		t.Error("preset should enable auto-rotation")
	}
	if cfg.Rotation.X != 10 {
		t.Errorf("flag should override preset, got rx=%v", cfg.Rotation.X)
	}

	fs = parseFlags(t, "--preset=nope")
	if _, err := buildConfig(fs, viper.New(), []string{"torus"}); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestBuildConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	file := config.DefaultConfig()
	file.Shape = "cone"
	file.Params.Height = 2.5
	if err := config.Save(path, file); err != nil {
		t.Fatal(err)
	}

	fs := parseFlags(t)
	configFile = path
	cfg, err := buildConfig(fs, viper.New(), nil)
	if err != nil {
		t.Fatalf("build config: %v", err)
	}
	if cfg.Shape != "cone" || cfg.Params.Height != 2.5 {
		t.Errorf("config file not applied: %+v", cfg)
	}
}

func TestBuildConfigRejectsBadInput(t *testing.T) {
	if _, err := buildConfig(parseFlags(t, "--radius=-1"), viper.New(), []string{"sphere"}); !errors.Is(err, mesh.ErrNonPositive) {
		t.Errorf("expected ErrNonPositive, got %v", err)
	}
	if _, err := buildConfig(parseFlags(t), viper.New(), []string{"blob"}); !errors.Is(err, mesh.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}

	env := viper.New()
	env.Set("theme", "plaid")
	if _, err := buildConfig(parseFlags(t), env, nil); !errors.Is(err, errUnknownTheme) {
		t.Errorf("expected errUnknownTheme, got %v", err)
	}
}

func TestBuildConfigEnvAndFlagOrder(t *testing.T) {
	t.Setenv("POLYVIEW_THEME", "retro")
	t.Setenv("POLYVIEW_FPS", "24")

	fs := parseFlags(t)
	cfg, err := buildConfig(fs, newSettings(fs), nil)
	if err != nil {
		t.Fatalf("build config: %v", err)
	}
	if cfg.Theme != "retro" || cfg.FPS != 24 {
		t.Errorf("environment not applied: theme=%s fps=%d", cfg.Theme, cfg.FPS)
	}

	fs = parseFlags(t, "--theme=minimal", "--fps=30")
	cfg, err = buildConfig(fs, newSettings(fs), nil)
	if err != nil {
		t.Fatalf("build config: %v", err)
	}
	if cfg.Theme != "minimal" || cfg.FPS != 30 {
		t.Errorf("flags should beat environment: theme=%s fps=%d", cfg.Theme, cfg.FPS)
	}
}

func TestSceneRotationDrag(t *testing.T) {
	fs := parseFlags(t, "--drag-dx=100", "--drag-dy=-20")
	cfg, err := buildConfig(fs, viper.New(), nil)
	if err != nil {
		t.Fatal(err)
	}
	r := sceneRotation(cfg)
	if r.Y != 50 || r.X != 350 {
		t.Errorf("expected ry=50 rx=350, got %+v", r)
	}
}

func TestIntensityHistogram(t *testing.T) {
	cfg := config.DefaultConfig()
	scene, err := makeScene(cfg, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	frame := newRenderer().Render(scene)
	hist := intensityHistogram(frame, 10)

	var total float64
	for _, n := range hist {
		total += n
	}
	if int(total) != len(frame.Polygons) {
		t.Errorf("histogram counts %v faces, want %d", total, len(frame.Polygons))
	}
}
