package main

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/san-kum/polyview/internal/config"
	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/mesh"
	"github.com/san-kum/polyview/internal/motion"
	"github.com/san-kum/polyview/internal/render"
	"github.com/san-kum/polyview/internal/viz"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var errUnknownTheme = errors.New("unknown theme")

// paramFlags maps dimension flags to Params fields.
var paramFlags = []struct {
	flag, field string
	value       *float64
}{
	{"side", "side", &side},
	{"radius", "radius", &radius},
	{"height", "height", &height},
	{"length", "length", &length},
	{"width", "width", &width},
	{"depth", "depth", &depth},
	{"major", "major_radius", &major},
	{"minor", "minor_radius", &minor},
}

// newSettings binds the theme, fps and data flags to POLYVIEW_* variables.
// A flag set on the command line beats the variable.
func newSettings(flags *pflag.FlagSet) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("polyview")
	v.AutomaticEnv()
	for _, name := range []string{"theme", "fps", "data"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			slog.Error("bind flag", "flag", name, "err", err)
		}
	}
	return v
}

// resolveConfig layers defaults, config file, shape argument, preset,
// POLYVIEW_* environment and explicitly set flags, in that order, and
// validates the result.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	return buildConfig(cmd.Flags(), settings, args)
}

func buildConfig(flags *pflag.FlagSet, env *viper.Viper, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Shape = args[0]
	}
	kind, err := mesh.ParseKind(cfg.Shape)
	if err != nil {
		return nil, err
	}
	cfg.Shape = kind.String()

	if preset != "" {
		p := config.GetPreset(cfg.Shape, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Shape))
		}
		// a preset replaces the scene but keeps file-level display settings
		p.Canvas, p.Theme, p.FPS, p.Grid = cfg.Canvas, cfg.Theme, cfg.FPS, cfg.Grid
		cfg = p
	}

	for _, pf := range paramFlags {
		if flags.Changed(pf.flag) {
			cfg.Params.Set(pf.field, *pf.value)
		}
	}
	if flags.Changed("rx") {
		cfg.Rotation.X = rx
	}
	if flags.Changed("ry") {
		cfg.Rotation.Y = ry
	}
	if flags.Changed("rz") {
		cfg.Rotation.Z = rz
	}
	if flags.Changed("auto") {
		cfg.AutoRotate = auto
	}
	if flags.Changed("period") {
		cfg.PeriodMs = period.Milliseconds()
	}
	if flags.Changed("cols") {
		cfg.Canvas.Cols = cols
	}
	if flags.Changed("rows") {
		cfg.Canvas.Rows = rows
	}
	if flags.Changed("grid") {
		cfg.Grid = grid
	}
	if env.IsSet("theme") {
		cfg.Theme = env.GetString("theme")
	}
	if env.IsSet("fps") {
		cfg.FPS = env.GetInt("fps")
	}

	if !slices.Contains(viz.ThemeNames(), cfg.Theme) {
		return nil, fmt.Errorf("%w: %s (available: %v)", errUnknownTheme, cfg.Theme, viz.ThemeNames())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("resolved scene",
		"shape", cfg.Shape,
		"rotation", cfg.Rotation,
		"auto", cfg.AutoRotate,
		"period", cfg.Period(),
		"theme", cfg.Theme,
	)
	return cfg, nil
}

// sceneRotation applies this invocation's drag or auto-rotation clock to
// the configured rotation.
func sceneRotation(cfg *config.Config) geom.Rotation {
	return motion.Resolve(motion.Input{
		Rotation:     cfg.Rotation,
		AutoRotating: cfg.AutoRotate,
		DragDX:       dragDX,
		DragDY:       dragDY,
		Elapsed:      elapsed,
		Period:       cfg.Period(),
	}).Normalized()
}

func makeScene(cfg *config.Config, w, h int) (render.Scene, error) {
	kind, err := cfg.Kind()
	if err != nil {
		return render.Scene{}, err
	}
	return render.Scene{
		Kind:        kind,
		Params:      cfg.Params,
		Rotation:    sceneRotation(cfg),
		Width:       w,
		Height:      h,
		Palette:     viz.GetTheme(cfg.Theme).Palette(),
		GridSpacing: cfg.Grid,
	}, nil
}

func viewerOptions(cfg *config.Config) (viz.Options, error) {
	kind, err := cfg.Kind()
	if err != nil {
		return viz.Options{}, err
	}
	return viz.Options{
		Kind:        kind,
		Params:      cfg.Params,
		Rotation:    sceneRotation(cfg),
		AutoRotate:  cfg.AutoRotate,
		Period:      cfg.Period(),
		Theme:       cfg.Theme,
		Cols:        cfg.Canvas.Cols,
		Rows:        cfg.Canvas.Rows,
		FPS:         cfg.FPS,
		GridSpacing: cfg.Grid,
	}, nil
}

func newRenderer() *render.Renderer {
	return render.New(mesh.NewCache(32))
}
