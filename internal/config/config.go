package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/mesh"
	"gopkg.in/yaml.v3"
)

const (
	DefaultShape    = "cube"
	DefaultTheme    = "cyberpunk"
	DefaultPeriodMs = 10000
	DefaultCols     = 60
	DefaultRows     = 24
	DefaultFPS      = 60
	DefaultGrid     = 0.0
)

var (
	// ErrInvalidCanvas indicates a non-positive canvas dimension.
	ErrInvalidCanvas = errors.New("config: canvas size must be positive")

	// ErrInvalidPeriod indicates a non-positive auto-rotation period.
	ErrInvalidPeriod = errors.New("config: rotation period must be positive")
)

type Config struct {
	Shape      string        `yaml:"shape"`
	Params     mesh.Params   `yaml:"params"`
	Rotation   geom.Rotation `yaml:"rotation"`
	AutoRotate bool          `yaml:"auto_rotate"`
	PeriodMs   int64         `yaml:"period_ms"`
	Canvas     CanvasConfig  `yaml:"canvas"`
	Theme      string        `yaml:"theme"`
	FPS        int           `yaml:"fps"`
	Grid       float64       `yaml:"grid"`
}

// CanvasConfig is measured in terminal cells; the braille canvas has two
// sub-pixels per column and four per row.
type CanvasConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

func DefaultConfig() *Config {
	return &Config{
		Shape:    DefaultShape,
		Params:   mesh.DefaultParams(),
		PeriodMs: DefaultPeriodMs,
		Canvas: CanvasConfig{
			Cols: DefaultCols,
			Rows: DefaultRows,
		},
		Theme: DefaultTheme,
		FPS:   DefaultFPS,
		Grid:  DefaultGrid,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Kind resolves the configured shape name.
func (c *Config) Kind() (mesh.Kind, error) {
	return mesh.ParseKind(c.Shape)
}

// Period returns the auto-rotation period.
func (c *Config) Period() time.Duration {
	return time.Duration(c.PeriodMs) * time.Millisecond
}

// Validate enforces what the renderer assumes but never checks: a known
// shape, positive dimensions for that shape and a positive canvas.
func (c *Config) Validate() error {
	k, err := c.Kind()
	if err != nil {
		return err
	}
	if err := c.Params.Validate(k); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Canvas.Cols <= 0 || c.Canvas.Rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, c.Canvas.Cols, c.Canvas.Rows)
	}
	if c.PeriodMs <= 0 {
		return fmt.Errorf("%w: %dms", ErrInvalidPeriod, c.PeriodMs)
	}
	return nil
}
