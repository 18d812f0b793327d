package config

import (
	"sort"

	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/mesh"
)

func preset(shape string, rot geom.Rotation, auto bool, tweak func(*mesh.Params)) *Config {
	cfg := DefaultConfig()
	cfg.Shape = shape
	cfg.Rotation = rot
	cfg.AutoRotate = auto
	if tweak != nil {
		tweak(&cfg.Params)
	}
	return cfg
}

var Presets = map[string]map[string]*Config{
	"cube": {
		"iso":    preset("cube", geom.Rotation{X: 35.264, Y: 45}, false, nil),
		"tumble": preset("cube", geom.Rotation{X: 25, Z: 15}, true, nil),
		"big":    preset("cube", geom.Rotation{X: 20, Y: 30}, false, func(p *mesh.Params) { p.Side = 1.6 }),
	},
	"sphere": {
		"globe": preset("sphere", geom.Rotation{X: 23.4}, true, nil),
		"small": preset("sphere", geom.Rotation{X: 15}, false, func(p *mesh.Params) { p.Radius = 0.6 }),
	},
	"torus": {
		"donut": preset("torus", geom.Rotation{X: 60}, true, nil),
		"ring":  preset("torus", geom.Rotation{X: 75}, true, func(p *mesh.Params) { p.MinorRadius = 0.12 }),
		"fat":   preset("torus", geom.Rotation{X: 45}, false, func(p *mesh.Params) { p.MajorRadius = 0.8; p.MinorRadius = 0.45 }),
	},
	"cylinder": {
		"can":  preset("cylinder", geom.Rotation{X: 20}, true, func(p *mesh.Params) { p.Radius = 0.6 }),
		"disc": preset("cylinder", geom.Rotation{X: 60}, false, func(p *mesh.Params) { p.Height = 0.3 }),
	},
	"cone": {
		"spike": preset("cone", geom.Rotation{X: 15}, true, func(p *mesh.Params) { p.Radius = 0.5; p.Height = 2 }),
	},
	"pyramid": {
		"giza": preset("pyramid", geom.Rotation{X: 15, Y: 30}, false, func(p *mesh.Params) { p.Side = 1.4; p.Height = 0.9 }),
	},
	"hemisphere": {
		"dome": preset("hemisphere", geom.Rotation{X: 25}, true, nil),
		"bowl": preset("hemisphere", geom.Rotation{X: 160}, false, nil),
	},
	"rectangular_prism": {
		"brick": preset("rectangular_prism", geom.Rotation{X: 25, Y: 35}, false, func(p *mesh.Params) { p.Length = 2; p.Width = 0.6; p.Depth = 1 }),
	},
	"triangular_prism": {
		"toblerone": preset("triangular_prism", geom.Rotation{X: 20, Y: 50}, false, func(p *mesh.Params) { p.Length = 2 }),
	},
}

func GetPreset(shape, name string) *Config {
	shapePresets, ok := Presets[shape]
	if !ok {
		return nil
	}
	cfg, ok := shapePresets[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

func ListPresets(shape string) []string {
	shapePresets, ok := Presets[shape]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(shapePresets))
	for name := range shapePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
