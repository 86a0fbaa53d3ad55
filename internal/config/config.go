// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"

	"github.com/Arthur-Matias/hull-visualizer/pkg/hull"
	"github.com/Arthur-Matias/hull-visualizer/pkg/offsets"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig      `yaml:"window"`
	Brush   BrushConfig       `yaml:"brush"`
	LOD     offsets.LODConfig `yaml:"lod"`
	Colors  ColorsConfig      `yaml:"colors"`
	Logging LoggingConfig     `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// BrushConfig holds weight painting settings.
type BrushConfig struct {
	Radius        float64 `yaml:"radius"`
	WeightPerFace float64 `yaml:"weight_per_face"`
}

// ColorsConfig holds hull region colors as "#RRGGBB" strings. An empty
// string keeps the built-in default for that region.
type ColorsConfig struct {
	Hull      string `yaml:"hull"`
	Station   string `yaml:"station"`
	Waterline string `yaml:"waterline"`
	Deck      string `yaml:"deck"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
			Title:     "Hull Visualizer",
		},
		Brush: BrushConfig{
			Radius:        0.5,
			WeightPerFace: 10,
		},
		LOD: offsets.DefaultLOD(),
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ColorMap converts the configured colors into a hull color map.
// Regions left empty resolve to the built-in defaults at render time.
func (c ColorsConfig) ColorMap() (hull.ColorMap, error) {
	var cm hull.ColorMap
	var err error
	if cm.Default, err = parseColor(c.Hull); err != nil {
		return cm, fmt.Errorf("colors.hull: %w", err)
	}
	if cm.Station, err = parseColor(c.Station); err != nil {
		return cm, fmt.Errorf("colors.station: %w", err)
	}
	if cm.Waterline, err = parseColor(c.Waterline); err != nil {
		return cm, fmt.Errorf("colors.waterline: %w", err)
	}
	if cm.Deck, err = parseColor(c.Deck); err != nil {
		return cm, fmt.Errorf("colors.deck: %w", err)
	}
	return cm, nil
}

// parseColor parses "#RRGGBB" into an opaque color. An empty string
// yields the zero color, which downstream resolves to a default.
func parseColor(s string) (hull.Color, error) {
	if s == "" {
		return hull.Color{}, nil
	}
	if len(s) != 7 || s[0] != '#' {
		return hull.Color{}, fmt.Errorf("expected #RRGGBB, got %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return hull.Color{}, fmt.Errorf("expected #RRGGBB, got %q", s)
	}
	return hull.Color{R: r, G: g, B: b, A: 255}, nil
}
