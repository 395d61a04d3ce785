// Package config handles screensaver configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all screensaver settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// SceneConfig selects what is drawn and how finely it is tessellated.
type SceneConfig struct {
	Quality Quality `yaml:"quality"`

	// Globe tessellation flags.
	Stagger bool `yaml:"stagger"`
	Stitch  bool `yaml:"stitch"`

	SphereRadius float64 `yaml:"sphere_radius"` // celestial sphere
	GlobeRadius  float64 `yaml:"globe_radius"`  // Earth globe at the centre

	ShowGrid           bool `yaml:"show_grid"`
	ShowConstellations bool `yaml:"show_constellations"`
	ShowStars          bool `yaml:"show_stars"`
	ShowEcliptic       bool `yaml:"show_ecliptic"`
	ShowGlobe          bool `yaml:"show_globe"`

	// RotationSpeed is in degrees per second.
	RotationSpeed float32 `yaml:"rotation_speed"`

	// ConstellationsFile overrides the embedded constellation catalogue.
	ConstellationsFile string `yaml:"constellations_file"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: true,
			VSync:      true,
			FPSLimit:   30,
		},
		Scene: SceneConfig{
			Quality:            QualityMedium,
			Stagger:            false,
			Stitch:             true,
			SphereRadius:       100,
			GlobeRadius:        8,
			ShowGrid:           true,
			ShowConstellations: true,
			ShowStars:          true,
			ShowEcliptic:       true,
			ShowGlobe:          true,
			RotationSpeed:      2,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}

// Validate reports every setting that cannot produce a usable scene.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("graphics: fps_limit %d must not be negative", c.Graphics.FPSLimit))
	}
	if !c.Scene.Quality.Valid() {
		errs = append(errs, fmt.Errorf("scene: unknown quality %q", c.Scene.Quality))
	}
	if !(c.Scene.SphereRadius > 0) {
		errs = append(errs, fmt.Errorf("scene: sphere_radius %v must be positive", c.Scene.SphereRadius))
	}
	if !(c.Scene.GlobeRadius > 0) || c.Scene.GlobeRadius >= c.Scene.SphereRadius {
		errs = append(errs, fmt.Errorf("scene: globe_radius %v must be positive and smaller than sphere_radius", c.Scene.GlobeRadius))
	}
	return errors.Join(errs...)
}
