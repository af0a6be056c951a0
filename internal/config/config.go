// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DataConfig holds asset search paths.
type DataConfig struct {
	AssetPaths []string `yaml:"asset_paths"` // Directories searched for models and textures, last wins
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Title         string     `yaml:"title"`
	Width         int        `yaml:"width"`
	Height        int        `yaml:"height"`
	Fullscreen    bool       `yaml:"fullscreen"`
	VSync         bool       `yaml:"vsync"`
	MSAA          int        `yaml:"msaa"` // Multisample count, 0 disables
	FPSLimit      int        `yaml:"fps_limit"`
	FOV           float32    `yaml:"fov"` // Vertical field of view in degrees
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	Ambient       [3]float32 `yaml:"ambient"`
	SpecularPower float32    `yaml:"specular_power"`
	ScreenshotDir string     `yaml:"screenshot_dir"` // F12 saves frames here
}

// SceneConfig describes the single placed item and the initial light setup.
type SceneConfig struct {
	Model             string           `yaml:"model"`
	Texture           string           `yaml:"texture"`
	Reflectance       float32          `yaml:"reflectance"`
	Scale             float32          `yaml:"scale"`
	Position          [3]float32       `yaml:"position"`
	InitialLightAngle float32          `yaml:"initial_light_angle"` // Degrees
	PointLight        PointLightConfig `yaml:"point_light"`
}

// PointLightConfig holds the initial point light.
type PointLightConfig struct {
	Color       [3]float32 `yaml:"color"`
	Position    [3]float32 `yaml:"position"`
	Intensity   float32    `yaml:"intensity"`
	Attenuation [3]float32 `yaml:"attenuation"` // constant, linear, exponent
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:         "Sunlit",
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			MSAA:          4,
			FPSLimit:      0,
			FOV:           60,
			Near:          0.01,
			Far:           1000,
			Ambient:       [3]float32{0.3, 0.3, 0.3},
			SpecularPower: 10,
			ScreenshotDir: "screenshots",
		},
		Scene: SceneConfig{
			Model:             "models/tichonov.obj",
			Texture:           "textures/tih.png",
			Reflectance:       1,
			Scale:             1,
			Position:          [3]float32{0, 0, 0},
			InitialLightAngle: 180,
			PointLight: PointLightConfig{
				Color:       [3]float32{1, 1, 1},
				Position:    [3]float32{0, 7, 0},
				Intensity:   5,
				Attenuation: [3]float32{0, 0, 1},
			},
		},
		Data: DataConfig{
			AssetPaths: []string{"assets"},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validation errors.
var (
	ErrInvalidSize  = errors.New("window size must be positive")
	ErrInvalidClip  = errors.New("clip planes must satisfy 0 < near < far")
	ErrMissingModel = errors.New("scene model path is empty")
	ErrInvalidMSAA  = errors.New("msaa sample count must not be negative")
)

// Validate checks settings that would make the scene unusable.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		return fmt.Errorf("%w: near=%g far=%g", ErrInvalidClip, c.Graphics.Near, c.Graphics.Far)
	}
	if c.Graphics.MSAA < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMSAA, c.Graphics.MSAA)
	}
	if c.Scene.Model == "" {
		return ErrMissingModel
	}
	return nil
}
