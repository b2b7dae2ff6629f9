// Package config handles application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for impossible settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all application settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Water      WaterConfig      `yaml:"water"`
	Duck       DuckConfig       `yaml:"duck"`
	Drops      DropsConfig      `yaml:"drops"`
	Camera     CameraConfig     `yaml:"camera"`
	Assets     AssetsConfig     `yaml:"assets"`
	Stream     StreamConfig     `yaml:"stream"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`
	FOV        float32 `yaml:"fov"` // vertical, degrees
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// WaterConfig describes the simulated surface.
type WaterConfig struct {
	PlaneWidth    float32 `yaml:"plane_width"`
	PlaneHeight   float32 `yaml:"plane_height"`
	SamplesWidth  int     `yaml:"samples_width"`
	SamplesHeight int     `yaml:"samples_height"`
	Resolution    int     `yaml:"resolution"` // N of the wave update
}

// DuckConfig controls the duck path and its wake.
type DuckConfig struct {
	ControlPoints int           `yaml:"control_points"`
	Spread        float32       `yaml:"spread"`   // control points in [-spread, spread]²
	LapTime       time.Duration `yaml:"lap_time"` // one full loop
	WakeStrength  float32       `yaml:"wake_strength"`
	Scale         float32       `yaml:"scale"`
}

// DropsConfig controls random rain drops.
type DropsConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Interval    time.Duration `yaml:"interval"`
	Spread      float32       `yaml:"spread"`
	MinStrength float32       `yaml:"min_strength"`
	MaxStrength float32       `yaml:"max_strength"`
}

// CameraConfig holds the initial orbit and mouse response.
type CameraConfig struct {
	Pitch       float32 `yaml:"pitch"` // degrees
	Yaw         float32 `yaml:"yaw"`   // degrees
	Distance    float32 `yaml:"distance"`
	MinDistance float32 `yaml:"min_distance"`
	ZoomStep    float32 `yaml:"zoom_step"`   // distance per wheel notch
	Sensitivity float32 `yaml:"sensitivity"` // degrees per pixel
}

// AssetsConfig holds asset file locations relative to Dir.
type AssetsConfig struct {
	Dir         string    `yaml:"dir"`
	DuckMesh    string    `yaml:"duck_mesh"`
	DuckTexture string    `yaml:"duck_texture"`
	Skybox      [6]string `yaml:"skybox"` // +X, -X, +Y, -Y, +Z, -Z
}

// StreamConfig holds the websocket snapshot server settings.
type StreamConfig struct {
	Addr       string        `yaml:"addr"`
	Interval   time.Duration `yaml:"interval"`   // between snapshots
	Downsample int           `yaml:"downsample"` // heights per side in a snapshot
}

// SimulationConfig holds driver settings.
type SimulationConfig struct {
	Seed     uint64        `yaml:"seed"` // 0 picks a random seed
	TimeStep time.Duration `yaml:"time_step"`
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
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			FOV:        90,
			Near:       0.1,
			Far:        100,
		},
		Water: WaterConfig{
			PlaneWidth:    10,
			PlaneHeight:   10,
			SamplesWidth:  256,
			SamplesHeight: 256,
			Resolution:    256,
		},
		Duck: DuckConfig{
			ControlPoints: 10,
			Spread:        5,
			LapTime:       30 * time.Second,
			WakeStrength:  0.5,
			Scale:         0.005,
		},
		Drops: DropsConfig{
			Enabled:     true,
			Interval:    50 * time.Millisecond,
			Spread:      5,
			MinStrength: 0.05,
			MaxStrength: 0.5,
		},
		Camera: CameraConfig{
			Pitch:       30,
			Yaw:         45,
			Distance:    7,
			MinDistance: 1,
			ZoomStep:    0.05,
			Sensitivity: 0.5,
		},
		Assets: AssetsConfig{
			Dir:         "assets",
			DuckMesh:    "models/duck.txt",
			DuckTexture: "textures/ducktex.jpg",
			Skybox: [6]string{
				"textures/halftiles.png",
				"textures/halftiles.png",
				"textures/fullgraytiles.png",
				"textures/fullbluetiles.png",
				"textures/halftiles.png",
				"textures/halftiles.png",
			},
		},
		Stream: StreamConfig{
			Addr:       "127.0.0.1:8642",
			Interval:   100 * time.Millisecond,
			Downsample: 32,
		},
		Simulation: SimulationConfig{
			Seed:     0,
			TimeStep: time.Second / 60,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings no component can run with.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Graphics.Width, c.Graphics.Height)
	case c.Water.SamplesWidth < 2 || c.Water.SamplesHeight < 2:
		return fmt.Errorf("%w: water grid %dx%d", ErrInvalidConfig, c.Water.SamplesWidth, c.Water.SamplesHeight)
	case c.Water.PlaneWidth <= 0 || c.Water.PlaneHeight <= 0:
		return fmt.Errorf("%w: water plane %gx%g", ErrInvalidConfig, c.Water.PlaneWidth, c.Water.PlaneHeight)
	case c.Water.Resolution != 0 && c.Water.Resolution < 2:
		return fmt.Errorf("%w: water resolution %d", ErrInvalidConfig, c.Water.Resolution)
	case c.Duck.ControlPoints < 3:
		return fmt.Errorf("%w: duck needs at least 3 control points, got %d", ErrInvalidConfig, c.Duck.ControlPoints)
	case c.Duck.LapTime <= 0:
		return fmt.Errorf("%w: duck lap time %v", ErrInvalidConfig, c.Duck.LapTime)
	case c.Drops.Enabled && c.Drops.Interval <= 0:
		return fmt.Errorf("%w: drop interval %v", ErrInvalidConfig, c.Drops.Interval)
	case c.Drops.MinStrength > c.Drops.MaxStrength:
		return fmt.Errorf("%w: drop strength range [%g, %g]", ErrInvalidConfig, c.Drops.MinStrength, c.Drops.MaxStrength)
	case c.Camera.MinDistance <= 0:
		return fmt.Errorf("%w: camera min distance %g", ErrInvalidConfig, c.Camera.MinDistance)
	case c.Stream.Interval <= 0:
		return fmt.Errorf("%w: stream interval %v", ErrInvalidConfig, c.Stream.Interval)
	case c.Stream.Downsample < 1:
		return fmt.Errorf("%w: stream downsample %d", ErrInvalidConfig, c.Stream.Downsample)
	case c.Simulation.TimeStep <= 0:
		return fmt.Errorf("%w: time step %v", ErrInvalidConfig, c.Simulation.TimeStep)
	}
	return nil
}
