// Package config loads the viewer configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = "config/planet.yaml"

// Config is the full viewer configuration.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Engine   EngineConfig   `yaml:"engine"`
	Renderer RendererConfig `yaml:"renderer"`
	Camera   CameraConfig   `yaml:"camera"`
	Planet   PlanetConfig   `yaml:"planet"`
	Profiler ProfilerConfig `yaml:"profiler"`
}

// WindowConfig sizes the viewer window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// EngineConfig sets the loop rates.
type EngineConfig struct {
	// TickRate is the input and camera update rate in ticks per second.
	TickRate   float64 `yaml:"tick_rate"`
	// FrameLimit caps rendered frames per second, 0 for uncapped.
	FrameLimit float64 `yaml:"frame_limit"`
}

// RendererConfig selects presentation and anti-aliasing.
type RendererConfig struct {
	VSync    bool `yaml:"vsync"`
	MSAA     int  `yaml:"msaa"`
	Software bool `yaml:"software"`
}

// CameraConfig places the orbit camera.
type CameraConfig struct {
	// Fov is the vertical field of view in degrees.
	Fov              float32 `yaml:"fov"`
	Near             float32 `yaml:"near"`
	Far              float32 `yaml:"far"`
	// Radius is the initial orbit distance, 0 for 2.5 planet sizes.
	Radius           float32 `yaml:"radius"`
	// Azimuth and Elevation are the initial orbit angles in degrees.
	Azimuth          float32 `yaml:"azimuth"`
	Elevation        float32 `yaml:"elevation"`
	OrbitSpeed       float32 `yaml:"orbit_speed"`
	ZoomSpeed        float32 `yaml:"zoom_speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
}

// PlanetConfig describes the planet and its level-of-detail tuning.
type PlanetConfig struct {
	Size            float32 `yaml:"size"`
	MaxHeight       float32 `yaml:"max_height"`
	MaxLevels       int     `yaml:"max_levels"`
	LODFactor       float32 `yaml:"lod_factor"`
	MergeHysteresis float32 `yaml:"merge_hysteresis"`
	ChunkSize       int     `yaml:"chunk_size"`
	HeightMap       string  `yaml:"height_map"`
	NormalMap       string  `yaml:"normal_map"`
}

// ProfilerConfig toggles periodic frame and planet statistics.
type ProfilerConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

// Default returns the built-in configuration. Camera.Radius is left 0 and resolved against the
// planet size by Parse.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "oxy-planet",
			Width:  1280,
			Height: 720,
		},
		Engine: EngineConfig{
			TickRate: 60,
		},
		Renderer: RendererConfig{
			VSync: true,
			MSAA:  4,
		},
		Camera: CameraConfig{
			Fov:              45,
			Near:             0.1,
			Far:              1000,
			Elevation:        22.5,
			OrbitSpeed:       0.03,
			ZoomSpeed:        0.1,
			MouseSensitivity: 0.005,
		},
		Planet: PlanetConfig{
			Size:      100,
			MaxHeight: 5,
			MaxLevels: 8,
			LODFactor: 1,
			ChunkSize: 500,
		},
		Profiler: ProfilerConfig{
			Enabled:  true,
			Interval: time.Second,
		},
	}
}

// Load reads the YAML file at path. A missing file yields the defaults.
// The file is decoded over Default(), so it only needs the keys it changes. Keys explicitly set to
// zero where zero is not usable (sizes, rates, clip planes) are back-filled from Default().
//
// Parameters:
//   - path: the file to read, DefaultPath when empty
//
// Returns:
//   - Config: the merged configuration
//   - error: error if the file exists but cannot be read or parsed
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Parse(nil)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration bytes over Default() and back-fills unusable zero fields.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: the merged configuration
//   - error: error if the document is malformed or a value is invalid
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the parent directory if needed.
//
// Parameters:
//   - path: destination file, DefaultPath when empty
//   - cfg: configuration to write
//
// Returns:
//   - error: error if the directory or file cannot be written
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the viewer cannot start with.
//
// Returns:
//   - error: the first invalid value found, or nil
func (c Config) Validate() error {
	switch {
	case c.Planet.Size <= 0:
		return fmt.Errorf("planet.size must be positive, got %f", c.Planet.Size)
	case c.Planet.MaxHeight < 0:
		return fmt.Errorf("planet.max_height must not be negative, got %f", c.Planet.MaxHeight)
	case c.Planet.MergeHysteresis < 0:
		return fmt.Errorf("planet.merge_hysteresis must not be negative, got %f", c.Planet.MergeHysteresis)
	case c.Camera.Near >= c.Camera.Far:
		return fmt.Errorf("camera.near (%f) must be less than camera.far (%f)", c.Camera.Near, c.Camera.Far)
	case c.Renderer.MSAA != 1 && c.Renderer.MSAA != 4:
		return fmt.Errorf("renderer.msaa must be 1 or 4, got %d", c.Renderer.MSAA)
	}
	return nil
}

func (c *Config) applyDefaults() {
	d := Default()

	c.Window.Title = common.Coalesce(c.Window.Title, d.Window.Title)
	c.Window.Width = common.Coalesce(c.Window.Width, d.Window.Width)
	c.Window.Height = common.Coalesce(c.Window.Height, d.Window.Height)

	c.Engine.TickRate = common.Coalesce(c.Engine.TickRate, d.Engine.TickRate)

	c.Renderer.MSAA = common.Coalesce(c.Renderer.MSAA, d.Renderer.MSAA)

	c.Camera.Fov = common.Coalesce(c.Camera.Fov, d.Camera.Fov)
	c.Camera.Near = common.Coalesce(c.Camera.Near, d.Camera.Near)
	c.Camera.Far = common.Coalesce(c.Camera.Far, d.Camera.Far)
	c.Camera.OrbitSpeed = common.Coalesce(c.Camera.OrbitSpeed, d.Camera.OrbitSpeed)
	c.Camera.ZoomSpeed = common.Coalesce(c.Camera.ZoomSpeed, d.Camera.ZoomSpeed)
	c.Camera.MouseSensitivity = common.Coalesce(c.Camera.MouseSensitivity, d.Camera.MouseSensitivity)

	c.Planet.Size = common.Coalesce(c.Planet.Size, d.Planet.Size)
	c.Planet.MaxLevels = common.Coalesce(c.Planet.MaxLevels, d.Planet.MaxLevels)
	c.Planet.LODFactor = common.Coalesce(c.Planet.LODFactor, d.Planet.LODFactor)
	c.Planet.ChunkSize = common.Coalesce(c.Planet.ChunkSize, d.Planet.ChunkSize)
	if c.Camera.Radius == 0 {
		c.Camera.Radius = 2.5 * c.Planet.Size
	}

	c.Profiler.Interval = common.Coalesce(c.Profiler.Interval, d.Profiler.Interval)
}
