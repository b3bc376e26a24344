// Package config provides configuration loading and access for the engine and viewer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine and viewer tuning parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Simulation SimulationConfig `yaml:"simulation"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Mouse      MouseConfig      `yaml:"mouse"`
	Shockwave  ShockwaveConfig  `yaml:"shockwave"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Noise      NoiseConfig      `yaml:"noise"`
	Grid       GridConfig       `yaml:"grid"`
	Limits     LimitsConfig     `yaml:"limits"`
	Mesh       MeshConfig       `yaml:"mesh"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// ScreenConfig holds viewer display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimulationConfig holds default simulation construction parameters.
type SimulationConfig struct {
	PointCount int    `yaml:"point_count"`
	Seed       uint32 `yaml:"seed"`
}

// PhysicsConfig holds per-frame integration parameters.
type PhysicsConfig struct {
	SpringBack        float32 `yaml:"spring_back"`        // Pull of displacement back toward rest per frame
	Damping           float32 `yaml:"damping"`            // Displacement velocity retained per frame
	VelocityInfluence float32 `yaml:"velocity_influence"` // Mouse speed contribution to force strength
	BaseVelocity      float32 `yaml:"base_velocity"`      // Drift speed range for new points
	MaxDT             float32 `yaml:"max_dt"`             // Delta-time clamp
	MaxSpeed          float32 `yaml:"max_speed"`          // Speed multiplier clamp
}

// MouseConfig holds default pointer interaction parameters.
type MouseConfig struct {
	Radius   float32 `yaml:"radius"`
	Strength float32 `yaml:"strength"`
}

// ShockwaveConfig holds shockwave ring behavior.
type ShockwaveConfig struct {
	Speed       float32 `yaml:"speed"`        // Radius growth per update
	Decay       float32 `yaml:"decay"`        // Strength multiplier per update
	WaveWidth   float32 `yaml:"wave_width"`   // Ring half-width
	MaxCount    int     `yaml:"max_count"`    // Concurrent wave cap (FIFO eviction)
	MinStrength float32 `yaml:"min_strength"` // Below this a wave is pruned
	MaxStrength float32 `yaml:"max_strength"` // Trigger strength clamp
}

// GravityConfig holds gravity well behavior.
type GravityConfig struct {
	AttractStrength float32 `yaml:"attract_strength"`
	RepelStrength   float32 `yaml:"repel_strength"`
	MinDist         float32 `yaml:"min_dist"`  // Distance floor near the well center
	MaxRange        float32 `yaml:"max_range"` // Influence cutoff
}

// NoiseConfig holds height-field generation parameters.
type NoiseConfig struct {
	Scale       float32 `yaml:"scale"`     // Sample frequency over point positions
	Intensity   float32 `yaml:"intensity"` // Height multiplier
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
}

// GridConfig holds spatial index sizing parameters.
type GridConfig struct {
	MinCellSize     float32 `yaml:"min_cell_size"`    // Cell size floor regardless of effect reach
	ResizeTolerance float32 `yaml:"resize_tolerance"` // Cell size drift before reallocating
}

// LimitsConfig holds input validation clamps.
type LimitsConfig struct {
	MinPointCount int     `yaml:"min_point_count"`
	MaxPointCount int     `yaml:"max_point_count"`
	MinDimension  float32 `yaml:"min_dimension"`
	MaxDimension  float32 `yaml:"max_dimension"`
}

// MeshConfig holds triangulation parameters.
type MeshConfig struct {
	GhostThreshold float32 `yaml:"ghost_threshold"` // Edge proximity fraction for ghost mirroring
}

// TelemetryConfig holds performance collection parameters.
type TelemetryConfig struct {
	PerfWindow int `yaml:"perf_window"` // Frames per stats window
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
