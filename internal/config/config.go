// Package config handles simulator configuration loading and management.
package config

// Config holds all simulator settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// SimulationConfig holds simulation and scene settings.
type SimulationConfig struct {
	// TextureDir is where generated planet textures are written and loaded from.
	TextureDir string `yaml:"texture_dir"`
	// TextureSize is the resolution of generated textures (square).
	TextureSize int `yaml:"texture_size"`
	// TimeScale scales the fixed per-frame simulation step.
	TimeScale float32 `yaml:"time_scale"`
	// StarCount is the number of background stars.
	StarCount int `yaml:"star_count"`
	// StarDistance is the radius of the starfield sphere.
	StarDistance float32 `yaml:"star_distance"`
	// StarSeed seeds the starfield so it is identical across runs.
	StarSeed int64 `yaml:"star_seed"`
	// OrbitSegments is the number of line segments per orbit path.
	OrbitSegments int `yaml:"orbit_segments"`
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
			Width:      1400,
			Height:     900,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
		},
		Simulation: SimulationConfig{
			TextureDir:    "textures",
			TextureSize:   256,
			TimeScale:     1.0,
			StarCount:     500,
			StarDistance:  300.0,
			StarSeed:      42,
			OrbitSegments: 128,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
