// Package config loads the viewer configuration from a TOML file.
package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

type Window struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	VSync   bool   `toml:"vsync"`
	Samples int    `toml:"samples"`
}

type Shaders struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
}

type Viewer struct {
	// Models is the ordered queue of STL files to triage.
	Models []string `toml:"models"`
	// LabelsDir is where the per-key label files are written.
	LabelsDir string `toml:"labels_dir"`
}

type Config struct {
	LogLevel string  `toml:"log_level"`
	Window   Window  `toml:"window"`
	Shaders  Shaders `toml:"shaders"`
	Viewer   Viewer  `toml:"viewer"`
}

// Default returns the configuration used when a field is absent from the
// file.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Window: Window{
			Title:   "meshview",
			Width:   1280,
			Height:  720,
			VSync:   true,
			Samples: 4,
		},
		Shaders: Shaders{
			Vertex:   "assets/shaders/basic.vert",
			Fragment: "assets/shaders/basic.frag",
		},
		Viewer: Viewer{
			LabelsDir: "labels",
		},
	}
}

// Load reads and validates the TOML file at path, filling absent fields from
// Default.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Samples < 0 {
		return fmt.Errorf("window samples must not be negative, got %d", c.Window.Samples)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return fmt.Errorf("both shader paths must be set")
	}
	if len(c.Viewer.Models) == 0 {
		return fmt.Errorf("at least one model is required")
	}
	return nil
}
