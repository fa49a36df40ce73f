package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the user-configurable defaults, loaded from an optional
// TOML file. Command-line flags always take precedence.
type Config struct {
	// MaxVertices caps the board size accepted by evaluating commands.
	// Evaluation cost is exponential, so this is the safety ceiling.
	MaxVertices int `toml:"max_vertices"`

	Random RandomConfig `toml:"random"`
	Draw   DrawConfig   `toml:"draw"`
}

// RandomConfig holds the defaults of the random board generator.
type RandomConfig struct {
	MinVertices int `toml:"min_vertices"`
	MaxVertices int `toml:"max_vertices"`
	MaxDegree   int `toml:"max_degree"`
}

// DrawConfig holds rendering defaults.
type DrawConfig struct {
	Format string `toml:"format"` // "svg", "png", or "dot"
}

// DefaultConfig returns the built-in defaults, matching the interactive
// generator's 5-12 vertices with degree cap 3.
func DefaultConfig() Config {
	return Config{
		MaxVertices: defaultMaxVertices,
		Random:      RandomConfig{MinVertices: 5, MaxVertices: 12, MaxDegree: 3},
		Draw:        DrawConfig{Format: "svg"},
	}
}

// LoadConfig reads the config file if present, layering it over the
// defaults. A missing file is not an error; a malformed one is.
func LoadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MaxVertices <= 0 {
		return fmt.Errorf("max_vertices must be positive, got %d", c.MaxVertices)
	}
	r := c.Random
	if r.MinVertices <= 0 || r.MinVertices > r.MaxVertices {
		return fmt.Errorf("random vertex range [%d,%d] is invalid", r.MinVertices, r.MaxVertices)
	}
	if r.MaxDegree < 0 {
		return fmt.Errorf("random max_degree must not be negative, got %d", r.MaxDegree)
	}
	switch c.Draw.Format {
	case "svg", "png", "dot":
	default:
		return fmt.Errorf("draw format %q is not one of svg, png, dot", c.Draw.Format)
	}
	return nil
}

// configPath returns the config file location using the XDG standard
// (~/.config/kayles/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
