// Package config loads the tspviz TOML configuration: where each instance's
// node data lives, how figures are sized, and how the run logs.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "tspviz.toml"

// ErrInvalid is returned for a configuration that cannot drive a run.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full tspviz configuration.
type Config struct {
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	// Instances maps an instance name to its node data file.
	Instances map[string]string `toml:"instances"`

	Figure Figure `toml:"figure"`
}

// Figure holds rendering settings.
type Figure struct {
	WidthIn     float64 `toml:"width_in"`
	HeightIn    float64 `toml:"height_in"`
	CostDivisor float64 `toml:"cost_divisor"`
	Legend      *bool   `toml:"legend"`
	Title       bool    `toml:"title"`
}

// ShowLegend reports whether figures carry a legend (default true).
func (f Figure) ShowLegend() bool {
	return f.Legend == nil || *f.Legend
}

// Default returns the configuration used when no file is present: the two
// course instances at their usual relative locations.
func Default() *Config {
	cfg := &Config{
		Instances: map[string]string{
			"TSPA": "../data/TSPA.csv",
			"TSPB": "../data/TSPB.csv",
		},
	}
	cfg.setDefaults()
	return cfg
}

// Load decodes the TOML file at path, fills defaults and validates it.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	if len(cfg.Instances) == 0 {
		cfg.Instances = Default().Instances
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads path when it exists and returns Default otherwise.
// The boolean reports whether the file was read.
func LoadOrDefault(path string) (*Config, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), false, nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Figure.WidthIn == 0 {
		c.Figure.WidthIn = 8
	}
	if c.Figure.HeightIn == 0 {
		c.Figure.HeightIn = 8
	}
	if c.Figure.CostDivisor == 0 {
		c.Figure.CostDivisor = 4
	}
}

// Validate checks the fields a run depends on.
func (c *Config) Validate() error {
	if len(c.Instances) == 0 {
		return fmt.Errorf("%w: no instances configured", ErrInvalid)
	}
	for _, name := range c.InstanceNames() {
		if c.Instances[name] == "" {
			return fmt.Errorf("%w: instance %q has no node data path", ErrInvalid, name)
		}
	}
	if c.Figure.WidthIn <= 0 || c.Figure.HeightIn <= 0 {
		return fmt.Errorf("%w: figure size %vx%v in", ErrInvalid, c.Figure.WidthIn, c.Figure.HeightIn)
	}
	if c.Figure.CostDivisor <= 0 {
		return fmt.Errorf("%w: cost_divisor %v", ErrInvalid, c.Figure.CostDivisor)
	}
	return nil
}

// InstanceNames returns the configured instance names in sorted order.
func (c *Config) InstanceNames() []string {
	out := make([]string, 0, len(c.Instances))
	for name := range c.Instances {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
