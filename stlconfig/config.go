package stlconfig

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is one monitor session's declarative description, loaded from a
// YAML file by Load.
type Config struct {
	Signals    []string           `yaml:"signals"`
	Formula    string             `yaml:"formula"`
	HorizonRaw []float64          `yaml:"horizon"`
	Parameters map[string]float64 `yaml:"parameters"`
	Trace      string             `yaml:"trace"`
}

// Load reads and parses the YAML config at path, returning ErrInvalidConfig
// if a required field is missing or the horizon isn't a two-element
// [start, end] pair.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stlconfig: reading %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("stlconfig: parsing %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if len(c.Signals) == 0 {
		return fmt.Errorf("%w: signals must be non-empty", ErrInvalidConfig)
	}
	if c.Formula == "" {
		return fmt.Errorf("%w: formula must be set", ErrInvalidConfig)
	}
	if len(c.HorizonRaw) != 2 {
		return fmt.Errorf("%w: horizon must be a [start, end] pair", ErrInvalidConfig)
	}
	if c.HorizonRaw[1] < c.HorizonRaw[0] {
		return fmt.Errorf("%w: horizon end must not precede start", ErrInvalidConfig)
	}
	if c.Trace == "" {
		return fmt.Errorf("%w: trace file path must be set", ErrInvalidConfig)
	}
	return nil
}

// SignalNames returns the declared signals joined into the comma-separated
// form driver.New/Evaluate expect.
func (c *Config) SignalNames() string {
	return strings.Join(c.Signals, ",")
}

// Horizon returns the parsed [start, end] horizon.
func (c *Config) Horizon() [2]float64 {
	return [2]float64{c.HorizonRaw[0], c.HorizonRaw[1]}
}
