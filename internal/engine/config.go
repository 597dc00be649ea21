package engine

import (
	"fmt"
	"os"
	"time"

	"skirmish-server/internal/domain"
	"skirmish-server/pkg/battlefield"

	"gopkg.in/yaml.v3"
)

// Config holds everything one game is started with.
type Config struct {
	// Seed is the master seed. Game N of a service runs with Seed + N.
	Seed int64 `yaml:"seed"`

	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Starts   int `yaml:"starts"`
	Finishes int `yaml:"finishes"`

	MaxTurns  int           `yaml:"maxTurns"`
	TickDelay time.Duration `yaml:"tickDelay"`

	Rules domain.Rules `yaml:"rules"`
}

// Defaults
const (
	DefaultWidth     = 10
	DefaultHeight    = 10
	DefaultStarts    = 1
	DefaultFinishes  = 1
	DefaultMaxTurns  = 1000
	DefaultTickDelay = 100 * time.Millisecond
)

// NewConfig creates the default config with a random seed.
func NewConfig() Config {
	return Config{
		Seed:      time.Now().UnixNano(),
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Starts:    DefaultStarts,
		Finishes:  DefaultFinishes,
		MaxTurns:  DefaultMaxTurns,
		TickDelay: DefaultTickDelay,
		Rules:     domain.DefaultRules(),
	}
}

// LoadConfig overlays a YAML file on top of NewConfig. Keys missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the grid parameters, the turn limit and the unit balance.
func (c Config) Validate() error {
	if c.MaxTurns < 1 {
		return fmt.Errorf("maxTurns must be positive, got %d", c.MaxTurns)
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	return c.Params().Validate()
}

// Params is the generator input described by this config.
func (c Config) Params() battlefield.Params {
	return battlefield.Params{
		Width:    c.Width,
		Height:   c.Height,
		Starts:   c.Starts,
		Finishes: c.Finishes,
	}
}

// WithParams returns a copy with the grid replaced.
func (c Config) WithParams(p battlefield.Params) Config {
	c.Width, c.Height = p.Width, p.Height
	c.Starts, c.Finishes = p.Starts, p.Finishes
	return c
}
