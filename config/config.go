package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game        GameConfig        `toml:"game"`
	Pathfinding PathfindingConfig `toml:"pathfinding"`
	Logging     LoggingConfig     `toml:"logging"`
}

type GameConfig struct {
	StartMap        string  `toml:"start_map"`
	TPS             int     `toml:"tps"`
	SpeedMultiplier float64 `toml:"speed_multiplier"` // scales every dt handed to the scheduler
	Watch           bool    `toml:"watch"`            // hot reload prefabs and maps from disk
	Seed            int64   `toml:"seed"`             // 0 = seed from the clock
}

type PathfindingConfig struct {
	MaxNodes       int     `toml:"max_nodes"`
	Margin         int     `toml:"margin"` // 0 = unbounded
	RepathInterval float64 `toml:"repath_interval"`
	NodeReached    float64 `toml:"node_reached"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // json | console
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func Default() *Config {
	return defaults()
}

func (c *Config) Validate() error {
	switch {
	case c.Game.StartMap == "":
		return errors.New("game.start_map is empty")
	case c.Game.TPS <= 0:
		return fmt.Errorf("game.tps must be positive, got %d", c.Game.TPS)
	case c.Game.SpeedMultiplier <= 0:
		return fmt.Errorf("game.speed_multiplier must be positive, got %g", c.Game.SpeedMultiplier)
	case c.Pathfinding.MaxNodes < 0:
		return fmt.Errorf("pathfinding.max_nodes must not be negative, got %d", c.Pathfinding.MaxNodes)
	case c.Pathfinding.Margin < 0:
		return fmt.Errorf("pathfinding.margin must not be negative, got %d", c.Pathfinding.Margin)
	case c.Pathfinding.RepathInterval <= 0:
		return fmt.Errorf("pathfinding.repath_interval must be positive, got %g", c.Pathfinding.RepathInterval)
	case c.Pathfinding.NodeReached <= 0:
		return fmt.Errorf("pathfinding.node_reached must be positive, got %g", c.Pathfinding.NodeReached)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			StartMap:        "arena",
			TPS:             60,
			SpeedMultiplier: 2.0,
		},
		Pathfinding: PathfindingConfig{
			MaxNodes:       4096,
			RepathInterval: 1.0,
			NodeReached:    0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
