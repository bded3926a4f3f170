package config

import (
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/geoquest/internal/catalog"
	"github.com/KirkDiggler/geoquest/internal/services/encounter"
)

// Config holds all configuration for the engine tools
type Config struct {
	Engine EngineConfig
	Redis  RedisConfig
}

// EngineConfig holds generation defaults
type EngineConfig struct {
	// Seed drives the random source; 0 seeds from the wall clock
	Seed                 int64   `env:"GEOQUEST_SEED" envDefault:"0"`
	PlayerCount          int     `env:"GEOQUEST_PLAYER_COUNT" envDefault:"1"`
	DifficultyMultiplier float64 `env:"GEOQUEST_DIFFICULTY_MULTIPLIER" envDefault:"1.0"`

	// CatalogPath replaces the embedded catalog with a YAML file
	CatalogPath string `env:"GEOQUEST_CATALOG_PATH"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL is optional; inventories stay in memory without it
	URL string `env:"REDIS_URL"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the environment parser cannot
func (c *Config) Validate() error {
	if c.Engine.PlayerCount < 1 {
		return fmt.Errorf("GEOQUEST_PLAYER_COUNT must be at least 1, got %d", c.Engine.PlayerCount)
	}
	if c.Engine.DifficultyMultiplier < 0 || math.IsNaN(c.Engine.DifficultyMultiplier) {
		return fmt.Errorf("GEOQUEST_DIFFICULTY_MULTIPLIER must not be negative, got %v", c.Engine.DifficultyMultiplier)
	}
	if c.Engine.DifficultyMultiplier > encounter.MaxDifficultyMultiplier {
		return fmt.Errorf("GEOQUEST_DIFFICULTY_MULTIPLIER must be at most %v, got %v",
			encounter.MaxDifficultyMultiplier, c.Engine.DifficultyMultiplier)
	}
	return nil
}

// EffectiveSeed returns the configured seed, or a clock-derived one
func (c *Config) EffectiveSeed() int64 {
	if c.Engine.Seed != 0 {
		return c.Engine.Seed
	}
	return time.Now().UnixNano()
}

// LoadCatalog returns the catalog at CatalogPath, or the embedded one
func (c *Config) LoadCatalog() (*catalog.Catalog, error) {
	if c.Engine.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(c.Engine.CatalogPath)
}
