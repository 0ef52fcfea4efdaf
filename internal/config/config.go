package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port           string `env:"PORT"             envDefault:"8000"`
	Provider       string `env:"PROVIDER"         envDefault:"pokeapi"`
	RegionMaxLimit int    `env:"REGION_MAX_LIMIT" envDefault:"100"`
	MCPEnabled     bool   `env:"MCP_ENABLED"      envDefault:"true"`
	PokeAPI        PokeAPIConfig
	Metrics        MetricsConfig
	Logging        LoggingConfig
}

// LoggingConfig selects the log level and handler format.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from environment variables with sensible defaults.
// Values that parse but make no sense (zero or negative sizes) fall back to defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.Port = stringOr(c.Port, defaultPort)
	c.Provider = normalizeProvider(c.Provider)
	c.RegionMaxLimit = positiveOr(c.RegionMaxLimit, defaultRegionMaxLimit)
	c.PokeAPI.normalize()
	c.Metrics.normalize()
}
