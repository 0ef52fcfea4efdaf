package config

import "time"

// PokeAPIConfig controls how we talk to the upstream catalog.
type PokeAPIConfig struct {
	BaseURL     string        `env:"POKEAPI_BASE_URL"      envDefault:"https://pokeapi.co/api/v2"`
	Timeout     time.Duration `env:"POKEAPI_TIMEOUT"       envDefault:"10s"`
	MaxInFlight int           `env:"POKEAPI_MAX_IN_FLIGHT" envDefault:"16"`
}

func (c *PokeAPIConfig) normalize() {
	c.BaseURL = stringOr(c.BaseURL, defaultPokeAPIBaseURL)
	if c.Timeout <= 0 {
		c.Timeout = defaultPokeAPITimeout
	}
	c.MaxInFlight = positiveOr(c.MaxInFlight, defaultPokeAPIMaxFlight)
}
