package config

import "time"

const (
	ProviderPokeAPI = "pokeapi"
	ProviderFixture = "fixture"

	defaultPort             = "8000"
	defaultProvider         = ProviderPokeAPI
	defaultRegionMaxLimit   = 100
	defaultPokeAPIBaseURL   = "https://pokeapi.co/api/v2"
	defaultPokeAPITimeout   = 10 * time.Second
	defaultPokeAPIMaxFlight = 16
	defaultMetricsPort      = "9090"
	defaultServiceName      = "pokedex-service"
)
