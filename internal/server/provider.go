package server

import (
	"log/slog"

	"pokedex-service/internal/config"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/fixture"
	"pokedex-service/internal/providers/pokeapi"
)

func selectFetcher(cfg config.Config, logger *slog.Logger) providers.Fetcher {
	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New()
	case config.ProviderPokeAPI, "":
		return pokeapi.NewClient(pokeapi.Config{
			BaseURL: cfg.PokeAPI.BaseURL,
			Timeout: cfg.PokeAPI.Timeout,
			Logger:  logger,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to pokeapi", slog.String("provider", cfg.Provider))
		}
		return pokeapi.NewClient(pokeapi.Config{
			BaseURL: cfg.PokeAPI.BaseURL,
			Timeout: cfg.PokeAPI.Timeout,
			Logger:  logger,
		})
	}
}
