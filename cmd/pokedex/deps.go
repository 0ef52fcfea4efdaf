package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	apppokemon "pokedex-service/internal/app/pokemon"
	"pokedex-service/internal/config"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/fixture"
	"pokedex-service/internal/providers/pokeapi"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	output   string
	provider string
	baseURL  string
}

func (o *globalOptions) validate() error {
	o.output = strings.ToLower(strings.TrimSpace(o.output))
	if !slices.Contains(validOutputs, o.output) {
		return fmt.Errorf("invalid output %q, valid outputs: %v", o.output, validOutputs)
	}
	return nil
}

// withService loads config, applies flag overrides, builds the catalog service and calls fn.
func withService(cmd *cobra.Command, opts *globalOptions, fn func(*apppokemon.Service) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.provider != "" {
		cfg.Provider = strings.ToLower(strings.TrimSpace(opts.provider))
	}
	if opts.baseURL != "" {
		cfg.PokeAPI.BaseURL = opts.baseURL
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: "pokedex",
		Version: version,
		Output:  cmd.ErrOrStderr(),
	})

	fetcher, err := buildFetcher(cfg)
	if err != nil {
		return err
	}
	fetcher = providers.NewLimitedFetcher(fetcher, cfg.PokeAPI.MaxInFlight, logger)

	return fn(apppokemon.NewService(fetcher, apppokemon.Options{
		Logger:         logger,
		RegionMaxLimit: cfg.RegionMaxLimit,
	}))
}

func buildFetcher(cfg config.Config) (providers.Fetcher, error) {
	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New(), nil
	case config.ProviderPokeAPI:
		return pokeapi.NewClient(pokeapi.Config{
			BaseURL: cfg.PokeAPI.BaseURL,
			Timeout: cfg.PokeAPI.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
