package server

import (
	"log/slog"

	"pokedex-service/internal/config"
	"pokedex-service/internal/metrics"
	"pokedex-service/internal/providers"
)

// fetcherFactory assembles the fetcher with shared wrappers (in-flight cap + instrumentation).
type fetcherFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newFetcherFactory(logger *slog.Logger, metrics *metrics.Recorder) fetcherFactory {
	return fetcherFactory{logger: logger, metrics: metrics}
}

func (f fetcherFactory) build(cfg config.Config) providers.Fetcher {
	return f.wrap(cfg, selectFetcher(cfg, f.logger))
}

// wrap applies the decorators to base. Instrumentation sits outside the limiter so
// recorded latency includes time spent queued for a slot.
func (f fetcherFactory) wrap(cfg config.Config, base providers.Fetcher) providers.Fetcher {
	limited := providers.NewLimitedFetcher(base, cfg.PokeAPI.MaxInFlight, f.logger)
	return providers.NewInstrumentedFetcher(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base))
}
