package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.RegionMaxLimit != defaultRegionMaxLimit {
		t.Fatalf("expected default region limit %d, got %d", defaultRegionMaxLimit, cfg.RegionMaxLimit)
	}
	if !cfg.MCPEnabled {
		t.Fatalf("expected mcp enabled by default")
	}
	if cfg.PokeAPI.BaseURL != defaultPokeAPIBaseURL {
		t.Fatalf("expected default base url %s, got %s", defaultPokeAPIBaseURL, cfg.PokeAPI.BaseURL)
	}
	if cfg.PokeAPI.Timeout != defaultPokeAPITimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultPokeAPITimeout, cfg.PokeAPI.Timeout)
	}
	if cfg.PokeAPI.MaxInFlight != defaultPokeAPIMaxFlight {
		t.Fatalf("expected default max in flight %d, got %d", defaultPokeAPIMaxFlight, cfg.PokeAPI.MaxInFlight)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("REGION_MAX_LIMIT", "50")
	t.Setenv("MCP_ENABLED", "false")
	t.Setenv("POKEAPI_BASE_URL", "http://example.com/api")
	t.Setenv("POKEAPI_TIMEOUT", "3s")
	t.Setenv("POKEAPI_MAX_IN_FLIGHT", "4")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != ProviderFixture {
		t.Fatalf("expected fixture provider, got %s", cfg.Provider)
	}
	if cfg.RegionMaxLimit != 50 {
		t.Fatalf("expected region limit 50, got %d", cfg.RegionMaxLimit)
	}
	if cfg.MCPEnabled {
		t.Fatalf("expected mcp disabled")
	}
	if cfg.PokeAPI.BaseURL != "http://example.com/api" || cfg.PokeAPI.Timeout != 3*time.Second || cfg.PokeAPI.MaxInFlight != 4 {
		t.Fatalf("unexpected pokeapi config %+v", cfg.PokeAPI)
	}
	if cfg.Metrics.Enabled || cfg.Metrics.OtlpEndpoint != "collector:4318" {
		t.Fatalf("unexpected metrics config %+v", cfg.Metrics)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json log format, got %s", cfg.Logging.Format)
	}
}

func TestLoadInvalidDurationFails(t *testing.T) {
	t.Setenv("POKEAPI_TIMEOUT", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error for invalid duration")
	}
}

func TestLoadNonPositiveValuesFallBack(t *testing.T) {
	t.Setenv("POKEAPI_TIMEOUT", "0s")
	t.Setenv("REGION_MAX_LIMIT", "-3")
	t.Setenv("POKEAPI_MAX_IN_FLIGHT", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.PokeAPI.Timeout != defaultPokeAPITimeout {
		t.Fatalf("expected default timeout on non-positive value, got %s", cfg.PokeAPI.Timeout)
	}
	if cfg.RegionMaxLimit != defaultRegionMaxLimit {
		t.Fatalf("expected default region limit, got %d", cfg.RegionMaxLimit)
	}
	if cfg.PokeAPI.MaxInFlight != defaultPokeAPIMaxFlight {
		t.Fatalf("expected default max in flight, got %d", cfg.PokeAPI.MaxInFlight)
	}
}
