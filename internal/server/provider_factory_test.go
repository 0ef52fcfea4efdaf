package server

import (
	"context"
	"encoding/json"
	"testing"

	"pokedex-service/internal/config"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/testutil"
)

func TestFetcherFactoryBuildsFixture(t *testing.T) {
	factory := newFetcherFactory(nil, nil)
	fetcher := factory.build(config.Config{Provider: config.ProviderFixture})
	if fetcher == nil {
		t.Fatalf("expected fetcher")
	}
	if _, ok := fetcher.Fetch(context.Background(), providers.ResourcePokemon, "bulbasaur"); !ok {
		t.Fatalf("expected fixture payload through decorators")
	}
}

func TestFetcherFactoryWrapRecordsMetrics(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	factory := newFetcherFactory(nil, rec)
	base := providers.FetcherFunc(func(context.Context, providers.Resource, string) (json.RawMessage, bool) {
		return nil, false
	})

	fetcher := factory.wrap(config.Config{PokeAPI: config.PokeAPIConfig{MaxInFlight: 2}}, base)
	if _, ok := fetcher.Fetch(context.Background(), providers.ResourceSpecies, "1"); ok {
		t.Fatalf("expected absent payload")
	}

	snap := rec.Snapshot(string(providers.ResourceSpecies))
	if snap.Calls != 1 || snap.Absent != 1 {
		t.Fatalf("expected one absent call recorded, got %+v", snap)
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("PokeAPI", nil); got != "pokeapi" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected placeholder name, got %s", got)
	}
	base := providers.FetcherFunc(func(context.Context, providers.Resource, string) (json.RawMessage, bool) { return nil, false })
	if got := normalizeProviderName("", base); got != "providers.fetcherfunc" {
		t.Fatalf("expected derived type name, got %s", got)
	}
}
