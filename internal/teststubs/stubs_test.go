package teststubs

import (
	"context"
	"testing"
	"time"

	"pokedex-service/internal/providers"
)

func TestStubFetcherServesByNameAndID(t *testing.T) {
	s := NewStubFetcher()
	s.AddPokemon(Core(25, "pikachu", []string{"electric"}, map[string]int{"speed": 90}), &providers.SpeciesPayload{ID: 25})

	for _, key := range []string{"pikachu", "PIKACHU", "25"} {
		if _, ok := s.Fetch(context.Background(), providers.ResourcePokemon, key); !ok {
			t.Fatalf("expected payload for key %q", key)
		}
	}
	if _, ok := s.Fetch(context.Background(), providers.ResourceSpecies, "25"); !ok {
		t.Fatalf("expected species payload")
	}
	if _, ok := s.Fetch(context.Background(), providers.ResourcePokemon, "raichu"); ok {
		t.Fatalf("expected absent payload")
	}
	if s.Calls.Load() != 5 {
		t.Fatalf("expected 5 calls, got %d", s.Calls.Load())
	}
	if got := len(s.Requests()); got != 5 {
		t.Fatalf("expected 5 recorded requests, got %d", got)
	}
}

func TestStubFetcherDelayHonorsContext(t *testing.T) {
	s := NewStubFetcher()
	s.Set(providers.ResourcePokedex, "kanto", providers.PokedexPayload{Name: "kanto"})
	s.Delay = func(providers.Resource, string) time.Duration { return time.Minute }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, ok := s.Fetch(ctx, providers.ResourcePokedex, "kanto"); ok {
		t.Fatalf("expected canceled fetch to be absent")
	}
}

func TestCoreSortsStats(t *testing.T) {
	p := Core(6, "charizard", []string{"fire", "flying"}, map[string]int{"speed": 100, "hp": 78})
	if len(p.Stats) != 2 || p.Stats[0].Stat.Name != "hp" || p.Types[1].Type.Name != "flying" {
		t.Fatalf("unexpected payload %+v", p)
	}
}
