package teststubs

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"pokedex-service/internal/providers"
)

// StubFetcher is a test double for providers.Fetcher backed by a payload map.
type StubFetcher struct {
	mu       sync.Mutex
	payloads map[string]json.RawMessage
	requests []string

	Calls atomic.Int32
	// Delay, when set, is slept before answering; tests use it to scramble completion order.
	Delay func(resource providers.Resource, key string) time.Duration
}

// NewStubFetcher returns an empty StubFetcher; every fetch is absent until payloads are set.
func NewStubFetcher() *StubFetcher {
	return &StubFetcher{payloads: make(map[string]json.RawMessage)}
}

// StubKey builds the lookup key for a resource/key pair.
func StubKey(resource providers.Resource, key string) string {
	return string(resource) + "/" + providers.NormalizeKey(key)
}

// Set stores payload (marshalled to JSON) for the resource/key pair.
func (s *StubFetcher) Set(resource providers.Resource, key string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	s.SetRaw(resource, key, raw)
}

// SetRaw stores a raw payload as-is, which lets tests feed malformed bodies.
func (s *StubFetcher) SetRaw(resource providers.Resource, key string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads[StubKey(resource, key)] = json.RawMessage(raw)
}

// AddPokemon registers a core payload under both its name and id, plus an optional species payload under its id.
func (s *StubFetcher) AddPokemon(core providers.PokemonPayload, species *providers.SpeciesPayload) {
	s.Set(providers.ResourcePokemon, core.Name, core)
	s.Set(providers.ResourcePokemon, itoa(core.ID), core)
	if species != nil {
		s.Set(providers.ResourceSpecies, itoa(core.ID), species)
	}
}

// Fetch returns the stored payload; missing keys are absent.
func (s *StubFetcher) Fetch(ctx context.Context, resource providers.Resource, key string) (json.RawMessage, bool) {
	s.Calls.Add(1)
	k := StubKey(resource, key)

	s.mu.Lock()
	s.requests = append(s.requests, k)
	s.mu.Unlock()

	if s.Delay != nil {
		select {
		case <-ctx.Done():
			return nil, false
		case <-time.After(s.Delay(resource, key)):
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.payloads[k]
	return payload, ok
}

// Requests returns the sorted list of resource/key pairs fetched so far.
func (s *StubFetcher) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]string(nil), s.requests...)
	sort.Strings(out)
	return out
}

// Core builds a minimal core payload with the given base stats.
func Core(id int, name string, types []string, stats map[string]int) providers.PokemonPayload {
	p := providers.PokemonPayload{ID: id, Name: name, Height: 10, Weight: 100}
	for i, t := range types {
		p.Types = append(p.Types, providers.TypeSlot{Slot: i + 1, Type: providers.NamedResource{Name: t}})
	}
	names := make([]string, 0, len(stats))
	for n := range stats {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		p.Stats = append(p.Stats, providers.StatEntry{BaseStat: stats[n], Stat: providers.NamedResource{Name: n}})
	}
	return p
}

func itoa(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}
