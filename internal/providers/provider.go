package providers

import (
	"context"
	"encoding/json"
	"strings"
)

// Resource names one of the upstream catalog endpoints.
type Resource string

const (
	ResourcePokemon Resource = "pokemon"
	ResourceSpecies Resource = "pokemon-species"
	ResourcePokedex Resource = "pokedex"
)

// Fetcher performs a single upstream read and returns the raw payload.
// ok is false for any non-success response, transport fault or malformed body;
// "not found" and "unavailable" are deliberately indistinguishable here.
// Implementations must lower-case key before use and must not panic or return errors.
type Fetcher interface {
	Fetch(ctx context.Context, resource Resource, key string) (payload json.RawMessage, ok bool)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, resource Resource, key string) (json.RawMessage, bool)

func (f FetcherFunc) Fetch(ctx context.Context, resource Resource, key string) (json.RawMessage, bool) {
	return f(ctx, resource, key)
}

// NormalizeKey lower-cases and trims a name-or-id key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
