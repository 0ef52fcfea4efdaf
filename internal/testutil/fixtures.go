package testutil

import (
	domainpokemon "pokedex-service/internal/domain/pokemon"
)

// SamplePokemon returns a minimal hydrated record with a full stat block.
func SamplePokemon(id int, name string, types ...string) domainpokemon.Pokemon {
	stats := make(map[string]int, len(domainpokemon.ComparedStats))
	for i, stat := range domainpokemon.ComparedStats {
		stats[stat] = id + i
	}
	return domainpokemon.Pokemon{
		ID:        id,
		Name:      name,
		Types:     types,
		Height:    id,
		Weight:    id * 10,
		Abilities: []string{},
		Stats:     stats,
	}
}
