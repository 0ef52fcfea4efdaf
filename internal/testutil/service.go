package testutil

import (
	apppokemon "pokedex-service/internal/app/pokemon"
	"pokedex-service/internal/app/teams"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/fixture"
	"pokedex-service/internal/store"
)

// Services bundles the catalog and team services the transport layers depend on.
type Services struct {
	Pokemon *apppokemon.Service
	Teams   *teams.Service
	Store   *store.TeamStore
}

// NewServices builds both services over fetcher with a fresh team store.
func NewServices(fetcher providers.Fetcher) Services {
	pokemonSvc := apppokemon.NewService(fetcher, apppokemon.Options{})
	teamStore := store.NewTeamStore()
	return Services{
		Pokemon: pokemonSvc,
		Teams:   teams.NewService(teamStore, pokemonSvc, nil, nil),
		Store:   teamStore,
	}
}

// NewFixtureServices builds services backed by the offline fixture roster.
func NewFixtureServices() Services {
	return NewServices(fixture.New())
}
