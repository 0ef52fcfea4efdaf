package pokemon

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex-service/internal/metrics"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/teststubs"
)

func pikachuCore() providers.PokemonPayload {
	core := teststubs.Core(25, "pikachu", []string{"electric"}, map[string]int{"hp": 35, "speed": 90})
	sprite := "https://img.example/25.png"
	core.Sprites.FrontDefault = &sprite
	core.Height = 4
	core.Weight = 60
	core.Abilities = []providers.AbilitySlot{
		{Slot: 1, Ability: providers.NamedResource{Name: "static"}},
		{Slot: 3, IsHidden: true, Ability: providers.NamedResource{Name: "lightning-rod"}},
	}
	return core
}

func pikachuSpecies() *providers.SpeciesPayload {
	return &providers.SpeciesPayload{
		ID: 25,
		FlavorTextEntries: []providers.FlavorTextEntry{
			{FlavorText: "ピカチュウ", Language: providers.NamedResource{Name: "ja"}},
			{FlavorText: "When several of\nthese gather,\ftheir electricity\ncould build.", Language: providers.NamedResource{Name: "en"}},
			{FlavorText: "Second english entry", Language: providers.NamedResource{Name: "en"}},
		},
	}
}

func TestHydrateMergesCoreAndSpecies(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	stub.AddPokemon(pikachuCore(), pikachuSpecies())

	record, ok := NewHydrator(stub, nil, nil).Hydrate(context.Background(), "Pikachu")
	require.True(t, ok)

	assert.Equal(t, 25, record.ID)
	assert.Equal(t, "pikachu", record.Name)
	assert.Equal(t, []string{"electric"}, record.Types)
	assert.Equal(t, []string{"static", "lightning rod"}, record.Abilities)
	assert.Equal(t, map[string]int{"hp": 35, "speed": 90}, record.Stats)
	assert.Equal(t, 4, record.Height)
	assert.Equal(t, 60, record.Weight)
	require.NotNil(t, record.SpriteURL)
	assert.Equal(t, "https://img.example/25.png", *record.SpriteURL)
	require.NotNil(t, record.Description)
	assert.Equal(t, "When several of these gather, their electricity could build.", *record.Description)
	assert.False(t, record.IsLegendary)
	assert.False(t, record.IsMythical)
}

func TestHydrateByNameAndIDYieldsIdenticalRecords(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	stub.AddPokemon(pikachuCore(), pikachuSpecies())
	h := NewHydrator(stub, nil, nil)

	byName, ok := h.Hydrate(context.Background(), "pikachu")
	require.True(t, ok)
	byID, ok := h.Hydrate(context.Background(), "25")
	require.True(t, ok)

	assert.Equal(t, byName, byID)
}

func TestHydrateFetchesSpeciesByCanonicalID(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	stub.AddPokemon(pikachuCore(), pikachuSpecies())

	_, ok := NewHydrator(stub, nil, nil).Hydrate(context.Background(), "PIKACHU")
	require.True(t, ok)

	assert.Equal(t, []string{"pokemon-species/25", "pokemon/pikachu"}, stub.Requests())
}

func TestHydrateCoreAbsentSkipsSpecies(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	recorder := metrics.NewRecorder()

	_, ok := NewHydrator(stub, nil, recorder).Hydrate(context.Background(), "missingno")
	assert.False(t, ok)
	assert.Equal(t, []string{"pokemon/missingno"}, stub.Requests())
	assert.Equal(t, 1, recorder.Engine().HydrationFailures)
}

func TestHydrateSpeciesAbsentDegradesToDefaults(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	stub.AddPokemon(pikachuCore(), nil)

	record, ok := NewHydrator(stub, nil, nil).Hydrate(context.Background(), "pikachu")
	require.True(t, ok)
	assert.Nil(t, record.Description)
	assert.False(t, record.IsLegendary)
	assert.False(t, record.IsMythical)
}

func TestHydrateSpeciesWithoutEnglishEntryLeavesDescriptionNil(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	stub.AddPokemon(teststubs.Core(150, "mewtwo", []string{"psychic"}, nil), &providers.SpeciesPayload{
		ID:          150,
		IsLegendary: true,
		FlavorTextEntries: []providers.FlavorTextEntry{
			{FlavorText: "Il a été créé", Language: providers.NamedResource{Name: "fr"}},
		},
	})

	record, ok := NewHydrator(stub, nil, nil).Hydrate(context.Background(), "mewtwo")
	require.True(t, ok)
	assert.Nil(t, record.Description)
	assert.True(t, record.IsLegendary)
	assert.Empty(t, record.Stats)
}

func TestHydrateUndecodableCoreIsAbsent(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	stub.SetRaw(providers.ResourcePokemon, "pikachu", []byte(`{"id":"not-a-number"}`))

	_, ok := NewHydrator(stub, nil, nil).Hydrate(context.Background(), "pikachu")
	assert.False(t, ok)
}

func TestHydrateCoreWithoutPositiveIDIsAbsent(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	stub.SetRaw(providers.ResourcePokemon, "pikachu", []byte(`{"name":"pikachu","types":[]}`))
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, ok := NewHydrator(stub, logger, nil).Hydrate(context.Background(), "pikachu")
	assert.False(t, ok)
	assert.NotContains(t, stub.Requests(), teststubs.StubKey(providers.ResourceSpecies, "0"))
	assert.Contains(t, buf.String(), "malformed upstream payload")
}

func TestHydrateMissingSpriteStaysNil(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	stub.AddPokemon(teststubs.Core(1, "bulbasaur", []string{"grass", "poison"}, nil), nil)

	record, ok := NewHydrator(stub, nil, nil).Hydrate(context.Background(), "1")
	require.True(t, ok)
	assert.Nil(t, record.SpriteURL)
	assert.Equal(t, []string{"grass", "poison"}, record.Types)
}

func TestHydrateEmptyKeyIsAbsentWithoutFetching(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	_, ok := NewHydrator(stub, nil, nil).Hydrate(context.Background(), "   ")
	assert.False(t, ok)
	assert.Zero(t, stub.Calls.Load())
}
