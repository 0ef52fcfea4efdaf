package pokemon_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apppokemon "pokedex-service/internal/app/pokemon"
	domainpokemon "pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/testutil"
)

func TestBuildComparisonListsEveryRecordSharingAName(t *testing.T) {
	pikachu := testutil.SamplePokemon(25, "pikachu", "electric")

	cmp, err := apppokemon.BuildComparison([]domainpokemon.Pokemon{pikachu, pikachu})
	require.NoError(t, err)
	assert.Equal(t, []string{"pikachu", "pikachu"}, cmp.Types["electric"])
}

func TestBuildComparisonCountsRepeatedTagOncePerRecord(t *testing.T) {
	odd := testutil.SamplePokemon(1, "odd", "grass", "grass", "poison")
	bulbasaur := testutil.SamplePokemon(2, "bulbasaur", "grass", "poison")

	cmp, err := apppokemon.BuildComparison([]domainpokemon.Pokemon{odd, bulbasaur})
	require.NoError(t, err)
	assert.Equal(t, []string{"odd", "bulbasaur"}, cmp.Types["grass"])
	assert.Equal(t, []string{"odd", "bulbasaur"}, cmp.Types["poison"])
	assert.Equal(t, domainpokemon.Extreme{Name: "bulbasaur", Value: 2}, cmp.Height.Highest)
}

func TestCompareNameAndIDOfSamePokemonListsBoth(t *testing.T) {
	svcs := testutil.NewFixtureServices()

	result, err := svcs.Pokemon.Compare(context.Background(), []string{"pikachu", "25"})
	require.NoError(t, err)
	require.Len(t, result.Pokemon, 2)
	assert.Equal(t, []string{"pikachu", "pikachu"}, result.Comparison.Types["electric"])
}
