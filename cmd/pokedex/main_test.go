package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"pokedex-service/internal/domain"
	domainpokemon "pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/fixture"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestGetPrintsJSON(t *testing.T) {
	out, err := runCLI(t, "--provider", "fixture", "get", "Pikachu")
	require.NoError(t, err)

	var record domainpokemon.Pokemon
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, 25, record.ID)
	assert.Equal(t, []string{"electric"}, record.Types)
}

func TestGetPrintsYAML(t *testing.T) {
	out, err := runCLI(t, "--provider", "fixture", "--output", "yaml", "get", "150")
	require.NoError(t, err)

	var record domainpokemon.Pokemon
	require.NoError(t, yaml.Unmarshal([]byte(out), &record))
	assert.Equal(t, "mewtwo", record.Name)
	assert.True(t, record.IsLegendary)
}

func TestGetUnknownReturnsNotFound(t *testing.T) {
	_, err := runCLI(t, "--provider", "fixture", "get", "missingno")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Contains(t, err.Error(), "Pokemon missingno not found")
}

func TestCompareOutputsComparison(t *testing.T) {
	out, err := runCLI(t, "--provider", "fixture", "compare", "pikachu", "charizard", "gengar")
	require.NoError(t, err)

	var result domainpokemon.ComparisonResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Pokemon, 3)
	assert.Equal(t, "gengar", result.Comparison.Stats["speed"].Highest.Name)
	assert.Equal(t, "pikachu", result.Comparison.Stats["speed"].Lowest.Name)
}

func TestCompareRejectsSingleName(t *testing.T) {
	_, err := runCLI(t, "--provider", "fixture", "compare", "pikachu")
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalid, domain.KindOf(err))
}

func TestTrainerListsRoster(t *testing.T) {
	out, err := runCLI(t, "--provider", "fixture", "trainer", "MISTY")
	require.NoError(t, err)

	var records []domainpokemon.Pokemon
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	var names []string
	for _, r := range records {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"starmie", "staryu", "psyduck", "gyarados"}, names)
}

func TestRegionHonorsLimitAndOffset(t *testing.T) {
	out, err := runCLI(t, "--provider", "fixture", "region", "kanto", "--limit", "2", "--offset", "1")
	require.NoError(t, err)

	var records []domainpokemon.Pokemon
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "charizard", records[0].Name)
	assert.Equal(t, "squirtle", records[1].Name)
}

func TestInvalidOutputIsRejected(t *testing.T) {
	_, err := runCLI(t, "--provider", "fixture", "--output", "xml", "get", "pikachu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output")
}

func TestBaseURLPointsAtUpstream(t *testing.T) {
	catalog := fixture.New()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) != 2 {
			http.NotFound(w, r)
			return
		}
		payload, ok := catalog.Fetch(r.Context(), providers.Resource(parts[0]), parts[1])
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(payload)
	}))
	defer upstream.Close()

	out, err := runCLI(t, "--provider", "pokeapi", "--base-url", upstream.URL, "get", "gengar")
	require.NoError(t, err)

	var record domainpokemon.Pokemon
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, 94, record.ID)
	require.NotNil(t, record.Description)
}

func TestUnknownProviderFails(t *testing.T) {
	_, err := runCLI(t, "--provider", "pokeball", "get", "pikachu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}
