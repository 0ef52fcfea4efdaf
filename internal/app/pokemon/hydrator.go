package pokemon

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	domainpokemon "pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/metrics"
	"pokedex-service/internal/providers"
)

const descriptionLanguage = "en"

var flavorTextCleaner = strings.NewReplacer("\n", " ", "\f", " ")

// Hydrator merges the core and species resources for one identifier into a single record.
type Hydrator struct {
	fetcher providers.Fetcher
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewHydrator builds a Hydrator on top of fetcher. logger and recorder may be nil.
func NewHydrator(fetcher providers.Fetcher, logger *slog.Logger, recorder *metrics.Recorder) *Hydrator {
	return &Hydrator{fetcher: fetcher, logger: logger, metrics: recorder}
}

// Hydrate resolves a name or numeric id. It reports false when the core resource is unavailable;
// a missing species resource only leaves the species-derived fields at their defaults.
func (h *Hydrator) Hydrate(ctx context.Context, nameOrID string) (domainpokemon.Pokemon, bool) {
	key := providers.NormalizeKey(nameOrID)

	core, ok := h.fetchCore(ctx, key)
	if !ok {
		h.metrics.RecordHydration(false)
		return domainpokemon.Pokemon{}, false
	}

	// Species is keyed by the canonical id so aliases and ids hydrate identically.
	species := h.fetchSpecies(ctx, strconv.Itoa(core.ID))

	h.metrics.RecordHydration(true)
	return buildRecord(core, species), true
}

func (h *Hydrator) fetchCore(ctx context.Context, key string) (providers.PokemonPayload, bool) {
	var core providers.PokemonPayload
	if key == "" || !h.fetch(ctx, providers.ResourcePokemon, key, &core) {
		return providers.PokemonPayload{}, false
	}
	if core.ID <= 0 {
		logging.Warn(logging.FromContext(ctx, h.logger), "discarding malformed upstream payload",
			slog.String(logging.FieldResource, string(providers.ResourcePokemon)),
			slog.String(logging.FieldKey, key),
			slog.Int("id", core.ID),
		)
		return providers.PokemonPayload{}, false
	}
	return core, true
}

func (h *Hydrator) fetchSpecies(ctx context.Context, key string) *providers.SpeciesPayload {
	var species providers.SpeciesPayload
	if !h.fetch(ctx, providers.ResourceSpecies, key, &species) {
		return nil
	}
	return &species
}

func (h *Hydrator) fetch(ctx context.Context, resource providers.Resource, key string, dst any) bool {
	if h.fetcher == nil {
		return false
	}
	raw, ok := h.fetcher.Fetch(ctx, resource, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logging.Warn(logging.FromContext(ctx, h.logger), "discarding undecodable upstream payload",
			slog.String(logging.FieldResource, string(resource)),
			slog.String(logging.FieldKey, key),
			slog.Any("err", err),
		)
		return false
	}
	return true
}

func buildRecord(core providers.PokemonPayload, species *providers.SpeciesPayload) domainpokemon.Pokemon {
	record := domainpokemon.Pokemon{
		ID:        core.ID,
		Name:      core.Name,
		Types:     make([]string, 0, len(core.Types)),
		SpriteURL: core.Sprites.FrontDefault,
		Height:    core.Height,
		Weight:    core.Weight,
		Abilities: make([]string, 0, len(core.Abilities)),
		Stats:     make(map[string]int, len(core.Stats)),
	}
	for _, t := range core.Types {
		record.Types = append(record.Types, t.Type.Name)
	}
	for _, a := range core.Abilities {
		record.Abilities = append(record.Abilities, strings.ReplaceAll(a.Ability.Name, "-", " "))
	}
	for _, s := range core.Stats {
		record.Stats[s.Stat.Name] = s.BaseStat
	}

	if species != nil {
		record.IsLegendary = species.IsLegendary
		record.IsMythical = species.IsMythical
		record.Description = englishDescription(species.FlavorTextEntries)
	}
	return record
}

func englishDescription(entries []providers.FlavorTextEntry) *string {
	for _, entry := range entries {
		if entry.Language.Name == descriptionLanguage {
			text := flavorTextCleaner.Replace(entry.FlavorText)
			return &text
		}
	}
	return nil
}
