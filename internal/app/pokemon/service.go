package pokemon

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"pokedex-service/internal/domain"
	"pokedex-service/internal/domain/groups"
	domainpokemon "pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/metrics"
	"pokedex-service/internal/providers"
)

// DefaultRegionLimit is the page size used when a caller does not pass one.
const DefaultRegionLimit = 20

const defaultRegionMaxLimit = 100

// Options tunes a Service. The zero value is usable.
type Options struct {
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
	RegionMaxLimit int
}

// Service answers the catalog read operations: single lookup, comparison, trainer and region listings.
type Service struct {
	fetcher        providers.Fetcher
	hydrator       *Hydrator
	resolver       *Resolver
	logger         *slog.Logger
	regionMaxLimit int
}

// NewService wires a Hydrator and Resolver over fetcher.
func NewService(fetcher providers.Fetcher, opts Options) *Service {
	hydrator := NewHydrator(fetcher, opts.Logger, opts.Metrics)
	maxLimit := opts.RegionMaxLimit
	if maxLimit <= 0 {
		maxLimit = defaultRegionMaxLimit
	}
	return &Service{
		fetcher:        fetcher,
		hydrator:       hydrator,
		resolver:       NewResolver(hydrator, opts.Logger, opts.Metrics),
		logger:         opts.Logger,
		regionMaxLimit: maxLimit,
	}
}

// Hydrate exposes the single-record hydration path, used by the team service.
func (s *Service) Hydrate(ctx context.Context, nameOrID string) (domainpokemon.Pokemon, bool) {
	return s.hydrator.Hydrate(ctx, nameOrID)
}

// Lookup returns one record by name or id.
func (s *Service) Lookup(ctx context.Context, nameOrID string) (domainpokemon.Pokemon, error) {
	nameOrID = strings.TrimSpace(nameOrID)
	if nameOrID == "" {
		return domainpokemon.Pokemon{}, domain.Invalidf("Pokemon name or id is required")
	}
	record, ok := s.hydrator.Hydrate(ctx, nameOrID)
	if !ok {
		return domainpokemon.Pokemon{}, domain.NotFoundf("Pokemon %s not found", nameOrID)
	}
	return record, nil
}

// Compare resolves 2 to 6 names and builds the comparison over the ones that resolved.
// The batch size is checked before anything is fetched.
func (s *Service) Compare(ctx context.Context, names []string) (domainpokemon.ComparisonResult, error) {
	if len(names) < domainpokemon.MinCompare {
		return domainpokemon.ComparisonResult{}, domain.Invalidf("Please provide at least %d Pokemon to compare", domainpokemon.MinCompare)
	}
	if len(names) > domainpokemon.MaxCompare {
		return domainpokemon.ComparisonResult{}, domain.Invalidf("You can compare a maximum of %d Pokemon", domainpokemon.MaxCompare)
	}

	records := s.resolver.ResolveMany(ctx, names)
	if len(records) == 0 {
		return domainpokemon.ComparisonResult{}, domain.NotFoundf("None of the requested Pokemon were found")
	}

	cmp, err := BuildComparison(records)
	if err != nil {
		return domainpokemon.ComparisonResult{}, err
	}
	return domainpokemon.ComparisonResult{Pokemon: records, Comparison: cmp}, nil
}

// Trainer hydrates a trainer's roster in roster order.
func (s *Service) Trainer(ctx context.Context, name string) ([]domainpokemon.Pokemon, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	roster, ok := groups.Trainer(key)
	if !ok {
		return nil, domain.NotFoundf("Trainer %s not found", key)
	}

	records := s.resolver.ResolveMany(ctx, roster)
	if len(records) == 0 && len(roster) > 0 {
		return nil, domain.Upstreamf("Failed to fetch Pokemon for trainer %s", key)
	}
	return records, nil
}

// Region hydrates the [offset, offset+limit) slice of a region's pokedex in entry order.
// limit is clamped to the configured maximum.
func (s *Service) Region(ctx context.Context, name string, offset, limit int) ([]domainpokemon.Pokemon, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	region, ok := groups.LookupRegion(key)
	if !ok {
		return nil, domain.NotFoundf("Region %s not found", key)
	}
	if offset < 0 {
		return nil, domain.Invalidf("offset must be a non-negative integer")
	}
	if limit < 0 {
		return nil, domain.Invalidf("limit must be a non-negative integer")
	}
	if limit > s.regionMaxLimit {
		limit = s.regionMaxLimit
	}

	entries, err := s.pokedexEntries(ctx, region)
	if err != nil {
		return nil, err
	}

	page := paginate(entries, offset, limit)
	if len(page) == 0 {
		return []domainpokemon.Pokemon{}, nil
	}

	records := s.resolver.ResolveMany(ctx, page)
	if len(records) == 0 {
		return nil, domain.Upstreamf("Failed to fetch Pokemon for region %s", key)
	}
	return records, nil
}

func (s *Service) pokedexEntries(ctx context.Context, region groups.Region) ([]string, error) {
	raw, ok := s.fetcher.Fetch(ctx, providers.ResourcePokedex, region.Pokedex)
	if !ok {
		return nil, domain.Upstreamf("Failed to fetch region data")
	}
	var dex providers.PokedexPayload
	if err := json.Unmarshal(raw, &dex); err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "discarding undecodable pokedex payload",
			slog.String(logging.FieldKey, region.Pokedex),
			slog.Any("err", err),
		)
		return nil, domain.Upstreamf("Failed to fetch region data")
	}

	names := make([]string, 0, len(dex.PokemonEntries))
	for _, entry := range dex.PokemonEntries {
		names = append(names, entry.PokemonSpecies.Name)
	}
	return names, nil
}

func paginate(entries []string, offset, limit int) []string {
	if offset >= len(entries) || limit == 0 {
		return nil
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[offset:end]
}
