package teams

import (
	"context"
	"log/slog"
	"strings"

	"pokedex-service/internal/domain"
	domainpokemon "pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/metrics"
	"pokedex-service/internal/store"
)

const (
	operationAdd    = "add"
	operationRemove = "remove"
)

// Store defines the contract for reading and mutating teams.
type Store interface {
	Get(userID string) []domainpokemon.Pokemon
	Update(userID string, fn store.MutateFunc) ([]domainpokemon.Pokemon, error)
}

// Hydrator resolves a name into a full record.
type Hydrator interface {
	Hydrate(ctx context.Context, nameOrID string) (domainpokemon.Pokemon, bool)
}

// Service coordinates team operations using a Store and a Hydrator.
type Service struct {
	store    Store
	hydrator Hydrator
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewService constructs a Service. logger and recorder may be nil.
func NewService(store Store, hydrator Hydrator, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{store: store, hydrator: hydrator, logger: logger, metrics: recorder}
}

// Team returns the user's current team; unknown users have an empty one.
func (s *Service) Team(ctx context.Context, userID string) (domainpokemon.TeamResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return domainpokemon.TeamResponse{}, domain.Invalidf("user id is required")
	}
	team := s.store.Get(userID)
	logging.Debug(logging.FromContext(ctx, s.logger), "team read",
		slog.String(logging.FieldUserID, userID),
		slog.Int(logging.FieldCount, len(team)),
	)
	return domainpokemon.NewTeamResponse(userID, team), nil
}

// Add hydrates name and appends it to the user's team. The team is left untouched when it is
// full, already holds the pokemon, or the name cannot be resolved.
func (s *Service) Add(ctx context.Context, userID, name string) (domainpokemon.TeamResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return domainpokemon.TeamResponse{}, domain.Invalidf("user id is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domainpokemon.TeamResponse{}, domain.Invalidf("pokemon_name is required")
	}

	team, err := s.store.Update(userID, func(team []domainpokemon.Pokemon) ([]domainpokemon.Pokemon, error) {
		if len(team) >= domainpokemon.MaxTeamSize {
			return nil, domain.Invalidf("Team is already full (maximum %d Pokemon). Remove a Pokemon before adding a new one.", domainpokemon.MaxTeamSize)
		}
		if containsName(team, name) {
			return nil, domain.Invalidf("Pokemon %s is already in your team", name)
		}

		record, ok := s.hydrator.Hydrate(ctx, name)
		if !ok {
			return nil, domain.NotFoundf("Pokemon %s not found", name)
		}
		// An id or alias can hydrate to a member that is already present.
		if containsName(team, record.Name) {
			return nil, domain.Invalidf("Pokemon %s is already in your team", record.Name)
		}
		return append(team, record), nil
	})
	s.record(ctx, operationAdd, userID, name, err)
	if err != nil {
		return domainpokemon.TeamResponse{}, err
	}
	return domainpokemon.NewTeamResponse(userID, team), nil
}

// Remove drops the first member whose name matches case-insensitively.
func (s *Service) Remove(ctx context.Context, userID, name string) (domainpokemon.TeamResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return domainpokemon.TeamResponse{}, domain.Invalidf("user id is required")
	}
	name = strings.ToLower(strings.TrimSpace(name))

	team, err := s.store.Update(userID, func(team []domainpokemon.Pokemon) ([]domainpokemon.Pokemon, error) {
		if len(team) == 0 {
			return nil, domain.NotFoundf("User %s doesn't have a team yet", userID)
		}
		for i, member := range team {
			if member.SameName(name) {
				return append(team[:i:i], team[i+1:]...), nil
			}
		}
		return nil, domain.NotFoundf("Pokemon %s not found in your team", name)
	})
	s.record(ctx, operationRemove, userID, name, err)
	if err != nil {
		return domainpokemon.TeamResponse{}, err
	}
	return domainpokemon.NewTeamResponse(userID, team), nil
}

func (s *Service) record(ctx context.Context, operation, userID, name string, err error) {
	s.metrics.RecordTeamMutation(operation, err)

	logger := logging.FromContext(ctx, s.logger)
	attrs := []any{
		slog.String("operation", operation),
		slog.String(logging.FieldUserID, userID),
		slog.String(logging.FieldPokemon, name),
	}
	if err != nil {
		logging.Debug(logger, "team mutation rejected", append(attrs, slog.Any("err", err))...)
		return
	}
	logging.Info(logger, "team updated", attrs...)
}

func containsName(team []domainpokemon.Pokemon, name string) bool {
	for _, member := range team {
		if member.SameName(name) {
			return true
		}
	}
	return false
}
