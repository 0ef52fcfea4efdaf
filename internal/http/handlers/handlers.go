package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"

	domainpokemon "pokedex-service/internal/domain/pokemon"
)

// PokemonService is the catalog surface the handlers depend on.
type PokemonService interface {
	Lookup(ctx context.Context, nameOrID string) (domainpokemon.Pokemon, error)
	Compare(ctx context.Context, names []string) (domainpokemon.ComparisonResult, error)
	Trainer(ctx context.Context, name string) ([]domainpokemon.Pokemon, error)
	Region(ctx context.Context, name string, offset, limit int) ([]domainpokemon.Pokemon, error)
}

// TeamService is the team surface the handlers depend on.
type TeamService interface {
	Team(ctx context.Context, userID string) (domainpokemon.TeamResponse, error)
	Add(ctx context.Context, userID, name string) (domainpokemon.TeamResponse, error)
	Remove(ctx context.Context, userID, name string) (domainpokemon.TeamResponse, error)
}

// Handler wires HTTP routes to the catalog and team services.
type Handler struct {
	pokemon PokemonService
	teams   TeamService
	logger  *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(pokemon PokemonService, teams TeamService, logger *slog.Logger) *Handler {
	return &Handler{
		pokemon: pokemon,
		teams:   teams,
		logger:  logger,
	}
}

var endpoints = []string{
	"/pokemon/{name_or_id}",
	"/pokemon/compare",
	"/pokemon/trainer/{trainer_name}",
	"/pokemon/region/{region_name}",
	"/team/{user_id}",
	"/team/{user_id}/add",
	"/team/{user_id}/remove/{pokemon_name}",
}

// Root lists the available endpoints.
func (h *Handler) Root(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"message":   "Welcome to the Pokemon API!",
		"endpoints": endpoints,
	}, loggerFromContext(r, h.logger))
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
