package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"pokedex-service/internal/http/handlers"
)

// NewRouter registers the REST routes and, when mcpHandler is non-nil, mounts it at /mcp.
func NewRouter(h *handlers.Handler, mcpHandler nethttp.Handler) nethttp.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = nethttp.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(h.MethodNotAllowed)

	r.HandleFunc("/", h.Root).Methods(nethttp.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(nethttp.MethodGet)

	// compare must be registered before the catch-all lookup.
	r.HandleFunc("/pokemon/compare", h.Compare).Methods(nethttp.MethodGet)
	r.HandleFunc("/pokemon/trainer/{trainer}", h.Trainer).Methods(nethttp.MethodGet)
	r.HandleFunc("/pokemon/region/{region}", h.Region).Methods(nethttp.MethodGet)
	r.HandleFunc("/pokemon/{nameOrID}", h.Pokemon).Methods(nethttp.MethodGet)

	r.HandleFunc("/team/{userID}", h.Team).Methods(nethttp.MethodGet)
	r.HandleFunc("/team/{userID}/add", h.AddToTeam).Methods(nethttp.MethodPost)
	r.HandleFunc("/team/{userID}/remove/{pokemonName}", h.RemoveFromTeam).Methods(nethttp.MethodDelete)

	if mcpHandler != nil {
		r.PathPrefix("/mcp").Handler(mcpHandler)
	}
	return r
}
