package handlers

import (
	"encoding/json"
	nethttp "net/http"

	"github.com/gorilla/mux"
)

const maxRequestBodyBytes = 1 << 20

type addToTeamRequest struct {
	PokemonName string `json:"pokemon_name"`
}

// Team returns the user's team.
func (h *Handler) Team(w nethttp.ResponseWriter, r *nethttp.Request) {
	resp, err := h.teams.Team(r.Context(), mux.Vars(r)["userID"])
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// AddToTeam appends the posted pokemon to the user's team.
func (h *Handler) AddToTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body addToTeamRequest
	dec := json.NewDecoder(nethttp.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := dec.Decode(&body); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	resp, err := h.teams.Add(r.Context(), mux.Vars(r)["userID"], body.PokemonName)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// RemoveFromTeam drops the named pokemon from the user's team.
func (h *Handler) RemoveFromTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	vars := mux.Vars(r)
	resp, err := h.teams.Remove(r.Context(), vars["userID"], vars["pokemonName"])
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}
