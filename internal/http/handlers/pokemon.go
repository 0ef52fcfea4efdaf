package handlers

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	apppokemon "pokedex-service/internal/app/pokemon"
)

// Pokemon returns a single record by name or id.
func (h *Handler) Pokemon(w nethttp.ResponseWriter, r *nethttp.Request) {
	record, err := h.pokemon.Lookup(r.Context(), mux.Vars(r)["nameOrID"])
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, record, h.logger)
}

// Compare resolves the requested names and returns their comparison.
func (h *Handler) Compare(w nethttp.ResponseWriter, r *nethttp.Request) {
	result, err := h.pokemon.Compare(r.Context(), compareNames(r))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, result, h.logger)
}

// Trainer lists a trainer's roster.
func (h *Handler) Trainer(w nethttp.ResponseWriter, r *nethttp.Request) {
	records, err := h.pokemon.Trainer(r.Context(), mux.Vars(r)["trainer"])
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, records, h.logger)
}

// Region lists one page of a region's pokedex.
func (h *Handler) Region(w nethttp.ResponseWriter, r *nethttp.Request) {
	limit, err := nonNegativeQueryInt(r, "limit", apppokemon.DefaultRegionLimit)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	offset, err := nonNegativeQueryInt(r, "offset", 0)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	records, err := h.pokemon.Region(r.Context(), mux.Vars(r)["region"], offset, limit)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, records, h.logger)
}
