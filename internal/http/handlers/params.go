package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"pokedex-service/internal/domain"
)

// compareNames collects every pokemon_names value, also splitting comma-separated lists.
func compareNames(r *http.Request) []string {
	var names []string
	for _, raw := range r.URL.Query()["pokemon_names"] {
		for _, part := range strings.Split(raw, ",") {
			if name := strings.TrimSpace(part); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// nonNegativeQueryInt reads an integer query parameter, returning fallback when it is absent.
func nonNegativeQueryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return 0, domain.Invalidf("%s must be a non-negative integer", key)
	}
	return val, nil
}
