package server

import (
	"fmt"
	"strings"

	"pokedex-service/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
// Used across server wiring and the fetcher factory to keep naming consistent in metrics/logs.
func normalizeProviderName(raw string, fetcher providers.Fetcher) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if fetcher != nil {
		return strings.ToLower(fmt.Sprintf("%T", fetcher))
	}
	return "provider"
}
