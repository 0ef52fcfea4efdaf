package config

import "strings"

func stringOr(val, fallback string) string {
	if strings.TrimSpace(val) == "" {
		return fallback
	}
	return strings.TrimSpace(val)
}

func positiveOr(val, fallback int) int {
	if val <= 0 {
		return fallback
	}
	return val
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ProviderFixture:
		return ProviderFixture
	case ProviderPokeAPI:
		return ProviderPokeAPI
	default:
		return defaultProvider
	}
}
