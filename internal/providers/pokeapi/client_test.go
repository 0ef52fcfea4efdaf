package pokeapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"pokedex-service/internal/providers"
)

func TestFetchBuildsLowercasedURL(t *testing.T) {
	var capturedPath string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		return jsonResponse(http.StatusOK, `{"id":25,"name":"pikachu"}`), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/api/v2/",
		HTTPClient: &http.Client{Transport: rt},
	})

	payload, ok := client.Fetch(context.Background(), providers.ResourcePokemon, " Pikachu ")
	if !ok {
		t.Fatalf("expected payload")
	}
	if capturedPath != "/api/v2/pokemon/pikachu" {
		t.Fatalf("unexpected path %s", capturedPath)
	}
	if !strings.Contains(string(payload), `"pikachu"`) {
		t.Fatalf("unexpected payload %s", payload)
	}
}

func TestFetchUsesResourceSegment(t *testing.T) {
	var paths []string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		paths = append(paths, req.URL.Path)
		return jsonResponse(http.StatusOK, `{}`), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	client.Fetch(context.Background(), providers.ResourceSpecies, "25")
	client.Fetch(context.Background(), providers.ResourcePokedex, "kanto")

	if len(paths) != 2 || paths[0] != "/pokemon-species/25" || paths[1] != "/pokedex/kanto" {
		t.Fatalf("unexpected paths %v", paths)
	}
}

func TestFetchTreatsNon200AsAbsent(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusTooManyRequests} {
		rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(status, `{"detail":"nope"}`), nil
		})
		client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
		if _, ok := client.Fetch(context.Background(), providers.ResourcePokemon, "missingno"); ok {
			t.Fatalf("expected absent for status %d", status)
		}
	}
}

func TestFetchTreatsTransportErrorAsAbsentAndLogs(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}, Logger: logger})

	if _, ok := client.Fetch(context.Background(), providers.ResourcePokemon, "pikachu"); ok {
		t.Fatalf("expected absent on transport error")
	}
	out := buf.String()
	if !strings.Contains(out, "upstream fetch failed") || !strings.Contains(out, "provider=pokeapi") {
		t.Fatalf("expected failure log, got %q", out)
	}
}

func TestFetchTreatsMalformedJSONAsAbsent(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "{bad json"), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	if _, ok := client.Fetch(context.Background(), providers.ResourcePokemon, "pikachu"); ok {
		t.Fatalf("expected absent on malformed body")
	}
}

func TestFetchSkipsEmptyKey(t *testing.T) {
	called := false
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		called = true
		return jsonResponse(http.StatusOK, `{}`), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	if _, ok := client.Fetch(context.Background(), providers.ResourcePokemon, "   "); ok {
		t.Fatalf("expected absent for empty key")
	}
	if called {
		t.Fatalf("expected no upstream call for empty key")
	}
}

func TestNewClientSetsDefaultHTTPClient(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout == 0 {
		t.Fatalf("expected timeout to be set on default http client")
	}
	if c.baseURL != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", c.baseURL)
	}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
