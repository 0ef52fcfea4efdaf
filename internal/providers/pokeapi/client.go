package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"pokedex-service/internal/logging"
	"pokedex-service/internal/providers"
)

// Config controls how the client reaches the upstream catalog.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
}

// Client reads raw catalog resources over HTTP. It implements providers.Fetcher.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     cfg.Logger,
	}
}

// Fetch issues GET {base}/{resource}/{key}. Any failure is reported as absent and logged.
func (c *Client) Fetch(ctx context.Context, resource providers.Resource, key string) (json.RawMessage, bool) {
	key = providers.NormalizeKey(key)
	if key == "" {
		return nil, false
	}

	payload, err := c.get(ctx, resource, key)
	if err != nil {
		c.log(ctx, resource, key, err)
		return nil, false
	}
	return payload, true
}

func (c *Client) get(ctx context.Context, resource providers.Resource, key string) (json.RawMessage, error) {
	endpoint := c.baseURL + "/" + string(resource) + "/" + url.PathEscape(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &providers.StatusError{Resource: resource, Key: key, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s/%s: malformed json body", resource, key)
	}
	return json.RawMessage(body), nil
}

func (c *Client) log(ctx context.Context, resource providers.Resource, key string, err error) {
	logger := logging.FromContext(ctx, c.logger)
	if logger == nil {
		return
	}
	level := slog.LevelWarn
	if statusErr, ok := providers.AsStatusError(err); ok && statusErr.StatusCode == http.StatusNotFound {
		level = slog.LevelDebug
	}
	if ctx.Err() != nil {
		level = slog.LevelDebug
	}
	logger.Log(ctx, level, "upstream fetch failed",
		slog.String(logging.FieldProvider, providerName),
		slog.String(logging.FieldResource, string(resource)),
		slog.String(logging.FieldKey, key),
		slog.Any("err", err),
	)
}
