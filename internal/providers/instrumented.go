package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pokedex-service/internal/logging"
	"pokedex-service/internal/metrics"
)

// instrumentedFetcher records every upstream read and logs absences at debug level.
// It never retries: a single miss is final for that call.
type instrumentedFetcher struct {
	inner    Fetcher
	logger   *slog.Logger
	metrics  *metrics.Recorder
	provider string
}

// NewInstrumentedFetcher wraps inner with metrics and logging.
func NewInstrumentedFetcher(inner Fetcher, logger *slog.Logger, recorder *metrics.Recorder, provider string) Fetcher {
	return &instrumentedFetcher{
		inner:    inner,
		logger:   logger,
		metrics:  recorder,
		provider: provider,
	}
}

func (f *instrumentedFetcher) Fetch(ctx context.Context, resource Resource, key string) (json.RawMessage, bool) {
	if f.inner == nil {
		logWithProvider(ctx, f.logger, slog.LevelWarn, f.provider, "fetcher unavailable",
			slog.String(logging.FieldResource, string(resource)))
		return nil, false
	}

	start := time.Now()
	payload, ok := f.inner.Fetch(ctx, resource, key)
	elapsed := time.Since(start)
	f.metrics.RecordUpstreamFetch(string(resource), elapsed, ok)

	if !ok {
		logWithProvider(ctx, f.logger, slog.LevelDebug, f.provider, "upstream resource absent",
			slog.String(logging.FieldResource, string(resource)),
			slog.String(logging.FieldKey, NormalizeKey(key)),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
	}
	return payload, ok
}
