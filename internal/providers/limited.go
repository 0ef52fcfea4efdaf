package providers

import (
	"context"
	"encoding/json"
	"log/slog"

	"golang.org/x/sync/semaphore"

	"pokedex-service/internal/logging"
)

// limitedFetcher caps the number of upstream reads in flight across all callers.
type limitedFetcher struct {
	next   Fetcher
	sem    *semaphore.Weighted
	logger *slog.Logger
}

// NewLimitedFetcher returns a Fetcher that allows at most maxInFlight concurrent reads.
// A non-positive maxInFlight disables the cap.
func NewLimitedFetcher(next Fetcher, maxInFlight int, logger *slog.Logger) Fetcher {
	if maxInFlight <= 0 {
		return next
	}
	return &limitedFetcher{
		next:   next,
		sem:    semaphore.NewWeighted(int64(maxInFlight)),
		logger: logger,
	}
}

func (f *limitedFetcher) Fetch(ctx context.Context, resource Resource, key string) (json.RawMessage, bool) {
	if err := f.sem.Acquire(ctx, 1); err != nil {
		logWithProvider(ctx, f.logger, slog.LevelWarn, "limited", "upstream fetch canceled while waiting",
			slog.String(logging.FieldResource, string(resource)),
			slog.String(logging.FieldKey, NormalizeKey(key)),
			slog.Any("err", err),
		)
		return nil, false
	}
	defer f.sem.Release(1)
	return f.next.Fetch(ctx, resource, key)
}
