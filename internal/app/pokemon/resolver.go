package pokemon

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	domainpokemon "pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/metrics"
)

// Resolver hydrates a batch of identifiers concurrently.
type Resolver struct {
	hydrator *Hydrator
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

func NewResolver(hydrator *Hydrator, logger *slog.Logger, recorder *metrics.Recorder) *Resolver {
	return &Resolver{hydrator: hydrator, logger: logger, metrics: recorder}
}

// ResolveMany launches one hydration per identifier, waits for all of them, and returns the
// successes in input order. Failed identifiers are dropped.
func (r *Resolver) ResolveMany(ctx context.Context, identifiers []string) []domainpokemon.Pokemon {
	start := time.Now()

	type slot struct {
		record domainpokemon.Pokemon
		ok     bool
	}
	slots := make([]slot, len(identifiers))

	var g errgroup.Group
	for i, id := range identifiers {
		g.Go(func() error {
			record, ok := r.hydrator.Hydrate(ctx, id)
			slots[i] = slot{record: record, ok: ok}
			return nil
		})
	}
	_ = g.Wait()

	resolved := make([]domainpokemon.Pokemon, 0, len(slots))
	for _, s := range slots {
		if s.ok {
			resolved = append(resolved, s.record)
		}
	}

	r.metrics.RecordBatch(len(identifiers), len(resolved), time.Since(start))
	if dropped := len(identifiers) - len(resolved); dropped > 0 {
		logging.Debug(logging.FromContext(ctx, r.logger), "batch dropped unresolved identifiers",
			slog.Int(logging.FieldRequested, len(identifiers)),
			slog.Int(logging.FieldResolved, len(resolved)),
		)
	}
	return resolved
}
