package metrics

import (
	"sync"
	"time"
)

type resourceStats struct {
	calls           int
	absent          int
	lastCallLatency time.Duration
}

type engineStats struct {
	hydrations        int
	hydrationFailures int
	batches           int
	batchDropped      int
	teamMutations     int
	teamRejections    int
}

// Recorder captures lightweight, in-memory metrics about upstream calls and engine work.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu        sync.Mutex
	resources map[string]*resourceStats
	engine    engineStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		resources: make(map[string]*resourceStats),
		otel:      otel,
	}
}

// RecordUpstreamFetch counts one fetch against a resource kind and stores the last observed latency.
func (r *Recorder) RecordUpstreamFetch(resource string, duration time.Duration, found bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.resources[resource]
	if !ok {
		stats = &resourceStats{}
		r.resources[resource] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if !found {
		stats.absent++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamFetch(resource, duration, found)
	}
}

// RecordHydration counts a hydration attempt and whether it produced a record.
func (r *Recorder) RecordHydration(found bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.engine.hydrations++
	if !found {
		r.engine.hydrationFailures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHydration(found)
	}
}

// RecordBatch tracks a fan-out resolution: how many were requested, how many survived.
func (r *Recorder) RecordBatch(requested, resolved int, duration time.Duration) {
	if r == nil {
		return
	}
	dropped := requested - resolved
	r.mu.Lock()
	r.engine.batches++
	r.engine.batchDropped += dropped
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordBatch(dropped, duration)
	}
}

// RecordTeamMutation tracks add/remove operations on teams and whether they were rejected.
func (r *Recorder) RecordTeamMutation(operation string, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.engine.teamMutations++
	if err != nil {
		r.engine.teamRejections++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTeamMutation(operation, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the counters for one upstream resource kind.
type Snapshot struct {
	Calls           int
	Absent          int
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current stats for the resource.
func (r *Recorder) Snapshot(resource string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.resources[resource]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Absent:          stats.absent,
		LastCallLatency: stats.lastCallLatency,
	}
}

// EngineSnapshot is a copy of the hydration, batch and team counters.
type EngineSnapshot struct {
	Hydrations        int
	HydrationFailures int
	Batches           int
	BatchDropped      int
	TeamMutations     int
	TeamRejections    int
}

func (r *Recorder) Engine() EngineSnapshot {
	if r == nil {
		return EngineSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return EngineSnapshot{
		Hydrations:        r.engine.hydrations,
		HydrationFailures: r.engine.hydrationFailures,
		Batches:           r.engine.batches,
		BatchDropped:      r.engine.batchDropped,
		TeamMutations:     r.engine.teamMutations,
		TeamRejections:    r.engine.teamRejections,
	}
}
