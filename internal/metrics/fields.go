package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrProvider  = "provider"
	AttrResource  = "resource"
	AttrOutcome   = "outcome"
	AttrOperation = "operation"
)

// Outcome values recorded under AttrOutcome.
const (
	OutcomeFound  = "found"
	OutcomeAbsent = "absent"
	OutcomeOK     = "ok"
	OutcomeError  = "error"
)
