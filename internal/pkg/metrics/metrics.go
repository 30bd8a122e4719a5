// Package metrics exposes the service counters and histograms.
package metrics

// Unit of work outcomes.
const (
	OutcomeCommit       = "commit"
	OutcomeRollback     = "rollback"
	OutcomeCommitFailed = "commit_failed"
)

type Metrics interface {
	// Persistence
	RecordUnitOfWork(outcome string)
	RecordRepositoryWrite(entity, operation, outcome string)

	// Infrastructure
	ObserveHTTPRequestDuration(method, path, statusCode string, duration float64)
}

// Nop discards every observation.
type Nop struct{}

func (Nop) RecordUnitOfWork(string)                                   {}
func (Nop) RecordRepositoryWrite(string, string, string)              {}
func (Nop) ObserveHTTPRequestDuration(string, string, string, float64) {}
