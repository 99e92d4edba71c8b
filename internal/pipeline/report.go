package pipeline

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the typed enumeration of final build result states.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeWarning Outcome = "warning"
	OutcomeFailed  Outcome = "failed"
)

// Report captures what one distribution build did: per-step durations and
// classifications, the upstream revision, and the produced archive.
type Report struct {
	RunID          string
	Start          time.Time
	End            time.Time
	StepDurations  map[string]time.Duration
	StepKinds      map[string]StepErrorKind
	Warnings       []error
	Errors         []error
	Outcome        Outcome
	ArchivePath    string
	UpstreamCommit string
	UpstreamBranch string
}

func newReport() *Report {
	return &Report{
		RunID:         uuid.NewString(),
		Start:         time.Now(),
		StepDurations: make(map[string]time.Duration),
		StepKinds:     make(map[string]StepErrorKind),
	}
}

func (r *Report) recordError(step string, err error) {
	r.Errors = append(r.Errors, err)
}

// finalize derives the overall outcome.
func (r *Report) finalize() {
	r.End = time.Now()
	switch {
	case len(r.Errors) > 0:
		r.Outcome = OutcomeFailed
	case len(r.Warnings) > 0:
		r.Outcome = OutcomeWarning
	default:
		r.Outcome = OutcomeSuccess
	}
}
