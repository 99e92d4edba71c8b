// Package pipeline runs the distribution build: a fixed, ordered set of
// steps, each depending on the filesystem state left by the previous one.
// The first fatal error aborts the run; warnings and capability-gated skips
// are recorded and execution continues. Nothing is retried and no partial
// tree is rolled back, so an operator can inspect and resume manually.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/mf6dist/internal/config"
	"git.home.luguber.info/inful/mf6dist/internal/logfields"
)

// Step is a discrete unit of work in the distribution build.
type Step func(ctx context.Context, st *State) error

// StepErrorKind enumerates structured step error categories.
type StepErrorKind string

const (
	StepErrorFatal   StepErrorKind = "fatal"   // Build must abort.
	StepErrorWarning StepErrorKind = "warning" // Non-fatal; record and continue.
	StepErrorSkipped StepErrorKind = "skipped" // Capability gate short-circuited the step.
)

// StepError is a structured error carrying category and underlying cause.
type StepError struct {
	Kind StepErrorKind
	Step string
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("%s step %s: %v", e.Kind, e.Step, e.Err) }
func (e *StepError) Unwrap() error { return e.Err }

func newFatal(step string, err error) *StepError {
	return &StepError{Kind: StepErrorFatal, Step: step, Err: err}
}
func newWarning(step string, err error) *StepError {
	return &StepError{Kind: StepErrorWarning, Step: step, Err: err}
}
func newSkipped(step string, err error) *StepError {
	return &StepError{Kind: StepErrorSkipped, Step: step, Err: err}
}

// State carries the resolved configuration and the accumulating report
// across steps. Steps communicate through the filesystem, not through State.
type State struct {
	Cfg            *config.Config
	Report         *Report
	LatexAvailable bool
	ScratchDir     string
}

type namedStep struct {
	name string
	fn   Step
}

// runSteps executes steps in order, recording timing and classification,
// stopping on the first fatal error.
func runSteps(ctx context.Context, st *State, steps []namedStep) error {
	for _, step := range steps {
		select {
		case <-ctx.Done():
			err := newFatal(step.name, ctx.Err())
			st.Report.recordError(step.name, err)
			return err
		default:
		}

		slog.Info("Starting step", logfields.Step(step.name))
		t0 := time.Now()
		err := step.fn(ctx, st)
		dur := time.Since(t0)
		st.Report.StepDurations[step.name] = dur
		slog.Debug("Step finished", logfields.Step(step.name), logfields.DurationMS(float64(dur.Milliseconds())))

		if err == nil {
			st.Report.StepKinds[step.name] = ""
			continue
		}

		var se *StepError
		if !errors.As(err, &se) {
			se = newFatal(step.name, err)
		}
		st.Report.StepKinds[step.name] = se.Kind
		switch se.Kind {
		case StepErrorWarning:
			slog.Warn("Step reported a warning", logfields.Step(step.name), logfields.Error(se.Err))
			st.Report.Warnings = append(st.Report.Warnings, se)
		case StepErrorSkipped:
			slog.Warn("Step skipped", logfields.Step(step.name), logfields.Error(se.Err))
			st.Report.Warnings = append(st.Report.Warnings, se)
		case StepErrorFatal:
			slog.Error("Step failed", logfields.Step(step.name), logfields.Error(se.Err))
			st.Report.recordError(step.name, se)
			return se
		}
	}
	return nil
}
