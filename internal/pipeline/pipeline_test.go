package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/mf6dist/internal/config"
)

func newTestState() *State {
	return &State{Cfg: &config.Config{}, Report: newReport()}
}

func TestRunStepsRecordsDurationsAndKinds(t *testing.T) {
	st := newTestState()
	steps := []namedStep{
		{"ok", func(context.Context, *State) error { return nil }},
		{"warn", func(context.Context, *State) error { return newWarning("warn", errors.New("soft")) }},
		{"skip", func(context.Context, *State) error { return newSkipped("skip", errors.New("gated")) }},
		{"tail", func(context.Context, *State) error { return nil }},
	}

	err := runSteps(context.Background(), st, steps)
	require.NoError(t, err)

	for _, name := range []string{"ok", "warn", "skip", "tail"} {
		assert.Contains(t, st.Report.StepDurations, name)
	}
	assert.Equal(t, StepErrorWarning, st.Report.StepKinds["warn"])
	assert.Equal(t, StepErrorSkipped, st.Report.StepKinds["skip"])
	assert.Len(t, st.Report.Warnings, 2)
	assert.Empty(t, st.Report.Errors)

	st.Report.finalize()
	assert.Equal(t, OutcomeWarning, st.Report.Outcome)
}

func TestRunStepsStopsOnFatal(t *testing.T) {
	st := newTestState()
	var ranTail bool
	boom := errors.New("boom")
	steps := []namedStep{
		{"ok", func(context.Context, *State) error { return nil }},
		{"bad", func(context.Context, *State) error { return boom }},
		{"tail", func(context.Context, *State) error { ranTail = true; return nil }},
	}

	err := runSteps(context.Background(), st, steps)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, ranTail)

	var se *StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StepErrorFatal, se.Kind)
	assert.Equal(t, "bad", se.Step)
	assert.Equal(t, StepErrorFatal, st.Report.StepKinds["bad"])
	assert.NotContains(t, st.Report.StepDurations, "tail")

	st.Report.finalize()
	assert.Equal(t, OutcomeFailed, st.Report.Outcome)
}

func TestRunStepsHonorsCancellation(t *testing.T) {
	st := newTestState()
	ctx, cancel := context.WithCancel(context.Background())
	var ran bool
	steps := []namedStep{
		{"first", func(context.Context, *State) error { cancel(); return nil }},
		{"second", func(context.Context, *State) error { ran = true; return nil }},
	}

	err := runSteps(ctx, st, steps)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
}

func TestStepOrder(t *testing.T) {
	want := []string{
		"release_info", "scaffold", "msvs_files", "makefile", "binaries",
		"utilities", "meson_files", "examples_stage", "examples_run",
		"docs", "reports", "doc_notes", "archive",
	}
	steps := buildSteps()
	require.Len(t, steps, len(want))
	for i, s := range steps {
		assert.Equal(t, want[i], s.name)
	}
}
