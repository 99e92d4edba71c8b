// Package runner executes the external tools the distribution build depends
// on (meson, pymake, pdflatex, the example scripts, and the built binaries
// themselves) and classifies how each invocation ended.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"git.home.luguber.info/inful/mf6dist/internal/logfields"
)

// Outcome is the typed classification of how an invocation finished.
type Outcome string

const (
	Completed    Outcome = "completed"     // process ran to completion, Status is its exit code
	TimedOut     Outcome = "timed_out"     // deadline hit, process killed, partial output salvaged
	LaunchFailed Outcome = "launch_failed" // process could not be started or waited on
)

// Sentinel statuses retained for operators used to the legacy exit codes.
// They are distinct from any real exit code a tool returns here.
const (
	StatusTimedOut     = 100
	StatusLaunchFailed = 101
)

// Invocation describes one external-process call.
type Invocation struct {
	Argv    []string
	Dir     string
	Timeout time.Duration // zero means no deadline
	Env     []string      // KEY=VALUE entries appended to the inherited environment
}

func (inv Invocation) commandLine() string { return strings.Join(inv.Argv, " ") }

// Result carries the combined stdout+stderr text and the classified status of
// one invocation. Output is salvaged as far as possible on timeout and launch
// failure.
type Result struct {
	Outcome Outcome
	Status  int
	Output  string
}

// Run executes the invocation and returns its classified result. It never
// returns an error: failures are expressed through the Outcome/Status pair so
// callers can inspect tools whose non-zero exit is routinely benign (bibtex).
func Run(ctx context.Context, inv Invocation) Result {
	if len(inv.Argv) == 0 {
		return Result{Outcome: LaunchFailed, Status: StatusLaunchFailed, Output: "empty argument vector"}
	}

	runCtx := ctx
	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, inv.Argv[0], inv.Argv[1:]...)
	cmd.Dir = inv.Dir
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if len(inv.Env) > 0 {
		cmd.Env = append(os.Environ(), inv.Env...)
	}

	slog.Info("Running system command", logfields.Command(inv.commandLine()), logfields.Dir(inv.Dir))

	if err := cmd.Start(); err != nil {
		return Result{Outcome: LaunchFailed, Status: StatusLaunchFailed, Output: salvage(&buf, err)}
	}
	err := cmd.Wait()
	if runCtx.Err() != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return Result{Outcome: TimedOut, Status: StatusTimedOut, Output: buf.String()}
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{Outcome: Completed, Status: exitErr.ExitCode(), Output: buf.String()}
		}
		return Result{Outcome: LaunchFailed, Status: StatusLaunchFailed, Output: salvage(&buf, err)}
	}
	return Result{Outcome: Completed, Status: 0, Output: buf.String()}
}

// RunChecked executes the invocation and escalates any non-zero status into an
// error carrying the command line and the captured output. This is the fatal
// propagation path for build-tool failures.
func RunChecked(ctx context.Context, inv Invocation) (Result, error) {
	res := Run(ctx, inv)
	if res.Status != 0 {
		return res, fmt.Errorf("command %q in %s failed with status %d:\n%s",
			inv.commandLine(), inv.Dir, res.Status, res.Output)
	}
	return res, nil
}

func salvage(buf *bytes.Buffer, err error) string {
	if buf.Len() == 0 {
		return err.Error()
	}
	return buf.String() + "\n" + err.Error()
}
