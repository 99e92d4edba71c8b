// Package examples stages the example problems into the distribution, runs
// them for real when the documentation needs their numeric results, and emits
// the per-folder and aggregate run scripts.
package examples

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/mf6dist/internal/logfields"
	"git.home.luguber.info/inful/mf6dist/internal/runner"
)

// SimulationMarker identifies a directory as a runnable simulation case.
const SimulationMarker = "mfsim.nam"

// ErrNoScripts marks an examples checkout without a scripts folder; the
// pipeline treats it as a warning.
var ErrNoScripts = errors.New("examples scripts folder not present")

// listScripts returns the generation scripts in dir, sorted, minus the
// exclusion list.
func listScripts(dir string, exclude []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoScripts, dir)
		}
		return nil, err
	}
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}
	var scripts []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "ex-") || !strings.HasSuffix(name, ".py") {
			continue
		}
		if _, skip := excluded[name]; skip {
			continue
		}
		scripts = append(scripts, name)
	}
	sort.Strings(scripts)
	return scripts, nil
}

// Stage generates every example problem into the distribution's examples
// folder without running or plotting anything.
func Stage(ctx context.Context, examplesPath, distPath string, exclude []string) error {
	slog.Info("Building examples")

	dest := filepath.Join(distPath, "examples")
	if _, err := os.Stat(dest); err != nil {
		return fmt.Errorf("examples destination missing: %w", err)
	}
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return err
	}

	scriptsDir := filepath.Join(examplesPath, "scripts")
	scripts, err := listScripts(scriptsDir, exclude)
	if err != nil {
		return err
	}

	for _, script := range scripts {
		inv := runner.Invocation{
			Argv: []string{"python", script, "--no_run", "--no_plot", "--no_gif", "--destination", absDest},
			Dir:  scriptsDir,
		}
		if _, err := runner.RunChecked(ctx, inv); err != nil {
			return err
		}
	}
	slog.Info("Staged example problems", slog.Int("scripts", len(scripts)))
	return nil
}

// RunAll executes every example script for real so the examples document can
// be typeset from their numeric results. Unless keep is set, each script's
// generated output directories are discarded afterward. The exclusion list
// deliberately does not apply here; the full document covers every example.
func RunAll(ctx context.Context, examplesPath string, keep bool) error {
	slog.Info("Building and running examples for the examples document")

	scriptsDir := filepath.Join(examplesPath, "scripts")
	scripts, err := listScripts(scriptsDir, nil)
	if err != nil {
		return err
	}

	for _, script := range scripts {
		inv := runner.Invocation{Argv: []string{"python", script, "--no_gif"}, Dir: scriptsDir}
		if _, err := runner.RunChecked(ctx, inv); err != nil {
			return err
		}
		if !keep {
			if err := cleanScriptOutputs(examplesPath, script); err != nil {
				return err
			}
		}
	}

	inv := runner.Invocation{Argv: []string{"python", "process-scripts.py"}, Dir: scriptsDir}
	_, err = runner.RunChecked(ctx, inv)
	return err
}

// cleanScriptOutputs removes the generated example directories matching the
// script's stem.
func cleanScriptOutputs(examplesPath, script string) error {
	stem := strings.TrimSuffix(script, ".py")
	outDir := filepath.Join(examplesPath, "examples")
	entries, err := os.ReadDir(outDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if !e.IsDir() || !strings.Contains(e.Name(), stem) {
			continue
		}
		target := filepath.Join(outDir, e.Name())
		slog.Info("Deleting example outputs", logfields.Path(target))
		if err := os.RemoveAll(target); err != nil {
			return err
		}
	}
	return nil
}
