// Package builder drives the external build tools: pymake for makefile
// generation and meson for the native binaries, plus the generic utility
// staging procedure shared by zonebudget and mf5to6.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/mf6dist/internal/logfields"
	"git.home.luguber.info/inful/mf6dist/internal/runner"
)

// BuildMakefile runs pymake inside <dir>/make to generate a clean,
// dependency-inclusive makefile for target, then verifies that both expected
// output files were produced. extrafiles names an optional manifest of
// additional sources; empty means none.
func BuildMakefile(ctx context.Context, dir, target, extrafiles, compiler string) error {
	makeDir := filepath.Join(dir, "make")
	slog.Info("Creating makefile", logfields.Dir(makeDir), slog.String("target", target))

	argv := []string{
		"pymake",
		filepath.Join("..", "src"),
		target,
		"-fc", compiler,
		"-cc", "gcc",
		"--makeclean",
		"--dryrun",
		"--include-subdirs",
		"--makefile",
	}
	if extrafiles != "" {
		argv = append(argv, "--extrafiles", extrafiles)
	}
	if _, err := runner.RunChecked(ctx, runner.Invocation{Argv: argv, Dir: makeDir}); err != nil {
		return err
	}

	for _, name := range []string{"makefile", "makedefaults"} {
		if _, err := os.Stat(filepath.Join(makeDir, name)); err != nil {
			return fmt.Errorf("%s not found in %s", name, makeDir)
		}
	}
	return nil
}
