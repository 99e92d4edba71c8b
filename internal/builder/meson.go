package builder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/mf6dist/internal/fsutil"
	"git.home.luguber.info/inful/mf6dist/internal/logfields"
	"git.home.luguber.info/inful/mf6dist/internal/runner"
)

// MesonBuild configures a fresh meson build directory inside the upstream
// tree with the upstream path itself as install prefix, then runs the install
// step. The compiler selection travels on the child environment, not this
// process's.
func MesonBuild(ctx context.Context, modflow6Path string, compilerEnv []string) error {
	buildDir := filepath.Join(modflow6Path, "builddir")
	slog.Info("Cleaning existing meson build directory", logfields.Path(buildDir))
	if err := os.RemoveAll(buildDir); err != nil {
		return fmt.Errorf("remove %s: %w", buildDir, err)
	}

	absUpstream, err := filepath.Abs(modflow6Path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", modflow6Path, err)
	}

	setup := runner.Invocation{
		Argv: []string{"meson", "setup", "builddir", "--prefix=" + absUpstream, "--libdir=bin"},
		Dir:  modflow6Path,
		Env:  compilerEnv,
	}
	if _, err := runner.RunChecked(ctx, setup); err != nil {
		return err
	}

	install := runner.Invocation{
		Argv: []string{"meson", "install", "-C", "builddir"},
		Dir:  modflow6Path,
		Env:  compilerEnv,
	}
	if _, err := runner.RunChecked(ctx, install); err != nil {
		return err
	}
	return nil
}

// CopyBinaries moves the freshly installed binaries from the upstream bin
// folder into the distribution's bin folder.
func CopyBinaries(modflow6Path, distPath string) error {
	src := filepath.Join(modflow6Path, "bin")
	dst := filepath.Join(distPath, "bin")
	slog.Info("Copying binaries", logfields.Source(src), logfields.Dest(dst))
	if err := fsutil.CopyTree(src, dst); err != nil {
		return fmt.Errorf("copy binaries: %w", err)
	}
	return nil
}
