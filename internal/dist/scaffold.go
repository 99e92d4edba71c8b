// Package dist creates and seeds the distribution tree: the fixed scaffold,
// the upstream source trees, and the Visual Studio / meson build collateral.
package dist

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"git.home.luguber.info/inful/mf6dist/internal/fsutil"
	"git.home.luguber.info/inful/mf6dist/internal/logfields"
)

// Subdirs is the fixed directory set of every distribution, in creation order.
var Subdirs = []string{"bin", "doc", "examples", "make", "msvs", "utils"}

// msvsFiles are the Visual Studio solution and project files shipped with the
// distribution.
var msvsFiles = []string{
	"mf6.sln",
	"mf6.vfproj",
	"mf6core.vfproj",
	"mf6bmi.sln",
	"mf6bmi.vfproj",
}

// BinaryName returns the platform name of the main simulation binary.
func BinaryName() string {
	if runtime.GOOS == "windows" {
		return "mf6.exe"
	}
	return "mf6"
}

// Scaffold creates the distribution tree at distPath and seeds it with the
// upstream src and srcbmi trees. The target must not already exist; failing
// fast here guards against silently overwriting a prior distribution.
func Scaffold(modflow6Path, distPath string) error {
	slog.Info("Creating new distribution path", logfields.Path(distPath))
	if _, err := os.Stat(distPath); err == nil {
		return fmt.Errorf("distribution path cannot already exist, remove %s", distPath)
	}
	if err := os.MkdirAll(distPath, 0o755); err != nil {
		return fmt.Errorf("create distribution path %s: %w", distPath, err)
	}

	for _, tree := range []string{"src", "srcbmi"} {
		src := filepath.Join(modflow6Path, tree)
		dst := filepath.Join(distPath, tree)
		slog.Info("Copying source tree", logfields.Source(src), logfields.Dest(dst))
		if err := fsutil.CopyTree(src, dst); err != nil {
			return fmt.Errorf("copy %s tree: %w", tree, err)
		}
	}

	for _, sd := range Subdirs {
		d := filepath.Join(distPath, sd)
		slog.Debug("Creating directory", logfields.Path(d))
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", d, err)
		}
	}
	return nil
}

// StageMSVSFiles copies the Visual Studio collateral into the distribution's
// msvs folder. Missing source files are reported back so the caller can log a
// warning; a minimal upstream checkout carries no IDE files at all.
func StageMSVSFiles(modflow6Path, distPath string) error {
	dst := filepath.Join(distPath, "msvs")
	var missing []string
	for _, name := range msvsFiles {
		src := filepath.Join(modflow6Path, "msvs", name)
		if _, err := os.Stat(src); err != nil {
			missing = append(missing, name)
			continue
		}
		slog.Info("Copying msvs file", logfields.Source(src), logfields.Dest(dst))
		if err := fsutil.CopyFileInto(src, dst); err != nil {
			return err
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("msvs files not present upstream: %s", strings.Join(missing, ", "))
	}
	return nil
}

// StageMesonFiles mirrors every meson.build found under the upstream tree to
// the same relative path in the distribution, filling in only paths that are
// not already present there.
func StageMesonFiles(modflow6Path, distPath string) error {
	files, err := fsutil.FindFilesNamed(modflow6Path, "meson.build")
	if err != nil {
		return fmt.Errorf("scan for meson.build files: %w", err)
	}
	for _, rel := range files {
		src := filepath.Join(modflow6Path, rel)
		dst := filepath.Join(distPath, rel)
		if _, err := os.Stat(dst); err == nil {
			continue
		}
		slog.Info("Copying meson file", logfields.Source(src), logfields.Dest(dst))
		if err := fsutil.CopyFile(src, dst); err != nil {
			return err
		}
	}
	return nil
}
