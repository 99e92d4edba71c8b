package builder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/mf6dist/internal/fsutil"
	"git.home.luguber.info/inful/mf6dist/internal/logfields"
)

// ErrUtilityMissing marks a utility whose source tree is absent upstream; the
// pipeline treats it as a warning so minimal checkouts still build.
var ErrUtilityMissing = errors.New("utility source tree not present upstream")

// Utility describes one auxiliary tool staged and built alongside the main
// binary. Target is the binary name when it differs from the utility name
// (zonebudget builds zbud6); empty means same as Name.
type Utility struct {
	Name   string
	Target string
}

// TargetName returns the makefile target for the utility.
func (u Utility) TargetName() string {
	if u.Target != "" {
		return u.Target
	}
	return u.Name
}

// ShippedUtilities is the fixed set of auxiliary tools included in a
// distribution.
var ShippedUtilities = []Utility{
	{Name: "zonebudget", Target: "zbud6"},
	{Name: "mf5to6"},
}

// StageUtility creates the utility's scaffold under utils/<name>, copies its
// source tree and IDE project file, picks up an extra-files manifest when one
// exists, and generates its makefile.
func StageUtility(ctx context.Context, modflow6Path, distPath string, u Utility, compiler string) error {
	upstreamUtil := filepath.Join(modflow6Path, "utils", u.Name)
	if _, err := os.Stat(filepath.Join(upstreamUtil, "src")); err != nil {
		return fmt.Errorf("%w: %s", ErrUtilityMissing, u.Name)
	}

	utilityPath := filepath.Join(distPath, "utils", u.Name)
	slog.Info("Creating utility files", slog.String("utility", u.Name), logfields.Path(utilityPath))
	for _, sd := range []string{"make", "msvs"} {
		if err := os.MkdirAll(filepath.Join(utilityPath, sd), 0o755); err != nil {
			return fmt.Errorf("create utility scaffold: %w", err)
		}
	}

	src := filepath.Join(upstreamUtil, "src")
	dst := filepath.Join(utilityPath, "src")
	slog.Info("Copying utility sources", logfields.Source(src), logfields.Dest(dst))
	if err := fsutil.CopyTree(src, dst); err != nil {
		return fmt.Errorf("copy %s sources: %w", u.Name, err)
	}

	project := filepath.Join(upstreamUtil, "msvs", u.Name+".vfproj")
	if err := fsutil.CopyFileInto(project, filepath.Join(utilityPath, "msvs")); err != nil {
		return fmt.Errorf("copy %s project file: %w", u.Name, err)
	}

	// Presence of an extra-files manifest is detected by file existence, not
	// configuration.
	extrafiles := ""
	manifest := filepath.Join(upstreamUtil, "pymake", "extrafiles.txt")
	if _, err := os.Stat(manifest); err == nil {
		if err := fsutil.CopyFileInto(manifest, filepath.Join(utilityPath, "make")); err != nil {
			return fmt.Errorf("copy %s extrafiles manifest: %w", u.Name, err)
		}
		extrafiles = "extrafiles.txt"
	}

	return BuildMakefile(ctx, utilityPath, u.TargetName(), extrafiles, compiler)
}
