package docs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/mf6dist/internal/fsutil"
	"git.home.luguber.info/inful/mf6dist/internal/runner"
)

// UpdateReleaseInfo regenerates the release-notes fragment describing the
// distribution folder structure.
func UpdateReleaseInfo(ctx context.Context, modflow6Path, distPath string) error {
	dir := filepath.Join(modflow6Path, "doc", "ReleaseNotes")
	_ = fsutil.DeleteFiles(dir, []string{"folder_struct.tex"}, true)

	absDist, err := filepath.Abs(distPath)
	if err != nil {
		return fmt.Errorf("resolve distribution path: %w", err)
	}
	inv := runner.Invocation{
		Argv: []string{"python", "mk_folder_struct.py", "-dp", absDist},
		Dir:  dir,
	}
	if _, err := runner.RunChecked(ctx, inv); err != nil {
		return err
	}

	out := filepath.Join(dir, "folder_struct.tex")
	if _, err := os.Stat(out); err != nil {
		return fmt.Errorf("file does not exist: %s", out)
	}
	return nil
}
