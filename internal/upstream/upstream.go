// Package upstream stamps release information into the upstream MODFLOW 6
// checkout and records which revision the distribution was cut from.
package upstream

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/mf6dist/internal/logfields"
	"git.home.luguber.info/inful/mf6dist/internal/runner"
)

// Info identifies the upstream revision a distribution was built from.
type Info struct {
	Commit string
	Branch string
}

// SetReleaseInfo runs the upstream version-stamping script so the sources
// carry the release metadata before they are staged.
func SetReleaseInfo(ctx context.Context, modflow6Path string, approved bool) error {
	slog.Info("Setting release information", logfields.Path(modflow6Path))

	argv := []string{"python", "update_version.py"}
	if approved {
		argv = append(argv, "--isApproved")
	}
	inv := runner.Invocation{Argv: argv, Dir: filepath.Join(modflow6Path, "distribution")}
	_, err := runner.RunChecked(ctx, inv)
	return err
}

// Describe reads the upstream checkout's HEAD. The result goes into the build
// report; a non-repository upstream (e.g. an exported tarball) is a valid
// input, so callers treat failure as a warning.
func Describe(modflow6Path string) (Info, error) {
	repo, err := git.PlainOpenWithOptions(modflow6Path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Info{}, fmt.Errorf("open upstream repository %s: %w", modflow6Path, err)
	}
	head, err := repo.Head()
	if err != nil {
		return Info{}, fmt.Errorf("resolve upstream HEAD: %w", err)
	}
	info := Info{Commit: head.Hash().String()}
	if name := head.Name(); name.IsBranch() {
		info.Branch = name.Short()
	} else if name == plumbing.HEAD {
		info.Branch = "detached"
	}
	return info, nil
}
