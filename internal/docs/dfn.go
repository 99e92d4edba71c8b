package docs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/mf6dist/internal/logfields"
	"git.home.luguber.info/inful/mf6dist/internal/runner"
)

// RebuildTexFromDfn regenerates the per-package description fragments from
// the definition files by running the upstream generator, then verifies that
// every definition file produced a description fragment.
func RebuildTexFromDfn(ctx context.Context, modflow6Path string) error {
	ivarDir := filepath.Join(modflow6Path, "doc", "mf6io", "mf6ivar")
	slog.Info("Rebuilding tex files from dfn", logfields.Dir(ivarDir))

	texDir := filepath.Join(ivarDir, "tex")
	prior, err := listStems(texDir, "tex")
	if err == nil {
		for _, stem := range prior {
			_ = os.Remove(filepath.Join(texDir, stem+".tex"))
		}
	}

	inv := runner.Invocation{Argv: []string{"python", "mf6ivar.py"}, Dir: ivarDir}
	if _, err := runner.RunChecked(ctx, inv); err != nil {
		return err
	}

	dfnStems, err := listStems(filepath.Join(ivarDir, "dfn"), "dfn")
	if err != nil {
		return fmt.Errorf("list definition files: %w", err)
	}
	texStems, err := listStems(texDir, "tex")
	if err != nil {
		return fmt.Errorf("list generated tex files: %w", err)
	}

	missing := MissingDescriptions(dfnStems, texStems)
	if len(missing) > 0 {
		var b strings.Builder
		for i, name := range missing {
			fmt.Fprintf(&b, "  %3d %s\n", i+1, name)
		}
		return fmt.Errorf("%d TeX file(s) are missing. Missing files:\n%s", len(missing), b.String())
	}
	return nil
}

// MissingDescriptions returns the description fragment names (as .tex file
// names) expected from the definition stems but absent from the generated
// stems. Definition files whose name carries the "common" marker describe
// shared blocks and have no fragment of their own.
func MissingDescriptions(dfnStems, texStems []string) []string {
	have := make(map[string]struct{}, len(texStems))
	for _, stem := range texStems {
		have[stem] = struct{}{}
	}
	var missing []string
	for _, stem := range dfnStems {
		if strings.Contains(stem, "common") {
			continue
		}
		want := stem + "-desc"
		if _, ok := have[want]; !ok {
			missing = append(missing, want+".tex")
		}
	}
	return missing
}

// listStems returns the extension-stripped names of the regular files in dir
// whose extension contains ext.
func listStems(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var stems []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.Contains(filepath.Ext(name), ext) {
			continue
		}
		stems = append(stems, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	return stems, nil
}
