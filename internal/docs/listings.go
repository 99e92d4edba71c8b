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

// CaptureListings runs the freshly built binary three ways and captures each
// console transcript into a typeset listing fragment under the mf6io doc
// directory: a normal run of the test model, a run in an empty directory (the
// "no namefile" transcript, where a non-zero exit is the expected behavior),
// and the help screen.
func CaptureListings(ctx context.Context, binPath, modelDir, texDir, scratchDir string) error {
	absBin, err := filepath.Abs(binPath)
	if err != nil {
		return fmt.Errorf("resolve binary path: %w", err)
	}
	if _, err := os.Stat(absBin); err != nil {
		return fmt.Errorf("%s does not exist", absBin)
	}
	if _, err := os.Stat(modelDir); err != nil {
		return fmt.Errorf("%s does not exist", modelDir)
	}

	slog.Info("Running simple test model", logfields.Command(absBin), logfields.Dir(modelDir))
	res, err := runner.RunChecked(ctx, runner.Invocation{Argv: []string{absBin}, Dir: modelDir})
	if err != nil {
		return err
	}
	if err := writeListing(filepath.Join(texDir, "mf6output.tex"), res.Output); err != nil {
		return err
	}

	nonameDir := filepath.Join(scratchDir, "noname")
	if err := os.RemoveAll(nonameDir); err != nil {
		return fmt.Errorf("clear noname dir: %w", err)
	}
	if err := os.MkdirAll(nonameDir, 0o755); err != nil {
		return fmt.Errorf("create noname dir: %w", err)
	}
	slog.Info("Running binary without namefile present")
	probe := runner.Run(ctx, runner.Invocation{Argv: []string{absBin}, Dir: nonameDir})
	if probe.Status != 0 {
		slog.Debug("No-namefile probe exited non-zero as expected", logfields.Status(probe.Status))
	}
	if err := writeListing(filepath.Join(texDir, "mf6noname.tex"), probe.Output); err != nil {
		return err
	}

	slog.Info("Running binary with -h to capture help output")
	res, err = runner.RunChecked(ctx, runner.Invocation{Argv: []string{absBin, "-h"}, Dir: nonameDir})
	if err != nil {
		return err
	}
	return writeListing(filepath.Join(texDir, "mf6switches.tex"), res.Output)
}

// writeListing wraps the captured console text in the fixed listing envelope
// used by the documentation sources.
func writeListing(path, output string) error {
	var b strings.Builder
	b.WriteString("{\\small\n")
	b.WriteString("\\begin{lstlisting}[style=modeloutput]\n")
	normalized := strings.ReplaceAll(output, "\r\n", "\n")
	for _, line := range strings.Split(normalized, "\n") {
		b.WriteString(strings.TrimRight(line, " \t\r"))
		b.WriteString("\n")
	}
	b.WriteString("\\end{lstlisting}\n")
	b.WriteString("}\n")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write listing %s: %w", path, err)
	}
	return nil
}
