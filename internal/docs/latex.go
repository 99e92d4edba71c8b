package docs

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

// BuildLatexDocs runs the four-pass typesetting build for each document set,
// verifies the produced PDF, and copies all PDFs into the distribution's doc
// folder. The bibliography pass tolerates a non-zero exit; some documents
// carry no references and bibtex reports that as a failure.
func BuildLatexDocs(ctx context.Context, sets []DocSet, distDocDir string) error {
	for _, set := range sets {
		slog.Info("Building latex document", slog.String("target", set.Target), logfields.Dir(set.Dir))

		pdflatex := runner.Invocation{
			Argv: []string{"pdflatex", "-interaction=nonstopmode", "-halt-on-error", set.Target + ".tex"},
			Dir:  set.Dir,
		}

		slog.Info("  Pass 1/4...")
		if _, err := runner.RunChecked(ctx, pdflatex); err != nil {
			return err
		}

		slog.Info("  Pass 2/4...")
		bibtex := runner.Invocation{Argv: []string{"bibtex", set.Target + ".aux"}, Dir: set.Dir}
		if res := runner.Run(ctx, bibtex); res.Status != 0 {
			slog.Warn("Bibtex did not terminate normally, this may be normal for documents without references",
				slog.String("target", set.Target), logfields.Status(res.Status))
		}

		slog.Info("  Pass 3/4...")
		if _, err := runner.RunChecked(ctx, pdflatex); err != nil {
			return err
		}
		slog.Info("  Pass 4/4...")
		if _, err := runner.RunChecked(ctx, pdflatex); err != nil {
			return err
		}

		pdf := filepath.Join(set.Dir, set.Target+".pdf")
		if _, err := os.Stat(pdf); err != nil {
			return fmt.Errorf("could not find %s", pdf)
		}
	}

	for _, set := range sets {
		src := filepath.Join(set.Dir, set.Target+".pdf")
		slog.Info("Copying latex document", logfields.Source(src), logfields.Dest(distDocDir))
		if err := fsutil.CopyFileInto(src, distDocDir); err != nil {
			return err
		}
	}
	return nil
}
