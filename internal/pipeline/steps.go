package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"git.home.luguber.info/inful/mf6dist/internal/archive"
	"git.home.luguber.info/inful/mf6dist/internal/builder"
	"git.home.luguber.info/inful/mf6dist/internal/config"
	"git.home.luguber.info/inful/mf6dist/internal/dist"
	"git.home.luguber.info/inful/mf6dist/internal/docs"
	"git.home.luguber.info/inful/mf6dist/internal/examples"
	"git.home.luguber.info/inful/mf6dist/internal/logfields"
	"git.home.luguber.info/inful/mf6dist/internal/upstream"
)

// Run executes the full distribution build and returns the report. The
// returned error is the first fatal step failure, if any.
func Run(ctx context.Context, cfg *config.Config) (*Report, error) {
	scratch, err := os.MkdirTemp("", "mf6dist-")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	st := &State{
		Cfg:            cfg,
		Report:         newReport(),
		LatexAvailable: docs.LatexAvailable(),
		ScratchDir:     scratch,
	}
	slog.Info("Starting distribution build",
		logfields.RunID(st.Report.RunID),
		logfields.Path(cfg.DistributionPath),
		slog.Bool("latex_available", st.LatexAvailable))
	if !st.LatexAvailable {
		slog.Warn("Latex is not available, documentation and example runs will be skipped")
	}

	err = runSteps(ctx, st, buildSteps())
	st.Report.finalize()
	return st.Report, err
}

// buildSteps is the fixed program order of the distribution build.
func buildSteps() []namedStep {
	return []namedStep{
		{"release_info", stepReleaseInfo},
		{"scaffold", stepScaffold},
		{"msvs_files", stepMSVSFiles},
		{"makefile", stepMakefile},
		{"binaries", stepBinaries},
		{"utilities", stepUtilities},
		{"meson_files", stepMesonFiles},
		{"examples_stage", stepExamplesStage},
		{"examples_run", stepExamplesRun},
		{"docs", stepDocs},
		{"reports", stepReports},
		{"doc_notes", stepDocNotes},
		{"archive", stepArchive},
	}
}

func stepReleaseInfo(ctx context.Context, st *State) error {
	if err := upstream.SetReleaseInfo(ctx, st.Cfg.Modflow6Path, st.Cfg.Approved); err != nil {
		return err
	}
	info, err := upstream.Describe(st.Cfg.Modflow6Path)
	if err != nil {
		// An exported (non-git) upstream tree is a valid input.
		return newWarning("release_info", err)
	}
	st.Report.UpstreamCommit = info.Commit
	st.Report.UpstreamBranch = info.Branch
	slog.Info("Upstream revision", slog.String("commit", info.Commit), slog.String("branch", info.Branch))
	return nil
}

func stepScaffold(_ context.Context, st *State) error {
	return dist.Scaffold(st.Cfg.Modflow6Path, st.Cfg.DistributionPath)
}

func stepMSVSFiles(_ context.Context, st *State) error {
	if err := dist.StageMSVSFiles(st.Cfg.Modflow6Path, st.Cfg.DistributionPath); err != nil {
		return newWarning("msvs_files", err)
	}
	return nil
}

func stepMakefile(ctx context.Context, st *State) error {
	return builder.BuildMakefile(ctx, st.Cfg.DistributionPath, "mf6", "", st.Cfg.FortranCompiler)
}

func stepBinaries(ctx context.Context, st *State) error {
	if err := builder.MesonBuild(ctx, st.Cfg.Modflow6Path, st.Cfg.CompilerEnv()); err != nil {
		return err
	}
	return builder.CopyBinaries(st.Cfg.Modflow6Path, st.Cfg.DistributionPath)
}

func stepUtilities(ctx context.Context, st *State) error {
	var skipped []error
	for _, u := range builder.ShippedUtilities {
		err := builder.StageUtility(ctx, st.Cfg.Modflow6Path, st.Cfg.DistributionPath, u, st.Cfg.FortranCompiler)
		if err == nil {
			continue
		}
		if errors.Is(err, builder.ErrUtilityMissing) {
			skipped = append(skipped, err)
			continue
		}
		return err
	}
	if len(skipped) > 0 {
		return newWarning("utilities", errors.Join(skipped...))
	}
	return nil
}

func stepMesonFiles(_ context.Context, st *State) error {
	return dist.StageMesonFiles(st.Cfg.Modflow6Path, st.Cfg.DistributionPath)
}

func stepExamplesStage(ctx context.Context, st *State) error {
	err := examples.Stage(ctx, st.Cfg.ExamplesPath, st.Cfg.DistributionPath, st.Cfg.ExcludeScripts)
	if err != nil {
		if errors.Is(err, examples.ErrNoScripts) {
			return newWarning("examples_stage", err)
		}
		return err
	}
	return examples.WriteRunScripts(st.Cfg.DistributionPath, examples.EmitterFor(runtime.GOOS))
}

func stepExamplesRun(ctx context.Context, st *State) error {
	if !st.LatexAvailable {
		return newSkipped("examples_run", errors.New("latex is not available, examples were not run"))
	}
	if err := examples.RunAll(ctx, st.Cfg.ExamplesPath, st.Cfg.Keep); err != nil {
		if errors.Is(err, examples.ErrNoScripts) {
			return newWarning("examples_run", err)
		}
		return err
	}
	return nil
}

func stepDocs(ctx context.Context, st *State) error {
	if !st.LatexAvailable {
		return newSkipped("docs", errors.New("latex is not available, documents were not built"))
	}
	return docs.Rebuild(ctx, docs.RebuildInput{
		Modflow6Path: st.Cfg.Modflow6Path,
		ExamplesPath: st.Cfg.ExamplesPath,
		DistPath:     st.Cfg.DistributionPath,
		ScratchDir:   st.ScratchDir,
	})
}

func stepReports(ctx context.Context, st *State) error {
	docDir := filepath.Join(st.Cfg.DistributionPath, "doc")
	if err := docs.DownloadReports(ctx, st.Cfg.ReportURLs, docDir); err != nil {
		return newWarning("reports", err)
	}
	return nil
}

func stepDocNotes(_ context.Context, st *State) error {
	docDir := filepath.Join(st.Cfg.DistributionPath, "doc")
	_, err := docs.RenderNotes(st.Cfg.Modflow6Path, docDir)
	return err
}

func stepArchive(_ context.Context, st *State) error {
	zipName := st.Cfg.DistributionPath + ".zip"
	if err := archive.ZipDir(st.Cfg.DistributionPath, zipName); err != nil {
		return err
	}
	st.Report.ArchivePath = zipName
	return nil
}
