package docs

import (
	"context"
	"path/filepath"

	"git.home.luguber.info/inful/mf6dist/internal/dist"
)

// RebuildInput carries the paths one documentation rebuild operates on.
type RebuildInput struct {
	Modflow6Path string
	ExamplesPath string
	DistPath     string
	ScratchDir   string
}

// Rebuild regenerates all distribution documentation: sweep stale artifacts,
// regenerate the definition-derived fragments, produce the console listings
// from a synthetic test model, refresh the folder-structure fragment, and run
// the typesetting builds. Callers check LatexAvailable first; every failure
// in here is fatal to the pipeline.
func Rebuild(ctx context.Context, in RebuildInput) error {
	binPath := filepath.Join(in.DistPath, "bin", dist.BinaryName())
	texDir := filepath.Join(in.Modflow6Path, "doc", "mf6io")

	CleanDocArtifacts(in.Modflow6Path, in.ExamplesPath)

	if err := RebuildTexFromDfn(ctx, in.Modflow6Path); err != nil {
		return err
	}

	modelDir := filepath.Join(in.ScratchDir, "testmodel")
	if err := WriteTestModel(modelDir); err != nil {
		return err
	}
	if err := CaptureListings(ctx, binPath, modelDir, texDir, in.ScratchDir); err != nil {
		return err
	}

	if err := UpdateReleaseInfo(ctx, in.Modflow6Path, in.DistPath); err != nil {
		return err
	}

	return BuildLatexDocs(ctx, BuildSets(in.Modflow6Path, in.ExamplesPath), filepath.Join(in.DistPath, "doc"))
}
