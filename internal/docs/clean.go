package docs

import (
	"log/slog"

	"git.home.luguber.info/inful/mf6dist/internal/fsutil"
)

// latexArtifactExts are the generated-output extensions swept before a
// rebuild.
var latexArtifactExts = []string{"pdf", "aux", "bbl", "idx", "lof", "out", "toc"}

// CleanDocArtifacts deletes prior typesetting output for every document set.
// Absence of any file (or of a whole document directory) is tolerated.
func CleanDocArtifacts(modflow6Path, examplesPath string) {
	slog.Info("Cleaning latex files")
	for _, set := range cleanSets(modflow6Path, examplesPath) {
		names := make([]string, 0, len(latexArtifactExts))
		for _, ext := range latexArtifactExts {
			names = append(names, set.Target+"."+ext)
		}
		_ = fsutil.DeleteFiles(set.Dir, names, true)
	}
}
