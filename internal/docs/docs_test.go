package docs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatexGateKillSwitch(t *testing.T) {
	t.Setenv("MF6DIST_SKIP_DOCS", "1")
	assert.False(t, LatexAvailable())
}

func TestWriteTestModelFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "testmodel")
	require.NoError(t, WriteTestModel(dir))

	for _, name := range []string{
		"mfsim.nam", "mymodel.nam", "mymodel.tdis", "mymodel.ims",
		"mymodel.dis", "mymodel.ic", "mymodel.npf", "mymodel.chd", "mymodel.oc",
	} {
		assert.FileExists(t, filepath.Join(dir, name), name)
	}

	dis, err := os.ReadFile(filepath.Join(dir, "mymodel.dis"))
	require.NoError(t, err)
	assert.Contains(t, string(dis), "NROW 10")
	assert.Contains(t, string(dis), "NCOL 10")

	chd, err := os.ReadFile(filepath.Join(dir, "mymodel.chd"))
	require.NoError(t, err)
	assert.Contains(t, string(chd), "MAXBOUND 2")
}

func TestCleanDocArtifactsToleratesAbsence(t *testing.T) {
	upstream := t.TempDir()
	docDir := filepath.Join(upstream, "doc", "mf6io")
	require.NoError(t, os.MkdirAll(docDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docDir, "mf6io.pdf"), []byte("%PDF"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(docDir, "mf6io.tex"), []byte("\\documentclass{}"), 0o644))

	// Most of the clean set does not exist; that must not panic or fail.
	CleanDocArtifacts(upstream, filepath.Join(upstream, "..", "nonexistent-examples"))

	assert.NoFileExists(t, filepath.Join(docDir, "mf6io.pdf"))
	// Sources survive the sweep.
	assert.FileExists(t, filepath.Join(docDir, "mf6io.tex"))
}

func TestDownloadReports(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/tm6a57.pdf" {
			_, _ = w.Write([]byte("%PDF-1.4 report"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	docDir := t.TempDir()
	urls := []string{srv.URL + "/tm6a57.pdf", srv.URL + "/missing.pdf"}

	err := DownloadReports(context.Background(), urls, docDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to download 1 report(s)")
	assert.FileExists(t, filepath.Join(docDir, "tm6a57.pdf"))
	assert.NoFileExists(t, filepath.Join(docDir, "missing.pdf"))
}

func TestDownloadReportsEmptyList(t *testing.T) {
	require.NoError(t, DownloadReports(context.Background(), nil, t.TempDir()))
}

func TestRenderNotesPrefersReleaseNotes(t *testing.T) {
	upstream := t.TempDir()
	rnDir := filepath.Join(upstream, "doc", "ReleaseNotes")
	require.NoError(t, os.MkdirAll(rnDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(rnDir, "ReleaseNotes.md"),
		[]byte("# Release 6.4.0\n\n* new CHD option\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(upstream, "README.md"), []byte("# readme"), 0o644))

	docDir := t.TempDir()
	written, err := RenderNotes(upstream, docDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(docDir, "ReleaseNotes.html"), written)

	html, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1>Release 6.4.0</h1>")
	assert.Contains(t, string(html), "<li>new CHD option</li>")
}

func TestRenderNotesNoCandidates(t *testing.T) {
	written, err := RenderNotes(t.TempDir(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, written)
}
