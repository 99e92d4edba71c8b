package examples

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// packagedTree builds a distribution with three simulation folders (plus one
// decoy without a marker file) under examples/.
func packagedTree(t *testing.T) string {
	t.Helper()
	distPath := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(distPath, "bin"), 0o755))
	for _, name := range []string{"ex-gwf-twri01", "ex-gwf-bcf2ss/mf6gwf", "ex-gwt-moc3d-p01a"} {
		dir := filepath.Join(distPath, "examples", name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, SimulationMarker), []byte("BEGIN options\nEND options\n"), 0o644))
	}
	decoy := filepath.Join(distPath, "examples", "not-a-simulation")
	require.NoError(t, os.MkdirAll(decoy, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(decoy, "readme.txt"), []byte("no marker"), 0o644))
	return distPath
}

func TestWriteRunScriptsShell(t *testing.T) {
	distPath := packagedTree(t)
	require.NoError(t, WriteRunScripts(distPath, shellEmitter{}))

	examplesDir := filepath.Join(distPath, "examples")
	perFolder := []string{
		filepath.Join(examplesDir, "ex-gwf-twri01", "run.sh"),
		filepath.Join(examplesDir, "ex-gwf-bcf2ss", "mf6gwf", "run.sh"),
		filepath.Join(examplesDir, "ex-gwt-moc3d-p01a", "run.sh"),
	}
	for _, script := range perFolder {
		require.FileExists(t, script)
		if runtime.GOOS != "windows" {
			info, err := os.Stat(script)
			require.NoError(t, err)
			assert.NotZero(t, info.Mode()&0o111, "%s must be executable", script)
		}
	}
	assert.NoFileExists(t, filepath.Join(examplesDir, "not-a-simulation", "run.sh"))

	// The per-folder script reaches the binary by relative path.
	nested, err := os.ReadFile(perFolder[1])
	require.NoError(t, err)
	assert.Contains(t, string(nested), filepath.Join("..", "..", "..", "bin", "mf6"))

	// Aggregate script visits folders in sorted discovery order.
	runall, err := os.ReadFile(filepath.Join(examplesDir, "runall.sh"))
	require.NoError(t, err)
	text := string(runall)
	first := strings.Index(text, "ex-gwf-bcf2ss")
	second := strings.Index(text, "ex-gwf-twri01")
	third := strings.Index(text, "ex-gwt-moc3d-p01a")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, third)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestWriteRunScriptsBatch(t *testing.T) {
	distPath := packagedTree(t)
	require.NoError(t, WriteRunScripts(distPath, batchEmitter{}))

	examplesDir := filepath.Join(distPath, "examples")
	run, err := os.ReadFile(filepath.Join(examplesDir, "ex-gwf-twri01", "run.bat"))
	require.NoError(t, err)
	assert.Contains(t, string(run), "@echo off")
	assert.Contains(t, string(run), "pause>nul")

	runall, err := os.ReadFile(filepath.Join(examplesDir, "runall.bat"))
	require.NoError(t, err)
	assert.Contains(t, string(runall), "mf6.exe")
	assert.True(t, strings.HasSuffix(string(runall), "pause\r\n"))
}

func TestEmitterFor(t *testing.T) {
	assert.Equal(t, "mf6.exe", EmitterFor("windows").BinaryName())
	assert.Equal(t, "mf6", EmitterFor("linux").BinaryName())
	assert.Equal(t, "mf6", EmitterFor("darwin").BinaryName())
}
