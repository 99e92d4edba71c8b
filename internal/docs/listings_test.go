package docs

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteListingEnvelope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mf6output.tex")
	require.NoError(t, writeListing(path, "MODFLOW 6\r\n  trailing spaces   \r\nNormal termination"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")

	assert.Equal(t, "{\\small", lines[0])
	assert.Equal(t, "\\begin{lstlisting}[style=modeloutput]", lines[1])
	assert.Equal(t, "MODFLOW 6", lines[2])
	assert.Equal(t, "  trailing spaces", lines[3])
	assert.Equal(t, "Normal termination", lines[4])
	assert.Contains(t, string(data), "\\end{lstlisting}\n}\n")
}

func TestCaptureListingsWritesThreeFragments(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub-executable test is POSIX-only")
	}
	binDir := t.TempDir()
	bin := filepath.Join(binDir, "mf6")
	// The stub fails without a namefile present, mirroring the real binary.
	script := `#!/bin/sh
if [ "$1" = "-h" ]; then echo "usage: mf6 [options]"; exit 0; fi
if [ -f mfsim.nam ]; then echo "Normal termination of simulation."; exit 0; fi
echo "mf6: mfsim.nam is not present" 1>&2
exit 1
`
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))

	modelDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(modelDir, "mfsim.nam"), []byte("BEGIN options\nEND options\n"), 0o644))
	texDir := t.TempDir()
	scratch := t.TempDir()

	require.NoError(t, CaptureListings(context.Background(), bin, modelDir, texDir, scratch))

	output, err := os.ReadFile(filepath.Join(texDir, "mf6output.tex"))
	require.NoError(t, err)
	assert.Contains(t, string(output), "Normal termination")

	noname, err := os.ReadFile(filepath.Join(texDir, "mf6noname.tex"))
	require.NoError(t, err)
	assert.Contains(t, string(noname), "not present")

	switches, err := os.ReadFile(filepath.Join(texDir, "mf6switches.tex"))
	require.NoError(t, err)
	assert.Contains(t, string(switches), "usage: mf6")
}

func TestCaptureListingsMissingBinary(t *testing.T) {
	err := CaptureListings(context.Background(),
		filepath.Join(t.TempDir(), "mf6"), t.TempDir(), t.TempDir(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
