package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("", Flags{})
	require.NoError(t, err)
	assert.Equal(t, DefaultDistributionPath, cfg.DistributionPath)
	assert.Equal(t, DefaultModflow6Path, cfg.Modflow6Path)
	assert.Equal(t, DefaultExamplesPath, cfg.ExamplesPath)
	assert.Equal(t, DefaultFortranCompiler, cfg.FortranCompiler)
	assert.False(t, cfg.Keep)
	assert.False(t, cfg.Approved)
	assert.Len(t, cfg.ReportURLs, 5)
	assert.Equal(t, []string{"ex-gwf-capture.py"}, cfg.ExcludeScripts)
}

// Environment overrides CLI flags, which override the config file, which
// overrides the built-in default.
func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "mf6dist.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(
		"distribution_path: ./from-file\nmodflow6_path: ./mf6-from-file\nfortran_compiler: flang\n"), 0o644))

	t.Setenv(EnvDistributionPath, "./from-env")

	cfg, err := Load(cfgFile, Flags{
		DistributionPath: "./from-flag",
		Modflow6Path:     "./mf6-from-flag",
	})
	require.NoError(t, err)

	// All three layers set: env wins.
	assert.Equal(t, "./from-env", cfg.DistributionPath)
	// Flag and file set: flag wins.
	assert.Equal(t, "./mf6-from-flag", cfg.Modflow6Path)
	// Only file set: file wins over default.
	assert.Equal(t, "flang", cfg.FortranCompiler)
	// Nothing set: default survives.
	assert.Equal(t, DefaultExamplesPath, cfg.ExamplesPath)
}

func TestLoadEnvCompilerOverridesFlag(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFortranCompiler, "ifort")
	cfg, err := Load("", Flags{FortranCompiler: "gfortran-12"})
	require.NoError(t, err)
	assert.Equal(t, "ifort", cfg.FortranCompiler)
	assert.Equal(t, []string{"FC=ifort"}, cfg.CompilerEnv())
}

func TestLoadMissingFileIsFine(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), Flags{})
	require.NoError(t, err)
	assert.Equal(t, DefaultDistributionPath, cfg.DistributionPath)
}

func TestLoadMalformedFile(t *testing.T) {
	clearEnv(t)
	cfgFile := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("distribution_path: [unclosed"), 0o644))
	_, err := Load(cfgFile, Flags{})
	assert.Error(t, err)
}

func TestFileBooleansAndLists(t *testing.T) {
	clearEnv(t)
	cfgFile := filepath.Join(t.TempDir(), "mf6dist.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(
		"keep: true\napproved: true\nreport_urls: []\nexclude_scripts:\n  - ex-gwf-skip.py\n"), 0o644))
	cfg, err := Load(cfgFile, Flags{})
	require.NoError(t, err)
	assert.True(t, cfg.Keep)
	assert.True(t, cfg.Approved)
	assert.Empty(t, cfg.ReportURLs)
	assert.Equal(t, []string{"ex-gwf-skip.py"}, cfg.ExcludeScripts)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDistributionPath, EnvModflow6Path, EnvExamplesPath, EnvFortranCompiler} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
