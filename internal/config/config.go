// Package config resolves the tunables of a distribution build from four
// layers: built-in defaults, an optional YAML file, CLI flags, and
// environment variables. Environment wins, then flags, then the file, then
// the defaults. The resolved Config is immutable for the rest of the run.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Built-in defaults match the conventional checkout layout, with the upstream
// repositories sitting next to this tool's working directory.
const (
	DefaultDistributionPath = "./distribution/mf6dev"
	DefaultModflow6Path     = "../modflow6"
	DefaultExamplesPath     = "../modflow6-examples"
	DefaultFortranCompiler  = "gfortran"
)

// Environment variable names. FC is the conventional Fortran compiler
// selection variable shared with meson and pymake.
const (
	EnvDistributionPath = "MODFLOW6_DISTRIBUTION_PATH"
	EnvModflow6Path     = "MODFLOW6_PATH"
	EnvExamplesPath     = "MODFLOW6_EXAMPLES_PATH"
	EnvFortranCompiler  = "FC"
)

// defaultReportURLs are the published USGS techniques-and-methods reports
// bundled into every distribution's doc folder.
var defaultReportURLs = []string{
	"https://pubs.usgs.gov/tm/06/a57/tm6a57.pdf",
	"https://pubs.usgs.gov/tm/06/a55/tm6a55.pdf",
	"https://pubs.usgs.gov/tm/06/a56/tm6a56.pdf",
	"https://pubs.usgs.gov/tm/06/a61/tm6a61.pdf",
	"https://pubs.usgs.gov/tm/06/a62/tm6a62.pdf",
}

// defaultExcludeScripts lists example scripts that are never staged into the
// distribution (ex-gwf-capture drives an optimization loop, not a model).
var defaultExcludeScripts = []string{"ex-gwf-capture.py"}

// Config is the resolved, read-only configuration of one build run.
type Config struct {
	DistributionPath string
	Modflow6Path     string
	ExamplesPath     string
	FortranCompiler  string
	Keep             bool // keep intermediate example outputs after full runs
	Approved         bool // mark the release as approved in the version stamp

	ReportURLs     []string
	ExcludeScripts []string
}

// Flags carries the values collected by the CLI layer. Zero values mean the
// flag was not given.
type Flags struct {
	DistributionPath string
	Modflow6Path     string
	ExamplesPath     string
	FortranCompiler  string
	Keep             bool
	Approved         bool
}

// fileConfig is the YAML schema of the optional config file. Pointers
// distinguish "absent" from explicit zero values for the booleans.
type fileConfig struct {
	DistributionPath string   `yaml:"distribution_path"`
	Modflow6Path     string   `yaml:"modflow6_path"`
	ExamplesPath     string   `yaml:"examples_path"`
	FortranCompiler  string   `yaml:"fortran_compiler"`
	Keep             *bool    `yaml:"keep"`
	Approved         *bool    `yaml:"approved"`
	ReportURLs       []string `yaml:"report_urls"`
	ExcludeScripts   []string `yaml:"exclude_scripts"`
}

// Load resolves the configuration. path names the optional YAML file; a
// missing file is fine. A .env / .env.local file is loaded first without
// overriding variables already present in the process environment.
func Load(path string, flags Flags) (*Config, error) {
	loadEnvFiles()

	cfg := &Config{
		DistributionPath: DefaultDistributionPath,
		Modflow6Path:     DefaultModflow6Path,
		ExamplesPath:     DefaultExamplesPath,
		FortranCompiler:  DefaultFortranCompiler,
		ReportURLs:       defaultReportURLs,
		ExcludeScripts:   defaultExcludeScripts,
	}

	if err := applyFile(cfg, path); err != nil {
		return nil, err
	}
	applyFlags(cfg, flags)
	applyEnv(cfg)

	return cfg, nil
}

func loadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		if _, err := os.Stat(name); err == nil {
			// godotenv never overrides variables that are already set.
			_ = godotenv.Load(name)
		}
	}
}

func applyFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if fc.DistributionPath != "" {
		cfg.DistributionPath = fc.DistributionPath
	}
	if fc.Modflow6Path != "" {
		cfg.Modflow6Path = fc.Modflow6Path
	}
	if fc.ExamplesPath != "" {
		cfg.ExamplesPath = fc.ExamplesPath
	}
	if fc.FortranCompiler != "" {
		cfg.FortranCompiler = fc.FortranCompiler
	}
	if fc.Keep != nil {
		cfg.Keep = *fc.Keep
	}
	if fc.Approved != nil {
		cfg.Approved = *fc.Approved
	}
	if fc.ReportURLs != nil {
		cfg.ReportURLs = fc.ReportURLs
	}
	if fc.ExcludeScripts != nil {
		cfg.ExcludeScripts = fc.ExcludeScripts
	}
	return nil
}

func applyFlags(cfg *Config, flags Flags) {
	if flags.DistributionPath != "" {
		cfg.DistributionPath = flags.DistributionPath
	}
	if flags.Modflow6Path != "" {
		cfg.Modflow6Path = flags.Modflow6Path
	}
	if flags.ExamplesPath != "" {
		cfg.ExamplesPath = flags.ExamplesPath
	}
	if flags.FortranCompiler != "" {
		cfg.FortranCompiler = flags.FortranCompiler
	}
	if flags.Keep {
		cfg.Keep = true
	}
	if flags.Approved {
		cfg.Approved = true
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDistributionPath); v != "" {
		cfg.DistributionPath = v
	}
	if v := os.Getenv(EnvModflow6Path); v != "" {
		cfg.Modflow6Path = v
	}
	if v := os.Getenv(EnvExamplesPath); v != "" {
		cfg.ExamplesPath = v
	}
	if v := os.Getenv(EnvFortranCompiler); v != "" {
		cfg.FortranCompiler = v
	}
}

// CompilerEnv returns the environment entry that hands the resolved compiler
// to child build tools. The compiler selection is threaded per invocation
// rather than mutated into this process's environment.
func (c *Config) CompilerEnv() []string {
	return []string{EnvFortranCompiler + "=" + c.FortranCompiler}
}
