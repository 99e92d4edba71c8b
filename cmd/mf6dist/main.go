package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/mf6dist/internal/config"
	"git.home.luguber.info/inful/mf6dist/internal/pipeline"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"mf6dist.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Dp         string `name:"dp" help:"Path of the newly created distribution folder"`
	Mf6p       string `name:"mf6p" help:"Path to the modflow6 checkout"`
	Mf6ep      string `name:"mf6ep" help:"Path to the modflow6-examples checkout"`
	Fc         string `name:"fc" help:"Fortran compiler handed to meson and pymake"`
	Keep       bool   `short:"k" help:"Keep the intermediate example outputs after full runs"`
	IsApproved bool   `name:"isApproved" help:"Stamp the release as an approved USGS release"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("mf6dist"),
		kong.Description("Assemble a MODFLOW 6 release distribution folder and archive it."))

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(CLI.Config, config.Flags{
		DistributionPath: CLI.Dp,
		Modflow6Path:     CLI.Mf6p,
		ExamplesPath:     CLI.Mf6ep,
		FortranCompiler:  CLI.Fc,
		Keep:             CLI.Keep,
		Approved:         CLI.IsApproved,
	})
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rep, err := pipeline.Run(ctx, cfg)
	if rep != nil {
		for _, w := range rep.Warnings {
			slog.Warn("Build warning", "warning", w)
		}
		slog.Info("Build finished",
			"run_id", rep.RunID,
			"outcome", string(rep.Outcome),
			"duration", rep.End.Sub(rep.Start).Round(time.Millisecond).String())
	}
	if err != nil {
		slog.Error("Distribution build failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Done creating distribution: %s\n", rep.ArchivePath)
}
