package examples

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/mf6dist/internal/fsutil"
	"git.home.luguber.info/inful/mf6dist/internal/logfields"
)

// ScriptEmitter writes the per-folder and aggregate run scripts for one
// platform. Exactly one emitter is selected per build; there are no
// platform-guarded no-op bodies.
type ScriptEmitter interface {
	// BinaryName is the platform name of the simulation binary.
	BinaryName() string
	// EmitRun writes a run script into dir that invokes the binary at the
	// given path relative to dir.
	EmitRun(dir, relBinary string) error
	// EmitRunAll writes the aggregate script at root that visits every folder
	// in order and invokes the binary from each.
	EmitRunAll(root string, folders []string, binPath string) error
}

// EmitterFor returns the script emitter for the given GOOS value.
func EmitterFor(goos string) ScriptEmitter {
	if goos == "windows" {
		return batchEmitter{}
	}
	return shellEmitter{}
}

// WriteRunScripts scans the packaged examples tree for simulation folders and
// emits one run script per folder plus an aggregate script at the examples
// root, all through the given emitter.
func WriteRunScripts(distPath string, emitter ScriptEmitter) error {
	slog.Info("Building example run scripts")

	examplesDir := filepath.Join(distPath, "examples")
	binPath := filepath.Join(distPath, "bin", emitter.BinaryName())

	folders, err := fsutil.FindMarkedDirs(examplesDir, SimulationMarker)
	if err != nil {
		return fmt.Errorf("scan for simulation folders: %w", err)
	}

	for _, folder := range folders {
		relBinary, err := filepath.Rel(folder, binPath)
		if err != nil {
			return err
		}
		slog.Info("Adding run script", logfields.Dir(folder))
		if err := emitter.EmitRun(folder, relBinary); err != nil {
			return err
		}
	}

	return emitter.EmitRunAll(examplesDir, folders, binPath)
}

// shellEmitter writes executable bash scripts for unix platforms.
type shellEmitter struct{}

func (shellEmitter) BinaryName() string { return "mf6" }

func (shellEmitter) EmitRun(dir, relBinary string) error {
	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	b.WriteString(relBinary + "\n")
	b.WriteString("echo .\n")
	return writeExecutable(filepath.Join(dir, "run.sh"), b.String())
}

func (shellEmitter) EmitRunAll(root string, folders []string, binPath string) error {
	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	for _, folder := range folders {
		down, err := filepath.Rel(root, folder)
		if err != nil {
			return err
		}
		relBinary, err := filepath.Rel(folder, binPath)
		if err != nil {
			return err
		}
		up, err := filepath.Rel(folder, root)
		if err != nil {
			return err
		}
		b.WriteString("cd " + down + "\n")
		b.WriteString(relBinary + "\n")
		b.WriteString("cd " + up + "\n")
		b.WriteString("\n")
	}
	return writeExecutable(filepath.Join(root, "runall.sh"), b.String())
}

// batchEmitter writes plain batch files for windows.
type batchEmitter struct{}

func (batchEmitter) BinaryName() string { return "mf6.exe" }

func (batchEmitter) EmitRun(dir, relBinary string) error {
	var b strings.Builder
	b.WriteString("@echo off\r\n")
	b.WriteString(relBinary + "\r\n")
	b.WriteString("echo.\r\n")
	b.WriteString("echo Run complete.  Press any key to continue\r\n")
	b.WriteString("pause>nul\r\n")
	return os.WriteFile(filepath.Join(dir, "run.bat"), []byte(b.String()), 0o644)
}

func (batchEmitter) EmitRunAll(root string, folders []string, binPath string) error {
	var b strings.Builder
	for _, folder := range folders {
		down, err := filepath.Rel(root, folder)
		if err != nil {
			return err
		}
		relBinary, err := filepath.Rel(folder, binPath)
		if err != nil {
			return err
		}
		up, err := filepath.Rel(folder, root)
		if err != nil {
			return err
		}
		b.WriteString("cd " + down + "\r\n")
		b.WriteString(relBinary + "\r\n")
		b.WriteString("cd " + up + "\r\n")
		b.WriteString("\r\n")
	}
	b.WriteString("pause\r\n")
	return os.WriteFile(filepath.Join(root, "runall.bat"), []byte(b.String()), 0o644)
}

func writeExecutable(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.Chmod(path, info.Mode()|0o111)
}
