// Package archive produces the single compressed archive that is the
// pipeline's terminal output.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/mf6dist/internal/logfields"
)

// ZipDir writes every file under dir into a deflate-compressed archive at
// zipName, skipping OS metadata files. Entry names are rooted at the
// distribution folder itself so the archive unpacks into one directory.
// Directory entries are included so the fixed empty scaffold folders survive
// the round trip.
func ZipDir(dir, zipName string) error {
	slog.Info("Zipping directory", logfields.Dir(dir), logfields.Dest(zipName))

	out, err := os.Create(zipName)
	if err != nil {
		return fmt.Errorf("create archive %s: %w", zipName, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	root := filepath.Base(filepath.Clean(dir))

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		name := filepath.ToSlash(filepath.Join(root, rel))
		if d.IsDir() {
			_, err := zw.Create(name + "/")
			return err
		}
		if !d.Type().IsRegular() || strings.Contains(d.Name(), ".DS_Store") {
			return nil
		}
		slog.Debug("Adding to zip", logfields.Path(name))
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return err
		}
		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
		_, err = io.Copy(w, in)
		return err
	})
	if err != nil {
		_ = zw.Close()
		return fmt.Errorf("archive %s: %w", dir, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	// Terminal success check for the whole pipeline.
	if _, err := os.Stat(zipName); err != nil {
		return fmt.Errorf("could not find zipfile %s: %w", zipName, err)
	}
	return nil
}
