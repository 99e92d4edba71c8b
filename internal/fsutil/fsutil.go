// Package fsutil holds the small filesystem helpers shared by the staging
// steps: recursive tree copies, best-effort deletions, and marker-file scans.
package fsutil

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"git.home.luguber.info/inful/mf6dist/internal/logfields"
)

// CopyFile copies a single regular file, preserving its permission bits.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", dst, err)
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}

// CopyFileInto copies src into the directory dst, keeping the base name.
func CopyFileInto(src, dstDir string) error {
	return CopyFile(src, filepath.Join(dstDir, filepath.Base(src)))
}

// CopyTree recursively copies the directory tree rooted at src into dst,
// merging into any files already present (dirs_exist_ok semantics).
func CopyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return CopyFile(path, target)
	})
}

// DeleteFiles removes each named file under dir. With allowFailure set,
// missing or locked files are logged and skipped; otherwise the first
// failure is returned.
func DeleteFiles(dir string, names []string, allowFailure bool) error {
	for _, name := range names {
		fpth := filepath.Join(dir, name)
		slog.Debug("Removing file", logfields.Path(fpth))
		if err := os.Remove(fpth); err != nil {
			if !allowFailure {
				return fmt.Errorf("remove %s: %w", fpth, err)
			}
			slog.Debug("Could not remove file", logfields.Path(fpth), logfields.Error(err))
		}
	}
	return nil
}

// FindMarkedDirs returns every directory under root containing a file with
// the given marker name, sorted lexicographically.
func FindMarkedDirs(root, marker string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if _, err := os.Stat(filepath.Join(path, marker)); err == nil {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(dirs)
	return dirs, nil
}

// FindFilesNamed returns the relative path of every file under root whose
// base name equals name.
func FindFilesNamed(root, name string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != name {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
