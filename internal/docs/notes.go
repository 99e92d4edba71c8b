package docs

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"git.home.luguber.info/inful/mf6dist/internal/logfields"
)

// noteCandidates are the upstream markdown files considered for an HTML
// rendition in the distribution's doc folder, in preference order.
var noteCandidates = []string{
	filepath.Join("doc", "ReleaseNotes", "ReleaseNotes.md"),
	"README.md",
}

// RenderNotes renders the first available upstream release-notes markdown to
// HTML in the distribution's doc folder. A checkout without any of the
// candidates is fine; the returned path is empty in that case.
func RenderNotes(modflow6Path, docDir string) (string, error) {
	for _, rel := range noteCandidates {
		src := filepath.Join(modflow6Path, rel)
		data, err := os.ReadFile(src)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("read %s: %w", src, err)
		}

		var body bytes.Buffer
		if err := goldmark.New().Convert(data, &body); err != nil {
			return "", fmt.Errorf("render %s: %w", src, err)
		}

		stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		dst := filepath.Join(docDir, stem+".html")
		var page bytes.Buffer
		fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n", stem)
		page.Write(body.Bytes())
		page.WriteString("</body>\n</html>\n")
		if err := os.WriteFile(dst, page.Bytes(), 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", dst, err)
		}
		slog.Info("Rendered release notes", logfields.Source(src), logfields.Dest(dst))
		return dst, nil
	}
	return "", nil
}
