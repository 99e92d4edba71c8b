package docs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/mf6dist/internal/logfields"
)

// DownloadReports fetches the published reference reports into the
// distribution's doc folder. The network is not a build input, so individual
// failures are collected and surfaced as one warning.
func DownloadReports(ctx context.Context, urls []string, docDir string) error {
	if len(urls) == 0 {
		return nil
	}
	slog.Info("Downloading published reports", slog.Int("count", len(urls)))
	var failed []string
	for _, url := range urls {
		if err := downloadFile(ctx, url, filepath.Join(docDir, path.Base(url))); err != nil {
			slog.Warn("Report download failed", slog.String("url", url), logfields.Error(err))
			failed = append(failed, url)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed to download %d report(s): %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}

func downloadFile(ctx context.Context, url, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return err
	}
	return out.Close()
}
