package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyStep       = "step"
	KeyCommand    = "command"
	KeyDir        = "dir"
	KeyPath       = "path"
	KeySource     = "source"
	KeyDest       = "dest"
	KeyStatus     = "status"
	KeyDurationMS = "duration_ms"
	KeyRunID      = "run_id"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Step(name string) slog.Attr      { return slog.String(KeyStep, name) }
func Command(c string) slog.Attr      { return slog.String(KeyCommand, c) }
func Dir(d string) slog.Attr          { return slog.String(KeyDir, d) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Source(s string) slog.Attr       { return slog.String(KeySource, s) }
func Dest(d string) slog.Attr         { return slog.String(KeyDest, d) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
