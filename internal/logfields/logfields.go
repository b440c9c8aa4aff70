package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeySource     = "source"
	KeyOutput     = "output"
	KeyOutputRoot = "output_root"
	KeyFile       = "file"
	KeySlug       = "slug"
	KeyTitle      = "title"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyEvent      = "event"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Source(p string) slog.Attr       { return slog.String(KeySource, p) }
func Output(p string) slog.Attr       { return slog.String(KeyOutput, p) }
func OutputRoot(p string) slog.Attr   { return slog.String(KeyOutputRoot, p) }
func File(name string) slog.Attr      { return slog.String(KeyFile, name) }
func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func Title(s string) slog.Attr        { return slog.String(KeyTitle, s) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Event(op string) slog.Attr       { return slog.String(KeyEvent, op) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
