package errors

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"usage", UsageError("bad"), 1},
		{"output root", OutputRootNotFound("swift-internals", "/"), 1},
		{"verification", VerificationFailed("a.md", "a", "b"), 2},
		{"read", SourceReadError("/src", fmt.Errorf("x")), 11},
		{"write wrapped", fmt.Errorf("run: %w", DestinationWriteError("/out", fmt.Errorf("x"))), 11},
		{"internal", InternalError("oops", nil), 10},
		{"plain", fmt.Errorf("plain"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	verbose := NewCLIErrorAdapter(true, nil)

	rootErr := OutputRootNotFound("swift-internals", "/tmp")
	if got := quiet.FormatError(rootErr); got != "tool must be run from inside the swift-internals repository" {
		t.Errorf("quiet FormatError = %q", got)
	}
	if got := verbose.FormatError(rootErr); got != rootErr.Message {
		t.Errorf("verbose FormatError = %q, want plain message", got)
	}
	if got := verbose.FormatError(UsageError("Must pass a path.")); got != "Must pass a path." {
		t.Errorf("verbose usage FormatError = %q, want plain message", got)
	}
	if got := verbose.FormatError(SourceReadError("/src", fmt.Errorf("x"))); !strings.HasPrefix(got, "filesystem (fatal): ") {
		t.Errorf("verbose FormatError = %q", got)
	}

	readErr := SourceReadError("/src", fmt.Errorf("no such file"))
	if got := quiet.FormatError(readErr); got != "filesystem: failed to read diagnostic notes: no such file" {
		t.Errorf("quiet FormatError = %q", got)
	}
	if got := quiet.FormatError(fmt.Errorf("plain")); got != "Error: plain" {
		t.Errorf("plain FormatError = %q", got)
	}
}

func TestCLIErrorAdapter_Report(t *testing.T) {
	var logs, out bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))

	code := adapter.Report(&out, DestinationWriteError("/out/a.md", fmt.Errorf("read-only file system")))
	if code != 11 {
		t.Errorf("Report() = %d, want 11", code)
	}
	if !strings.Contains(out.String(), "failed to write documentation page") {
		t.Errorf("output = %q", out.String())
	}
	if !strings.Contains(logs.String(), "path=/out/a.md") {
		t.Errorf("log = %q", logs.String())
	}

	logs.Reset()
	out.Reset()
	if code := adapter.Report(&out, UsageError("bad")); code != 1 {
		t.Errorf("Report(usage) = %d, want 1", code)
	}
	if logs.Len() != 0 {
		t.Errorf("usage errors should not be logged, got %q", logs.String())
	}
	if code := adapter.Report(&out, nil); code != 0 {
		t.Errorf("Report(nil) = %d, want 0", code)
	}
}
