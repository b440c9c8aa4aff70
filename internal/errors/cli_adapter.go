package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if dde, ok := As(err); ok {
		return a.exitCodeFromDiagDoc(dde)
	}

	return 1
}

// exitCodeFromDiagDoc maps DiagDocError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromDiagDoc(err *DiagDocError) int {
	switch err.Category {
	case CategoryUsage, CategoryConfig:
		return 1
	case CategoryValidation:
		return 2
	case CategoryFileSystem:
		return 11 // Build error
	case CategoryRuntime:
		return 12
	case CategoryInternal:
		return 10
	default:
		return 1
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if dde, ok := As(err); ok {
		return a.formatDiagDoc(dde)
	}

	return fmt.Sprintf("Error: %v", err)
}

func (a *CLIErrorAdapter) formatDiagDoc(err *DiagDocError) string {
	// Usage and output-root messages go to stdout and keep their fixed wording.
	if err.Category == CategoryUsage || err.Category == CategoryConfig {
		return err.Message
	}
	if a.verbose {
		return err.Error()
	}

	switch err.Category {
	case CategoryValidation:
		return err.Message
	default:
		if err.Cause != nil {
			return fmt.Sprintf("%s: %s: %v", err.Category, err.Message, err.Cause)
		}
		return fmt.Sprintf("%s: %s", err.Category, err.Message)
	}
}

// Report logs err when appropriate, writes the formatted message to w and
// returns the exit code the process should terminate with.
func (a *CLIErrorAdapter) Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	if a.shouldLog(err) {
		a.logError(err)
	}

	_, _ = fmt.Fprintln(w, a.FormatError(err))
	return a.ExitCodeFor(err)
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	if dde, ok := As(err); ok {
		return dde.Category == CategoryInternal ||
			dde.Category == CategoryRuntime ||
			dde.Category == CategoryFileSystem
	}

	return true
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	if dde, ok := As(err); ok {
		attrs := []slog.Attr{
			slog.String("category", string(dde.Category)),
		}
		for k, v := range dde.Context {
			attrs = append(attrs, slog.Any(k, v))
		}
		if dde.Cause != nil {
			attrs = append(attrs, slog.String("error", dde.Cause.Error()))
		}

		a.logger.LogAttrs(context.Background(), a.levelFor(dde.Severity), dde.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}

func (a *CLIErrorAdapter) levelFor(severity ErrorSeverity) slog.Level {
	if severity == SeverityWarning {
		return slog.LevelWarn
	}
	return slog.LevelError
}
