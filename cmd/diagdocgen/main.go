package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/diagdocgen/internal/diagdocs"
	"git.home.luguber.info/inful/diagdocgen/internal/errors"
	"git.home.luguber.info/inful/diagdocgen/internal/logfields"
	"git.home.luguber.info/inful/diagdocgen/internal/version"
)

const usageMessage = "Must pass the path to the userdocs/diagnostics folder in the main Swift repo."

// CLI definition & global flags.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	OutputRoot string `name:"output-root" help:"Write pages here instead of locating the project directory" type:"path"`
	Project    string `name:"project" help:"Directory name searched for upward from the working directory" default:"${project}"`
	Verify     bool   `name:"verify" help:"Read each page's front matter back and warn when the title does not round-trip" default:"true" negatable:""`
	Strict     bool   `name:"strict" help:"Fail instead of warning when verification does not round-trip"`
	DryRun     bool   `name:"dry-run" help:"Compose pages without writing them"`
	Watch      bool   `name:"watch" help:"Keep running and regenerate when notes change"`

	// Sources is variadic so that the argument count is checked here, not by kong.
	Sources []string `arg:"" optional:"" name:"source-directory" help:"Path to the userdocs/diagnostics folder (put a path starting with - after --)"`
}

// logger builds the stderr logger for the configured verbosity.
func (c *CLI) logger(stderr io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the tool and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	exitCode := -1

	parser, err := kong.New(&cli,
		kong.Name("diagdocgen"),
		kong.Description("Generate diagnostic documentation pages from Swift educational notes."),
		kong.Vars{"version": version.String(), "project": diagdocs.DefaultProject},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	_, parseErr := parser.Parse(args)
	if exitCode >= 0 {
		// --help or --version already printed.
		return exitCode
	}

	logger := cli.logger(stderr)
	adapter := errors.NewCLIErrorAdapter(cli.Verbose, logger)

	if parseErr != nil || len(cli.Sources) != 1 {
		if parseErr != nil {
			logger.Debug("Command line rejected", logfields.Error(parseErr))
		}
		return adapter.Report(stdout, errors.UsageError(usageMessage))
	}

	outputRoot, err := resolveOutputRoot(cli.OutputRoot, cli.Project)
	if err != nil {
		return adapter.Report(stdout, err)
	}

	gen := diagdocs.NewGenerator(diagdocs.Options{
		SourceDir:  cli.Sources[0],
		OutputRoot: outputRoot,
		Verify:     cli.Verify,
		Strict:     cli.Strict,
		DryRun:     cli.DryRun,
	}, stdout, logger)

	if _, err := gen.Run(); err != nil {
		return adapter.Report(stderr, err)
	}

	if cli.Watch {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		if err := gen.Watch(ctx, diagdocs.DefaultDebounce, nil); err != nil {
			return adapter.Report(stderr, errors.Wrap(err, errors.CategoryRuntime, errors.SeverityFatal, "watch failed"))
		}
		logger.Info("Watch stopped")
	}

	return 0
}

// resolveOutputRoot prefers an explicit directory and otherwise searches
// upward from the working directory for the project.
func resolveOutputRoot(explicit, project string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.InternalError("determine working directory", err)
	}
	return diagdocs.FindOutputRoot(cwd, project)
}
