package diagdocs

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/diagdocgen/internal/errors"
	"git.home.luguber.info/inful/diagdocgen/internal/frontmatter"
	"git.home.luguber.info/inful/diagdocgen/internal/logfields"
	"git.home.luguber.info/inful/diagdocgen/internal/markdown"
)

// pageMode is the permission used when a page is created.
const pageMode = 0o644

// Options configures a Generator.
type Options struct {
	SourceDir  string
	OutputRoot string

	// Verify reads each composed page's front matter back and compares the title.
	Verify bool
	// Strict turns verification mismatches into errors.
	Strict bool
	// DryRun composes pages without writing them.
	DryRun bool
}

// Result summarises one generation run.
type Result struct {
	Pages    []string // file names, in processing order
	Skipped  int
	Warnings int
	Duration time.Duration
}

// Generator writes one page per note found directly in Options.SourceDir.
type Generator struct {
	opts   Options
	out    io.Writer
	logger *slog.Logger
}

// NewGenerator creates a Generator. Progress lines go to out; diagnostics to logger.
func NewGenerator(opts Options, out io.Writer, logger *slog.Logger) *Generator {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{opts: opts, out: out, logger: logger}
}

// Run regenerates every page. The first failure aborts the run; pages already
// written stay on disk.
func (g *Generator) Run() (Result, error) {
	start := time.Now()
	var res Result

	_, _ = fmt.Fprintln(g.out, g.opts.OutputRoot)

	entries, err := os.ReadDir(g.opts.SourceDir)
	if err != nil {
		return res, errors.SourceReadError(g.opts.SourceDir, err)
	}

	for _, entry := range entries {
		if !IsNoteName(entry.Name()) || isDir(g.opts.SourceDir, entry) {
			res.Skipped++
			g.logger.Debug("Skipping entry", logfields.File(entry.Name()))
			continue
		}

		warned, err := g.generate(filepath.Join(g.opts.SourceDir, entry.Name()))
		if err != nil {
			return res, err
		}
		if warned {
			res.Warnings++
		}
		res.Pages = append(res.Pages, entry.Name())
	}

	res.Duration = time.Since(start)
	g.logger.LogAttrs(context.Background(), slog.LevelInfo, "Documentation generated",
		logfields.OutputRoot(g.opts.OutputRoot),
		logfields.Count(len(res.Pages)),
		slog.Int("skipped", res.Skipped),
		slog.Int("warnings", res.Warnings),
		logfields.DurationMS(float64(res.Duration.Microseconds())/1000))
	return res, nil
}

// generate turns a single note into a page and reports whether verification warned.
func (g *Generator) generate(src string) (bool, error) {
	_, _ = fmt.Fprintf(g.out, "Generating documentation from %s\n", src)

	content, err := os.ReadFile(src)
	if err != nil {
		return false, errors.SourceReadError(src, err)
	}
	note, err := ParseNote(src, content)
	if err != nil {
		return false, errors.SourceReadError(src, err)
	}

	if h, ok := markdown.FirstHeading([]byte(note.TitleLine)); ok {
		g.logger.Debug("Note heading",
			logfields.Source(src), slog.Int("level", h.Level), slog.String("heading", h.Text))
	} else {
		g.logger.Debug("Note does not start with a heading",
			logfields.Source(src), logfields.Title(note.Title))
	}

	page := note.Render()
	dst := filepath.Join(g.opts.OutputRoot, note.Name)

	warned := false
	if g.opts.Verify {
		if err := VerifyPage(dst, note.Title, []byte(page)); err != nil {
			if g.opts.Strict {
				return false, err
			}
			warned = true
			g.logger.Warn("Generated front matter does not round-trip",
				logfields.Output(dst), logfields.Title(note.Title), logfields.Error(err))
		}
	}

	if g.opts.DryRun {
		g.logger.Debug("Dry run, page not written", logfields.Output(dst), logfields.Slug(note.Slug))
		return warned, nil
	}

	if err := os.WriteFile(dst, []byte(page), pageMode); err != nil {
		return warned, errors.DestinationWriteError(dst, err)
	}
	g.logger.Debug("Page written", logfields.Output(dst), logfields.Slug(note.Slug))
	return warned, nil
}

// isDir reports whether entry is a directory, following a symlink to its target.
// A dangling link is not a directory; reading it fails the run.
func isDir(dir string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}

// VerifyPage reads the front matter of page back and checks it carries exactly
// the header keys and still carries title.
func VerifyPage(path, title string, page []byte) error {
	raw, _, had, err := frontmatter.Split(page)
	if err != nil {
		return errors.InternalError("split generated page", err).WithContext("path", path)
	}
	if !had {
		return errors.InternalError("generated page has no front matter", nil).WithContext("path", path)
	}

	fields, err := frontmatter.ParseYAML(raw)
	if err != nil {
		return errors.VerificationFailed(path, title, "").WithContext("yaml", err.Error())
	}
	if missing, unexpected := frontmatter.CheckKeys(fields); len(missing) > 0 || len(unexpected) > 0 {
		return errors.UnexpectedHeaderKeys(path, missing, unexpected)
	}

	h, err := frontmatter.Decode(raw)
	if err != nil {
		return errors.VerificationFailed(path, title, "").WithContext("yaml", err.Error())
	}
	if h.Title != title {
		return errors.VerificationFailed(path, title, h.Title)
	}
	return nil
}
