package diagdocs

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"git.home.luguber.info/inful/diagdocgen/internal/frontmatter"
)

// NoteExt is the only file extension treated as a diagnostic note.
const NoteExt = ".md"

// titleCutset is stripped from both ends of a note's first line.
const titleCutset = "# "

// Note is a parsed diagnostic note.
type Note struct {
	Path      string // source path as enumerated
	Name      string // file name, reused for the page
	Slug      string
	TitleLine string // first line, untouched
	Title     string
	Body      string
}

// IsNoteName reports whether a directory entry name qualifies as a note.
func IsNoteName(name string) bool {
	return filepath.Ext(name) == NoteExt
}

// Slug strips a single ".md" extension from a file name.
func Slug(name string) string {
	return strings.TrimSuffix(filepath.Base(name), NoteExt)
}

// TrimTitle removes every leading and trailing '#' and ' ' from line.
func TrimTitle(line string) string {
	return strings.Trim(line, titleCutset)
}

// ParseNote splits content into title line and body.
//
// Lines are split on '\n' only, so a '\r' stays part of its line. The body is
// the remaining lines joined with '\n'; empty lines are preserved.
func ParseNote(path string, content []byte) (Note, error) {
	if !utf8.Valid(content) {
		return Note{}, fmt.Errorf("%s is not valid UTF-8", path)
	}

	lines := strings.Split(string(content), "\n")
	name := filepath.Base(path)
	return Note{
		Path:      path,
		Name:      name,
		Slug:      Slug(name),
		TitleLine: lines[0],
		Title:     TrimTitle(lines[0]),
		Body:      strings.Join(lines[1:], "\n"),
	}, nil
}

// Header returns the front matter the note's page starts with.
func (n Note) Header() frontmatter.Header {
	return frontmatter.NewHeader(n.Title, n.Slug)
}

// Render composes the full page text.
func (n Note) Render() string {
	return n.Header().Render() + n.Body
}
