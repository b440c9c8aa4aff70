// Package markdown inspects Markdown source with Goldmark. Notes are otherwise
// treated as opaque text; only their first line is ever looked at.
package markdown

import (
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading describes the first block of a document when it is a heading.
type Heading struct {
	Level int
	Text  string
}

// FirstHeading parses src and reports the heading it opens with, if any.
func FirstHeading(src []byte) (Heading, bool) {
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	first := root.FirstChild()
	h, ok := first.(*gmast.Heading)
	if !ok {
		return Heading{}, false
	}
	return Heading{Level: h.Level, Text: plainText(h, src)}, true
}

func plainText(n gmast.Node, src []byte) string {
	var out []byte
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if t, ok := c.(*gmast.Text); ok {
			out = append(out, t.Segment.Value(src)...)
		}
		return gmast.WalkContinue, nil
	})
	return string(out)
}
