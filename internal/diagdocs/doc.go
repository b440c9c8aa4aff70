// Package diagdocs turns a directory of diagnostic notes into documentation
// pages for the static site.
//
// A note is a Markdown file whose first line is its title. The generated page
// keeps the note's name, replaces the title line with a fixed front matter
// header and carries the rest of the note through unchanged. Every run
// regenerates every page; there is no cache and no incremental mode.
package diagdocs
