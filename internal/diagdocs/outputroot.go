package diagdocs

import (
	"path/filepath"

	"git.home.luguber.info/inful/diagdocgen/internal/errors"
)

const (
	// DefaultProject is the name of the repository the pages are published from.
	DefaultProject = "swift-internals"
	// OutputDirName is the directory inside the project that receives the pages.
	OutputDirName = "diagnostic-documentation"
)

// FindOutputRoot walks upward from start (inclusive) to the nearest directory
// named project and returns its OutputDirName subdirectory.
//
// The search is purely lexical; start should be absolute. Nothing is read
// from or written to the filesystem.
func FindOutputRoot(start, project string) (string, error) {
	dir := filepath.Clean(start)
	for filepath.Base(dir) != project {
		parent := filepath.Dir(dir)
		if parent == dir || parent == "" || parent == "." {
			return "", errors.OutputRootNotFound(project, start)
		}
		dir = parent
	}
	return filepath.Join(dir, OutputDirName), nil
}
