package diagdocs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/diagdocgen/internal/errors"
)

func TestFindOutputRoot(t *testing.T) {
	root := filepath.FromSlash("/work/swift-internals")
	want := filepath.Join(root, OutputDirName)

	tests := []struct {
		name  string
		start string
	}{
		{"at sentinel", root},
		{"one below", filepath.Join(root, "_utilities")},
		{"deep below", filepath.Join(root, "a", "b", "c")},
		{"trailing slash", root + string(filepath.Separator)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindOutputRoot(tt.start, DefaultProject)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestFindOutputRoot_NearestAncestorWins(t *testing.T) {
	start := filepath.FromSlash("/x/swift-internals/vendor/swift-internals/docs")

	got, err := FindOutputRoot(start, DefaultProject)
	require.NoError(t, err)
	require.Equal(t, filepath.FromSlash("/x/swift-internals/vendor/swift-internals/diagnostic-documentation"), got)
}

func TestFindOutputRoot_NotFound(t *testing.T) {
	for _, start := range []string{"/home/dev/elsewhere", "/", "relative/path", ""} {
		t.Run(start, func(t *testing.T) {
			_, err := FindOutputRoot(filepath.FromSlash(start), DefaultProject)
			require.Error(t, err)
			require.True(t, errors.IsCategory(err, errors.CategoryConfig))
		})
	}
}

func TestFindOutputRoot_CustomProject(t *testing.T) {
	got, err := FindOutputRoot(filepath.FromSlash("/src/my-site/tools"), "my-site")
	require.NoError(t, err)
	require.Equal(t, filepath.FromSlash("/src/my-site/diagnostic-documentation"), got)
}
