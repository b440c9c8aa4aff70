package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstHeading(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		ok    bool
		level int
		text  string
	}{
		{"atx level 1", "# Unreachable code\n\nBody", true, 1, "Unreachable code"},
		{"atx level 3", "### Diagnostic: Foo Bar", true, 3, "Diagnostic: Foo Bar"},
		{"closing hashes", "## Title ##", true, 2, "Title"},
		{"paragraph", "Just some text", false, 0, ""},
		{"missing space", "#Title", false, 0, ""},
		{"empty", "", false, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := FirstHeading([]byte(tt.src))
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.level, h.Level)
			require.Equal(t, tt.text, h.Text)
		})
	}
}
