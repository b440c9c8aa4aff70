package frontmatter

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// OfficialURLBase is the canonical location of published diagnostic pages.
	OfficialURLBase = "https://swift.org/documentation/diagnostic-documentation/"
	// RedirectBase is the legacy path the site redirects from.
	RedirectBase = "/documentation/diagnostic-documentation/"
)

// Header is the front matter prepended to every diagnostic documentation page.
type Header struct {
	Layout                    string `yaml:"layout"`
	Title                     string `yaml:"title"`
	OfficialURL               string `yaml:"official_url"`
	RedirectFrom              string `yaml:"redirect_from"`
	IsDiagnosticDocumentation bool   `yaml:"is_diagnostic_documentation"`
}

// NewHeader builds the header for the page identified by slug.
func NewHeader(title, slug string) Header {
	return Header{
		Layout:                    "page",
		Title:                     title,
		OfficialURL:               OfficialURLBase + slug + "/",
		RedirectFrom:              RedirectBase + slug + ".html",
		IsDiagnosticDocumentation: true,
	}
}

// Render writes the header in its fixed textual shape, delimiters included.
//
// The title is placed between double quotes as-is. A title containing `"` or
// `\` therefore yields front matter that does not read back the same title;
// Decode exposes that.
func (h Header) Render() string {
	var b strings.Builder
	b.WriteString(delimiter)
	b.WriteString("layout: " + h.Layout + "\n")
	b.WriteString(`title: "` + h.Title + "\"\n")
	b.WriteString("official_url: " + h.OfficialURL + "\n")
	b.WriteString("redirect_from: " + h.RedirectFrom + "\n")
	if h.IsDiagnosticDocumentation {
		b.WriteString("is_diagnostic_documentation: true\n")
	} else {
		b.WriteString("is_diagnostic_documentation: false\n")
	}
	b.WriteString(delimiter)
	return b.String()
}

// Decode parses raw frontmatter (without delimiters) into a Header.
func Decode(raw []byte) (Header, error) {
	var h Header
	if err := yaml.Unmarshal(raw, &h); err != nil {
		return Header{}, err
	}
	return h, nil
}

// Keys lists the fields every rendered header carries.
var Keys = []string{"layout", "title", "official_url", "redirect_from", "is_diagnostic_documentation"}

// CheckKeys compares parsed frontmatter fields against Keys. Both results are sorted.
func CheckKeys(fields map[string]any) (missing, unexpected []string) {
	known := make(map[string]bool, len(Keys))
	for _, k := range Keys {
		known[k] = true
		if _, ok := fields[k]; !ok {
			missing = append(missing, k)
		}
	}
	for k := range fields {
		if !known[k] {
			unexpected = append(unexpected, k)
		}
	}
	sort.Strings(missing)
	sort.Strings(unexpected)
	return missing, unexpected
}
