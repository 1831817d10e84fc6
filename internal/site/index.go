package site

import (
	"bytes"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
)

// writeIndex renders the site's landing page: an optional README intro
// followed by the alphabetical unit table.
func (b *Builder) writeIndex(files []parsedFile) error {
	sorted := make([]parsedFile, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Unit.Name) < strings.ToLower(sorted[j].Unit.Name)
	})

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString(`<meta charset="utf-8">` + "\n")
	sb.WriteString("<title>" + html.EscapeString(b.Config.Site.Title) + "</title>\n")
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString("<h1>" + html.EscapeString(b.Config.Site.Title) + "</h1>\n")

	if intro := b.readmeHTML(); intro != "" {
		sb.WriteString(`<div class="intro">` + "\n" + intro + "</div>\n")
	}

	sb.WriteString("<table>\n")
	for _, f := range sorted {
		sb.WriteString(`<tr><td><a href="` + html.EscapeString(pageFile(f.Unit.Name)) + `">` +
			html.EscapeString(f.Unit.Name) + "</a></td><td>" +
			html.EscapeString(string(f.Unit.Kind)) + "</td><td>" +
			html.EscapeString(f.Unit.Synopsis) + "</td></tr>\n")
	}
	sb.WriteString("</table>\n</body>\n</html>\n")

	return os.WriteFile(filepath.Join(b.Config.Site.OutputDir, "index.html"), []byte(sb.String()), 0o644)
}

// readmeHTML renders the first README.md found among the project roots.
// The README is ordinary Markdown, so goldmark handles it.
func (b *Builder) readmeHTML() string {
	for _, root := range b.Config.Project.Roots {
		data, err := os.ReadFile(filepath.Join(root, "README.md"))
		if err != nil {
			continue
		}
		var buf bytes.Buffer
		if err := goldmark.Convert(data, &buf); err != nil {
			return ""
		}
		return buf.String()
	}
	return ""
}
