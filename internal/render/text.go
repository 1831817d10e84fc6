package render

import (
	"strings"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
)

// Text renders a unit as plain text with markup stripped, suitable for
// terminal help output. It consumes the same IR as Page.
func Text(u *model.DeclarationUnit) string {
	var b strings.Builder
	b.WriteString(u.Name + "\n")
	if u.Synopsis != "" {
		b.WriteString("  " + stripInline(u.Synopsis) + "\n")
	}
	b.WriteString("\n")

	if len(u.SyntaxEntries) > 0 {
		b.WriteString("Syntax\n")
		for _, e := range u.SyntaxEntries {
			b.WriteString("  " + e.Form + "\n")
		}
		b.WriteString("\n")
	}
	for _, e := range u.SyntaxEntries {
		if e.Description != "" {
			b.WriteString("  " + e.Form + "\n    " + stripInline(e.Description) + "\n")
		}
	}

	if u.Description != "" {
		b.WriteString("Description\n")
		writeIndented(&b, stripMarkup(u.Description))
		b.WriteString("\n")
	}

	textMembers(&b, "Input Arguments", u.Inputs)
	textMembers(&b, "Name-Value Arguments", u.NamedInputs)
	textMembers(&b, "Output Arguments", u.Outputs)
	textMembers(&b, "Properties", u.Fields)

	for _, s := range u.Sections {
		switch s.Heading {
		case model.HeadingSyntax, model.HeadingInputArguments,
			model.HeadingOutputArgs, model.HeadingProperties:
			continue
		}
		b.WriteString(s.Heading + "\n")
		writeIndented(&b, stripMarkup(s.Content))
		b.WriteString("\n")
	}

	if len(u.SeeAlso) > 0 {
		b.WriteString("See also: " + strings.Join(u.SeeAlso, ", ") + "\n")
	}
	return b.String()
}

func textMembers(b *strings.Builder, title string, members []model.Member) {
	if len(members) == 0 {
		return
	}
	b.WriteString(title + "\n")
	for _, m := range members {
		b.WriteString("  " + m.Name)
		if m.ShortDescription != "" {
			b.WriteString(" - " + stripInline(m.ShortDescription))
		}
		b.WriteString("\n")
		if m.LongDescription != "" && m.LongDescription != m.ShortDescription {
			writeIndented(b, stripMarkup(m.LongDescription))
		}
	}
	b.WriteString("\n")
}

func writeIndented(b *strings.Builder, text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
}

// stripMarkup removes block and inline markup, keeping fenced-block
// content verbatim.
func stripMarkup(content string) string {
	var out []string
	inFence := false
	for _, line := range strings.Split(content, "\n") {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			out = append(out, line)
			continue
		}
		t = strings.TrimPrefix(t, "### ")
		t = strings.TrimPrefix(strings.TrimPrefix(t, ">"), " ")
		out = append(out, stripInline(t))
	}
	return strings.Join(out, "\n")
}

// stripInline drops inline markers, keeping the enclosed text. Links keep
// their text; images keep their alt text.
func stripInline(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		switch {
		case s[i] == '`':
			if end := strings.IndexByte(s[i+1:], '`'); end >= 0 {
				b.WriteString(s[i+1 : i+1+end])
				i += end + 2
				continue
			}
		case strings.HasPrefix(s[i:], "**"):
			if end := strings.Index(s[i+2:], "**"); end > 0 {
				b.WriteString(stripInline(s[i+2 : i+2+end]))
				i += end + 4
				continue
			}
		case s[i] == '_':
			if inner, adv, ok := matchItalic(s, i); ok {
				b.WriteString(stripInline(inner))
				i += adv
				continue
			}
		case strings.HasPrefix(s[i:], "!["):
			if text, _, adv, ok := matchBracketPair(s[i+1:]); ok {
				b.WriteString(text)
				i += adv + 1
				continue
			}
		case s[i] == '[':
			if text, _, adv, ok := matchBracketPair(s[i:]); ok {
				b.WriteString(stripInline(text))
				i += adv
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
