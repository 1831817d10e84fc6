package render

import (
	"html"
	"strings"
)

func escape(s string) string {
	return html.EscapeString(s)
}

// inline renders the inline markup surface: bold, italic, inline code,
// images, links, and math. Literal text is escaped before any formatting
// is applied, so content can never inject markup. Code and math span
// contents are escaped but receive no further formatting.
func (r *Renderer) inline(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '`':
			if end := strings.IndexByte(s[i+1:], '`'); end >= 0 {
				b.WriteString("<code>")
				b.WriteString(escape(s[i+1 : i+1+end]))
				b.WriteString("</code>")
				i += end + 2
				continue
			}
		case strings.HasPrefix(s[i:], "$$"):
			if end := strings.Index(s[i+2:], "$$"); end >= 0 {
				b.WriteString(`<span class="math-display">\[`)
				b.WriteString(escape(s[i+2 : i+2+end]))
				b.WriteString(`\]</span>`)
				r.usedMath = true
				i += end + 4
				continue
			}
		case c == '$':
			if end := strings.IndexByte(s[i+1:], '$'); end >= 0 {
				b.WriteString(`<span class="math-inline">\(`)
				b.WriteString(escape(s[i+1 : i+1+end]))
				b.WriteString(`\)</span>`)
				r.usedMath = true
				i += end + 2
				continue
			}
		case strings.HasPrefix(s[i:], "**"):
			if end := strings.Index(s[i+2:], "**"); end > 0 {
				b.WriteString("<strong>")
				b.WriteString(r.inline(s[i+2 : i+2+end]))
				b.WriteString("</strong>")
				i += end + 4
				continue
			}
		case c == '_':
			if inner, adv, ok := matchItalic(s, i); ok {
				b.WriteString("<em>")
				b.WriteString(r.inline(inner))
				b.WriteString("</em>")
				i += adv
				continue
			}
		case strings.HasPrefix(s[i:], "!["):
			if text, url, adv, ok := matchBracketPair(s[i+1:]); ok {
				b.WriteString(`<img src="` + escape(url) + `" alt="` + escape(text) + `">`)
				i += adv + 1
				continue
			}
		case c == '[':
			if text, url, adv, ok := matchBracketPair(s[i:]); ok {
				b.WriteString(`<a href="` + escape(url) + `">`)
				b.WriteString(r.inline(text))
				b.WriteString("</a>")
				i += adv
				continue
			}
		}
		b.WriteString(escape(s[i : i+1]))
		i++
	}
	return b.String()
}

// matchItalic accepts _text_ only on word boundaries so identifiers like
// snake_case never turn italic.
func matchItalic(s string, i int) (inner string, adv int, ok bool) {
	if i > 0 && isAlnum(s[i-1]) {
		return "", 0, false
	}
	if i+1 >= len(s) || s[i+1] == ' ' || s[i+1] == '_' {
		return "", 0, false
	}
	for j := i + 2; j < len(s); j++ {
		if s[j] != '_' {
			continue
		}
		if s[j-1] == ' ' {
			return "", 0, false
		}
		if j+1 < len(s) && isAlnum(s[j+1]) {
			return "", 0, false
		}
		return s[i+1 : j], j - i + 1, true
	}
	return "", 0, false
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// matchBracketPair parses [text](url) starting at s[0] == '['.
func matchBracketPair(s string) (text, url string, adv int, ok bool) {
	if len(s) == 0 || s[0] != '[' {
		return "", "", 0, false
	}
	close := strings.IndexByte(s, ']')
	if close < 0 || close+1 >= len(s) || s[close+1] != '(' {
		return "", "", 0, false
	}
	end := strings.IndexByte(s[close+2:], ')')
	if end < 0 {
		return "", "", 0, false
	}
	return s[1:close], s[close+2 : close+2+end], close + 2 + end + 1, true
}
