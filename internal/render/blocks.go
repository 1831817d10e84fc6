package render

import (
	"regexp"
	"strings"
)

// calloutKind is one recognized block-quote admonition tag. The set is a
// closed enum; adding a tag is one new row here.
type calloutKind struct {
	Tag   string
	Title string
	Class string
}

var calloutKinds = []calloutKind{
	{"[!NOTE]", "Note", "note"},
	{"[!TIP]", "Tip", "tip"},
	{"[!WARNING]", "Warning", "warning"},
}

var orderedItemRe = regexp.MustCompile(`^\d+[.)]\s+`)

// Markup renders block-level markup to HTML: fenced literal blocks,
// callouts, third-level headings, lists with indented continuations, and
// paragraphs.
func (r *Renderer) Markup(content string) string {
	lines := strings.Split(content, "\n")
	var b strings.Builder
	var para []string

	flushPara := func() {
		if len(para) > 0 {
			b.WriteString("<p>")
			b.WriteString(r.inline(strings.Join(para, " ")))
			b.WriteString("</p>\n")
			para = nil
		}
	}

	i := 0
	for i < len(lines) {
		line := lines[i]
		t := strings.TrimSpace(line)
		switch {
		case t == "":
			flushPara()
			i++
		case strings.HasPrefix(t, "```"):
			flushPara()
			i = r.fence(&b, lines, i)
		case strings.HasPrefix(t, "### "):
			flushPara()
			b.WriteString("<h3>")
			b.WriteString(r.inline(strings.TrimSpace(t[4:])))
			b.WriteString("</h3>\n")
			i++
		case strings.HasPrefix(t, ">"):
			flushPara()
			i = r.quote(&b, lines, i)
		case isListItem(t):
			flushPara()
			i = r.list(&b, lines, i)
		default:
			para = append(para, t)
			i++
		}
	}
	flushPara()
	return b.String()
}

func (r *Renderer) fence(b *strings.Builder, lines []string, open int) int {
	lang := strings.TrimSpace(strings.TrimSpace(lines[open])[3:])
	var code []string
	i := open + 1
	for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
		code = append(code, lines[i])
		i++
	}
	if i < len(lines) {
		i++ // closing fence
	}
	b.WriteString("<pre><code")
	if lang != "" {
		b.WriteString(` class="language-` + escape(lang) + `"`)
	}
	b.WriteString(">")
	b.WriteString(escape(strings.Join(code, "\n")))
	b.WriteString("\n</code></pre>\n")
	return i
}

func (r *Renderer) quote(b *strings.Builder, lines []string, start int) int {
	var body []string
	i := start
	for i < len(lines) {
		t := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(t, ">") {
			break
		}
		body = append(body, strings.TrimPrefix(strings.TrimPrefix(t, ">"), " "))
		i++
	}

	kind := calloutKind{}
	if len(body) > 0 {
		for _, k := range calloutKinds {
			if strings.TrimSpace(body[0]) == k.Tag {
				kind = k
				body = body[1:]
				break
			}
		}
	}

	inner := r.Markup(strings.Join(body, "\n"))
	if kind.Tag == "" {
		b.WriteString("<blockquote>\n" + inner + "</blockquote>\n")
		return i
	}
	b.WriteString(`<div class="callout ` + kind.Class + `">`)
	b.WriteString(`<p class="callout-title">` + kind.Title + "</p>\n")
	b.WriteString(inner)
	b.WriteString("</div>\n")
	return i
}

func isListItem(t string) bool {
	return strings.HasPrefix(t, "- ") || strings.HasPrefix(t, "* ") ||
		orderedItemRe.MatchString(t)
}

// list renders one list run. The first item decides ordered vs unordered;
// indented lines continue the current item.
func (r *Renderer) list(b *strings.Builder, lines []string, start int) int {
	ordered := orderedItemRe.MatchString(strings.TrimSpace(lines[start]))
	var items []string
	i := start
	for i < len(lines) {
		line := lines[i]
		t := strings.TrimSpace(line)
		switch {
		case isListItem(t):
			items = append(items, stripMarker(t))
		case t != "" && len(items) > 0 && (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")):
			items[len(items)-1] += " " + t
		default:
			i = flushList(r, b, ordered, items, i)
			return i
		}
		i++
	}
	return flushList(r, b, ordered, items, i)
}

func flushList(r *Renderer, b *strings.Builder, ordered bool, items []string, i int) int {
	tag := "ul"
	if ordered {
		tag = "ol"
	}
	b.WriteString("<" + tag + ">\n")
	for _, item := range items {
		b.WriteString("<li>" + r.inline(item) + "</li>\n")
	}
	b.WriteString("</" + tag + ">\n")
	return i
}

func stripMarker(t string) string {
	if strings.HasPrefix(t, "- ") || strings.HasPrefix(t, "* ") {
		return strings.TrimSpace(t[2:])
	}
	return strings.TrimSpace(orderedItemRe.ReplaceAllString(t, ""))
}
