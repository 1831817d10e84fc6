package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkup(t *testing.T) {
	r := New(Options{})

	t.Run("Paragraphs", func(t *testing.T) {
		got := r.Markup("one\ntwo\n\nthree")
		assert.Equal(t, "<p>one two</p>\n<p>three</p>\n", got)
	})

	t.Run("FencedBlockLiteral", func(t *testing.T) {
		got := r.Markup("```matlab\ny = f(x) % **not bold**\n```")
		assert.Contains(t, got, `<pre><code class="language-matlab">`)
		assert.Contains(t, got, "y = f(x) % **not bold**")
		assert.NotContains(t, got, "<strong>")
	})

	t.Run("ThirdLevelHeading", func(t *testing.T) {
		got := r.Markup("### Subtopic")
		assert.Equal(t, "<h3>Subtopic</h3>\n", got)
	})

	t.Run("UnorderedList", func(t *testing.T) {
		got := r.Markup("- first\n- second")
		assert.Equal(t, "<ul>\n<li>first</li>\n<li>second</li>\n</ul>\n", got)
	})

	t.Run("OrderedList", func(t *testing.T) {
		got := r.Markup("1. first\n2. second")
		assert.Equal(t, "<ol>\n<li>first</li>\n<li>second</li>\n</ol>\n", got)
	})

	t.Run("ListContinuationLines", func(t *testing.T) {
		got := r.Markup("- first line\n  continues here\n- second")
		assert.Contains(t, got, "<li>first line continues here</li>")
	})

	t.Run("PlainBlockquote", func(t *testing.T) {
		got := r.Markup("> just a quote")
		assert.Equal(t, "<blockquote>\n<p>just a quote</p>\n</blockquote>\n", got)
	})
}

func TestMarkupCallouts(t *testing.T) {
	r := New(Options{})

	tests := []struct {
		tag   string
		title string
		class string
	}{
		{"[!NOTE]", "Note", "note"},
		{"[!TIP]", "Tip", "tip"},
		{"[!WARNING]", "Warning", "warning"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := r.Markup("> " + tt.tag + "\n> body text")
			assert.Contains(t, got, `<div class="callout `+tt.class+`">`)
			assert.Contains(t, got, `<p class="callout-title">`+tt.title+"</p>")
			assert.Contains(t, got, "<p>body text</p>")
		})
	}

	t.Run("UnknownTagStaysBlockquote", func(t *testing.T) {
		got := r.Markup("> [!DANGER]\n> body")
		assert.Contains(t, got, "<blockquote>")
		assert.NotContains(t, got, "callout")
	})
}
