package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInline(t *testing.T) {
	r := New(Options{})

	t.Run("EscapesLiteralText", func(t *testing.T) {
		got := r.inline(`a < b & "c"`)
		assert.NotContains(t, got, "< b")
		assert.Contains(t, got, "&lt; b")
		assert.Contains(t, got, "&amp;")
		assert.Contains(t, got, "&#34;c&#34;")
	})

	t.Run("CodeSpanEscapedNotFormatted", func(t *testing.T) {
		got := r.inline("use `a<b & **x**` here")
		assert.Contains(t, got, "<code>a&lt;b &amp; **x**</code>")
	})

	t.Run("Strong", func(t *testing.T) {
		assert.Equal(t, "<strong>bold</strong> rest", r.inline("**bold** rest"))
	})

	t.Run("ItalicOnWordBoundary", func(t *testing.T) {
		assert.Equal(t, "an <em>italic</em> word", r.inline("an _italic_ word"))
	})

	t.Run("SnakeCaseNotItalic", func(t *testing.T) {
		assert.Equal(t, "snake_case_name", r.inline("snake_case_name"))
	})

	t.Run("Link", func(t *testing.T) {
		got := r.inline("see [docs](https://example.com?a=1&b=2)")
		assert.Contains(t, got, `<a href="https://example.com?a=1&amp;b=2">docs</a>`)
	})

	t.Run("Image", func(t *testing.T) {
		got := r.inline("![plot](img/plot.png)")
		assert.Equal(t, `<img src="img/plot.png" alt="plot">`, got)
	})

	t.Run("NestedMarkupInsideStrong", func(t *testing.T) {
		got := r.inline("**bold `code`**")
		assert.Equal(t, "<strong>bold <code>code</code></strong>", got)
	})

	t.Run("UnterminatedDelimitersStayLiteral", func(t *testing.T) {
		assert.Equal(t, "a ` b", r.inline("a ` b"))
		assert.Equal(t, "a ** b", r.inline("a ** b"))
	})
}

func TestInlineMath(t *testing.T) {
	t.Run("InlineMath", func(t *testing.T) {
		r := New(Options{})
		got := r.inline("where $x^2$ holds")
		assert.Contains(t, got, `<span class="math-inline">\(x^2\)</span>`)
		assert.True(t, r.usedMath)
	})

	t.Run("DisplayMath", func(t *testing.T) {
		r := New(Options{})
		got := r.inline("$$\\sum_i x_i$$")
		assert.Contains(t, got, `<span class="math-display">\[\sum_i x_i\]</span>`)
		assert.True(t, r.usedMath)
	})

	t.Run("NoMathNoFlag", func(t *testing.T) {
		r := New(Options{})
		r.inline("plain text")
		assert.False(t, r.usedMath)
	})
}

// Every byte of the dangerous set must come out either escaped or as part
// of renderer-emitted markup, never as a literal tag from the input.
func TestInlineNeverInjects(t *testing.T) {
	r := New(Options{})
	for _, in := range []string{
		"<script>alert(1)</script>",
		"`<script>`",
		"**<b>**",
		"[x](javascript:alert(1))",
	} {
		got := r.inline(in)
		assert.False(t, strings.Contains(got, "<script>"), "input %q rendered %q", in, got)
		assert.False(t, strings.Contains(got, "<b>"), "input %q rendered %q", in, got)
	}
}
