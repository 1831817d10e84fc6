package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	u := functionUnit()
	u.Description = "Uses **bold** and `code` markers."
	out := Text(u)

	assert.Contains(t, out, "smooth\n  Smooth a signal.\n")
	assert.Contains(t, out, "Syntax\n  y = smooth(x)\n  y = smooth(x, width)\n")
	assert.Contains(t, out, "Uses bold and code markers.")
	assert.Contains(t, out, "Input Arguments\n  x - input signal\n")
	assert.Contains(t, out, "See also: filter, missing\n")
	assert.NotContains(t, out, "<")
}

func TestStripInline(t *testing.T) {
	assert.Equal(t, "bold code italic", stripInline("**bold** `code` _italic_"))
	assert.Equal(t, "see docs here", stripInline("see [docs](https://example.com) here"))
	assert.Equal(t, "plot", stripInline("![plot](img/plot.png)"))
	assert.Equal(t, "snake_case", stripInline("snake_case"))
}

func TestStripMarkup(t *testing.T) {
	got := stripMarkup("### Heading\n> quoted **text**\n```\ncode **verbatim**\n```")
	assert.Equal(t, "Heading\nquoted text\ncode **verbatim**", got)
}

func TestResolver(t *testing.T) {
	r := NewResolver(map[string]string{"Filter": "Filter.html"})

	t.Run("Exact", func(t *testing.T) {
		loc, ok := r.Resolve("Filter")
		assert.True(t, ok)
		assert.Equal(t, "Filter.html", loc)
	})

	t.Run("CaseFolded", func(t *testing.T) {
		loc, ok := r.Resolve("filter")
		assert.True(t, ok)
		assert.Equal(t, "Filter.html", loc)
	})

	t.Run("Miss", func(t *testing.T) {
		_, ok := r.Resolve("absent")
		assert.False(t, ok)
	})

	t.Run("ExactBeatsFolded", func(t *testing.T) {
		r := NewResolver(map[string]string{
			"plot": "plot.html",
			"Plot": "Plot.html",
		})
		loc, ok := r.Resolve("Plot")
		assert.True(t, ok)
		assert.Equal(t, "Plot.html", loc)
	})
}
