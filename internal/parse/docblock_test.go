package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
)

func toUnit(db DocBlock) *model.DeclarationUnit {
	return &model.DeclarationUnit{
		Synopsis:    db.Synopsis,
		Description: db.Description,
		Sections:    db.Sections,
		SeeAlso:     db.SeeAlso,
	}
}

func TestParseDocBlock(t *testing.T) {
	t.Run("SynopsisAndDescription", func(t *testing.T) {
		db := ParseDocBlock([]string{
			"MYFUNC Compute the thing.",
			"",
			"Longer prose about the thing.",
			"Second line of prose.",
		}, "myfunc")
		assert.Equal(t, "Compute the thing.", db.Synopsis)
		assert.Equal(t, "Longer prose about the thing.\nSecond line of prose.", db.Description)
		assert.Empty(t, db.Sections)
	})

	t.Run("NamePrefixCaseInsensitive", func(t *testing.T) {
		db := ParseDocBlock([]string{"MyFunc - does things."}, "myfunc")
		assert.Equal(t, "does things.", db.Synopsis)
	})

	t.Run("NamePrefixNeedsBoundary", func(t *testing.T) {
		db := ParseDocBlock([]string{"myfuncs are great."}, "myfunc")
		assert.Equal(t, "myfuncs are great.", db.Synopsis)
	})

	t.Run("ColonSeparator", func(t *testing.T) {
		db := ParseDocBlock([]string{"myfunc: does things."}, "myfunc")
		assert.Equal(t, "does things.", db.Synopsis)
	})

	t.Run("Sections", func(t *testing.T) {
		db := ParseDocBlock([]string{
			"F Short.",
			"Prose.",
			"## Examples",
			"example body",
			"## Tips",
			"tip body",
		}, "f")
		assert.Equal(t, "Prose.", db.Description)
		require.Len(t, db.Sections, 2)
		assert.Equal(t, "Examples", db.Sections[0].Heading)
		assert.Equal(t, "example body", db.Sections[0].Content)
		assert.Equal(t, "Tips", db.Sections[1].Heading)
		assert.Equal(t, "tip body", db.Sections[1].Content)
	})

	t.Run("SeeAlsoRemovedAndSplit", func(t *testing.T) {
		db := ParseDocBlock([]string{
			"F Short.",
			"## Examples",
			"body",
			"",
			"See also: other, Another, third.",
		}, "f")
		assert.Equal(t, []string{"other", "Another", "third"}, db.SeeAlso)
		require.Len(t, db.Sections, 1)
		assert.Equal(t, "body", db.Sections[0].Content)
	})

	t.Run("SeeAlsoWithoutColon", func(t *testing.T) {
		db := ParseDocBlock([]string{"F Short.", "See also helper"}, "f")
		assert.Equal(t, []string{"helper"}, db.SeeAlso)
		assert.Empty(t, db.Description)
	})

	t.Run("EmptyBlock", func(t *testing.T) {
		db := ParseDocBlock(nil, "f")
		assert.Empty(t, db.Synopsis)
		assert.Empty(t, db.Description)
	})
}

func TestSectionLookupLastWins(t *testing.T) {
	db := ParseDocBlock([]string{
		"F Short.",
		"## Examples",
		"first",
		"## Examples",
		"second",
	}, "f")
	require.Len(t, db.Sections, 2)

	u := toUnit(db)
	content, ok := u.Section("Examples")
	require.True(t, ok)
	assert.Equal(t, "second", content)
}
