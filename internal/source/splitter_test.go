package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
)

func TestFindDeclaration(t *testing.T) {
	t.Run("Function", func(t *testing.T) {
		lines := Lines("% leading comment\n\nfunction y = f(x)\nend\n")
		decl, err := FindDeclaration(lines)
		require.NoError(t, err)
		assert.Equal(t, model.KindFunction, decl.Kind)
		assert.Equal(t, 2, decl.LineIndex)
		assert.Equal(t, "function y = f(x)", decl.Text)
	})

	t.Run("Classdef", func(t *testing.T) {
		decl, err := FindDeclaration(Lines("classdef Thing < handle\nend\n"))
		require.NoError(t, err)
		assert.Equal(t, model.KindType, decl.Kind)
	})

	t.Run("None", func(t *testing.T) {
		_, err := FindDeclaration(Lines("x = 1;\ny = 2;\n"))
		assert.ErrorIs(t, err, model.ErrNoDeclarationFound)
	})

	t.Run("CommentedOutDeclarationIgnored", func(t *testing.T) {
		_, err := FindDeclaration(Lines("% function y = f(x)\n"))
		assert.ErrorIs(t, err, model.ErrNoDeclarationFound)
	})
}

func TestExtractDocBlock_LineForm(t *testing.T) {
	t.Run("ContiguousRun", func(t *testing.T) {
		lines := Lines("function f\n% First line.\n% Second line.\nx = 1;\n")
		got := ExtractDocBlock(lines, 0)
		assert.Equal(t, []string{"First line.", "Second line."}, got)
	})

	t.Run("OneEmbeddedBlankTolerated", func(t *testing.T) {
		lines := Lines("function f\n% a\n\n% b\n")
		got := ExtractDocBlock(lines, 0)
		assert.Equal(t, []string{"a", "", "b"}, got)
	})

	t.Run("BlankThenCodeEndsRun", func(t *testing.T) {
		lines := Lines("function f\n% a\n\nx = 1;\n% not doc\n")
		got := ExtractDocBlock(lines, 0)
		assert.Equal(t, []string{"a"}, got)
	})

	t.Run("TwoBlanksEndRun", func(t *testing.T) {
		lines := Lines("function f\n% a\n\n\n% far away\n")
		got := ExtractDocBlock(lines, 0)
		assert.Equal(t, []string{"a"}, got)
	})

	t.Run("IndentationAfterMarkerKept", func(t *testing.T) {
		lines := Lines("function f\n%   indented\n")
		got := ExtractDocBlock(lines, 0)
		assert.Equal(t, []string{"  indented"}, got)
	})

	t.Run("BlockDelimiterTerminatesLineForm", func(t *testing.T) {
		lines := Lines("function f\n% a\n%{\nhidden\n%}\n")
		got := ExtractDocBlock(lines, 0)
		assert.Equal(t, []string{"a"}, got)
	})
}

func TestExtractDocBlock_BlockForm(t *testing.T) {
	t.Run("DedentsToOpenerColumn", func(t *testing.T) {
		lines := Lines("function f\n  %{\n  First line.\n    indented more\n  %}\nx = 1;\n")
		got := ExtractDocBlock(lines, 0)
		assert.Equal(t, []string{"First line.", "  indented more"}, got)
	})

	t.Run("ShallowerLinesSurvive", func(t *testing.T) {
		lines := Lines("function f\n    %{\n  two spaces\n    %}\n")
		got := ExtractDocBlock(lines, 0)
		assert.Equal(t, []string{"two spaces"}, got)
	})

	t.Run("UnterminatedRunsToEOF", func(t *testing.T) {
		lines := Lines("function f\n%{\nonly line\n")
		got := ExtractDocBlock(lines, 0)
		assert.Equal(t, []string{"only line"}, got)
	})
}
