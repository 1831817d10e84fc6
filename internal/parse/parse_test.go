package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
)

func TestParseSource(t *testing.T) {
	t.Run("Function", func(t *testing.T) {
		unit, err := ParseSource("function y = f(x)\n% F Does things.\nend\n")
		require.NoError(t, err)
		assert.Equal(t, model.KindFunction, unit.Kind)
		assert.Equal(t, "f", unit.Name)
	})

	t.Run("Class", func(t *testing.T) {
		unit, err := ParseSource("classdef Thing\n% THING A thing.\nend\n")
		require.NoError(t, err)
		assert.Equal(t, model.KindType, unit.Kind)
		assert.Equal(t, "Thing", unit.Name)
	})

	t.Run("NoDeclaration", func(t *testing.T) {
		_, err := ParseSource("x = 1;\n")
		assert.ErrorIs(t, err, model.ErrNoDeclarationFound)
	})
}
