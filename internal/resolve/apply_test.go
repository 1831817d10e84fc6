package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/parse"
)

func parsed(t *testing.T, src string) *model.DeclarationUnit {
	t.Helper()
	unit, err := parse.ParseSource(src)
	require.NoError(t, err)
	Apply(unit)
	return unit
}

func TestApply_AutoGeneratedForms(t *testing.T) {
	unit := parsed(t, `function y = f(x, a, b)
% F Does something.
arguments
    x
    a = 0
    b = 1
end
end
`)
	assert.Equal(t, model.SyntaxAutoGenerated, unit.SyntaxSource)
	assert.Equal(t, []string{"f(x)", "f(x, a)", "f(x, a, b)"}, formsOf(unit.SyntaxEntries))
}

func TestApply_DescriptionForms(t *testing.T) {
	unit := parsed(t, `function y = f(x)
% F Does something.
%
% `+"`y = f(x)`"+` does W
%
% Remaining prose stays.
arguments
    x
end
end
`)
	assert.Equal(t, model.SyntaxDescriptionForms, unit.SyntaxSource)
	require.Len(t, unit.SyntaxEntries, 1)
	assert.Equal(t, "y = f(x)", unit.SyntaxEntries[0].Form)
	assert.Equal(t, "does W", unit.SyntaxEntries[0].Description)

	// The matched paragraph leaves the description; other prose stays.
	assert.Equal(t, "Remaining prose stays.", unit.Description)
}

func TestApply_ProseCitingLongerNameStaysProse(t *testing.T) {
	unit := parsed(t, `function y = f(x)
% F Does something.
%
% `+"`y = myf(x)`"+` is a related helper.
arguments
    x
end
end
`)
	// The paragraph cites a different function; it stays prose and the
	// form set is synthesized from the metadata.
	assert.Equal(t, model.SyntaxAutoGenerated, unit.SyntaxSource)
	assert.Equal(t, []string{"f(x)"}, formsOf(unit.SyntaxEntries))
	assert.Contains(t, unit.Description, "is a related helper.")
}

func TestApply_ExplicitSectionBeatsEverything(t *testing.T) {
	unit := parsed(t, `function y = f(x)
% F Does something.
%
% `+"`y = f(x)`"+` described in prose
%
% ## Syntax
% `+"```"+`
% f(x)
% f(x, 'legacy')
% `+"```"+`
arguments
    x
    extra = 1
end
end
`)
	assert.Equal(t, model.SyntaxExplicitSection, unit.SyntaxSource)
	assert.Equal(t, []string{"f(x)", "f(x, 'legacy')"}, formsOf(unit.SyntaxEntries))

	// Lower tiers never contribute: the description form paragraph stays
	// in the description untouched.
	assert.Contains(t, unit.Description, "described in prose")
}

func TestApply_LegacyFallback(t *testing.T) {
	unit := parsed(t, `function setup
% SETUP Prepare state.
end
`)
	assert.Equal(t, model.SyntaxLegacyFallback, unit.SyntaxSource)
	assert.Equal(t, []string{"setup"}, formsOf(unit.SyntaxEntries))
}

func TestApply_SignatureOnlyParamsStillSynthesize(t *testing.T) {
	unit := parsed(t, `function y = f(x)
% F Does something.
end
`)
	assert.Equal(t, model.SyntaxAutoGenerated, unit.SyntaxSource)
	assert.Equal(t, []string{"f(x)"}, formsOf(unit.SyntaxEntries))
}

func TestApply_KeyedSectionOverride(t *testing.T) {
	unit := parsed(t, `function y = f(x)
% F Does something.
%
% ## Input Arguments
% `+"`x`"+` — the input
% long line two
arguments
    % Preceding comment, ignored once the section matches.
    x % inline comment, ignored too
end
end
`)
	require.Len(t, unit.Inputs, 1)
	assert.Equal(t, "the input", unit.Inputs[0].ShortDescription)
	assert.Equal(t, "long line two", unit.Inputs[0].LongDescription)
}

func TestApply_InputsAndNamedInputsResolveAsOneCategory(t *testing.T) {
	unit := parsed(t, `function y = f(x, opts)
% F Does something.
%
% ## Input Arguments
% `+"`Mode`"+` — border handling
arguments
    x % inline short
    opts.Mode string = "same"
end
end
`)
	// A keyed entry for the named input claims the whole category, so the
	// positional input loses its inline comment as well.
	require.Len(t, unit.Inputs, 1)
	assert.Empty(t, unit.Inputs[0].ShortDescription)
	require.Len(t, unit.NamedInputs, 1)
	assert.Equal(t, "border handling", unit.NamedInputs[0].ShortDescription)
}

func TestApply_RecursesIntoMethods(t *testing.T) {
	unit := parsed(t, `classdef Thing
% THING A thing.
methods
    function y = peek(obj)
    % PEEK Look at the thing.
    y = obj;
    end
end
end
`)
	require.Len(t, unit.Methods, 1)
	assert.NotEmpty(t, unit.Methods[0].Unit.SyntaxEntries)
	assert.Equal(t, "Look at the thing.", unit.Methods[0].Synopsis)
}

func TestApply_SyntheticConstructorStands(t *testing.T) {
	unit := parsed(t, `classdef Point
% POINT A point.
properties
    x
end
end
`)
	require.NotNil(t, unit.Constructor)
	assert.Equal(t, model.SyntaxAutoGenerated, unit.Constructor.SyntaxSource)
	assert.Equal(t, []string{"obj = Point", "obj = Point(Name=Value)"},
		formsOf(unit.Constructor.SyntaxEntries))
}
