package resolve

import "github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"

// Apply runs description merging and syntax resolution on a unit and on
// every nested unit it owns (constructor, methods). It mutates the unit in
// place; after Apply the unit is complete and treated as immutable.
func Apply(u *model.DeclarationUnit) {
	inputs := collect(u.Inputs, u.NamedInputs)
	content, ok := u.Section(model.HeadingInputArguments)
	resolveCategory(inputs, content, ok)

	content, ok = u.Section(model.HeadingOutputArgs)
	resolveCategory(collect(u.Outputs), content, ok)

	content, ok = u.Section(model.HeadingProperties)
	resolveCategory(collect(u.Fields), content, ok)

	resolveSyntax(u)

	if u.Constructor != nil {
		Apply(u.Constructor)
	}
	for i := range u.Methods {
		Apply(&u.Methods[i].Unit)
		u.Methods[i].Synopsis = u.Methods[i].Unit.Synopsis
	}
}

// collect flattens member slices into one pointer list so a category that
// spans several slices (positional plus named inputs) resolves atomically.
func collect(groups ...[]model.Member) []*model.Member {
	var out []*model.Member
	for _, g := range groups {
		for i := range g {
			out = append(out, &g[i])
		}
	}
	return out
}

// resolveSyntax picks exactly one of the four tiers. Entries already
// present were synthesized at parse time (the synthetic constructor) and
// stand as-is.
func resolveSyntax(u *model.DeclarationUnit) {
	if len(u.SyntaxEntries) > 0 {
		if u.SyntaxSource == "" {
			u.SyntaxSource = model.SyntaxAutoGenerated
		}
		return
	}

	if content, ok := u.Section(model.HeadingSyntax); ok {
		u.SyntaxEntries = parseSyntaxSection(content, u.Name)
		u.SyntaxSource = model.SyntaxExplicitSection
		return
	}

	if entries, remaining := extractDescriptionForms(u.Description, u.Name); len(entries) > 0 {
		u.SyntaxEntries = entries
		u.Description = remaining
		u.SyntaxSource = model.SyntaxDescriptionForms
		return
	}

	if len(u.Inputs)+len(u.NamedInputs)+len(u.Outputs) > 0 {
		u.SyntaxEntries = synthesize(u)
		u.SyntaxSource = model.SyntaxAutoGenerated
		return
	}

	u.SyntaxEntries = []model.SyntaxEntry{{Form: legacyForm(u)}}
	u.SyntaxSource = model.SyntaxLegacyFallback
}
