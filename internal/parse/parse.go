package parse

import (
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/source"
)

// ParseSource parses raw source text into the unit declared first in it.
// Returns model.ErrNoDeclarationFound when the text declares nothing.
// Description merging and syntax resolution are a separate pass; see the
// resolve package.
func ParseSource(src string) (*model.DeclarationUnit, error) {
	lines := source.Lines(src)
	decl, err := source.FindDeclaration(lines)
	if err != nil {
		return nil, err
	}
	if decl.Kind == model.KindType {
		return ParseClass(lines, decl.LineIndex)
	}
	return ParseFunction(lines, decl.LineIndex)
}
