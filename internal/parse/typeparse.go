package parse

import (
	"regexp"
	"strings"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/source"
)

var classdefRe = regexp.MustCompile(`^classdef\s*(?:\(([^)]*)\))?\s*([A-Za-z_]\w*)`)

var memberBlockKinds = map[string]bool{
	"properties": true, "methods": true, "events": true,
}

// ParseClass parses the classdef declared at declIdx: its documentation
// block plus every properties, methods, and events block, with visibility
// filtering and per-block group labels.
func ParseClass(lines []string, declIdx int) (*model.DeclarationUnit, error) {
	declText := strings.TrimSpace(lines[declIdx])
	body, _ := splitTrailingComment(declText)
	m := classdefRe.FindStringSubmatch(strings.TrimSpace(body))
	if m == nil {
		return nil, &model.MalformedMemberLineError{Line: declText}
	}

	unit := &model.DeclarationUnit{
		Kind:          model.KindType,
		Name:          m[2],
		SignatureText: declText,
	}

	db := ParseDocBlock(source.ExtractDocBlock(lines, declIdx), unit.Name)
	unit.Synopsis = db.Synopsis
	unit.Description = db.Description
	unit.Sections = db.Sections
	unit.SeeAlso = db.SeeAlso

	bodyEnd := matchEnd(lines, declIdx, len(lines))
	hiddenCtor := false
	for _, b := range scanBlocks(lines, declIdx+1, bodyEnd, memberBlockKinds) {
		attrs := blockAttrs(b.Attrs)
		if hiddenBlock(attrs) {
			// A constructor hidden with its block means the class is not
			// publicly constructible, so no construction forms may be
			// invented for it.
			if b.Keyword == "methods" && hasFunctionNamed(lines, b, unit.Name) {
				hiddenCtor = true
			}
			continue
		}
		switch b.Keyword {
		case "properties":
			unit.Fields = append(unit.Fields, parseFieldBlock(lines, b, attrs)...)
		case "events":
			unit.Events = append(unit.Events, parseEventBlock(lines, b)...)
		case "methods":
			parseMethodBlock(lines, b, unit)
		}
	}

	if unit.Constructor == nil && !hiddenCtor {
		unit.Constructor = syntheticConstructor(unit)
	}
	return unit, nil
}

func hasFunctionNamed(lines []string, b block, name string) bool {
	for _, fb := range scanBlocks(lines, b.Open+1, b.End, map[string]bool{"function": true}) {
		if sig, ok := parseSignature(strings.TrimSpace(lines[fb.Open])); ok && sig.Name == name {
			return true
		}
	}
	return false
}

// hiddenBlock reports whether a block's attributes exclude its members
// from documentation: an explicit Hidden marker or non-public access.
func hiddenBlock(attrs map[string]string) bool {
	if attrs["Hidden"] == "true" {
		return true
	}
	for _, key := range []string{"Access", "GetAccess"} {
		switch attrs[key] {
		case "private", "protected":
			return true
		}
	}
	return false
}

func parseFieldBlock(lines []string, b block, attrs map[string]string) []model.Member {
	readOnly := false
	switch attrs["SetAccess"] {
	case "private", "protected", "immutable":
		readOnly = true
	}

	var out []model.Member
	for _, ml := range parseMemberBlock(lines[b.Open+1 : b.End]) {
		f := ml.Member
		f.Group = b.Label
		f.ReadOnly = readOnly
		f.Dependent = attrs["Dependent"] == "true"
		f.Constant = attrs["Constant"] == "true"
		f.Abstract = attrs["Abstract"] == "true"
		out = append(out, f)
	}
	return out
}

func parseEventBlock(lines []string, b block) []model.Event {
	var out []model.Event
	for _, ml := range parseMemberBlock(lines[b.Open+1 : b.End]) {
		out = append(out, model.Event{
			Name:             ml.Member.Name,
			ShortDescription: ml.Member.ShortDescription,
			LongDescription:  ml.Member.LongDescription,
			Group:            b.Label,
		})
	}
	return out
}

func parseMethodBlock(lines []string, b block, unit *model.DeclarationUnit) {
	for _, fb := range scanBlocks(lines, b.Open+1, b.End, map[string]bool{"function": true}) {
		method, err := ParseFunction(lines, fb.Open)
		if err != nil {
			continue
		}
		if method.Name == unit.Name {
			if unit.Constructor == nil {
				unit.Constructor = method
			}
			continue
		}
		unit.Methods = append(unit.Methods, model.MethodSummary{
			Name:     method.Name,
			Synopsis: method.Synopsis,
			Group:    b.Label,
			Unit:     *method,
		})
	}
}

// syntheticConstructor builds the minimal constructor for a class that
// declares none: a bare construction form, plus a name-value form when at
// least one visible settable field exists.
func syntheticConstructor(unit *model.DeclarationUnit) *model.DeclarationUnit {
	ctor := &model.DeclarationUnit{
		Kind:          model.KindFunction,
		Name:          unit.Name,
		SignatureText: "function obj = " + unit.Name,
		OutputNames:   []string{"obj"},
		SyntaxEntries: []model.SyntaxEntry{{Form: "obj = " + unit.Name}},
		SyntaxSource:  model.SyntaxAutoGenerated,
	}
	for _, f := range unit.Fields {
		if !f.ReadOnly && !f.Constant && !f.Dependent && !f.Abstract {
			ctor.SyntaxEntries = append(ctor.SyntaxEntries, model.SyntaxEntry{
				Form: "obj = " + unit.Name + "(Name=Value)",
			})
			break
		}
	}
	return ctor
}
