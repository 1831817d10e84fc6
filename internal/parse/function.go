package parse

import (
	"regexp"
	"strings"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/source"
)

var signatureRe = regexp.MustCompile(
	`^function\s+(?:(\[[^\]]*\]|[A-Za-z_]\w*)\s*=\s*)?([A-Za-z_]\w*)\s*(?:\(([^)]*)\))?$`)

// signature is the decomposed declaration line of one function.
type signature struct {
	Name    string
	Outputs []string
	Params  []string
}

func parseSignature(declText string) (signature, bool) {
	body, _ := splitTrailingComment(declText)
	m := signatureRe.FindStringSubmatch(strings.TrimSpace(body))
	if m == nil {
		return signature{}, false
	}
	sig := signature{Name: m[2]}
	if outs := m[1]; outs != "" {
		outs = strings.Trim(outs, "[]")
		for _, o := range strings.Split(outs, ",") {
			if o = strings.TrimSpace(o); o != "" && o != "~" {
				sig.Outputs = append(sig.Outputs, o)
			}
		}
	}
	for _, p := range strings.Split(m[3], ",") {
		if p = strings.TrimSpace(p); p != "" && p != "~" {
			sig.Params = append(sig.Params, p)
		}
	}
	return sig, true
}

// ParseFunction parses the function declared at declIdx together with its
// documentation block and arguments blocks. The body extends to the
// matching end, or to the end of the slice for script-style files.
func ParseFunction(lines []string, declIdx int) (*model.DeclarationUnit, error) {
	declText := strings.TrimSpace(lines[declIdx])
	sig, ok := parseSignature(declText)
	if !ok {
		return nil, &model.MalformedMemberLineError{Line: declText}
	}

	unit := &model.DeclarationUnit{
		Kind:          model.KindFunction,
		Name:          sig.Name,
		SignatureText: declText,
	}

	db := ParseDocBlock(source.ExtractDocBlock(lines, declIdx), sig.Name)
	unit.Synopsis = db.Synopsis
	unit.Description = db.Description
	unit.Sections = db.Sections
	unit.SeeAlso = db.SeeAlso

	bodyEnd := functionExtent(lines, declIdx)
	var inputMeta, namedMeta []memberLine
	var outputMeta []memberLine
	for _, b := range scanBlocks(lines, declIdx+1, bodyEnd, map[string]bool{"arguments": true}) {
		entries := parseMemberBlock(lines[b.Open+1 : b.End])
		attrs := blockAttrs(b.Attrs)
		if attrs["Output"] == "true" {
			outputMeta = append(outputMeta, entries...)
			continue
		}
		for _, e := range entries {
			if e.Named {
				namedMeta = append(namedMeta, e)
			} else {
				inputMeta = append(inputMeta, e)
			}
		}
	}

	// Signature order wins; the metadata block only decorates. A parameter
	// acting as a named-argument holder is not itself an input.
	holders := map[string]bool{}
	for _, n := range namedMeta {
		holders[n.Prefix] = true
	}
	unit.Inputs = mergeMembers(sig.Params, inputMeta, holders)
	for _, n := range namedMeta {
		unit.NamedInputs = append(unit.NamedInputs, n.Member)
	}
	unit.OutputNames = sig.Outputs
	unit.Outputs = mergeMembers(sig.Outputs, outputMeta, nil)

	return unit, nil
}

// functionExtent returns the exclusive end index of the function body:
// its matching end line, or the next top-level function for end-free files.
func functionExtent(lines []string, declIdx int) int {
	depth := 1
	for i := declIdx + 1; i < len(lines); i++ {
		switch w := statementWord(lines[i]); {
		case w == "function" && depth == 1:
			// A sibling declaration means this file omits closing ends.
			return i
		case blockOpeners[w]:
			depth++
		case w == "end":
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(lines)
}

// mergeMembers orders members by the declared name list and attaches block
// metadata by exact name. Metadata entries for undeclared names keep their
// authoring order after the declared ones.
func mergeMembers(names []string, meta []memberLine, skip map[string]bool) []model.Member {
	byName := make(map[string]*memberLine, len(meta))
	used := make(map[string]bool, len(meta))
	for i := range meta {
		if _, dup := byName[meta[i].Member.Name]; !dup {
			byName[meta[i].Member.Name] = &meta[i]
		}
	}

	var out []model.Member
	for _, n := range names {
		if skip[n] {
			continue
		}
		if ml, ok := byName[n]; ok {
			out = append(out, ml.Member)
			used[n] = true
		} else {
			out = append(out, model.Member{Name: n})
		}
	}
	for _, ml := range meta {
		if !used[ml.Member.Name] && !skip[ml.Member.Name] {
			out = append(out, ml.Member)
			used[ml.Member.Name] = true
		}
	}
	return out
}
