package resolve

import (
	"strings"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
)

// paragraph is one blank-line-delimited run of content, or one fenced
// literal block kept whole.
type paragraph struct {
	Lines  []string
	Fenced bool
}

func splitParagraphs(content string) []paragraph {
	var out []paragraph
	var cur []string
	inFence := false

	flush := func(fenced bool) {
		if len(cur) > 0 {
			out = append(out, paragraph{Lines: cur, Fenced: fenced})
		}
		cur = nil
	}

	for _, line := range strings.Split(content, "\n") {
		t := strings.TrimSpace(line)
		if inFence {
			cur = append(cur, line)
			if strings.HasPrefix(t, "```") {
				flush(true)
				inFence = false
			}
			continue
		}
		switch {
		case strings.HasPrefix(t, "```"):
			flush(false)
			cur = append(cur, line)
			inFence = true
		case t == "":
			flush(false)
		default:
			cur = append(cur, line)
		}
	}
	flush(inFence)
	return out
}

// formParagraph matches a paragraph whose first line opens with an
// inline-code span containing the unit's name immediately followed by "(".
// It yields the span as the form and the remaining text as its description.
func formParagraph(p paragraph, name string) (model.SyntaxEntry, bool) {
	if p.Fenced || len(p.Lines) == 0 {
		return model.SyntaxEntry{}, false
	}
	t := strings.TrimSpace(p.Lines[0])
	if !strings.HasPrefix(t, "`") {
		return model.SyntaxEntry{}, false
	}
	end := strings.IndexByte(t[1:], '`')
	if end < 0 {
		return model.SyntaxEntry{}, false
	}
	span := t[1 : 1+end]
	if !containsCall(span, name) {
		return model.SyntaxEntry{}, false
	}

	parts := []string{strings.TrimSpace(t[2+end:])}
	for _, l := range p.Lines[1:] {
		parts = append(parts, strings.TrimSpace(l))
	}
	desc := strings.TrimSpace(strings.Join(parts, " "))
	return model.SyntaxEntry{Form: span, Description: desc}, true
}

// containsCall reports whether span invokes name as a whole identifier.
// A longer identifier merely ending in name, like subplot( for plot, is
// a different function and never a form of this unit.
func containsCall(span, name string) bool {
	for i := 0; ; {
		j := strings.Index(span[i:], name+"(")
		if j < 0 {
			return false
		}
		j += i
		if j == 0 || !isWordByte(span[j-1]) {
			return true
		}
		i = j + 1
	}
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// parseSyntaxSection extracts forms from an explicit syntax section: one
// form per non-blank fenced-block line, plus form paragraphs with their
// trailing descriptions.
func parseSyntaxSection(content, name string) []model.SyntaxEntry {
	var out []model.SyntaxEntry
	for _, p := range splitParagraphs(content) {
		if p.Fenced {
			for _, l := range fenceBody(p.Lines) {
				if t := strings.TrimSpace(l); t != "" {
					out = append(out, model.SyntaxEntry{Form: t})
				}
			}
			continue
		}
		if e, ok := formParagraph(p, name); ok {
			out = append(out, e)
		}
	}
	return out
}

func fenceBody(lines []string) []string {
	body := lines
	if len(body) > 0 && strings.HasPrefix(strings.TrimSpace(body[0]), "```") {
		body = body[1:]
	}
	if len(body) > 0 && strings.HasPrefix(strings.TrimSpace(body[len(body)-1]), "```") {
		body = body[:len(body)-1]
	}
	return body
}

// extractDescriptionForms pulls form paragraphs out of the free-form
// description. Matched paragraphs become the complete form set; everything
// else remains ordinary prose.
func extractDescriptionForms(description, name string) ([]model.SyntaxEntry, string) {
	var entries []model.SyntaxEntry
	var kept []string
	for _, p := range splitParagraphs(description) {
		if e, ok := formParagraph(p, name); ok {
			entries = append(entries, e)
			continue
		}
		kept = append(kept, strings.Join(p.Lines, "\n"))
	}
	return entries, strings.Join(kept, "\n\n")
}

// synthesize builds the generated form set from member metadata: the
// required-only form, one cumulative form per optional positional
// parameter, a name-value indicator form, and a multi-output indicator
// form. Synthesized forms carry no descriptions.
func synthesize(u *model.DeclarationUnit) []model.SyntaxEntry {
	optionalCount := 0
	for _, in := range u.Inputs {
		if in.DefaultText != "" {
			optionalCount++
		}
	}

	var out []model.SyntaxEntry
	for k := 0; k <= optionalCount; k++ {
		var args []string
		seen := 0
		for _, in := range u.Inputs {
			if in.DefaultText == "" {
				args = append(args, in.Name)
				continue
			}
			if seen < k {
				args = append(args, in.Name)
				seen++
			}
		}
		out = append(out, model.SyntaxEntry{
			Form: u.Name + "(" + strings.Join(args, ", ") + ")",
		})
	}

	if len(u.NamedInputs) > 0 {
		form := u.Name + "(___, Name=Value)"
		if len(u.Inputs) == 0 {
			form = u.Name + "(Name=Value)"
		}
		out = append(out, model.SyntaxEntry{Form: form})
	}
	if len(u.OutputNames) > 1 {
		out = append(out, model.SyntaxEntry{
			Form: "[" + strings.Join(u.OutputNames, ", ") + "] = " + u.Name + "(___)",
		})
	}
	return out
}

// legacyForm strips the declaration keyword from the raw signature text.
func legacyForm(u *model.DeclarationUnit) string {
	sig := strings.TrimSpace(u.SignatureText)
	for _, kw := range []string{"function", "classdef"} {
		if strings.HasPrefix(sig, kw) {
			return strings.TrimSpace(sig[len(kw):])
		}
	}
	return sig
}
