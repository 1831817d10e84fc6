package parse

import (
	"strings"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
)

// memberLine is one parsed member declaration line before merge resolution.
type memberLine struct {
	Member model.Member
	// Named reports that the name carried a namespaced (dotted) prefix,
	// which has been stripped into Prefix.
	Named  bool
	Prefix string
}

// parseMemberLine parses a single parameter/field declaration line:
//
//	name (size) type {validators} = default  % trailing comment
//
// Bracket, brace and equals-sign splitting is depth and quote aware so
// embedded literals like {'a','b'} or "x=y" are never mis-split.
func parseMemberLine(line string) (memberLine, error) {
	body, comment := splitTrailingComment(line)
	body = strings.TrimSpace(body)

	name, rest := scanIdentifier(body)
	if name == "" {
		return memberLine{}, &model.MalformedMemberLineError{Line: line}
	}

	ml := memberLine{}
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		ml.Named = true
		ml.Prefix = name[:dot]
		name = name[dot+1:]
		if name == "" || strings.Contains(name, ".") {
			return memberLine{}, &model.MalformedMemberLineError{Line: line}
		}
	}
	ml.Member.Name = name
	ml.Member.ShortDescription = comment

	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "(") {
		inner, after, ok := scanDelimited(rest, '(', ')')
		if !ok {
			return memberLine{}, &model.MalformedMemberLineError{Line: line}
		}
		ml.Member.SizeConstraint = strings.TrimSpace(inner)
		rest = strings.TrimSpace(after)
	}

	// Type runs to the validator brace or the default's equals sign.
	typeEnd := len(rest)
	depth := 0
	var quote byte
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case '{', '=':
			if depth == 0 {
				typeEnd = i
				i = len(rest)
			}
		}
	}
	ml.Member.TypeConstraint = strings.TrimSpace(rest[:typeEnd])
	rest = rest[typeEnd:]

	if strings.HasPrefix(rest, "{") {
		inner, after, ok := scanDelimited(rest, '{', '}')
		if !ok {
			return memberLine{}, &model.MalformedMemberLineError{Line: line}
		}
		ml.Member.ValidatorText = strings.TrimSpace(inner)
		rest = strings.TrimSpace(after)
	}

	if strings.HasPrefix(rest, "=") {
		ml.Member.DefaultText = strings.TrimSpace(rest[1:])
	}
	return ml, nil
}

// splitTrailingComment cuts the line at the first % that sits outside
// quotes and outside any bracket nesting.
func splitTrailingComment(line string) (body, comment string) {
	depth := 0
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '%':
			if depth == 0 {
				return line[:i], strings.TrimSpace(line[i+1:])
			}
		}
	}
	return line, ""
}

// scanIdentifier reads a leading, possibly dotted, identifier.
func scanIdentifier(s string) (ident, rest string) {
	i := 0
	for i < len(s) && (isWordChar(s[i]) || s[i] == '.') {
		i++
	}
	ident = s[:i]
	if ident == "" || !isIdentStart(ident[0]) {
		return "", s
	}
	return ident, s[i:]
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// scanDelimited returns the content between the opening delimiter at s[0]
// and its matching closer, honoring nesting and quotes.
func scanDelimited(s string, open, close byte) (inner, after string, ok bool) {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[1:i], s[i+1:], true
			}
		}
	}
	return "", "", false
}

// parseMemberBlock parses the body lines of an arguments or properties
// block. A contiguous comment run immediately above a member line becomes
// its candidate long description; any blank line resets the run. Malformed
// lines are skipped.
func parseMemberBlock(lines []string) []memberLine {
	var out []memberLine
	var pending []string
	for _, raw := range lines {
		t := strings.TrimSpace(raw)
		switch {
		case t == "":
			pending = nil
		case strings.HasPrefix(t, "%"):
			pending = append(pending, strings.TrimPrefix(t[1:], " "))
		default:
			ml, err := parseMemberLine(t)
			if err != nil {
				pending = nil
				continue
			}
			if len(pending) > 0 {
				ml.Member.LongDescription = strings.Join(pending, "\n")
			}
			pending = nil
			out = append(out, ml)
		}
	}
	return out
}
