package parse

import "strings"

// block is one keyword-opened, end-terminated region inside a declaration
// body, e.g. an arguments, properties, methods, or events block.
type block struct {
	Keyword string
	// Attrs is the raw attribute list from the opening line's parentheses.
	Attrs string
	// Label is the trailing comment on the opening line, used as the group
	// label for every member declared in this occurrence.
	Label string
	// Open and End index the opening keyword line and its matching end.
	Open, End int
}

// Statement keywords that open an end-terminated region.
var blockOpeners = map[string]bool{
	"function": true, "if": true, "for": true, "parfor": true,
	"while": true, "switch": true, "try": true, "arguments": true,
	"properties": true, "methods": true, "events": true,
	"enumeration": true, "spmd": true,
}

func statementWord(line string) string {
	t := strings.TrimSpace(line)
	if t == "" || strings.HasPrefix(t, "%") {
		return ""
	}
	w := firstWord(t)
	// "end" followed by punctuation (e.g. "end;") still closes a block.
	w = strings.TrimRight(w, ";,")
	return w
}

func firstWord(s string) string {
	for i := 0; i < len(s); i++ {
		if !isWordChar(s[i]) {
			return s[:i]
		}
	}
	return s
}

// matchEnd returns the index of the end line closing the block opened at
// openIdx, or to when the block is unterminated.
func matchEnd(lines []string, openIdx, to int) int {
	depth := 1
	for i := openIdx + 1; i < to; i++ {
		switch w := statementWord(lines[i]); {
		case blockOpeners[w]:
			depth++
		case w == "end":
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return to
}

// scanBlocks collects the wanted blocks that open at nesting depth zero
// within lines[from:to].
func scanBlocks(lines []string, from, to int, want map[string]bool) []block {
	var out []block
	i := from
	for i < to {
		w := statementWord(lines[i])
		if want[w] {
			end := matchEnd(lines, i, to)
			b := block{Keyword: w, Open: i, End: end}
			b.Attrs, b.Label = parseBlockHeader(lines[i], w)
			out = append(out, b)
			i = end + 1
			continue
		}
		if blockOpeners[w] {
			i = matchEnd(lines, i, to) + 1
			continue
		}
		i++
	}
	return out
}

// parseBlockHeader extracts the attribute list and the trailing group
// label comment from a block's opening line.
func parseBlockHeader(line, keyword string) (attrs, label string) {
	body, comment := splitTrailingComment(line)
	body = strings.TrimSpace(body)
	body = strings.TrimSpace(strings.TrimPrefix(body, keyword))
	if strings.HasPrefix(body, "(") {
		if inner, _, ok := scanDelimited(body, '(', ')'); ok {
			attrs = strings.TrimSpace(inner)
		}
	}
	return attrs, comment
}

// blockAttrs parses "Name" and "Name = Value" entries from an attribute
// list. Bare names map to "true".
func blockAttrs(attrs string) map[string]string {
	out := map[string]string{}
	for _, part := range strings.Split(attrs, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if eq := strings.IndexByte(part, '='); eq >= 0 {
			out[strings.TrimSpace(part[:eq])] = strings.TrimSpace(part[eq+1:])
		} else {
			out[part] = "true"
		}
	}
	return out
}
