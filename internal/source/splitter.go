// Package source locates the leading declaration of a source file and
// extracts the documentation block that follows it, normalizing both
// physical comment forms to a plain list of content lines.
package source

import (
	"strings"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
)

// Declaration is the first function or classdef line of a file.
type Declaration struct {
	Kind      model.UnitKind
	LineIndex int
	// Text is the declaration line with surrounding whitespace trimmed.
	Text string
}

// Lines splits raw source text into lines, tolerating CRLF endings.
func Lines(src string) []string {
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// FindDeclaration scans top to bottom for the first function- or
// type-declaration line. It returns model.ErrNoDeclarationFound when the
// source has none.
func FindDeclaration(lines []string) (Declaration, error) {
	for i, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "%") {
			continue
		}
		word := firstWord(trimmed)
		switch word {
		case "function":
			return Declaration{Kind: model.KindFunction, LineIndex: i, Text: trimmed}, nil
		case "classdef":
			return Declaration{Kind: model.KindType, LineIndex: i, Text: trimmed}, nil
		}
	}
	return Declaration{}, model.ErrNoDeclarationFound
}

func firstWord(s string) string {
	for i, r := range s {
		if r == ' ' || r == '\t' {
			return s[:i]
		}
	}
	return s
}

// ExtractDocBlock returns the maximal contiguous comment run following
// afterIdx, normalized to content lines. One embedded blank line is
// tolerated only when a comment line follows it. The run uses a single
// physical form: per-line prefixed comments, or one delimited block whose
// content is dedented to the opening delimiter's column. A line in the
// other form terminates the run.
func ExtractDocBlock(lines []string, afterIdx int) []string {
	i := afterIdx + 1
	if i >= len(lines) {
		return nil
	}

	// A single blank line before the run is tolerated under the same rule
	// as an embedded one: only if a comment line follows.
	if strings.TrimSpace(lines[i]) == "" {
		if i+1 >= len(lines) || !isCommentStart(lines[i+1]) {
			return nil
		}
		i++
	}

	if isBlockOpen(lines[i]) {
		return extractBlockForm(lines, i)
	}
	if isLineComment(lines[i]) {
		return extractLineForm(lines, i)
	}
	return nil
}

func isCommentStart(line string) bool {
	return isLineComment(line) || isBlockOpen(line)
}

func isLineComment(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "%") && t != "%{" && t != "%}"
}

func isBlockOpen(line string) bool {
	return strings.TrimSpace(line) == "%{"
}

func extractLineForm(lines []string, start int) []string {
	var out []string
	blankPending := false
	for i := start; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case isLineComment(line):
			if blankPending {
				out = append(out, "")
				blankPending = false
			}
			out = append(out, stripLinePrefix(line))
		case trimmed == "":
			if blankPending {
				return out
			}
			blankPending = true
		default:
			// Non-comment content or a block delimiter ends the run.
			return out
		}
	}
	return out
}

// stripLinePrefix removes the comment marker and at most one following
// space; indentation beyond that single space is preserved.
func stripLinePrefix(line string) string {
	idx := strings.Index(line, "%")
	rest := line[idx+1:]
	return strings.TrimPrefix(rest, " ")
}

func extractBlockForm(lines []string, open int) []string {
	col := strings.Index(lines[open], "%")
	var out []string
	for i := open + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "%}" {
			return out
		}
		out = append(out, dedent(lines[i], col))
	}
	// Unterminated block: everything to EOF is comment content.
	return out
}

// dedent strips layout indentation up to the opening delimiter's column.
// Indentation beyond that column is meaningful and kept.
func dedent(line string, col int) string {
	for i := 0; i < col && i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[i:]
		}
	}
	if col >= len(line) {
		return strings.TrimLeft(line, " \t")
	}
	return line[col:]
}
