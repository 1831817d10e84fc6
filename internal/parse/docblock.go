// Package parse turns normalized documentation-block lines and declaration
// metadata into the intermediate representation: doc blocks, member
// metadata lines, and whole function or classdef units.
package parse

import (
	"strings"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
)

// DocBlock is the parsed shape of one documentation block.
type DocBlock struct {
	Synopsis    string
	Description string
	Sections    []model.Section
	SeeAlso     []string
}

// ParseDocBlock parses normalized comment lines for the named declaration.
// The first non-empty line is the synopsis (a leading occurrence of the
// declared name is stripped, case-insensitively). Lines starting "## " open
// sections; content before the first heading is the description. A trailing
// "See also" line is removed from its container and split on commas.
func ParseDocBlock(lines []string, declaredName string) DocBlock {
	var db DocBlock

	lines, db.SeeAlso = extractSeeAlso(lines)

	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i < len(lines) && !isHeadingLine(lines[i]) {
		db.Synopsis = stripNamePrefix(strings.TrimSpace(lines[i]), declaredName)
		i++
	}

	var desc []string
	var cur *model.Section
	for ; i < len(lines); i++ {
		line := lines[i]
		if isHeadingLine(line) {
			db.Sections = append(db.Sections, model.Section{
				Heading: strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "## ")),
			})
			cur = &db.Sections[len(db.Sections)-1]
			continue
		}
		if cur != nil {
			cur.Content += line + "\n"
		} else {
			desc = append(desc, line)
		}
	}

	db.Description = strings.Trim(strings.Join(desc, "\n"), "\n")
	for j := range db.Sections {
		db.Sections[j].Content = strings.Trim(db.Sections[j].Content, "\n")
	}
	return db
}

func isHeadingLine(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "## ")
}

// stripNamePrefix removes a leading occurrence of the declared name from the
// synopsis line, plus one separator dash or colon.
func stripNamePrefix(syn, name string) string {
	if name == "" || len(syn) < len(name) {
		return syn
	}
	if !strings.EqualFold(syn[:len(name)], name) {
		return syn
	}
	rest := syn[len(name):]
	if rest != "" && isWordChar(rest[0]) {
		return syn
	}
	rest = strings.TrimLeft(rest, " \t")
	if strings.HasPrefix(rest, "-") || strings.HasPrefix(rest, ":") {
		rest = strings.TrimLeft(rest[1:], " \t")
	}
	return rest
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// extractSeeAlso scans backward from the end for a "See also" line, removes
// it, and parses the comma-separated name list.
func extractSeeAlso(lines []string) ([]string, []string) {
	for i := len(lines) - 1; i >= 0; i-- {
		t := strings.TrimSpace(lines[i])
		if t == "" {
			continue
		}
		lower := strings.ToLower(t)
		if !strings.HasPrefix(lower, "see also") {
			continue
		}
		rest := strings.TrimSpace(t[len("see also"):])
		rest = strings.TrimPrefix(rest, ":")
		rest = strings.TrimSuffix(strings.TrimSpace(rest), ".")

		var names []string
		for _, part := range strings.Split(rest, ",") {
			if p := strings.TrimSpace(part); p != "" {
				names = append(names, p)
			}
		}
		out := make([]string, 0, len(lines)-1)
		out = append(out, lines[:i]...)
		out = append(out, lines[i+1:]...)
		return out, names
	}
	return lines, nil
}
