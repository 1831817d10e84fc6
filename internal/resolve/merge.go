// Package resolve applies the deterministic override rules that pick one
// documentation source per member category, and resolves the calling-syntax
// entries for a unit through four exclusive tiers.
package resolve

import (
	"strings"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
)

// keyedEntry is one "`name` - text" entry inside a named section.
type keyedEntry struct {
	Name  string
	Short string
	Long  string
}

var dashTokens = []string{"—", "–", "--", "-"}

// parseKeyedEntries scans section content for keyed long-form entries: a
// line opening with an exact-name token in inline-code delimiters, a dash,
// then the short text; subsequent lines up to the next keyed line are the
// long text.
func parseKeyedEntries(content string) []keyedEntry {
	var out []keyedEntry
	var cur *keyedEntry
	var long []string

	flush := func() {
		if cur != nil {
			cur.Long = strings.Trim(strings.Join(long, "\n"), "\n")
			out = append(out, *cur)
		}
		cur = nil
		long = nil
	}

	for _, line := range strings.Split(content, "\n") {
		if name, short, ok := parseKeyedLine(line); ok {
			flush()
			cur = &keyedEntry{Name: name, Short: short}
			continue
		}
		if cur != nil {
			long = append(long, line)
		}
	}
	flush()
	return out
}

func parseKeyedLine(line string) (name, short string, ok bool) {
	t := strings.TrimSpace(line)
	if !strings.HasPrefix(t, "`") {
		return "", "", false
	}
	end := strings.IndexByte(t[1:], '`')
	if end < 0 {
		return "", "", false
	}
	name = t[1 : 1+end]
	if name == "" || strings.ContainsAny(name, " \t") {
		return "", "", false
	}
	rest := strings.TrimLeft(t[2+end:], " \t")
	for _, dash := range dashTokens {
		if strings.HasPrefix(rest, dash) {
			return name, strings.TrimSpace(rest[len(dash):]), true
		}
	}
	return "", "", false
}

// resolveCategory applies the per-category override rule: when the matching
// section holds a keyed entry for any member of the category, that section
// is the sole description source for every member in it, and per-member
// inline or preceding comments are ignored entirely. Otherwise each member
// falls back to its own comments: short from the trailing comment, long
// from the preceding block or, absent that, the trailing comment reused.
func resolveCategory(members []*model.Member, sectionContent string, sectionOK bool) {
	if sectionOK {
		entries := parseKeyedEntries(sectionContent)
		if keyedFor(entries, members) {
			byName := make(map[string]keyedEntry, len(entries))
			for _, e := range entries {
				byName[e.Name] = e
			}
			for _, m := range members {
				e, ok := byName[m.Name]
				if !ok {
					m.ShortDescription = ""
					m.LongDescription = ""
					continue
				}
				m.ShortDescription = e.Short
				m.LongDescription = e.Long
				if m.LongDescription == "" {
					m.LongDescription = e.Short
				}
			}
			return
		}
	}

	for _, m := range members {
		if m.LongDescription == "" {
			m.LongDescription = m.ShortDescription
		}
	}
}

func keyedFor(entries []keyedEntry, members []*model.Member) bool {
	for _, e := range entries {
		for _, m := range members {
			if m.Name == e.Name {
				return true
			}
		}
	}
	return false
}
