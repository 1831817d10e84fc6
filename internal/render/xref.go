package render

import "strings"

// Resolver maps cross-referenced names to page locations. Resolution runs
// through ordered stages: exact match, then case-insensitive match. A miss
// is not an error; the renderer degrades to a generic fallback link.
type Resolver struct {
	exact  map[string]string
	folded map[string]string
}

// NewResolver builds a resolver over a name-to-location map. The map is
// copied; callers sharing one map across concurrent renders need no lock.
func NewResolver(locations map[string]string) *Resolver {
	r := &Resolver{
		exact:  make(map[string]string, len(locations)),
		folded: make(map[string]string, len(locations)),
	}
	for name, loc := range locations {
		r.exact[name] = loc
		key := strings.ToLower(name)
		if _, taken := r.folded[key]; !taken {
			r.folded[key] = loc
		}
	}
	return r
}

// Resolve returns the location for name and whether it resolved.
func (r *Resolver) Resolve(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	if loc, ok := r.exact[name]; ok {
		return loc, true
	}
	if loc, ok := r.folded[strings.ToLower(name)]; ok {
		return loc, true
	}
	return "", false
}

// xrefLink renders a cross-reference as a resolved link or, for names
// absent from the map, the visible fallback form.
func (r *Renderer) xrefLink(name string) string {
	if loc, ok := r.xref.Resolve(name); ok {
		return `<a class="xref" href="` + escape(loc) + `">` + escape(name) + `</a>`
	}
	return `<a class="xref-fallback" href="matlab:doc ` + escape(name) + `">` + escape(name) + `</a>`
}
