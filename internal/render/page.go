// Package render converts resolved declaration units and their embedded
// markup into self-contained HTML reference pages.
package render

import (
	"fmt"
	"strings"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/model"
)

// Renderer renders one unit at a time. It is cheap to construct and not
// safe for concurrent use; concurrent site builds create one per worker
// over a shared location map.
type Renderer struct {
	xref     *Resolver
	usedMath bool
	// ids tracks section anchors already used on the current page, so
	// colliding heading slugs stay unique.
	ids map[string]int
}

// Options configures rendering. Locations is the name-to-location map used
// for cross-reference resolution; absent entries fall back gracefully.
type Options struct {
	Locations map[string]string
}

func New(opts Options) *Renderer {
	return &Renderer{xref: NewResolver(opts.Locations)}
}

// pageSection is one conditional slot of a page skeleton. The skeleton is
// an ordered predicate/render list evaluated in sequence, so each section
// stays independently testable.
type pageSection struct {
	applies func(u *model.DeclarationUnit) bool
	render  func(r *Renderer, b *strings.Builder, u *model.DeclarationUnit)
}

var functionSkeleton = []pageSection{
	{always, (*Renderer).header},
	{hasSyntax, (*Renderer).syntaxSummary},
	{hasDescription, (*Renderer).description},
	{hasSyntaxDetails, (*Renderer).syntaxDetails},
	{hasInputs, (*Renderer).inputArguments},
	{hasNamedInputs, (*Renderer).nameValueArguments},
	{hasOutputs, (*Renderer).outputArguments},
	{always, (*Renderer).extraSections},
	{hasSeeAlso, (*Renderer).seeAlso},
}

var typeSkeleton = []pageSection{
	{always, (*Renderer).header},
	{hasDescription, (*Renderer).description},
	{hasConstructor, (*Renderer).creation},
	{hasFields, (*Renderer).properties},
	{hasMethods, (*Renderer).objectFunctions},
	{hasEvents, (*Renderer).events},
	{always, (*Renderer).extraSections},
	{hasSeeAlso, (*Renderer).seeAlso},
}

func always(*model.DeclarationUnit) bool { return true }

func hasSyntax(u *model.DeclarationUnit) bool      { return len(u.SyntaxEntries) > 0 }
func hasDescription(u *model.DeclarationUnit) bool { return u.Description != "" }
func hasInputs(u *model.DeclarationUnit) bool      { return len(u.Inputs) > 0 }
func hasNamedInputs(u *model.DeclarationUnit) bool { return len(u.NamedInputs) > 0 }
func hasOutputs(u *model.DeclarationUnit) bool     { return len(u.Outputs) > 0 }
func hasConstructor(u *model.DeclarationUnit) bool { return u.Constructor != nil }
func hasFields(u *model.DeclarationUnit) bool      { return len(u.Fields) > 0 }
func hasMethods(u *model.DeclarationUnit) bool     { return len(u.Methods) > 0 }
func hasEvents(u *model.DeclarationUnit) bool      { return len(u.Events) > 0 }
func hasSeeAlso(u *model.DeclarationUnit) bool     { return len(u.SeeAlso) > 0 }

func hasSyntaxDetails(u *model.DeclarationUnit) bool {
	for _, e := range u.SyntaxEntries {
		if e.Description != "" {
			return true
		}
	}
	return false
}

// Page renders a complete, self-contained HTML page for the unit.
// Rendering the same unit twice yields byte-identical output.
func (r *Renderer) Page(u *model.DeclarationUnit) string {
	r.usedMath = false
	r.ids = make(map[string]int, len(skeletonIDs))
	for _, id := range skeletonIDs {
		r.ids[id] = 1
	}

	skeleton := functionSkeleton
	if u.Kind == model.KindType {
		skeleton = typeSkeleton
	}

	var body strings.Builder
	for _, s := range skeleton {
		if s.applies(u) {
			s.render(r, &body, u)
		}
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString("<title>" + escape(u.Name) + "</title>\n")
	b.WriteString("<style>\n" + pageCSS + "</style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body.String())
	b.WriteString(collapsibleScript)
	if r.usedMath {
		b.WriteString(mathScript)
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func (r *Renderer) header(b *strings.Builder, u *model.DeclarationUnit) {
	b.WriteString(`<header><h1>` + escape(u.Name) + "</h1>\n")
	if u.Synopsis != "" {
		b.WriteString(`<p class="synopsis">` + r.inline(u.Synopsis) + "</p>\n")
	}
	b.WriteString("</header>\n")
}

// syntaxSummary renders the compact form list. Described forms link to
// their detail block; undescribed forms are plain text.
func (r *Renderer) syntaxSummary(b *strings.Builder, u *model.DeclarationUnit) {
	b.WriteString(`<section class="collapsible" id="syntax"><h2>Syntax</h2>` + "\n")
	b.WriteString(`<pre class="syntax-summary">`)
	for i, e := range u.SyntaxEntries {
		if e.Description != "" {
			fmt.Fprintf(b, `<a href="#syntax-desc-%d">%s</a>`, i, escape(e.Form))
		} else {
			b.WriteString(escape(e.Form))
		}
		b.WriteString("\n")
	}
	b.WriteString("</pre>\n</section>\n")
}

func (r *Renderer) description(b *strings.Builder, u *model.DeclarationUnit) {
	b.WriteString(`<section class="collapsible" id="description"><h2>Description</h2>` + "\n")
	b.WriteString(r.Markup(u.Description))
	b.WriteString("</section>\n")
}

func (r *Renderer) syntaxDetails(b *strings.Builder, u *model.DeclarationUnit) {
	b.WriteString(`<div class="syntax-details">` + "\n")
	for i, e := range u.SyntaxEntries {
		if e.Description == "" {
			continue
		}
		fmt.Fprintf(b, `<div class="syntax-desc" id="syntax-desc-%d">`, i)
		b.WriteString("<p><code>" + escape(e.Form) + "</code></p>\n")
		b.WriteString("<p>" + r.inline(e.Description) + "</p>\n")
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
}

func (r *Renderer) inputArguments(b *strings.Builder, u *model.DeclarationUnit) {
	r.memberSection(b, "input-arguments", "Input Arguments", u.Inputs, false)
}

func (r *Renderer) nameValueArguments(b *strings.Builder, u *model.DeclarationUnit) {
	r.memberSection(b, "name-value-arguments", "Name-Value Arguments", u.NamedInputs, false)
}

func (r *Renderer) outputArguments(b *strings.Builder, u *model.DeclarationUnit) {
	r.memberSection(b, "output-arguments", "Output Arguments", u.Outputs, false)
}

func (r *Renderer) properties(b *strings.Builder, u *model.DeclarationUnit) {
	r.memberSection(b, "properties", "Properties", u.Fields, true)
}

func (r *Renderer) memberSection(b *strings.Builder, id, title string, members []model.Member, grouped bool) {
	b.WriteString(`<section class="collapsible" id="` + id + `"><h2>` + title + "</h2>\n")
	prevGroup := ""
	for i := range members {
		m := &members[i]
		if grouped && m.Group != "" && m.Group != prevGroup {
			b.WriteString(`<h3 class="member-group">` + escape(m.Group) + "</h3>\n")
		}
		if grouped {
			prevGroup = m.Group
		}
		r.member(b, m)
	}
	b.WriteString("</section>\n")
}

func (r *Renderer) member(b *strings.Builder, m *model.Member) {
	b.WriteString(`<div class="member" id="member-` + escape(m.Name) + `">` + "\n")
	b.WriteString(`<h4><code>` + escape(m.Name) + "</code>")
	if m.ShortDescription != "" {
		b.WriteString(` <span class="member-short">` + r.inline(m.ShortDescription) + "</span>")
	}
	b.WriteString("</h4>\n")
	r.memberMeta(b, m)
	if m.LongDescription != "" && m.LongDescription != m.ShortDescription {
		b.WriteString(`<div class="member-desc">` + "\n")
		b.WriteString(r.Markup(m.LongDescription))
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
}

func (r *Renderer) memberMeta(b *strings.Builder, m *model.Member) {
	var parts []string
	if m.SizeConstraint != "" {
		parts = append(parts, "<code>("+escape(m.SizeConstraint)+")</code>")
	}
	if m.TypeConstraint != "" {
		parts = append(parts, "<code>"+escape(m.TypeConstraint)+"</code>")
	}
	if m.ValidatorText != "" {
		parts = append(parts, "<code>{"+escape(m.ValidatorText)+"}</code>")
	}
	if m.DefaultText != "" {
		parts = append(parts, "default: <code>"+escape(m.DefaultText)+"</code>")
	}
	var flags []string
	if m.ReadOnly {
		flags = append(flags, "read-only")
	}
	if m.Dependent {
		flags = append(flags, "dependent")
	}
	if m.Constant {
		flags = append(flags, "constant")
	}
	if m.Abstract {
		flags = append(flags, "abstract")
	}
	if len(flags) > 0 {
		parts = append(parts, `<span class="member-flags">`+strings.Join(flags, ", ")+"</span>")
	}
	if len(parts) > 0 {
		b.WriteString(`<p class="member-meta">` + strings.Join(parts, " ") + "</p>\n")
	}
}

// creation renders the type's constructor: its syntax forms, their
// descriptions, and the constructor's own arguments.
func (r *Renderer) creation(b *strings.Builder, u *model.DeclarationUnit) {
	c := u.Constructor
	b.WriteString(`<section class="collapsible" id="creation"><h2>Creation</h2>` + "\n")
	if c.Synopsis != "" {
		b.WriteString(`<p class="synopsis">` + r.inline(c.Synopsis) + "</p>\n")
	}
	b.WriteString(`<pre class="syntax-summary">`)
	for i, e := range c.SyntaxEntries {
		if e.Description != "" {
			fmt.Fprintf(b, `<a href="#ctor-desc-%d">%s</a>`, i, escape(e.Form))
		} else {
			b.WriteString(escape(e.Form))
		}
		b.WriteString("\n")
	}
	b.WriteString("</pre>\n")
	if c.Description != "" {
		b.WriteString(r.Markup(c.Description))
	}
	for i, e := range c.SyntaxEntries {
		if e.Description == "" {
			continue
		}
		fmt.Fprintf(b, `<div class="syntax-desc" id="ctor-desc-%d">`, i)
		b.WriteString("<p><code>" + escape(e.Form) + "</code></p>\n")
		b.WriteString("<p>" + r.inline(e.Description) + "</p>\n")
		b.WriteString("</div>\n")
	}
	if len(c.Inputs) > 0 {
		b.WriteString(`<h3>Input Arguments</h3>` + "\n")
		for i := range c.Inputs {
			r.member(b, &c.Inputs[i])
		}
	}
	if len(c.NamedInputs) > 0 {
		b.WriteString(`<h3>Name-Value Arguments</h3>` + "\n")
		for i := range c.NamedInputs {
			r.member(b, &c.NamedInputs[i])
		}
	}
	b.WriteString("</section>\n")
}

func (r *Renderer) objectFunctions(b *strings.Builder, u *model.DeclarationUnit) {
	b.WriteString(`<section class="collapsible" id="object-functions"><h2>Object Functions</h2>` + "\n")
	b.WriteString("<table class=\"function-table\">\n")
	for _, m := range u.Methods {
		b.WriteString("<tr><td><code>" + escape(m.Name) + "</code></td><td>" +
			r.inline(m.Synopsis) + "</td></tr>\n")
	}
	b.WriteString("</table>\n</section>\n")
}

func (r *Renderer) events(b *strings.Builder, u *model.DeclarationUnit) {
	b.WriteString(`<section class="collapsible" id="events"><h2>Events</h2>` + "\n")
	for _, e := range u.Events {
		b.WriteString(`<div class="member" id="event-` + escape(e.Name) + `">` + "\n")
		b.WriteString("<h4><code>" + escape(e.Name) + "</code>")
		if e.ShortDescription != "" {
			b.WriteString(` <span class="member-short">` + r.inline(e.ShortDescription) + "</span>")
		}
		b.WriteString("</h4>\n")
		if e.LongDescription != "" && e.LongDescription != e.ShortDescription {
			b.WriteString(r.Markup(e.LongDescription))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</section>\n")
}

// extraSections renders the remaining recognized sections in canonical
// order, then unrecognized sections in authoring order. Syntax and the
// member-category sections never render here; they feed the structured
// parts of the page.
func (r *Renderer) extraSections(b *strings.Builder, u *model.DeclarationUnit) {
	structural := map[string]bool{
		model.HeadingSyntax:         true,
		model.HeadingInputArguments: true,
		model.HeadingOutputArgs:     true,
		model.HeadingProperties:     true,
	}

	for _, h := range model.RecognizedHeadings {
		if structural[h] {
			continue
		}
		if content, ok := u.Section(h); ok {
			r.genericSection(b, h, content)
		}
	}
	for _, s := range u.Sections {
		if model.IsRecognizedHeading(s.Heading) {
			continue
		}
		r.genericSection(b, s.Heading, s.Content)
	}
}

func (r *Renderer) genericSection(b *strings.Builder, heading, content string) {
	b.WriteString(`<section class="collapsible" id="` + r.uniqueID(heading) + `"><h2>` +
		escape(heading) + "</h2>\n")
	b.WriteString(r.Markup(content))
	b.WriteString("</section>\n")
}

// Anchors the page skeletons emit directly; heading slugs must not reuse
// them.
var skeletonIDs = []string{
	"syntax", "description", "input-arguments", "name-value-arguments",
	"output-arguments", "creation", "properties", "object-functions",
	"events", "see-also",
}

func (r *Renderer) uniqueID(heading string) string {
	id := sectionID(heading)
	if id == "" {
		id = "section"
	}
	r.ids[id]++
	if n := r.ids[id]; n > 1 {
		return fmt.Sprintf("%s-%d", id, n)
	}
	return id
}

func sectionID(heading string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(heading) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteByte('-')
		}
	}
	return b.String()
}

func (r *Renderer) seeAlso(b *strings.Builder, u *model.DeclarationUnit) {
	b.WriteString(`<section class="collapsible" id="see-also"><h2>See Also</h2>` + "\n<p>")
	for i, name := range u.SeeAlso {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(r.xrefLink(name))
	}
	b.WriteString("</p>\n</section>\n")
}
