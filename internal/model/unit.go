package model

// UnitKind discriminates the two documentable declaration forms.
type UnitKind string

const (
	KindFunction UnitKind = "function"
	KindType     UnitKind = "type"
)

// SyntaxSource records which resolution tier produced the syntax entries.
// Exactly one tier supplies the entries for a unit; tiers are never blended.
type SyntaxSource string

const (
	SyntaxExplicitSection  SyntaxSource = "explicit_section"
	SyntaxDescriptionForms SyntaxSource = "description_forms"
	SyntaxAutoGenerated    SyntaxSource = "auto_generated"
	SyntaxLegacyFallback   SyntaxSource = "legacy_fallback"
)

// SyntaxEntry is one calling form plus its optional description.
// Order is authoring or generation order and is never resorted.
type SyntaxEntry struct {
	Form        string `json:"form"`
	Description string `json:"description,omitempty"`
}

// Section is a named block of documentation content introduced by a
// second-level heading. Content is raw markup, rendered later.
type Section struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// Member is a positional parameter, named parameter, output parameter,
// or field. LongDescription comes from exactly one source (keyed section
// entry, preceding comment run, or the trailing comment reused), never a
// concatenation.
type Member struct {
	Name             string `json:"name"`
	SizeConstraint   string `json:"size_constraint,omitempty"`
	TypeConstraint   string `json:"type_constraint,omitempty"`
	DefaultText      string `json:"default_text,omitempty"`
	ValidatorText    string `json:"validator_text,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
	LongDescription  string `json:"long_description,omitempty"`

	// Field-only flags.
	Group     string `json:"group,omitempty"`
	ReadOnly  bool   `json:"read_only,omitempty"`
	Dependent bool   `json:"dependent,omitempty"`
	Constant  bool   `json:"constant,omitempty"`
	Abstract  bool   `json:"abstract,omitempty"`
}

// MethodSummary is one visible member function of a type: its own fully
// parsed unit plus the name/synopsis pair shown in the owning type's table.
type MethodSummary struct {
	Name     string          `json:"name"`
	Synopsis string          `json:"synopsis,omitempty"`
	Group    string          `json:"group,omitempty"`
	Unit     DeclarationUnit `json:"unit"`
}

// Event is a named notification a type can raise.
type Event struct {
	Name             string `json:"name"`
	ShortDescription string `json:"short_description,omitempty"`
	LongDescription  string `json:"long_description,omitempty"`
	Group            string `json:"group,omitempty"`
}

// DeclarationUnit is one parsed function or structured type. A type unit
// exclusively owns its constructor and method units by value; nested units
// reference other units by name only, never by pointer.
type DeclarationUnit struct {
	Kind          UnitKind      `json:"kind"`
	Name          string        `json:"name"`
	SignatureText string        `json:"signature_text"`
	OutputNames   []string      `json:"output_names,omitempty"`
	Synopsis      string        `json:"synopsis,omitempty"`
	Description   string        `json:"description,omitempty"`
	Sections      []Section     `json:"sections,omitempty"`
	SeeAlso       []string      `json:"see_also,omitempty"`
	SyntaxEntries []SyntaxEntry `json:"syntax_entries,omitempty"`
	SyntaxSource  SyntaxSource  `json:"syntax_source"`

	Inputs      []Member `json:"inputs,omitempty"`
	NamedInputs []Member `json:"named_inputs,omitempty"`
	Outputs     []Member `json:"outputs,omitempty"`

	// Type-only members.
	Fields      []Member         `json:"fields,omitempty"`
	Constructor *DeclarationUnit `json:"constructor,omitempty"`
	Methods     []MethodSummary  `json:"methods,omitempty"`
	Events      []Event          `json:"events,omitempty"`
}

// Section returns the content of the named section and whether it exists.
// Lookup uses the last occurrence of the heading.
func (u *DeclarationUnit) Section(heading string) (string, bool) {
	for i := len(u.Sections) - 1; i >= 0; i-- {
		if u.Sections[i].Heading == heading {
			return u.Sections[i].Content, true
		}
	}
	return "", false
}

// Recognized second-level headings that receive specialized rendering.
// Any other heading renders generically.
const (
	HeadingSyntax         = "Syntax"
	HeadingInputArguments = "Input Arguments"
	HeadingOutputArgs     = "Output Arguments"
	HeadingExamples       = "Examples"
	HeadingTips           = "Tips"
	HeadingAlgorithms     = "Algorithms"
	HeadingReferences     = "References"
	HeadingVersionHistory = "Version History"
	HeadingMoreAbout      = "More About"
	HeadingProperties     = "Properties"
)

// RecognizedHeadings lists the specialized headings in their canonical
// page order.
var RecognizedHeadings = []string{
	HeadingSyntax,
	HeadingInputArguments,
	HeadingOutputArgs,
	HeadingProperties,
	HeadingExamples,
	HeadingTips,
	HeadingAlgorithms,
	HeadingReferences,
	HeadingVersionHistory,
	HeadingMoreAbout,
}

// IsRecognizedHeading reports whether h is in the specialized set.
// The match is exact and case-sensitive.
func IsRecognizedHeading(h string) bool {
	for _, r := range RecognizedHeadings {
		if h == r {
			return true
		}
	}
	return false
}
