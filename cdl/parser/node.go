package parser

// Severity ranks a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	}
	return "unknown"
}

// Diagnostic is a structured finding over one line. Code is a stable
// machine-readable identifier; consumers select fix strategies by Code,
// never by inspecting Message. Suggestion, when non-empty, is a
// replacement for the text covered by Span.
type Diagnostic struct {
	Severity   Severity
	Code       string
	Message    string
	Span       Span
	Suggestion string
}

// Syntax diagnostic codes produced by the parser.
const (
	CodeExpectedSystem     = "expected-system"
	CodeMissingColon       = "missing-colon"
	CodeMissingForm        = "missing-form"
	CodeUnclosedBracket    = "unclosed-bracket"
	CodeUnclosedBrace      = "unclosed-brace"
	CodeUnclosedParen      = "unclosed-paren"
	CodeEmptyMiller        = "empty-miller"
	CodeBadScale           = "bad-scale"
	CodeBadAggregateCount  = "bad-aggregate-count"
	CodeExpectedName       = "expected-name"
	CodeUnexpectedToken    = "unexpected-token"
	CodeMissingModName     = "missing-modification-name"
	CodeMissingArrangement = "missing-arrangement"
)

// Line is one parsed line of CDL. Exactly one of Def and Named is set
// for a non-empty line; both are nil for blank and comment lines.
type Line struct {
	Def   *Definition
	Named *NamedDef
	Span  Span
}

// Definition is a crystal (or amorphous) description:
// system '[' designation ']' ':' forms modifications aggregate.
type Definition struct {
	System      Token
	Designation Token // point group, or amorphous subtype
	HasBracket  bool
	Amorphous   bool
	Forms       []*Form
	Mods        []*Modification
	Agg         *Aggregate
	Span        Span
}

// NamedDef is a reusable body: '@' name '=' forms.
type NamedDef struct {
	Name  Token
	Forms []*Form
	Span  Span
}

type FormKind int

const (
	FormNamed FormKind = iota
	FormMiller
	FormReference
	FormShapes
)

// Form is one face set in a form expression. Exactly one of Name,
// Digits, or Shapes carries content depending on Kind. Growth marks a
// form introduced by the '>' overgrowth operator rather than '+'.
type Form struct {
	Kind    FormKind
	Name    Token
	Digits  []Token
	Indices []int
	Shapes  []Token
	Scale   *Scale
	Growth  bool
	Span    Span
}

// Scale is the optional '@' factor after a form. Valid is false when
// the numeric text did not parse; the token is still recorded so spans
// survive for diagnostics.
type Scale struct {
	Token Token
	Value float64
	Valid bool
}

type Modification struct {
	Name Token
	Args []Argument
	Span Span
}

// Argument is either a bare value (twin law name, count) or a
// key:value pair (axis letter to factor).
type Argument struct {
	Key    Token
	HasKey bool
	Value  Token
	Span   Span
}

// Aggregate is the '~' clause: arrangement '[' count ']' ('[' orientation ']')?.
type Aggregate struct {
	Arrangement Token
	Count       Token
	CountValue  int
	Orientation *Token
	Span        Span
}
