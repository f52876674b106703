package cdl

import (
	"strings"

	"github.com/dhamidi/cdl/cdl/parser"
)

// SlotKind names the grammatical category a cursor offset falls
// within. Completion and hover dispatch on it.
type SlotKind int

const (
	SlotUnknown SlotKind = iota
	SlotSystem
	SlotPointGroup
	SlotForm
	SlotNamedFormOrMiller
	SlotModificationName
	SlotModificationArgument
	SlotTwinLawName
	SlotScale
	SlotAmorphousSubtype
	SlotAmorphousShape
	SlotArrangement
	SlotOrientation
	SlotReference
	SlotDefinitionName
)

var slotKindNames = map[SlotKind]string{
	SlotUnknown:              "Unknown",
	SlotSystem:               "System",
	SlotPointGroup:           "PointGroup",
	SlotForm:                 "Form",
	SlotNamedFormOrMiller:    "NamedFormOrMiller",
	SlotModificationName:     "ModificationName",
	SlotModificationArgument: "ModificationArgument",
	SlotTwinLawName:          "TwinLawName",
	SlotScale:                "Scale",
	SlotAmorphousSubtype:     "AmorphousSubtype",
	SlotAmorphousShape:       "AmorphousShape",
	SlotArrangement:          "Arrangement",
	SlotOrientation:          "Orientation",
	SlotReference:            "Reference",
	SlotDefinitionName:       "DefinitionName",
}

func (k SlotKind) String() string {
	if name, ok := slotKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Slot is the resolved classification at a cursor offset.
type Slot struct {
	Kind SlotKind
	// Span covers the token or node the offset falls in; zero when
	// the offset sits in empty space.
	Span parser.Span
	// Text is the source text under the span.
	Text string
	// System carries the line's crystal system (lowercased) when one
	// was parsed, so candidates can be filtered by it.
	System string
	// Amorphous is set for amorphous lines.
	Amorphous bool
}

// ResolveSlot classifies the offset against the parsed line. The
// smallest covering span wins; at a boundary between two spans the
// later-starting one is chosen, which matches what the user is about
// to type rather than what they just finished.
func ResolveSlot(line string, parsed *parser.Line, offset int) Slot {
	r := &slotResolver{line: line, offset: offset}
	if parsed != nil {
		switch {
		case parsed.Named != nil:
			r.namedDef(parsed.Named)
		case parsed.Def != nil:
			r.definition(parsed.Def)
		}
	}
	if r.best.Kind == SlotUnknown {
		r.fallback()
	}
	return r.best
}

type slotResolver struct {
	line    string
	offset  int
	best    Slot
	bestLen int
	found   bool
	system  string
	amorph  bool
}

// covers treats spans as half-open but additionally accepts an offset
// sitting exactly at the end, so a cursor just past the final typed
// character still resolves.
func (r *slotResolver) covers(span parser.Span) bool {
	return span.Start <= r.offset && r.offset <= span.End
}

func (r *slotResolver) consider(kind SlotKind, span parser.Span) {
	if !r.covers(span) {
		return
	}
	length := span.Len()
	// Prefer smaller spans; on equal size prefer the later start,
	// which wins boundary ties.
	if r.found && (length > r.bestLen || (length == r.bestLen && span.Start < r.best.Span.Start)) {
		return
	}
	r.found = true
	r.bestLen = length
	r.best = Slot{
		Kind:      kind,
		Span:      span,
		Text:      r.textAt(span),
		System:    r.system,
		Amorphous: r.amorph,
	}
}

func (r *slotResolver) textAt(span parser.Span) string {
	start, end := span.Start, span.End
	if start < 0 || end > len(r.line) || start > end {
		return ""
	}
	return r.line[start:end]
}

func (r *slotResolver) namedDef(def *parser.NamedDef) {
	r.consider(SlotDefinitionName, def.Name.Span)
	r.formList(def.Forms)
}

func (r *slotResolver) definition(def *parser.Definition) {
	r.amorph = def.Amorphous
	if !def.Amorphous {
		r.system = strings.ToLower(def.System.Literal)
	}

	r.consider(SlotSystem, def.System.Span)
	if def.HasBracket && def.Designation.Literal != "" {
		kind := SlotPointGroup
		if def.Amorphous {
			kind = SlotAmorphousSubtype
		}
		r.consider(kind, def.Designation.Span)
	}
	r.formList(def.Forms)
	for _, mod := range def.Mods {
		r.modification(mod)
	}
	if def.Agg != nil {
		r.aggregate(def.Agg)
	}
}

func (r *slotResolver) formList(forms []*parser.Form) {
	for _, form := range forms {
		r.form(form)
	}
}

func (r *slotResolver) form(form *parser.Form) {
	switch form.Kind {
	case parser.FormNamed:
		r.consider(SlotForm, form.Name.Span)
	case parser.FormReference:
		if form.Name.Literal != "" {
			r.consider(SlotReference, form.Name.Span)
		}
	case parser.FormMiller:
		kind := SlotNamedFormOrMiller
		if r.amorph {
			kind = SlotAmorphousShape
		}
		r.consider(kind, form.Span)
		for _, digit := range form.Digits {
			r.consider(kind, digit.Span)
		}
	case parser.FormShapes:
		if r.amorph {
			r.consider(SlotAmorphousShape, form.Span)
			for _, shape := range form.Shapes {
				r.consider(SlotAmorphousShape, shape.Span)
			}
		} else {
			r.consider(SlotNamedFormOrMiller, form.Span)
		}
	}
	if form.Scale != nil {
		r.consider(SlotScale, form.Scale.Token.Span)
	}
}

func (r *slotResolver) modification(mod *parser.Modification) {
	if mod.Name.Literal != "" {
		r.consider(SlotModificationName, mod.Name.Span)
	}
	isTwin := strings.EqualFold(mod.Name.Literal, TwinModification)
	for i, arg := range mod.Args {
		kind := SlotModificationArgument
		if isTwin && i == 0 && !arg.HasKey {
			kind = SlotTwinLawName
		}
		r.consider(kind, arg.Span)
	}
}

func (r *slotResolver) aggregate(agg *parser.Aggregate) {
	if agg.Arrangement.Literal != "" {
		r.consider(SlotArrangement, agg.Arrangement.Span)
	}
	if agg.Orientation != nil {
		r.consider(SlotOrientation, agg.Orientation.Span)
	}
}

// fallback classifies offsets the tree does not cover by looking at
// the tokens to the left, so incomplete input like "cubic[" still
// resolves to a useful slot.
func (r *slotResolver) fallback() {
	tokens := parser.Tokenize(r.line)
	var prev *parser.Token
	for i := range tokens {
		tok := &tokens[i]
		if tok.Span.Start >= r.offset {
			break
		}
		prev = tok
	}
	if prev == nil {
		return
	}
	slot := Slot{Kind: SlotUnknown, Span: parser.Span{Start: r.offset, End: r.offset}, System: r.system, Amorphous: r.amorph}
	switch prev.Kind {
	case parser.TokenLBracket:
		slot.Kind = SlotPointGroup
		if r.amorph {
			slot.Kind = SlotAmorphousSubtype
		}
	case parser.TokenLBrace:
		slot.Kind = SlotNamedFormOrMiller
		if r.amorph {
			slot.Kind = SlotAmorphousShape
		}
	case parser.TokenColon, parser.TokenPlus, parser.TokenGreater:
		slot.Kind = SlotForm
	case parser.TokenPipe:
		slot.Kind = SlotModificationName
	case parser.TokenLParen, parser.TokenComma:
		slot.Kind = SlotModificationArgument
	case parser.TokenAt:
		slot.Kind = SlotScale
	case parser.TokenTilde:
		slot.Kind = SlotArrangement
	case parser.TokenDollar:
		slot.Kind = SlotReference
	}
	if slot.Kind != SlotUnknown {
		r.best = slot
	}
}
