package cdl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dhamidi/cdl/cdl/parser"
)

// Semantic diagnostic codes. Syntax codes live in the parser package;
// everything here requires table lookups or cross-field knowledge.
const (
	CodeUnknownSystem           = "unknown-system"
	CodeUnknownPointGroup       = "unknown-point-group"
	CodePointGroupMismatch      = "point-group-mismatch"
	CodeUnknownForm             = "unknown-form"
	CodeBadMillerArity          = "bad-miller-arity"
	CodeExtremeScale            = "extreme-scale"
	CodeUnknownModification     = "unknown-modification"
	CodeUnknownTwinLaw          = "unknown-twin-law"
	CodeMissingScale            = "missing-scale"
	CodeUnknownAmorphousSubtype = "unknown-amorphous-subtype"
	CodeUnknownAmorphousShape   = "unknown-amorphous-shape"
	CodeUnknownArrangement      = "unknown-arrangement"
	CodeUnknownOrientation      = "unknown-orientation"
	CodeAggregateCountLarge     = "aggregate-count-large"
	CodeUnknownReference        = "unknown-reference"
)

// extremeScaleThreshold marks scales too small to render meaningfully.
const extremeScaleThreshold = 0.01

// aggregateCountLimit is where aggregate sizes start to look like
// typos rather than intent.
const aggregateCountLimit = 200

// ValidateLine checks a parsed line against the crystallographic
// tables. Syntax diagnostics from the parser are not repeated here;
// callers combine both sets.
func ValidateLine(line *parser.Line) []parser.Diagnostic {
	v := &validator{}
	switch {
	case line == nil:
	case line.Named != nil:
		v.forms("", line.Named.Forms)
	case line.Def != nil:
		v.definition(line.Def)
	}
	return v.diags
}

type validator struct {
	diags []parser.Diagnostic
}

func (v *validator) errorf(span parser.Span, code, suggestion, format string, args ...any) {
	v.add(parser.SeverityError, span, code, suggestion, format, args...)
}

func (v *validator) warnf(span parser.Span, code, suggestion, format string, args ...any) {
	v.add(parser.SeverityWarning, span, code, suggestion, format, args...)
}

func (v *validator) add(sev parser.Severity, span parser.Span, code, suggestion, format string, args ...any) {
	v.diags = append(v.diags, parser.Diagnostic{
		Severity:   sev,
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		Span:       span,
		Suggestion: suggestion,
	})
}

func (v *validator) definition(def *parser.Definition) {
	system := strings.ToLower(def.System.Literal)
	if def.Amorphous {
		v.amorphous(def)
		system = ""
	} else {
		if def.System.Kind == parser.TokenIdent && !IsSystem(system) {
			v.errorf(def.System.Span, CodeUnknownSystem,
				Suggest(system, SystemNames()),
				"unknown crystal system %q", def.System.Literal)
			system = ""
		}
		v.pointGroup(def, system)
	}

	v.forms(system, def.Forms)
	for _, mod := range def.Mods {
		v.modification(mod)
	}
	if def.Agg != nil {
		v.aggregate(def.Agg)
	}
}

func (v *validator) amorphous(def *parser.Definition) {
	if def.HasBracket && def.Designation.Literal != "" {
		subtype := strings.ToLower(def.Designation.Literal)
		if !AmorphousSubtypes[subtype] {
			v.warnf(def.Designation.Span, CodeUnknownAmorphousSubtype,
				SuggestSet(subtype, AmorphousSubtypes),
				"unknown amorphous subtype %q", def.Designation.Literal)
		}
	}
	for _, form := range def.Forms {
		if form.Kind != parser.FormShapes {
			continue
		}
		for _, shape := range form.Shapes {
			name := strings.ToLower(shape.Literal)
			if !AmorphousShapes[name] {
				v.warnf(shape.Span, CodeUnknownAmorphousShape,
					SuggestSet(name, AmorphousShapes),
					"unknown amorphous shape %q", shape.Literal)
			}
		}
	}
}

// pointGroup distinguishes globally unknown point groups from groups
// that exist but belong to a different system.
func (v *validator) pointGroup(def *parser.Definition, system string) {
	if !def.HasBracket || def.Designation.Literal == "" {
		// An omitted point group means the system default.
		return
	}
	pg := def.Designation.Literal
	if !AllPointGroups[pg] {
		v.errorf(def.Designation.Span, CodeUnknownPointGroup,
			SuggestSet(pg, AllPointGroups),
			"unknown point group %q", pg)
		return
	}
	if system == "" || PointGroupValid(system, pg) {
		return
	}
	v.errorf(def.Designation.Span, CodePointGroupMismatch, "",
		"point group %q is not valid for the %s system (valid: %s)",
		pg, system, strings.Join(PointGroupNames(system), ", "))
}

func (v *validator) forms(system string, forms []*parser.Form) {
	for _, form := range forms {
		switch form.Kind {
		case parser.FormNamed:
			name := strings.ToLower(form.Name.Literal)
			if _, ok := NamedForms[name]; !ok {
				v.errorf(form.Name.Span, CodeUnknownForm,
					Suggest(name, formNames()),
					"unknown form name %q", form.Name.Literal)
			}
		case parser.FormMiller:
			if system != "" {
				if want := MillerArity(system); len(form.Indices) != want {
					v.errorf(form.Span, CodeBadMillerArity, "",
						"%s expects %d Miller indices, got %d",
						system, want, len(form.Indices))
				}
			}
		}
		if form.Scale != nil && form.Scale.Valid {
			mag := form.Scale.Value
			if mag < 0 {
				mag = -mag
			}
			if mag < extremeScaleThreshold {
				v.warnf(form.Scale.Token.Span, CodeExtremeScale, "",
					"scale %v is too small to be visible", form.Scale.Value)
			}
		}
	}
	v.missingScale(forms)
}

// missingScale flags multi-form expressions where every form relies on
// the implicit default size.
func (v *validator) missingScale(forms []*parser.Form) {
	if len(forms) < 2 {
		return
	}
	for _, form := range forms {
		if form.Scale != nil {
			return
		}
	}
	span := parser.Span{Start: forms[0].Span.Start, End: forms[len(forms)-1].Span.End}
	v.warnf(span, CodeMissingScale, "",
		"combined forms have no explicit scale; relative sizes default to equal")
}

func (v *validator) modification(mod *parser.Modification) {
	name := strings.ToLower(mod.Name.Literal)
	if name == "" {
		return
	}
	if !Modifications[name] {
		v.errorf(mod.Name.Span, CodeUnknownModification,
			SuggestSet(name, Modifications),
			"unknown modification %q", mod.Name.Literal)
		return
	}
	if name != TwinModification {
		return
	}
	for _, arg := range mod.Args {
		if arg.HasKey {
			continue
		}
		law := strings.ToLower(arg.Value.Literal)
		if arg.Value.Kind == parser.TokenIdent && !TwinLaws[law] {
			v.errorf(arg.Value.Span, CodeUnknownTwinLaw,
				SuggestSet(law, TwinLaws),
				"unknown twin law %q", arg.Value.Literal)
		}
		// Only the first bare argument names the law; a trailing
		// number is the individual count.
		break
	}
}

func (v *validator) aggregate(agg *parser.Aggregate) {
	arrangement := strings.ToLower(agg.Arrangement.Literal)
	if arrangement != "" && !AggregateArrangements[arrangement] {
		v.errorf(agg.Arrangement.Span, CodeUnknownArrangement,
			SuggestSet(arrangement, AggregateArrangements),
			"unknown aggregate arrangement %q", agg.Arrangement.Literal)
	}
	if agg.CountValue > aggregateCountLimit {
		v.warnf(agg.Count.Span, CodeAggregateCountLarge, "",
			"aggregate of %d individuals is likely too large to render", agg.CountValue)
	}
	if agg.Orientation != nil {
		orientation := strings.ToLower(agg.Orientation.Literal)
		if !AggregateOrientations[orientation] {
			v.warnf(agg.Orientation.Span, CodeUnknownOrientation,
				SuggestSet(orientation, AggregateOrientations),
				"unknown aggregate orientation %q", agg.Orientation.Literal)
		}
	}
}

func formNames() []string {
	names := make([]string, 0, len(NamedForms))
	for name := range NamedForms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
