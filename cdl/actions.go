package cdl

import (
	"fmt"

	"github.com/dhamidi/cdl/cdl/parser"
)

// CodeAction is a single textual fix: replace Span with NewText. A
// zero-length span is an insertion.
type CodeAction struct {
	Title string
	Span  parser.Span
	// NewText replaces the span's text.
	NewText string
	// Code is the diagnostic code the action fixes.
	Code string
}

// ActionsFor derives fixes from diagnostics. Suggestion-carrying
// diagnostics become replacements; structural ones get a
// normalization action instead.
func ActionsFor(line string, parsed *parser.Line, diags []parser.Diagnostic) []CodeAction {
	var actions []CodeAction
	for _, diag := range diags {
		switch {
		case diag.Suggestion != "":
			actions = append(actions, CodeAction{
				Title:   fmt.Sprintf("Change to %q", diag.Suggestion),
				Span:    diag.Span,
				NewText: diag.Suggestion,
				Code:    diag.Code,
			})
		case diag.Code == CodeBadMillerArity:
			if action, ok := millerArityFix(parsed, diag); ok {
				actions = append(actions, action)
			}
		case diag.Code == CodeMissingScale:
			if action, ok := missingScaleFix(parsed); ok {
				actions = append(actions, action)
			}
		}
	}
	return actions
}

// millerArityFix pads short index lists with zeros and truncates long
// ones toward the arity the system expects.
func millerArityFix(parsed *parser.Line, diag parser.Diagnostic) (CodeAction, bool) {
	if parsed == nil || parsed.Def == nil {
		return CodeAction{}, false
	}
	system := systemOf(parsed.Def)
	if system == "" {
		return CodeAction{}, false
	}
	form := millerFormAt(parsed.Def.Forms, diag.Span)
	if form == nil {
		return CodeAction{}, false
	}
	want := MillerArity(system)
	indices := make([]int, len(form.Indices))
	copy(indices, form.Indices)
	for len(indices) < want {
		indices = append(indices, 0)
	}
	indices = indices[:want]
	text := "{" + MillerString(indices) + "}"
	return CodeAction{
		Title:   fmt.Sprintf("Rewrite as %s", text),
		Span:    form.Span,
		NewText: text,
		Code:    CodeBadMillerArity,
	}, true
}

func millerFormAt(forms []*parser.Form, span parser.Span) *parser.Form {
	for _, form := range forms {
		if form.Kind == parser.FormMiller && form.Span == span {
			return form
		}
	}
	return nil
}

// missingScaleFix appends an explicit scale to the first form so the
// remaining forms can be sized relative to it.
func missingScaleFix(parsed *parser.Line) (CodeAction, bool) {
	var forms []*parser.Form
	switch {
	case parsed == nil:
		return CodeAction{}, false
	case parsed.Def != nil:
		forms = parsed.Def.Forms
	case parsed.Named != nil:
		forms = parsed.Named.Forms
	}
	if len(forms) == 0 {
		return CodeAction{}, false
	}
	at := forms[0].Span.End
	return CodeAction{
		Title:   "Add explicit scale @1.0",
		Span:    parser.Span{Start: at, End: at},
		NewText: "@1.0",
		Code:    CodeMissingScale,
	}, true
}

func systemOf(def *parser.Definition) string {
	if def.Amorphous || def.System.Kind != parser.TokenIdent {
		return ""
	}
	name := def.System.Literal
	if !IsSystem(name) {
		return ""
	}
	return name
}
