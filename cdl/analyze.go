package cdl

import (
	"sort"
	"strings"

	"github.com/dhamidi/cdl/cdl/parser"
)

// Location points at a span on a specific line of a document. Lines
// are zero-based; spans are byte offsets within the line.
type Location struct {
	Line int
	Span parser.Span
}

// DocDiagnostic is a diagnostic tagged with its line number.
type DocDiagnostic struct {
	Line int
	parser.Diagnostic
}

// LineResult holds everything derived from a single source line.
type LineResult struct {
	Number int
	Text   string
	Tree   *parser.Line
	Diags  []parser.Diagnostic
}

// Analysis is the full result of analyzing one document.
type Analysis struct {
	Lines []*LineResult
	// Definitions maps @definition names to where they are declared.
	Definitions map[string]Location
	Diags       []DocDiagnostic
}

// Analyze parses and validates every line of the document, then
// resolves $references against the @definitions in scope. Blank and
// comment-only lines produce no results.
func Analyze(text string) *Analysis {
	a := &Analysis{Definitions: make(map[string]Location)}
	for number, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		tree, diags := parser.ParseLine(raw)
		diags = append(diags, ValidateLine(tree)...)
		result := &LineResult{Number: number, Text: raw, Tree: tree, Diags: diags}
		a.Lines = append(a.Lines, result)
		if tree != nil && tree.Named != nil && tree.Named.Name.Literal != "" {
			name := tree.Named.Name.Literal
			if _, seen := a.Definitions[name]; !seen {
				a.Definitions[name] = Location{Line: number, Span: tree.Named.Name.Span}
			}
		}
	}
	a.resolveReferences()
	for _, result := range a.Lines {
		for _, diag := range result.Diags {
			a.Diags = append(a.Diags, DocDiagnostic{Line: result.Number, Diagnostic: diag})
		}
	}
	return a
}

// resolveReferences flags $references to names never defined with @.
func (a *Analysis) resolveReferences() {
	for _, result := range a.Lines {
		for _, form := range lineForms(result.Tree) {
			if form.Kind != parser.FormReference {
				continue
			}
			name := form.Name.Literal
			if name == "" {
				continue
			}
			if _, ok := a.Definitions[name]; !ok {
				result.Diags = append(result.Diags, parser.Diagnostic{
					Severity:   parser.SeverityError,
					Code:       CodeUnknownReference,
					Message:    "reference to undefined name $" + name,
					Span:       form.Name.Span,
					Suggestion: Suggest(name, a.DefinitionNames()),
				})
			}
		}
	}
}

// DefinitionNames returns declared @definition names in sorted order.
func (a *Analysis) DefinitionNames() []string {
	names := make([]string, 0, len(a.Definitions))
	for name := range a.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Line returns the analysis result for a line number, or nil.
func (a *Analysis) Line(number int) *LineResult {
	for _, result := range a.Lines {
		if result.Number == number {
			return result
		}
	}
	return nil
}

// DefinitionAt resolves go-to-definition: when the offset sits on a
// $reference, it returns the location of the matching @definition.
func (a *Analysis) DefinitionAt(line, offset int) (Location, bool) {
	result := a.Line(line)
	if result == nil {
		return Location{}, false
	}
	slot := ResolveSlot(result.Text, result.Tree, offset)
	if slot.Kind != SlotReference {
		return Location{}, false
	}
	loc, ok := a.Definitions[slot.Text]
	return loc, ok
}

func lineForms(tree *parser.Line) []*parser.Form {
	switch {
	case tree == nil:
		return nil
	case tree.Def != nil:
		return tree.Def.Forms
	case tree.Named != nil:
		return tree.Named.Forms
	}
	return nil
}
