package cdl

import (
	"strings"

	"github.com/dhamidi/cdl/cdl/parser"
)

// SymbolKind classifies outline entries.
type SymbolKind int

const (
	SymbolCrystal SymbolKind = iota
	SymbolDefinition
	SymbolForm
	SymbolModification
)

// Symbol is one entry in the document outline.
type Symbol struct {
	Name     string
	Detail   string
	Kind     SymbolKind
	Line     int
	Span     parser.Span
	Children []Symbol
}

// Symbols builds the document outline: one top-level entry per
// definition line, with the forms it combines as children.
func (a *Analysis) Symbols() []Symbol {
	var symbols []Symbol
	for _, result := range a.Lines {
		tree := result.Tree
		switch {
		case tree == nil:
		case tree.Named != nil:
			symbols = append(symbols, namedSymbol(result, tree.Named))
		case tree.Def != nil:
			symbols = append(symbols, definitionSymbol(result, tree.Def))
		}
	}
	return symbols
}

func namedSymbol(result *LineResult, def *parser.NamedDef) Symbol {
	detail := strings.TrimSpace(result.Text)
	if eq := strings.IndexByte(detail, '='); eq >= 0 {
		detail = "Definition: " + strings.TrimSpace(detail[eq+1:])
	}
	return Symbol{
		Name:     "@" + def.Name.Literal,
		Detail:   detail,
		Kind:     SymbolDefinition,
		Line:     result.Number,
		Span:     def.Span,
		Children: formSymbols(result, def.Forms),
	}
}

func definitionSymbol(result *LineResult, def *parser.Definition) Symbol {
	name := def.System.Literal
	if def.HasBracket && def.Designation.Literal != "" {
		name += "[" + def.Designation.Literal + "]"
	}
	detail := ""
	if def.Agg != nil && def.Agg.Arrangement.Literal != "" {
		detail = "~" + def.Agg.Arrangement.Literal
	}
	children := formSymbols(result, def.Forms)
	children = append(children, modificationSymbols(result, def.Mods)...)
	return Symbol{
		Name:     name,
		Detail:   detail,
		Kind:     SymbolCrystal,
		Line:     result.Number,
		Span:     def.Span,
		Children: children,
	}
}

func modificationSymbols(result *LineResult, mods []*parser.Modification) []Symbol {
	var symbols []Symbol
	for _, mod := range mods {
		if mod.Name.Literal == "" {
			continue
		}
		detail := ""
		if len(mod.Args) > 0 {
			parts := make([]string, 0, len(mod.Args))
			for _, arg := range mod.Args {
				if arg.HasKey {
					parts = append(parts, arg.Key.Literal+":"+arg.Value.Literal)
				} else {
					parts = append(parts, arg.Value.Literal)
				}
			}
			detail = "(" + strings.Join(parts, ",") + ")"
		}
		symbols = append(symbols, Symbol{
			Name:   "|" + mod.Name.Literal,
			Detail: detail,
			Kind:   SymbolModification,
			Line:   result.Number,
			Span:   mod.Span,
		})
	}
	return symbols
}

func formSymbols(result *LineResult, forms []*parser.Form) []Symbol {
	var symbols []Symbol
	for _, form := range forms {
		name := formLabel(form)
		if name == "" {
			continue
		}
		detail := ""
		if form.Scale != nil && form.Scale.Valid {
			detail = "@" + form.Scale.Token.Literal
		}
		if form.Growth {
			detail = strings.TrimSpace("overgrowth " + detail)
		}
		symbols = append(symbols, Symbol{
			Name:   name,
			Detail: detail,
			Kind:   SymbolForm,
			Line:   result.Number,
			Span:   form.Span,
		})
	}
	return symbols
}

func formLabel(form *parser.Form) string {
	switch form.Kind {
	case parser.FormNamed:
		return form.Name.Literal
	case parser.FormReference:
		return "$" + form.Name.Literal
	case parser.FormMiller:
		return "{" + MillerString(form.Indices) + "}"
	case parser.FormShapes:
		names := make([]string, 0, len(form.Shapes))
		for _, shape := range form.Shapes {
			names = append(names, shape.Literal)
		}
		return "{" + strings.Join(names, ", ") + "}"
	}
	return ""
}
