package cdl

import (
	"strings"

	"github.com/dhamidi/cdl/cdl/parser"
)

// FormatLine renders a line in canonical form: lowercase system, no
// space around brackets and colons, single spaces around the +, >, |
// and ~ operators. Lines with syntax errors come back unchanged so a
// formatter never destroys text the parser could not understand.
func FormatLine(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return text, false
	}
	tree, diags := parser.ParseLine(text)
	for _, diag := range diags {
		if diag.Severity == parser.SeverityError {
			return text, false
		}
	}
	var b strings.Builder
	switch {
	case tree.Named != nil:
		b.WriteString("@")
		b.WriteString(tree.Named.Name.Literal)
		b.WriteString(" = ")
		writeForms(&b, tree.Named.Forms)
	case tree.Def != nil:
		writeDefinition(&b, tree.Def)
	default:
		return text, false
	}
	formatted := b.String()
	return formatted, formatted != text
}

// FormatDocument formats every line, leaving blanks and comments
// alone.
func FormatDocument(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if formatted, changed := FormatLine(line); changed {
			lines[i] = formatted
		}
	}
	return strings.Join(lines, "\n")
}

func writeDefinition(b *strings.Builder, def *parser.Definition) {
	b.WriteString(strings.ToLower(def.System.Literal))
	if def.HasBracket {
		b.WriteString("[")
		b.WriteString(def.Designation.Literal)
		b.WriteString("]")
	}
	b.WriteString(":")
	writeForms(b, def.Forms)
	for _, mod := range def.Mods {
		writeModification(b, mod)
	}
	if def.Agg != nil {
		writeAggregate(b, def.Agg)
	}
}

func writeForms(b *strings.Builder, forms []*parser.Form) {
	for i, form := range forms {
		if i > 0 {
			if form.Growth {
				b.WriteString(" > ")
			} else {
				b.WriteString(" + ")
			}
		}
		writeForm(b, form)
	}
}

func writeForm(b *strings.Builder, form *parser.Form) {
	switch form.Kind {
	case parser.FormNamed:
		b.WriteString(strings.ToLower(form.Name.Literal))
	case parser.FormReference:
		b.WriteString("$")
		b.WriteString(form.Name.Literal)
	case parser.FormMiller:
		b.WriteString("{")
		b.WriteString(MillerString(form.Indices))
		b.WriteString("}")
	case parser.FormShapes:
		b.WriteString("{")
		for i, shape := range form.Shapes {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strings.ToLower(shape.Literal))
		}
		b.WriteString("}")
	}
	if form.Scale != nil && form.Scale.Valid {
		b.WriteString("@")
		b.WriteString(form.Scale.Token.Literal)
	}
}

func writeModification(b *strings.Builder, mod *parser.Modification) {
	b.WriteString(" | ")
	b.WriteString(strings.ToLower(mod.Name.Literal))
	if len(mod.Args) == 0 {
		return
	}
	b.WriteString("(")
	for i, arg := range mod.Args {
		if i > 0 {
			b.WriteString(",")
		}
		if arg.HasKey {
			b.WriteString(arg.Key.Literal)
			b.WriteString(":")
		}
		b.WriteString(arg.Value.Literal)
	}
	b.WriteString(")")
}

func writeAggregate(b *strings.Builder, agg *parser.Aggregate) {
	b.WriteString(" ~ ")
	b.WriteString(strings.ToLower(agg.Arrangement.Literal))
	b.WriteString("[")
	b.WriteString(agg.Count.Literal)
	b.WriteString("]")
	if agg.Orientation != nil {
		b.WriteString("[")
		b.WriteString(agg.Orientation.Literal)
		b.WriteString("]")
	}
}
