package cdl

import (
	"strings"

	"github.com/dhamidi/cdl/cdl/parser"
)

// Hover is a documentation snippet for the symbol under the cursor.
type Hover struct {
	// Markdown is the rendered documentation.
	Markdown string
	// Span is the source range the documentation applies to.
	Span parser.Span
}

// HoverAt returns documentation for the token at offset, or nil when
// nothing under the cursor has any.
func HoverAt(line string, parsed *parser.Line, offset int) *Hover {
	slot := ResolveSlot(line, parsed, offset)
	if slot.Text == "" {
		return nil
	}
	key := strings.ToLower(slot.Text)

	var doc string
	switch slot.Kind {
	case SlotSystem:
		doc = SystemDocs[key]
		if doc == "" && key == AmorphousKeyword {
			doc = amorphousKeywordDoc
		}
	case SlotPointGroup:
		doc = PointGroupDocs[slot.Text]
	case SlotForm:
		doc = FormDocs[key]
	case SlotNamedFormOrMiller:
		doc = millerHover(slot)
	case SlotModificationName:
		doc = ModificationDocs[key]
	case SlotTwinLawName:
		doc = TwinLawDocs[key]
	case SlotAmorphousSubtype:
		doc = AmorphousSubtypeDocs[key]
	case SlotAmorphousShape:
		doc = AmorphousShapeDocs[key]
	case SlotArrangement:
		doc = AggregateArrangementDocs[key]
	case SlotOrientation:
		doc = AggregateOrientationDocs[key]
	}
	if doc == "" {
		return nil
	}
	return &Hover{Markdown: doc, Span: slot.Span}
}

func millerHover(slot Slot) string {
	text := strings.Trim(slot.Text, "{}")
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("**Miller Index** {")
	b.WriteString(text)
	b.WriteString("}")
	if slot.System != "" {
		b.WriteString("\n\nFace symbol in the ")
		b.WriteString(slot.System)
		b.WriteString(" system")
		if FourIndexSystem(slot.System) {
			b.WriteString(" (Miller-Bravais, four indices)")
		}
		b.WriteString(".")
	}
	return b.String()
}

const amorphousKeywordDoc = `**Amorphous**

Non-crystalline material with no long-range atomic order. Takes an
optional subtype in brackets and a shape list in braces.

Example: ` + "`amorphous[opalescent]:{massive, botryoidal}`"
