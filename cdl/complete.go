package cdl

import (
	"strings"

	"github.com/dhamidi/cdl/cdl/parser"
)

// CompletionItem is one candidate offered at the cursor.
type CompletionItem struct {
	// Label is what the editor shows.
	Label string
	// InsertText is what gets inserted; empty means the label.
	InsertText string
	// Detail is a short one-line annotation.
	Detail string
	// Doc is longer markdown documentation.
	Doc string
}

// Preset is a canned notation snippet, typically a mineral habit,
// provided by an external lookup.
type Preset struct {
	Name          string
	ExpansionText string
	Description   string
}

// PresetsLookup supplies preset snippets by name prefix. Implementations
// are read-only; a nil lookup means presets are simply not offered.
type PresetsLookup interface {
	LookupByPrefix(prefix string) []Preset
}

// CompleteAt enumerates candidates for the slot at offset. For
// point-group and form slots the candidates are filtered by the
// system already chosen on the line. definitions holds the names of
// @definitions in scope, offered for $reference slots. presets, when
// non-nil, contributes whole-expression snippets at the start of a
// line.
func CompleteAt(line string, parsed *parser.Line, offset int, definitions []string, presets PresetsLookup) []CompletionItem {
	slot := ResolveSlot(line, parsed, offset)
	switch slot.Kind {
	case SlotSystem:
		return append(systemCompletions(), presetCompletions(presets, slot.Text)...)
	case SlotPointGroup:
		return pointGroupCompletions(slot.System)
	case SlotForm:
		return formCompletions(slot.System, definitions)
	case SlotNamedFormOrMiller:
		return millerCompletions(slot.System)
	case SlotModificationName:
		return docCompletions(Modifications, ModificationDocs, "modification")
	case SlotTwinLawName:
		return docCompletions(TwinLaws, TwinLawDocs, "twin law")
	case SlotModificationArgument:
		return axisCompletions()
	case SlotScale:
		return scaleCompletions()
	case SlotAmorphousSubtype:
		return docCompletions(AmorphousSubtypes, AmorphousSubtypeDocs, "amorphous subtype")
	case SlotAmorphousShape:
		return docCompletions(AmorphousShapes, AmorphousShapeDocs, "amorphous shape")
	case SlotArrangement:
		return docCompletions(AggregateArrangements, AggregateArrangementDocs, "aggregate arrangement")
	case SlotOrientation:
		return docCompletions(AggregateOrientations, AggregateOrientationDocs, "aggregate orientation")
	case SlotReference:
		return referenceCompletions(definitions)
	}
	return nil
}

func systemCompletions() []CompletionItem {
	items := make([]CompletionItem, 0, len(CrystalSystems)+1)
	for _, name := range SystemNames() {
		items = append(items, CompletionItem{
			Label:  name,
			Detail: "crystal system (default point group " + DefaultPointGroups[name] + ")",
			Doc:    SystemDocs[name],
		})
	}
	items = append(items, CompletionItem{
		Label:  AmorphousKeyword,
		Detail: "non-crystalline material",
		Doc:    amorphousKeywordDoc,
	})
	return items
}

func pointGroupCompletions(system string) []CompletionItem {
	names := PointGroupNames(system)
	items := make([]CompletionItem, 0, len(names))
	for _, pg := range names {
		detail := "point group"
		if owner, ok := SystemForPointGroup(pg); ok {
			detail = owner + " point group"
		}
		items = append(items, CompletionItem{Label: pg, Detail: detail, Doc: PointGroupDocs[pg]})
	}
	return items
}

// formCompletions offers named forms plus the $references in scope;
// each named form carries its canonical face symbol as the detail.
func formCompletions(system string, definitions []string) []CompletionItem {
	var items []CompletionItem
	for _, name := range formNames() {
		if !formFitsSystem(system, name) {
			continue
		}
		item := CompletionItem{Label: name, Doc: FormDocs[name]}
		if miller, ok := FormMillerText(system, name); ok {
			item.Detail = miller
		}
		items = append(items, item)
	}
	for _, item := range referenceCompletions(definitions) {
		item.Label = "$" + item.Label
		item.InsertText = item.Label
		items = append(items, item)
	}
	return items
}

func millerCompletions(system string) []CompletionItem {
	indices := CommonMillerIndices[system]
	items := make([]CompletionItem, 0, len(indices))
	for _, face := range indices {
		items = append(items, CompletionItem{
			Label:  face,
			Detail: "common " + system + " face symbol",
		})
	}
	return items
}

// formFitsSystem keeps cubic forms out of hexagonal completions and
// vice versa. Unknown systems see everything.
func formFitsSystem(system, form string) bool {
	switch system {
	case "":
		return true
	case "cubic":
		return !strings.Contains(form, "prism") && !strings.Contains(form, "rhomb") &&
			!strings.Contains(form, "pinacoid") && form != "basal" &&
			form != "dipyramid" && form != "dipyramid_1" && form != "dipyramid_2" &&
			form != "scalenohedron" && form != "tetragonal_dipyramid"
	case "hexagonal", "trigonal":
		return !cubicOnlyForms[form] && !strings.HasPrefix(form, "tetragonal_") &&
			!strings.HasSuffix(form, "_a") && !strings.HasSuffix(form, "_b") &&
			form != "pinacoid_c" && form != "prism_ab" && form != "prism_ac" && form != "prism_bc"
	case "tetragonal":
		return strings.HasPrefix(form, "tetragonal_") || form == "pinacoid" || form == "basal"
	case "orthorhombic":
		return strings.HasPrefix(form, "pinacoid_") || strings.HasPrefix(form, "prism_a") ||
			strings.HasPrefix(form, "prism_b")
	default:
		// Monoclinic and triclinic habits are written with Miller
		// indices rather than named forms.
		return strings.HasPrefix(form, "pinacoid")
	}
}

var cubicOnlyForms = map[string]bool{
	"cube":            true,
	"octahedron":      true,
	"dodecahedron":    true,
	"trapezohedron":   true,
	"tetrahexahedron": true,
	"trisoctahedron":  true,
	"hexoctahedron":   true,
}

func axisCompletions() []CompletionItem {
	return []CompletionItem{
		{Label: "a", Detail: "crystallographic axis"},
		{Label: "b", Detail: "crystallographic axis"},
		{Label: "c", Detail: "crystallographic axis"},
	}
}

func scaleCompletions() []CompletionItem {
	items := make([]CompletionItem, 0, len(CommonScales))
	for _, scale := range CommonScales {
		items = append(items, CompletionItem{Label: scale, Detail: "relative scale"})
	}
	return items
}

func referenceCompletions(definitions []string) []CompletionItem {
	items := make([]CompletionItem, 0, len(definitions))
	for _, name := range definitions {
		items = append(items, CompletionItem{Label: name, Detail: "named definition"})
	}
	return items
}

func presetCompletions(presets PresetsLookup, prefix string) []CompletionItem {
	if presets == nil {
		return nil
	}
	found := presets.LookupByPrefix(prefix)
	items := make([]CompletionItem, 0, len(found))
	for _, p := range found {
		items = append(items, CompletionItem{
			Label:      p.Name,
			InsertText: p.ExpansionText,
			Detail:     "preset",
			Doc:        p.Description,
		})
	}
	return items
}

func docCompletions(set map[string]bool, docs map[string]string, detail string) []CompletionItem {
	names := sortedKeys(set)
	items := make([]CompletionItem, 0, len(names))
	for _, name := range names {
		items = append(items, CompletionItem{Label: name, Detail: detail, Doc: docs[name]})
	}
	return items
}
