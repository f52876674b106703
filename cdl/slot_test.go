package cdl

import (
	"strings"
	"testing"

	"github.com/dhamidi/cdl/cdl/parser"
)

// resolveAt parses the input and classifies the offset of the marker
// character '^' in the guide string.
func resolveAt(t *testing.T, input, guide string) Slot {
	t.Helper()
	offset := strings.IndexByte(guide, '^')
	if offset < 0 {
		t.Fatal("guide string has no ^ marker")
	}
	line, _ := parser.ParseLine(input)
	return ResolveSlot(input, line, offset)
}

func TestResolveSlot(t *testing.T) {
	tests := []struct {
		name  string
		input string
		guide string
		want  SlotKind
	}{
		{
			name:  "system",
			input: "cubic[m3m]:{111}",
			guide: "  ^",
			want:  SlotSystem,
		},
		{
			name:  "point group",
			input: "cubic[m3m]:{111}",
			guide: "       ^",
			want:  SlotPointGroup,
		},
		{
			name:  "miller digits",
			input: "cubic[m3m]:{111}",
			guide: "             ^",
			want:  SlotNamedFormOrMiller,
		},
		{
			name:  "named form",
			input: "cubic[m3m]:octahedron",
			guide: "              ^",
			want:  SlotForm,
		},
		{
			name:  "scale",
			input: "cubic[m3m]:{111}@1.0",
			guide: "                  ^",
			want:  SlotScale,
		},
		{
			name:  "modification name",
			input: "cubic[m3m]:{111} | elongate(c:1.5)",
			guide: "                     ^",
			want:  SlotModificationName,
		},
		{
			name:  "modification argument",
			input: "cubic[m3m]:{111} | elongate(c:1.5)",
			guide: "                            ^",
			want:  SlotModificationArgument,
		},
		{
			name:  "twin law",
			input: "cubic[m3m]:{111} | twin(japan)",
			guide: "                         ^",
			want:  SlotTwinLawName,
		},
		{
			name:  "reference",
			input: "cubic[m3m]:$host",
			guide: "              ^",
			want:  SlotReference,
		},
		{
			name:  "definition name",
			input: "@host = {111}",
			guide: "  ^",
			want:  SlotDefinitionName,
		},
		{
			name:  "arrangement",
			input: "cubic[m3m]:{111} ~ parallel[20]",
			guide: "                      ^",
			want:  SlotArrangement,
		},
		{
			name:  "orientation",
			input: "cubic[m3m]:{111} ~ parallel[20][aligned]",
			guide: "                                 ^",
			want:  SlotOrientation,
		},
		{
			name:  "amorphous subtype",
			input: "amorphous[opalescent]:{massive}",
			guide: "            ^",
			want:  SlotAmorphousSubtype,
		},
		{
			name:  "amorphous shape",
			input: "amorphous[opalescent]:{massive}",
			guide: "                         ^",
			want:  SlotAmorphousShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := resolveAt(t, tt.input, tt.guide)
			if slot.Kind != tt.want {
				t.Errorf("slot = %s, want %s", slot.Kind, tt.want)
			}
		})
	}
}

func TestResolveSlotIncompleteInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  SlotKind
	}{
		{"open bracket", "cubic[", SlotPointGroup},
		{"open brace", "cubic[m3m]:{", SlotNamedFormOrMiller},
		{"after colon", "cubic[m3m]:", SlotForm},
		{"after pipe", "cubic[m3m]:{111} | ", SlotModificationName},
		{"after tilde", "cubic[m3m]:{111} ~ ", SlotArrangement},
		{"after dollar", "cubic[m3m]:$", SlotReference},
		{"after at", "cubic[m3m]:{111}@", SlotScale},
		{"after plus", "cubic[m3m]:{111}@1.0 + ", SlotForm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, _ := parser.ParseLine(tt.input)
			slot := ResolveSlot(tt.input, line, len(tt.input))
			if slot.Kind != tt.want {
				t.Errorf("slot = %s, want %s", slot.Kind, tt.want)
			}
		})
	}
}

func TestResolveSlotCarriesSystem(t *testing.T) {
	line, _ := parser.ParseLine("cubic[")
	slot := ResolveSlot("cubic[", line, 6)
	if slot.Kind != SlotPointGroup {
		t.Fatalf("slot = %s, want PointGroup", slot.Kind)
	}
	if slot.System != "cubic" {
		t.Errorf("system = %q, want cubic", slot.System)
	}
}

func TestResolveSlotBeforeAnyToken(t *testing.T) {
	slot := ResolveSlot("   ", nil, 1)
	if slot.Kind != SlotUnknown {
		t.Errorf("slot = %s, want Unknown", slot.Kind)
	}
}
