package cdl

import (
	"strings"
	"testing"

	"github.com/dhamidi/cdl/cdl/parser"
)

func hoverAt(input string, offset int) *Hover {
	line, _ := parser.ParseLine(input)
	return HoverAt(input, line, offset)
}

func TestHover(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		offset   int
		contains string
	}{
		{"system", "cubic[m3m]:{111}", 2, "Cubic (Isometric) System"},
		{"point group", "cubic[m3m]:{111}", 7, "Full cubic symmetry"},
		{"named form", "cubic[m3m]:octahedron", 14, "Dual of the cube"},
		{"miller index", "cubic[m3m]:{111}", 13, "Miller Index"},
		{"modification", "cubic[m3m]:{111} | elongate(c:1.5)", 21, "Stretches the crystal"},
		{"twin law", "cubic[m3m]:{111} | twin(japan)", 26, "Japan Twin"},
		{"amorphous subtype", "amorphous[glassy]:{massive}", 12, "Volcanic glass"},
		{"amorphous shape", "amorphous[glassy]:{massive}", 21, "solid mass"},
		{"arrangement", "cubic[m3m]:{111} ~ radial[30]", 21, "radiating from a central point"},
		{"orientation", "cubic[m3m]:{111} ~ parallel[20][planar]", 34, "common plane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hover := hoverAt(tt.input, tt.offset)
			if hover == nil {
				t.Fatal("no hover")
			}
			if !strings.Contains(hover.Markdown, tt.contains) {
				t.Errorf("hover %q does not contain %q", hover.Markdown, tt.contains)
			}
		})
	}
}

func TestHoverNothingUnderCursor(t *testing.T) {
	if hover := hoverAt("cubic[m3m]:{111}   ", 18); hover != nil {
		t.Errorf("unexpected hover: %+v", hover)
	}
}

func TestHoverUnknownName(t *testing.T) {
	if hover := hoverAt("cubic[m3m]:nonagon", 14); hover != nil {
		t.Errorf("unexpected hover for unknown form: %+v", hover)
	}
}
