package cdl

import (
	"strings"
	"testing"

	"github.com/dhamidi/cdl/cdl/parser"

	"kr.dev/diff"
)

func completeAt(input string, offset int, definitions []string) []CompletionItem {
	line, _ := parser.ParseLine(input)
	return CompleteAt(input, line, offset, definitions, nil)
}

func labels(items []CompletionItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func TestCompletePointGroupsForSystem(t *testing.T) {
	input := "cubic["
	items := completeAt(input, len(input), nil)
	diff.Test(t, t.Errorf, labels(items), []string{"-43m", "23", "432", "m-3", "m3m"})
}

func TestCompleteSystems(t *testing.T) {
	items := completeAt("cubic[m3m]:{111}", 2, nil)
	want := []string{
		"cubic", "hexagonal", "monoclinic", "orthorhombic",
		"tetragonal", "triclinic", "trigonal", "amorphous",
	}
	diff.Test(t, t.Errorf, labels(items), want)
}

func TestCompleteFormsCarryMillerExpansion(t *testing.T) {
	input := "hexagonal[6/mmm]:"
	items := completeAt(input, len(input), nil)
	if len(items) == 0 {
		t.Fatal("no completions")
	}
	byLabel := make(map[string]CompletionItem)
	for _, item := range items {
		byLabel[item.Label] = item
	}
	prism, ok := byLabel["prism"]
	if !ok {
		t.Fatal("prism not offered for hexagonal")
	}
	if prism.Detail != "{10-10}" {
		t.Errorf("prism detail = %q, want {10-10}", prism.Detail)
	}
	if _, ok := byLabel["cube"]; ok {
		t.Error("cube offered for hexagonal system")
	}
}

func TestCompleteMillerIndices(t *testing.T) {
	input := "cubic[m3m]:{"
	items := completeAt(input, len(input), nil)
	got := labels(items)
	diff.Test(t, t.Errorf, got, CommonMillerIndices["cubic"])
}

func TestCompleteModifications(t *testing.T) {
	input := "cubic[m3m]:{111} | "
	items := completeAt(input, len(input), nil)
	want := []string{"bevel", "elongate", "flatten", "taper", "truncate", "twin"}
	diff.Test(t, t.Errorf, labels(items), want)
}

func TestCompleteTwinLaws(t *testing.T) {
	input := "cubic[m3m]:{111} | twin(spinel)"
	items := completeAt(input, len(input)-2, nil)
	found := false
	for _, item := range items {
		if item.Label == "iron_cross" {
			found = true
		}
	}
	if !found {
		t.Error("twin law completions missing iron_cross")
	}
}

func TestCompleteReferences(t *testing.T) {
	input := "cubic[m3m]:$"
	items := completeAt(input, len(input), []string{"core", "shell"})
	diff.Test(t, t.Errorf, labels(items), []string{"core", "shell"})
}

func TestCompleteArrangements(t *testing.T) {
	input := "cubic[m3m]:{111} ~ "
	items := completeAt(input, len(input), nil)
	want := []string{"cluster", "druse", "epitaxial", "parallel", "radial", "random"}
	diff.Test(t, t.Errorf, labels(items), want)
}

type presetList []Preset

func (p presetList) LookupByPrefix(prefix string) []Preset {
	var out []Preset
	for _, preset := range p {
		if strings.HasPrefix(preset.Name, prefix) {
			out = append(out, preset)
		}
	}
	return out
}

func TestCompletePresetsAtLineStart(t *testing.T) {
	presets := presetList{
		{Name: "quartz", ExpansionText: "hexagonal[6/mmm]:prism + pyramid", Description: "classic quartz habit"},
		{Name: "pyrite", ExpansionText: "cubic[m-3]:cube | striate", Description: "striated cubes"},
	}

	input := "qu"
	line, _ := parser.ParseLine(input)
	items := CompleteAt(input, line, len(input), nil, presets)

	var quartz *CompletionItem
	for i := range items {
		if items[i].Label == "quartz" {
			quartz = &items[i]
		}
		if items[i].Label == "pyrite" {
			t.Error("pyrite offered for prefix qu")
		}
	}
	if quartz == nil {
		t.Fatal("quartz preset not offered")
	}
	if quartz.InsertText != "hexagonal[6/mmm]:prism + pyramid" {
		t.Errorf("quartz insert text = %q", quartz.InsertText)
	}
}

func TestCompleteNilPresets(t *testing.T) {
	items := completeAt("cu", 2, nil)
	for _, item := range items {
		if item.Detail == "preset" {
			t.Errorf("preset item %q offered without a lookup", item.Label)
		}
	}
}

func TestCompleteAmorphousShapes(t *testing.T) {
	input := "amorphous[glassy]:{"
	items := completeAt(input, len(input), nil)
	want := []string{
		"botryoidal", "conchoidal", "mammillary", "massive",
		"nodular", "reniform", "stalactitic",
	}
	diff.Test(t, t.Errorf, labels(items), want)
}
