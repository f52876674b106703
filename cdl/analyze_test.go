package cdl

import (
	"strings"
	"testing"
)

func TestAnalyzeResolvesReferences(t *testing.T) {
	doc := strings.Join([]string{
		"# quartz with an overgrowth core",
		"@core = {10-11}@1.0",
		"trigonal[32]:$core + prism@0.5",
	}, "\n")

	analysis := Analyze(doc)
	if len(analysis.Diags) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", analysis.Diags)
	}
	if len(analysis.Lines) != 2 {
		t.Fatalf("got %d analyzed lines, want 2", len(analysis.Lines))
	}
	loc, ok := analysis.Definitions["core"]
	if !ok {
		t.Fatal("definition core not recorded")
	}
	if loc.Line != 1 {
		t.Errorf("definition on line %d, want 1", loc.Line)
	}
}

func TestAnalyzeUnknownReference(t *testing.T) {
	analysis := Analyze("cubic[m3m]:$ghost")
	if len(analysis.Diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(analysis.Diags), analysis.Diags)
	}
	diag := analysis.Diags[0]
	if diag.Code != CodeUnknownReference {
		t.Errorf("code = %s, want %s", diag.Code, CodeUnknownReference)
	}
	if diag.Line != 0 {
		t.Errorf("line = %d, want 0", diag.Line)
	}
}

func TestAnalyzeReferenceSuggestion(t *testing.T) {
	doc := "@ghost = {111}\ncubic[m3m]:$gost"
	analysis := Analyze(doc)
	if len(analysis.Diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(analysis.Diags), analysis.Diags)
	}
	if got := analysis.Diags[0].Suggestion; got != "ghost" {
		t.Errorf("suggestion = %q, want ghost", got)
	}
}

func TestAnalyzeDefinitionAt(t *testing.T) {
	doc := "@core = {111}\ncubic[m3m]:$core"
	analysis := Analyze(doc)

	// Offset inside "core" on the second line.
	loc, ok := analysis.DefinitionAt(1, 13)
	if !ok {
		t.Fatal("definition not found from reference")
	}
	if loc.Line != 0 {
		t.Errorf("definition on line %d, want 0", loc.Line)
	}
	if loc.Span.Start != 1 || loc.Span.End != 5 {
		t.Errorf("definition span = %+v, want {1 5}", loc.Span)
	}

	if _, ok := analysis.DefinitionAt(1, 2); ok {
		t.Error("found a definition from a non-reference slot")
	}
}

func TestAnalyzeSkipsBlankAndCommentLines(t *testing.T) {
	analysis := Analyze("\n# note\n\ncubic[m3m]:{111}\n")
	if len(analysis.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(analysis.Lines))
	}
	if analysis.Lines[0].Number != 3 {
		t.Errorf("line number = %d, want 3", analysis.Lines[0].Number)
	}
}

func TestAnalyzeCollectsPerLineDiagnostics(t *testing.T) {
	doc := "cubbic[m3m]:{111}\ncubic[m3m]:{111}@0.001"
	analysis := Analyze(doc)
	if len(analysis.Diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %+v", len(analysis.Diags), analysis.Diags)
	}
	if analysis.Diags[0].Line != 0 || analysis.Diags[1].Line != 1 {
		t.Errorf("diagnostic lines = %d, %d", analysis.Diags[0].Line, analysis.Diags[1].Line)
	}
}

func TestSymbols(t *testing.T) {
	doc := strings.Join([]string{
		"@core = {111}@1.0",
		"cubic[m3m]:$core + cube@0.5 | twin(spinel) ~ parallel[20]",
	}, "\n")

	symbols := Analyze(doc).Symbols()
	if len(symbols) != 2 {
		t.Fatalf("got %d symbols, want 2", len(symbols))
	}

	def := symbols[0]
	if def.Name != "@core" || def.Kind != SymbolDefinition {
		t.Errorf("first symbol = %q kind %v", def.Name, def.Kind)
	}
	if !strings.HasPrefix(def.Detail, "Definition:") {
		t.Errorf("definition detail = %q", def.Detail)
	}

	crystal := symbols[1]
	if crystal.Name != "cubic[m3m]" || crystal.Kind != SymbolCrystal {
		t.Errorf("second symbol = %q kind %v", crystal.Name, crystal.Kind)
	}
	if crystal.Detail != "~parallel" {
		t.Errorf("crystal detail = %q", crystal.Detail)
	}
	if len(crystal.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(crystal.Children))
	}
	if crystal.Children[0].Name != "$core" || crystal.Children[1].Name != "cube" {
		t.Errorf("form children = %q, %q", crystal.Children[0].Name, crystal.Children[1].Name)
	}
	twin := crystal.Children[2]
	if twin.Name != "|twin" || twin.Kind != SymbolModification {
		t.Errorf("modification child = %q kind %v", twin.Name, twin.Kind)
	}
	if twin.Detail != "(spinel)" {
		t.Errorf("modification detail = %q", twin.Detail)
	}
}
