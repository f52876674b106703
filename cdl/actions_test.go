package cdl

import (
	"testing"

	"github.com/dhamidi/cdl/cdl/parser"
)

func actionsFor(t *testing.T, input string) []CodeAction {
	t.Helper()
	line, diags := parser.ParseLine(input)
	diags = append(diags, ValidateLine(line)...)
	return ActionsFor(input, line, diags)
}

func applyAction(input string, action CodeAction) string {
	return input[:action.Span.Start] + action.NewText + input[action.Span.End:]
}

func TestActionReplacesSuggestion(t *testing.T) {
	input := "cubbic[m3m]:{111}"
	actions := actionsFor(t, input)
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1: %+v", len(actions), actions)
	}
	action := actions[0]
	if action.Code != CodeUnknownSystem {
		t.Errorf("code = %s, want %s", action.Code, CodeUnknownSystem)
	}
	if got := applyAction(input, action); got != "cubic[m3m]:{111}" {
		t.Errorf("applied action yields %q", got)
	}
}

func TestActionPadsMillerIndices(t *testing.T) {
	input := "hexagonal[6/mmm]:{111}"
	actions := actionsFor(t, input)
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1: %+v", len(actions), actions)
	}
	if got := applyAction(input, actions[0]); got != "hexagonal[6/mmm]:{1110}" {
		t.Errorf("applied action yields %q", got)
	}
}

func TestActionTruncatesMillerIndices(t *testing.T) {
	input := "cubic[m3m]:{1111}"
	actions := actionsFor(t, input)
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1: %+v", len(actions), actions)
	}
	if got := applyAction(input, actions[0]); got != "cubic[m3m]:{111}" {
		t.Errorf("applied action yields %q", got)
	}
}

func TestActionInsertsMissingScale(t *testing.T) {
	input := "cubic[m3m]:{111} + {100}"
	actions := actionsFor(t, input)
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1: %+v", len(actions), actions)
	}
	if got := applyAction(input, actions[0]); got != "cubic[m3m]:{111}@1.0 + {100}" {
		t.Errorf("applied action yields %q", got)
	}
}

func TestNoActionsForCleanLine(t *testing.T) {
	if actions := actionsFor(t, "cubic[m3m]:{111}"); len(actions) != 0 {
		t.Errorf("unexpected actions: %+v", actions)
	}
}
