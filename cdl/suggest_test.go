package cdl

import "testing"

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		candidates []string
		want       string
	}{
		{"single edit", "cubicc", SystemNames(), "cubic"},
		{"two edits", "hexagnl", SystemNames(), "hexagonal"},
		{"too far", "zirconium", SystemNames(), ""},
		{"empty input", "", SystemNames(), ""},
		{"tie breaks alphabetically", "b", []string{"a", "c"}, "a"},
		{"exact match wins", "cubic", SystemNames(), "cubic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Suggest(tt.input, tt.candidates); got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSuggestSet(t *testing.T) {
	if got := SuggestSet("spinal", TwinLaws); got != "spinel" {
		t.Errorf("got %q, want spinel", got)
	}
	if got := SuggestSet("qqqq", TwinLaws); got != "" {
		t.Errorf("got %q, want no suggestion", got)
	}
}
