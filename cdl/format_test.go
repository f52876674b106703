package cdl

import "testing"

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		wantChanged bool
	}{
		{
			name:  "already canonical",
			input: "cubic[m3m]:{111}",
			want:  "cubic[m3m]:{111}",
		},
		{
			name:        "whitespace and case normalized",
			input:       "  Cubic[m3m] : {111}",
			want:        "cubic[m3m]:{111}",
			wantChanged: true,
		},
		{
			name:        "operator spacing",
			input:       "cubic[m3m]:{111}@1.0+{100}@0.5",
			want:        "cubic[m3m]:{111}@1.0 + {100}@0.5",
			wantChanged: true,
		},
		{
			name:        "growth spacing",
			input:       "cubic[m3m]:{111}@1.0>{100}@0.5",
			want:        "cubic[m3m]:{111}@1.0 > {100}@0.5",
			wantChanged: true,
		},
		{
			name:        "modifications and aggregate",
			input:       "trigonal[32]:prism|elongate(c:1.5)~radial[30]",
			want:        "trigonal[32]:prism | elongate(c:1.5) ~ radial[30]",
			wantChanged: true,
		},
		{
			name:        "shape list spacing",
			input:       "amorphous[glassy]:{massive,botryoidal}",
			want:        "amorphous[glassy]:{massive, botryoidal}",
			wantChanged: true,
		},
		{
			name:        "named definition",
			input:       "@core={111}@1.0",
			want:        "@core = {111}@1.0",
			wantChanged: true,
		},
		{
			name:  "syntax error left alone",
			input: "cubic[m3m]:{111",
			want:  "cubic[m3m]:{111",
		},
		{
			name:  "comment left alone",
			input: "# garnet habit",
			want:  "# garnet habit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := FormatLine(tt.input)
			if got != tt.want {
				t.Errorf("formatted = %q, want %q", got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}

func TestFormatDocument(t *testing.T) {
	input := "# habits\n\ncubic[m3m] : {111}\ncubic[m3m]:{111\n"
	want := "# habits\n\ncubic[m3m]:{111}\ncubic[m3m]:{111\n"
	if got := FormatDocument(input); got != want {
		t.Errorf("formatted document = %q, want %q", got, want)
	}
}
