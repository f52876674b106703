package parser

import (
	"testing"

	"kr.dev/diff"
)

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenKind
	}{
		{
			name:  "basic definition",
			input: "cubic[m3m]:{111}@1.0",
			want: []TokenKind{
				TokenIdent, TokenLBracket, TokenIdent, TokenRBracket, TokenColon,
				TokenLBrace, TokenSignedDigit, TokenSignedDigit, TokenSignedDigit, TokenRBrace,
				TokenAt, TokenNumber,
			},
		},
		{
			name:  "point group with slash",
			input: "hexagonal[6/mmm]:",
			want:  []TokenKind{TokenIdent, TokenLBracket, TokenIdent, TokenRBracket, TokenColon},
		},
		{
			name:  "modification with arguments",
			input: "| elongate(c:1.5)",
			want: []TokenKind{
				TokenPipe, TokenIdent, TokenLParen, TokenIdent, TokenColon, TokenNumber, TokenRParen,
			},
		},
		{
			name:  "aggregate",
			input: "~ parallel[20][aligned]",
			want: []TokenKind{
				TokenTilde, TokenIdent, TokenLBracket, TokenIdent, TokenRBracket,
				TokenLBracket, TokenIdent, TokenRBracket,
			},
		},
		{
			name:  "named definition",
			input: "@host = $base",
			want:  []TokenKind{TokenAt, TokenIdent, TokenAssign, TokenDollar, TokenIdent},
		},
		{
			name:  "comment dropped",
			input: "cubic # a note",
			want:  []TokenKind{TokenIdent},
		},
		{
			name:  "unrecognized byte",
			input: "cubic%",
			want:  []TokenKind{TokenIdent, TokenError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			got := make([]TokenKind, len(tokens))
			for i, tok := range tokens {
				got[i] = tok.Kind
			}
			diff.Test(t, t.Errorf, got, tt.want)
		})
	}
}

func TestTokenizePointGroups(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cubic[m3m]", "m3m"},
		{"cubic[-43m]", "-43m"},
		{"hexagonal[6/mmm]", "6/mmm"},
		{"monoclinic[2/m]", "2/m"},
		{"triclinic[-1]", "-1"},
		{"tetragonal[4]", "4"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != 4 {
				t.Fatalf("got %d tokens, want 4", len(tokens))
			}
			pg := tokens[2]
			if pg.Kind != TokenIdent || pg.Literal != tt.want {
				t.Errorf("got %s %q, want Identifier %q", pg.Kind, pg.Literal, tt.want)
			}
		})
	}
}

func TestTokenizeSignedDigits(t *testing.T) {
	tokens := Tokenize("{10-10}")
	var got []int
	for _, tok := range tokens {
		if tok.Kind == TokenSignedDigit {
			got = append(got, SignedDigitValue(tok))
		}
	}
	diff.Test(t, t.Errorf, got, []int{1, 0, -1, 0})
}

func TestTokenSpansCoverInput(t *testing.T) {
	input := "cubic[m3m]:{111} | twin(spinel)"
	tokens := Tokenize(input)
	for _, tok := range tokens {
		if tok.Span.Start < 0 || tok.Span.End > len(input) || tok.Span.Start >= tok.Span.End {
			t.Errorf("token %s has bad span %+v", tok.Kind, tok.Span)
		}
		if input[tok.Span.Start:tok.Span.End] != tok.Literal {
			t.Errorf("token %s literal %q does not match span text %q",
				tok.Kind, tok.Literal, input[tok.Span.Start:tok.Span.End])
		}
	}
}
