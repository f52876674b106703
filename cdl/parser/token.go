package parser

// Span covers a half-open byte range [Start, End) within a single line.
type Span struct {
	Start int
	End   int
}

// Contains reports whether the offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenComment

	TokenIdent
	TokenNumber
	TokenSignedDigit

	TokenLBracket
	TokenRBracket
	TokenLBrace
	TokenRBrace
	TokenLParen
	TokenRParen

	TokenColon
	TokenComma
	TokenPlus
	TokenPipe
	TokenAt
	TokenDollar
	TokenAssign
	TokenTilde
	TokenGreater
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:         "EOF",
	TokenError:       "Error",
	TokenWhitespace:  "Whitespace",
	TokenComment:     "Comment",
	TokenIdent:       "Identifier",
	TokenNumber:      "Number",
	TokenSignedDigit: "SignedDigit",
	TokenLBracket:    "[",
	TokenRBracket:    "]",
	TokenLBrace:      "{",
	TokenRBrace:      "}",
	TokenLParen:      "(",
	TokenRParen:      ")",
	TokenColon:       ":",
	TokenComma:       ",",
	TokenPlus:        "+",
	TokenPipe:        "|",
	TokenAt:          "@",
	TokenDollar:      "$",
	TokenAssign:      "=",
	TokenTilde:       "~",
	TokenGreater:     ">",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

// SignedDigitValue returns the integer value of a SignedDigit token.
// The literal is either a single digit or a '-' followed by one digit.
func SignedDigitValue(tok Token) int {
	if tok.Literal == "" {
		return 0
	}
	if tok.Literal[0] == '-' {
		if len(tok.Literal) < 2 {
			return 0
		}
		return -int(tok.Literal[1] - '0')
	}
	return int(tok.Literal[0] - '0')
}
