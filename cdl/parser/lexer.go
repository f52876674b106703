package parser

// Lexer splits one line of CDL notation into tokens. It is total: any
// character it does not recognize becomes an Error token, so downstream
// consumers always see spans aligned with the original text.
type Lexer struct {
	input []byte
	pos   int

	// Bracket and brace regions change how characters are grouped.
	// Point groups such as "6/mmm" and "-43m" are single identifiers
	// inside "[...]", and digits inside "{...}" are scanned one at a
	// time as signed Miller indices.
	inBracket bool
	inBrace   bool
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	return ch
}

func (l *Lexer) token(kind TokenKind, start int) Token {
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: l.pos},
		Literal: string(l.input[start:l.pos]),
	}
}

func (l *Lexer) NextToken() Token {
	start := l.pos

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}
	}

	ch := l.peek()

	if ch == ' ' || ch == '\t' || ch == '\r' {
		return l.scanWhitespace(start)
	}

	if ch == '#' {
		return l.scanComment(start)
	}

	if l.inBrace {
		if isDigit(ch) {
			l.advance()
			return l.token(TokenSignedDigit, start)
		}
		if ch == '-' && isDigit(l.peekN(1)) {
			l.advance()
			l.advance()
			return l.token(TokenSignedDigit, start)
		}
	}

	if l.inBracket && !l.inBrace && isPointGroupChar(ch) {
		return l.scanPointGroup(start)
	}

	if isLetter(ch) {
		return l.scanIdent(start)
	}

	if isDigit(ch) {
		return l.scanNumber(start)
	}

	switch ch {
	case '[':
		l.advance()
		l.inBracket = true
		return l.token(TokenLBracket, start)
	case ']':
		l.advance()
		l.inBracket = false
		return l.token(TokenRBracket, start)
	case '{':
		l.advance()
		l.inBrace = true
		return l.token(TokenLBrace, start)
	case '}':
		l.advance()
		l.inBrace = false
		return l.token(TokenRBrace, start)
	case '(':
		l.advance()
		return l.token(TokenLParen, start)
	case ')':
		l.advance()
		return l.token(TokenRParen, start)
	case ':':
		l.advance()
		return l.token(TokenColon, start)
	case ',':
		l.advance()
		return l.token(TokenComma, start)
	case '+':
		l.advance()
		return l.token(TokenPlus, start)
	case '|':
		l.advance()
		return l.token(TokenPipe, start)
	case '@':
		l.advance()
		return l.token(TokenAt, start)
	case '$':
		l.advance()
		return l.token(TokenDollar, start)
	case '=':
		l.advance()
		return l.token(TokenAssign, start)
	case '~':
		l.advance()
		return l.token(TokenTilde, start)
	case '>':
		l.advance()
		return l.token(TokenGreater, start)
	}

	l.advance()
	return l.token(TokenError, start)
}

func (l *Lexer) scanWhitespace(start int) Token {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' {
			l.advance()
		} else {
			break
		}
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanComment(start int) Token {
	for l.peek() != 0 {
		l.advance()
	}
	return l.token(TokenComment, start)
}

func (l *Lexer) scanIdent(start int) Token {
	for isLetterOrDigit(l.peek()) {
		l.advance()
	}
	return l.token(TokenIdent, start)
}

// scanPointGroup groups Hermann-Mauguin symbols such as "m3m", "6/mmm",
// "-43m" and "2/m" into a single identifier token.
func (l *Lexer) scanPointGroup(start int) Token {
	for isPointGroupChar(l.peek()) {
		l.advance()
	}
	return l.token(TokenIdent, start)
}

func (l *Lexer) scanNumber(start int) Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	return l.token(TokenNumber, start)
}

// Tokenize scans the whole line, dropping whitespace and comments.
func Tokenize(line string) []Token {
	l := NewLexer([]byte(line))
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Kind == TokenWhitespace || tok.Kind == TokenComment {
			continue
		}
		if tok.Kind == TokenEOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isLetterOrDigit(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

func isPointGroupChar(ch byte) bool {
	return isLetterOrDigit(ch) || ch == '/' || ch == '-'
}
