package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser builds a Line from the tokens of one line of CDL. It never
// stops at the first problem: every recovery path records a Diagnostic
// and keeps going, so feature adapters get the most complete tree
// obtainable even over invalid text.
type Parser struct {
	tokens []Token
	pos    int
	diags  []Diagnostic
	length int
}

// ParseLine parses one line of notation. The returned Line is never
// nil; blank and comment lines yield a Line with neither Def nor Named.
func ParseLine(text string) (*Line, []Diagnostic) {
	p := &Parser{
		tokens: Tokenize(text),
		length: len(text),
	}
	line := p.parseLine()
	return line, p.diags
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEOF, Span: Span{Start: p.length, End: p.length}}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekN(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return Token{Kind: TokenEOF, Span: Span{Start: p.length, End: p.length}}
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) expect(kind TokenKind) *Token {
	if p.check(kind) {
		tok := p.advance()
		return &tok
	}
	return nil
}

func (p *Parser) errorf(code string, span Span, format string, args ...any) {
	p.diags = append(p.diags, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
	})
}

func (p *Parser) parseLine() *Line {
	line := &Line{}
	if len(p.tokens) == 0 {
		return line
	}
	first := p.tokens[0]
	last := p.tokens[len(p.tokens)-1]
	line.Span = Span{Start: first.Span.Start, End: last.Span.End}

	if first.Kind == TokenAt {
		line.Named = p.parseNamedDef()
	} else {
		line.Def = p.parseDefinition()
	}

	if !p.check(TokenEOF) {
		tok := p.peek()
		p.errorf(CodeUnexpectedToken, Span{Start: tok.Span.Start, End: last.Span.End},
			"unexpected %q after end of definition", tok.Literal)
		p.pos = len(p.tokens)
	}
	return line
}

// parseNamedDef parses '@' name '=' formExpr.
func (p *Parser) parseNamedDef() *NamedDef {
	at := p.advance() // '@'
	def := &NamedDef{Span: at.Span}

	if name := p.expect(TokenIdent); name != nil {
		def.Name = *name
	} else {
		p.errorf(CodeExpectedName, p.peek().Span, "expected a definition name after '@'")
	}

	if p.expect(TokenAssign) == nil {
		p.errorf(CodeUnexpectedToken, p.peek().Span, "expected '=' after '@%s'", def.Name.Literal)
	}

	def.Forms = p.parseFormExpr()
	def.Span.End = p.spanEnd(def.Span.End)
	return def
}

func (p *Parser) parseDefinition() *Definition {
	def := &Definition{}

	if sys := p.expect(TokenIdent); sys != nil {
		def.System = *sys
		def.Span = sys.Span
		def.Amorphous = strings.EqualFold(sys.Literal, "amorphous")
	} else {
		p.errorf(CodeExpectedSystem, p.peek().Span, "expected a crystal system name")
		def.Span = p.peek().Span
	}

	if open := p.expect(TokenLBracket); open != nil {
		def.HasBracket = true
		if pg := p.expect(TokenIdent); pg != nil {
			def.Designation = *pg
		}
		if p.expect(TokenRBracket) == nil {
			p.errorf(CodeUnclosedBracket, Span{Start: open.Span.Start, End: p.peek().Span.Start},
				"missing ']' after %q", def.Designation.Literal)
		}
	}

	if p.expect(TokenColon) == nil {
		p.errorf(CodeMissingColon, p.peek().Span, "expected ':' before the form expression")
	}

	def.Forms = p.parseFormExpr()

	for p.check(TokenPipe) {
		def.Mods = append(def.Mods, p.parseModification())
	}

	if p.check(TokenTilde) {
		def.Agg = p.parseAggregate()
	}

	def.Span.End = p.spanEnd(def.Span.End)
	return def
}

// parseFormExpr parses form ('+' form)* with '>' chaining overgrowth
// levels; the form immediately after '>' carries the Growth flag.
func (p *Parser) parseFormExpr() []*Form {
	var forms []*Form
	growth := false
	for {
		form := p.parseForm()
		if form == nil {
			p.errorf(CodeMissingForm, p.peek().Span, "expected a form")
			break
		}
		form.Growth = growth
		growth = false
		forms = append(forms, form)

		if p.check(TokenPlus) {
			p.advance()
			continue
		}
		if p.check(TokenGreater) {
			p.advance()
			growth = true
			continue
		}
		break
	}
	return forms
}

func (p *Parser) parseForm() *Form {
	switch p.peek().Kind {
	case TokenIdent:
		tok := p.advance()
		form := &Form{Kind: FormNamed, Name: tok, Span: tok.Span}
		p.parseScale(form)
		return form
	case TokenDollar:
		dollar := p.advance()
		form := &Form{Kind: FormReference, Span: dollar.Span}
		if name := p.expect(TokenIdent); name != nil {
			form.Name = *name
			form.Span.End = name.Span.End
		} else {
			p.errorf(CodeExpectedName, p.peek().Span, "expected a definition name after '$'")
		}
		p.parseScale(form)
		return form
	case TokenLBrace:
		return p.parseBody()
	}
	return nil
}

// parseBody parses '{...}': either a run of signed Miller digits or a
// comma-separated list of amorphous shape names. An unclosed brace is
// treated as closed at the end of the line.
func (p *Parser) parseBody() *Form {
	open := p.advance() // '{'
	form := &Form{Kind: FormMiller, Span: open.Span}

	switch p.peek().Kind {
	case TokenSignedDigit:
		for p.check(TokenSignedDigit) {
			tok := p.advance()
			form.Digits = append(form.Digits, tok)
			form.Indices = append(form.Indices, SignedDigitValue(tok))
		}
	case TokenIdent:
		form.Kind = FormShapes
		for {
			if name := p.expect(TokenIdent); name != nil {
				form.Shapes = append(form.Shapes, *name)
			}
			if p.check(TokenComma) {
				p.advance()
				continue
			}
			break
		}
	default:
		p.errorf(CodeEmptyMiller, Span{Start: open.Span.Start, End: p.peek().Span.Start},
			"empty form body")
	}

	if closing := p.expect(TokenRBrace); closing != nil {
		form.Span.End = closing.Span.End
	} else {
		p.errorf(CodeUnclosedBrace, Span{Start: open.Span.Start, End: p.spanEnd(open.Span.End)},
			"missing '}'")
		form.Span.End = p.spanEnd(open.Span.End)
	}

	p.parseScale(form)
	return form
}

func (p *Parser) parseScale(form *Form) {
	if !p.check(TokenAt) {
		return
	}
	at := p.advance()
	if num := p.expect(TokenNumber); num != nil {
		value, err := strconv.ParseFloat(num.Literal, 64)
		scale := &Scale{Token: *num, Value: value, Valid: err == nil}
		if err != nil {
			p.errorf(CodeBadScale, num.Span, "malformed scale %q", num.Literal)
		}
		form.Scale = scale
		form.Span.End = num.Span.End
		return
	}
	p.errorf(CodeBadScale, at.Span, "expected a scale value after '@'")
}

func (p *Parser) parseModification() *Modification {
	pipe := p.advance() // '|'
	mod := &Modification{Span: pipe.Span}

	if name := p.expect(TokenIdent); name != nil {
		mod.Name = *name
		mod.Span.End = name.Span.End
	} else {
		p.errorf(CodeMissingModName, p.peek().Span, "expected a modification name after '|'")
		return mod
	}

	open := p.expect(TokenLParen)
	if open == nil {
		return mod
	}
	for !p.check(TokenRParen) && !p.check(TokenEOF) && !p.check(TokenPipe) {
		arg, ok := p.parseArgument()
		if !ok {
			tok := p.advance() // skip what we cannot use
			p.errorf(CodeUnexpectedToken, tok.Span, "unexpected %q in arguments of %q", tok.Literal, mod.Name.Literal)
			continue
		}
		mod.Args = append(mod.Args, arg)
		if p.check(TokenComma) {
			p.advance()
		}
	}
	if closing := p.expect(TokenRParen); closing != nil {
		mod.Span.End = closing.Span.End
	} else {
		p.errorf(CodeUnclosedParen, Span{Start: open.Span.Start, End: p.spanEnd(open.Span.End)},
			"missing ')' after arguments of %q", mod.Name.Literal)
		mod.Span.End = p.spanEnd(open.Span.End)
	}
	return mod
}

func (p *Parser) parseArgument() (Argument, bool) {
	value, ok := p.argumentValue()
	if !ok {
		return Argument{}, false
	}
	arg := Argument{Value: value, Span: value.Span}

	if p.check(TokenColon) {
		p.advance()
		second, ok := p.argumentValue()
		if !ok {
			p.errorf(CodeUnexpectedToken, p.peek().Span, "expected a value after %q:", value.Literal)
			return arg, true
		}
		arg = Argument{
			Key:    value,
			HasKey: true,
			Value:  second,
			Span:   Span{Start: value.Span.Start, End: second.Span.End},
		}
	}
	return arg, true
}

// argumentValue accepts an identifier, a number, or a signed direction
// such as "+c". The sign and letter collapse into one identifier token.
func (p *Parser) argumentValue() (Token, bool) {
	switch p.peek().Kind {
	case TokenIdent, TokenNumber:
		return p.advance(), true
	case TokenPlus:
		if p.peekN(1).Kind == TokenIdent {
			sign := p.advance()
			name := p.advance()
			return Token{
				Kind:    TokenIdent,
				Literal: sign.Literal + name.Literal,
				Span:    Span{Start: sign.Span.Start, End: name.Span.End},
			}, true
		}
	}
	return Token{}, false
}

func (p *Parser) parseAggregate() *Aggregate {
	tilde := p.advance() // '~'
	agg := &Aggregate{Span: tilde.Span}

	if name := p.expect(TokenIdent); name != nil {
		agg.Arrangement = *name
		agg.Span.End = name.Span.End
	} else {
		p.errorf(CodeMissingArrangement, p.peek().Span, "expected an arrangement name after '~'")
		return agg
	}

	if open := p.expect(TokenLBracket); open != nil {
		if count := p.expect(TokenIdent); count != nil {
			agg.Count = *count
			n, err := strconv.Atoi(count.Literal)
			if err != nil {
				p.errorf(CodeBadAggregateCount, count.Span, "aggregate count %q is not a whole number", count.Literal)
			}
			agg.CountValue = n
		} else {
			p.errorf(CodeBadAggregateCount, p.peek().Span, "expected a crystal count after %q", agg.Arrangement.Literal)
		}
		if closing := p.expect(TokenRBracket); closing != nil {
			agg.Span.End = closing.Span.End
		} else {
			p.errorf(CodeUnclosedBracket, Span{Start: open.Span.Start, End: p.spanEnd(open.Span.End)}, "missing ']'")
		}
	}

	if p.check(TokenLBracket) {
		open := p.advance()
		if name := p.expect(TokenIdent); name != nil {
			agg.Orientation = name
			agg.Span.End = name.Span.End
		}
		if closing := p.expect(TokenRBracket); closing != nil {
			agg.Span.End = closing.Span.End
		} else {
			p.errorf(CodeUnclosedBracket, Span{Start: open.Span.Start, End: p.spanEnd(open.Span.End)}, "missing ']'")
		}
	}
	return agg
}

// spanEnd clamps a fallback end position to the current token position,
// used when a closing delimiter had to be synthesized.
func (p *Parser) spanEnd(min int) int {
	end := p.peek().Span.Start
	if end < min {
		return min
	}
	return end
}
