package parser

type Lexer struct {
	input  string
	pos    int
	line   int
	column int
}

type Option func(*Lexer)

// WithStartLine numbers the first line of the input; lines are 1-based.
func WithStartLine(line int) Option {
	return func(l *Lexer) {
		l.line = line
	}
}

func NewLexer(input string, opts ...Option) *Lexer {
	l := &Lexer{
		input:  input,
		pos:    0,
		line:   1,
		column: 1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Lexer) Position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
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
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) NextToken() Token {
	startPos := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: startPos, End: startPos}}
	}

	ch := l.peek()

	if ch == '/' && l.peekN(1) == '/' {
		return l.scanLineComment(startPos)
	}
	if ch == '/' && l.peekN(1) == '*' {
		return l.scanBlockComment(startPos)
	}

	if isWhitespace(ch) {
		return l.scanWhitespace(startPos)
	}

	// Raw strings: r'...' and r"...".
	if ch == 'r' && (l.peekN(1) == '\'' || l.peekN(1) == '"') {
		l.advance()
		return l.scanString(startPos, true)
	}

	if isIdentStart(ch) {
		return l.scanIdent(startPos)
	}

	if isDigit(ch) {
		return l.scanNumber(startPos)
	}

	if ch == '\'' || ch == '"' {
		return l.scanString(startPos, false)
	}

	return l.scanOperator(startPos)
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: l.input[start.Offset:end.Offset],
	}
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for isWhitespace(l.peek()) {
		l.advance()
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanLineComment(start Position) Token {
	l.advanceN(2)
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
	return l.token(TokenLineComment, start)
}

// scanBlockComment consumes a /* */ comment. Dart block comments nest.
func (l *Lexer) scanBlockComment(start Position) Token {
	l.advanceN(2)
	nesting := 1
	for nesting > 0 && l.peek() != 0 {
		switch {
		case l.peek() == '/' && l.peekN(1) == '*':
			l.advanceN(2)
			nesting++
		case l.peek() == '*' && l.peekN(1) == '/':
			l.advanceN(2)
			nesting--
		default:
			l.advance()
		}
	}
	return l.token(TokenBlockComment, start)
}

func (l *Lexer) scanIdent(start Position) Token {
	for isIdentPart(l.peek()) {
		l.advance()
	}
	return l.token(TokenIdent, start)
}

func (l *Lexer) scanNumber(start Position) Token {
	if l.peek() == '0' && (l.peekN(1) == 'x' || l.peekN(1) == 'X') {
		l.advanceN(2)
		for isHexDigit(l.peek()) {
			l.advance()
		}
		return l.token(TokenNumber, start)
	}
	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		l.advance()
		for isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	return l.token(TokenNumber, start)
}

// scanString consumes a single, double or triple quoted string. Interpolated
// expressions are not tokenized; an unterminated string runs to the end of
// the input.
func (l *Lexer) scanString(start Position, raw bool) Token {
	quote := l.peek()
	triple := l.peekN(1) == quote && l.peekN(2) == quote
	if triple {
		l.advanceN(3)
	} else {
		l.advance()
	}

	for {
		ch := l.peek()
		if ch == 0 {
			break
		}
		if ch == '\\' && !raw {
			l.advanceN(2)
			continue
		}
		if triple {
			if ch == quote && l.peekN(1) == quote && l.peekN(2) == quote {
				l.advanceN(3)
				break
			}
		} else {
			if ch == '\n' {
				break
			}
			if ch == quote {
				l.advance()
				break
			}
		}
		l.advance()
	}
	return l.token(TokenString, start)
}

func (l *Lexer) scanOperator(start Position) Token {
	ch := l.peek()
	if ch == '=' {
		switch l.peekN(1) {
		case '>':
			l.advanceN(2)
			return l.token(TokenArrow, start)
		case '=':
			l.advanceN(2)
			return l.token(TokenEQ, start)
		}
		l.advance()
		return l.token(TokenAssign, start)
	}
	if kind, ok := singleCharTokens[ch]; ok {
		l.advance()
		return l.token(kind, start)
	}
	l.advance()
	return l.token(TokenOther, start)
}

// Tokenize returns every token of input, trivia included, without the
// trailing EOF.
func Tokenize(input string, opts ...Option) []Token {
	l := NewLexer(input, opts...)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Kind == TokenEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
