package parser

import "strings"

// Depth is the bracket nesting state carried from line to line. Brackets
// inside string literals and comments are not counted.
type Depth struct {
	Brace int
	Paren int
	Angle int

	inComment bool
}

// Feed advances the curly-brace and parenthesis counters over one line.
func (d *Depth) Feed(line string) {
	if d.inComment {
		idx := strings.Index(line, "*/")
		if idx < 0 {
			return
		}
		line = line[idx+2:]
		d.inComment = false
	}

	for _, tok := range Tokenize(line) {
		switch tok.Kind {
		case TokenLBrace:
			d.Brace++
		case TokenRBrace:
			d.Brace--
		case TokenLParen:
			d.Paren++
		case TokenRParen:
			d.Paren--
		case TokenBlockComment:
			if len(tok.Literal) < 4 || !strings.HasSuffix(tok.Literal, "*/") {
				d.inComment = true
			}
		}
	}
}

func (d *Depth) Reset() {
	*d = Depth{}
}

// Code returns the tokens of line that carry syntax.
func Code(line string) []Token {
	var code []Token
	for _, tok := range Tokenize(line) {
		if !tok.IsTrivia() {
			code = append(code, tok)
		}
	}
	return code
}

// HasToken reports whether line contains, outside strings and comments, a
// token of one of the given kinds.
func HasToken(line string, kinds ...TokenKind) bool {
	for _, tok := range Code(line) {
		for _, k := range kinds {
			if tok.Kind == k {
				return true
			}
		}
	}
	return false
}

// HasWord reports whether one of words appears in line as a whole identifier.
func HasWord(line string, words ...string) bool {
	for _, tok := range Code(line) {
		if tok.Kind != TokenIdent {
			continue
		}
		for _, w := range words {
			if tok.Literal == w {
				return true
			}
		}
	}
	return false
}

// StripComment removes a trailing line comment and trailing whitespace.
func StripComment(line string) string {
	for _, tok := range Tokenize(line) {
		if tok.Kind == TokenLineComment {
			line = line[:tok.Span.Start.Offset]
			break
		}
	}
	return strings.TrimRight(line, " \t\r")
}

// SplitDeclaration splits a class declaration into words on whitespace,
// keeping generic parameter lists such as <A, List<B>> attached to the word
// they follow. Splitting stops at the opening brace of the class body.
func SplitDeclaration(line string) []string {
	var words []string
	var d Depth
	start := 0

	flush := func(end int) {
		word := strings.TrimSpace(line[start:end])
		if word == "" {
			return
		}
		if strings.HasPrefix(word, "<") && len(words) > 0 {
			words[len(words)-1] += word
			return
		}
		words = append(words, word)
	}

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch ch {
		case '<':
			d.Angle++
		case '>':
			d.Angle--
		}
		if d.Angle != 0 {
			continue
		}
		if ch == '{' {
			flush(i)
			return words
		}
		if isWhitespace(ch) {
			flush(i)
			start = i + 1
		}
	}
	flush(len(line))
	return words
}

// Normalize reduces a member signature to the form used to find it again:
// whitespace and generic argument lists are dropped, so that
// "Map<String, dynamic> toMap()" becomes "MaptoMap()". The '>' of an arrow
// does not close a generic list.
func Normalize(src string) string {
	var sb strings.Builder
	generics := 0
	var prev byte
	for i := 0; i < len(src); i++ {
		ch := src[i]
		if ch == '<' {
			generics++
		}
		if generics == 0 && !isWhitespace(ch) {
			sb.WriteByte(ch)
		}
		if ch == '>' && prev != '=' && generics > 0 {
			generics--
		}
		prev = ch
	}
	return sb.String()
}

// TopLevelSplit splits s on sep where sep is not nested inside (), [], {} or <>.
func TopLevelSplit(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			if i > 0 && s[i] == '>' && s[i-1] == '=' {
				continue
			}
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
