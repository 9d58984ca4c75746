package parser

import (
	"testing"
)

func TestLexerNewLexer(t *testing.T) {
	lexer := NewLexer("class Foo {}", WithStartLine(7))
	pos := lexer.Position()

	if pos.Line != 7 {
		t.Errorf("Line = %d, want %d", pos.Line, 7)
	}
	if pos.Column != 1 {
		t.Errorf("Column = %d, want %d", pos.Column, 1)
	}
	if pos.Offset != 0 {
		t.Errorf("Offset = %d, want %d", pos.Offset, 0)
	}
}

func TestLexerIdentifiers(t *testing.T) {
	tests := []string{
		"foo",
		"Bar",
		"_private",
		"$special",
		"camelCase",
		"with123Numbers",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tok := NewLexer(input).NextToken()
			if tok.Kind != TokenIdent {
				t.Errorf("Kind = %v, want %v", tok.Kind, TokenIdent)
			}
			if tok.Literal != input {
				t.Errorf("Literal = %q, want %q", tok.Literal, input)
			}
		})
	}
}

func TestLexerOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"(", TokenLParen},
		{")", TokenRParen},
		{"{", TokenLBrace},
		{"}", TokenRBrace},
		{"[", TokenLBracket},
		{"]", TokenRBracket},
		{"<", TokenLT},
		{">", TokenGT},
		{",", TokenComma},
		{";", TokenSemicolon},
		{".", TokenDot},
		{":", TokenColon},
		{"?", TokenQuestion},
		{"@", TokenAt},
		{"=", TokenAssign},
		{"==", TokenEQ},
		{"=>", TokenArrow},
		{"+", TokenOther},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewLexer(tt.input).NextToken()
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []string{
		`'single'`,
		`"double"`,
		`'it\'s'`,
		`r'raw\'`,
		`'''triple ' quoted'''`,
		`'Point(x: $x, y: ${y})'`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tok := NewLexer(input).NextToken()
			if tok.Kind != TokenString {
				t.Errorf("Kind = %v, want %v", tok.Kind, TokenString)
			}
			if tok.Literal != input {
				t.Errorf("Literal = %q, want %q", tok.Literal, input)
			}
		})
	}
}

func TestLexerComments(t *testing.T) {
	tokens := Tokenize("final int x; // trailing { comment")
	last := tokens[len(tokens)-1]
	if last.Kind != TokenLineComment {
		t.Fatalf("Kind = %v, want %v", last.Kind, TokenLineComment)
	}
	if last.Literal != "// trailing { comment" {
		t.Errorf("Literal = %q", last.Literal)
	}

	tokens = Tokenize("/* outer /* inner */ still */x")
	if tokens[0].Kind != TokenBlockComment {
		t.Fatalf("Kind = %v, want %v", tokens[0].Kind, TokenBlockComment)
	}
	if tokens[1].Literal != "x" {
		t.Errorf("token after nested comment = %q, want %q", tokens[1].Literal, "x")
	}
}

func TestLexerPositions(t *testing.T) {
	tokens := Code("a\n  b")
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
	b := tokens[1].Span.Start
	if b.Line != 2 || b.Column != 3 || b.Offset != 4 {
		t.Errorf("b at %d:%d (offset %d), want 2:3 (offset 4)", b.Line, b.Column, b.Offset)
	}
}
