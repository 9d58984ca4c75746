package parser

type Position struct {
	Offset int
	Line   int
	Column int
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenWhitespace
	TokenLineComment
	TokenBlockComment

	// Literals
	TokenIdent
	TokenNumber
	TokenString

	// Brackets
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenLT
	TokenGT

	// Punctuation
	TokenComma
	TokenSemicolon
	TokenDot
	TokenColon
	TokenQuestion
	TokenAt
	TokenAssign
	TokenEQ
	TokenArrow
	TokenOther
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:          "EOF",
	TokenWhitespace:   "Whitespace",
	TokenLineComment:  "LineComment",
	TokenBlockComment: "BlockComment",
	TokenIdent:        "Identifier",
	TokenNumber:       "Number",
	TokenString:       "String",
	TokenLParen:       "(",
	TokenRParen:       ")",
	TokenLBrace:       "{",
	TokenRBrace:       "}",
	TokenLBracket:     "[",
	TokenRBracket:     "]",
	TokenLT:           "<",
	TokenGT:           ">",
	TokenComma:        ",",
	TokenSemicolon:    ";",
	TokenDot:          ".",
	TokenColon:        ":",
	TokenQuestion:     "?",
	TokenAt:           "@",
	TokenAssign:       "=",
	TokenEQ:           "==",
	TokenArrow:        "=>",
	TokenOther:        "Other",
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

// IsTrivia reports whether the token carries no syntax: whitespace or comments.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case TokenWhitespace, TokenLineComment, TokenBlockComment:
		return true
	}
	return false
}

var singleCharTokens = map[byte]TokenKind{
	'(': TokenLParen,
	')': TokenRParen,
	'{': TokenLBrace,
	'}': TokenRBrace,
	'[': TokenLBracket,
	']': TokenRBracket,
	'<': TokenLT,
	'>': TokenGT,
	',': TokenComma,
	';': TokenSemicolon,
	'.': TokenDot,
	':': TokenColon,
	'?': TokenQuestion,
	'@': TokenAt,
}
