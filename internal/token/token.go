package token

import (
	"fern/internal/source"
)

// Token represents a single source token with its location.
//
// Text carries the exact lexeme as it appeared in the source, except for
// string literals where it carries the decoded contents (escapes resolved,
// quotes stripped) and EOF where it is empty. Span always covers the raw
// lexeme, quotes included.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Line uint32 // 1-based line of the first character of the lexeme
	Col  uint32 // 1-based column of the first character of the lexeme
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Assign,
		Semicolon, Comma, Dot,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwLet, KwPrint, KwIf, KwElse, KwWhile, KwFor, KwFunction, KwReturn:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
