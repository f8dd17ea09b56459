package lexer

import (
	"fern/internal/token"
)

// scanNumber consumes a maximal run of digits and dots. "1.2.3" is a single
// NumberLit; numeric validity is the parser's concern, the lexer keeps the
// raw lexeme.
func (lx *Lexer) scanNumber() token.Token {
	line, col := lx.cursor.Line, lx.cursor.Col
	start := lx.cursor.Mark()

	for {
		b := lx.cursor.Peek()
		if !isDigit(b) && b != '.' {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.NumberLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Line: line,
		Col:  col,
	}
}
