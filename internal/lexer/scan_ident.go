package lexer

import (
	"fern/internal/token"
)

// scanIdentOrKeyword scans an identifier and resolves it through
// LookupKeyword. Keywords are case-sensitive; Token.Text is exactly the
// source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	line, col := lx.cursor.Line, lx.cursor.Col
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	kind := token.Ident
	if k, ok := token.LookupKeyword(text); ok {
		kind = k
	}

	return token.Token{
		Kind: kind,
		Span: sp,
		Text: text,
		Line: line,
		Col:  col,
	}
}
