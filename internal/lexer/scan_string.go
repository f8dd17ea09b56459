package lexer

import (
	"fmt"
	"strings"

	"fern/internal/diag"
	"fern/internal/token"
)

// scanString scans a double-quoted string literal, decoding escapes in the
// same pass. Token.Text is the decoded contents without the quotes; the span
// still covers the quotes. A raw newline is allowed inside the literal.
func (lx *Lexer) scanString() (token.Token, error) {
	line, col := lx.cursor.Line, lx.cursor.Col
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var buf strings.Builder
	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{}, lx.errLex(diag.LexUnterminatedString, sp, line, col,
				"unterminated string literal")
		}

		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{
				Kind: token.StringLit,
				Span: sp,
				Text: buf.String(),
				Line: line,
				Col:  col,
			}, nil
		}

		if b == '\\' {
			escLine, escCol := lx.cursor.Line, lx.cursor.Col
			escStart := lx.cursor.Mark()
			lx.cursor.Bump() // '\'

			if lx.cursor.EOF() {
				sp := lx.cursor.SpanFrom(escStart)
				return token.Token{}, lx.errLex(diag.LexUnterminatedEscape, sp, escLine, escCol,
					"unterminated escape sequence")
			}

			esc := lx.cursor.Peek()
			var decoded byte
			switch esc {
			case 'n':
				decoded = '\n'
			case 't':
				decoded = '\t'
			case 'r':
				decoded = '\r'
			case '\\':
				decoded = '\\'
			case '"':
				decoded = '"'
			default:
				lx.cursor.Bump()
				sp := lx.cursor.SpanFrom(escStart)
				return token.Token{}, lx.errLex(diag.LexInvalidEscape, sp, escLine, escCol,
					fmt.Sprintf("invalid escape sequence '\\%c'", rune(esc)))
			}
			buf.WriteByte(decoded)
			lx.cursor.Bump()
			continue
		}

		buf.WriteByte(lx.cursor.Bump())
	}
}
