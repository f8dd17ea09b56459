package lexer

import (
	"fmt"

	"fern/internal/diag"
	"fern/internal/source"
	"fern/internal/token"
)

// Lexer scans a single file into a token stream. One instance is owned by one
// caller for its lifetime and is not reusable after EOF or an error.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. After the input is exhausted it
// returns the EOF token. A non-nil error is fatal: the token stream must not
// be consumed further.
func (lx *Lexer) Next() (token.Token, error) {
	for {
		for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}

		if lx.cursor.EOF() {
			return token.Token{
				Kind: token.EOF,
				Span: lx.emptySpan(),
				Text: "",
				Line: lx.cursor.Line,
				Col:  lx.cursor.Col,
			}, nil
		}

		b := lx.cursor.Peek()
		switch classify(b) {
		case classDigit:
			return lx.scanNumber(), nil

		case classQuote:
			return lx.scanString()

		case classIdentStart:
			return lx.scanIdentOrKeyword(), nil

		case classPunct:
			kind, _ := punctKind(b)
			return lx.scanSingle(kind), nil

		case classSlash:
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 == '/' {
				lx.skipLineComment()
				continue
			}
			return lx.scanSingle(token.Slash), nil

		default:
			line, col := lx.cursor.Line, lx.cursor.Col
			sp := source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off + 1}
			return token.Token{}, lx.errLex(diag.LexUnexpectedChar, sp, line, col,
				fmt.Sprintf("unexpected character %q", rune(b)))
		}
	}
}

// Tokenize drives Next until EOF, returning the full stream including the
// final EOF token. The first lexical error aborts the run and discards the
// tokens produced so far.
func (lx *Lexer) Tokenize() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

// scanSingle emits a one-byte operator or delimiter token.
func (lx *Lexer) scanSingle(kind token.Kind) token.Token {
	line, col := lx.cursor.Line, lx.cursor.Col
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Line: line,
		Col:  col,
	}
}

// skipLineComment consumes a // comment up to, but not including, the
// terminating newline; the whitespace skipper picks that up.
func (lx *Lexer) skipLineComment() {
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '/'
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
