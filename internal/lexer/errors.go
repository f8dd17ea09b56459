package lexer

import (
	"fmt"

	"fern/internal/diag"
	"fern/internal/source"
)

// Error is a fatal lexical failure. The first one aborts tokenization.
type Error struct {
	Code diag.Code
	Span source.Span
	Line uint32
	Col  uint32
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

// errLex reports the failure to the configured Reporter and returns it as an
// *Error for the caller to propagate.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, line, col uint32, msg string) *Error {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
	return &Error{
		Code: code,
		Span: sp,
		Line: line,
		Col:  col,
		Msg:  msg,
	}
}
