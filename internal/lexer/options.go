package lexer

import (
	"fern/internal/diag"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics as they happen. May be nil; the
	// lexer still returns the failure as an error either way.
	Reporter diag.Reporter
}
