package diag

import (
	"fmt"
)

// Code is a compact numeric identifier with a stable string form.
type Code uint16

const (
	// UnknownCode is the fallback for unclassified failures.
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnexpectedChar     Code = 1001
	LexUnterminatedString Code = 1002
	LexInvalidEscape      Code = 1003
	LexUnterminatedEscape Code = 1004

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:           "unknown error",
	LexInfo:               "lexical information",
	LexUnexpectedChar:     "unexpected character",
	LexUnterminatedString: "unterminated string literal",
	LexInvalidEscape:      "invalid escape sequence",
	LexUnterminatedEscape: "unterminated escape sequence",
	IOLoadFileError:       "I/O load file error",
}

// ID returns the stable short identifier, e.g. "LEX1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable summary for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
