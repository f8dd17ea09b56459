package lexer

import (
	"fern/internal/token"
)

// charClass tags the current byte for the top-level dispatch, keeping Next a
// flat switch.
type charClass uint8

const (
	classWhitespace charClass = iota
	classDigit
	classQuote
	classIdentStart
	classPunct
	classSlash
	classOther
)

// classify maps a byte to its dispatch class. ASCII only.
func classify(b byte) charClass {
	switch {
	case isSpace(b):
		return classWhitespace
	case isDigit(b):
		return classDigit
	case b == '"':
		return classQuote
	case isIdentStart(b):
		return classIdentStart
	case b == '/':
		return classSlash
	default:
		if _, ok := punctKind(b); ok {
			return classPunct
		}
		return classOther
	}
}

// punctKind maps a single-character operator or delimiter to its token kind.
// '/' is absent: it needs comment lookahead first.
func punctKind(b byte) (token.Kind, bool) {
	switch b {
	case '+':
		return token.Plus, true
	case '-':
		return token.Minus, true
	case '*':
		return token.Star, true
	case '%':
		return token.Percent, true
	case '=':
		return token.Assign, true
	case ';':
		return token.Semicolon, true
	case ',':
		return token.Comma, true
	case '.':
		return token.Dot, true
	case '(':
		return token.LParen, true
	case ')':
		return token.RParen, true
	case '{':
		return token.LBrace, true
	case '}':
		return token.RBrace, true
	case '[':
		return token.LBracket, true
	case ']':
		return token.RBracket, true
	}
	return token.Invalid, false
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentStart(b byte) bool {
	return b == '_' || isLetter(b)
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}
