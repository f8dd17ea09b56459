package token_test

import (
	"testing"

	"fern/internal/source"
	"fern/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.NumberLit, token.StringLit}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwLet, token.Plus, token.LParen, token.EOF}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.Assign, token.Semicolon, token.Comma, token.Dot,
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.LBracket, token.RBracket,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwIf, token.NumberLit, token.EOF}
	for _, k := range non {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	kws := []token.Kind{
		token.KwLet, token.KwPrint, token.KwIf, token.KwElse,
		token.KwWhile, token.KwFor, token.KwFunction, token.KwReturn,
	}
	for _, k := range kws {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	non := []token.Kind{token.Ident, token.NumberLit, token.Semicolon}
	for _, k := range non {
		if tok(k).IsKeyword() {
			t.Fatalf("%v must NOT be keyword", k)
		}
	}
}

func TestIsIdent(t *testing.T) {
	if !tok(token.Ident).IsIdent() {
		t.Fatalf("Ident should be ident")
	}
	if tok(token.KwFunction).IsIdent() {
		t.Fatalf("KwFunction must not be ident")
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.EOF:       "EOF",
		token.Ident:     "Ident",
		token.NumberLit: "NumberLit",
		token.KwLet:     "KwLet",
		token.Percent:   "Percent",
		token.RBracket:  "RBracket",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(k), got, want)
		}
	}
	if got := token.Kind(200).String(); got != "Kind(?)" {
		t.Errorf("out-of-range String() = %q", got)
	}
}
