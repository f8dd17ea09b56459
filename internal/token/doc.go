// Package token defines the lexical token kinds of the fern language.
// Invariants:
//   - Token.Span matches the raw lexeme exactly (quotes included for strings).
//   - Token.Text is the surface lexeme, except string literals where it is the
//     decoded contents, and EOF where it is empty.
//   - Line/Col point at the first character of the lexeme and are 1-based.
//   - Keywords are case-sensitive; any other identifier-shaped lexeme is Ident.
//   - Comments and whitespace never appear in the token stream.
package token
