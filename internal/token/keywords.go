package token

var keywords = map[string]Kind{
	"let":      KwLet,
	"print":    KwPrint,
	"if":       KwIf,
	"else":     KwElse,
	"while":    KwWhile,
	"for":      KwFor,
	"function": KwFunction,
	"return":   KwReturn,
}

// LookupKeyword returns the keyword kind for ident, if it is reserved.
// Resolution is exact-match over the full lexeme and case-sensitive; only
// lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
