package driver

import (
	"fern/internal/diag"
	"fern/internal/lexer"
	"fern/internal/source"
	"fern/internal/token"
)

// TokenizeResult carries everything a caller needs to render a tokenization:
// the stream itself and the diagnostics with the file set to resolve them.
// Tokens is nil when Err is set; the stream is discarded on the first error.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	Err     error
}

// Tokenize loads path from disk and tokenizes it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeBytes tokenizes in-memory content under the given display name
// (stdin, tests, the builtin sample).
func TokenizeBytes(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	lx := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	tokens, err := lx.Tokenize()
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		Err:     err,
	}
}
