package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"fern/internal/token"
)

// TokenOutput is the serialized form of a single token.
type TokenOutput struct {
	Kind  string `json:"kind" msgpack:"kind"`
	Text  string `json:"text,omitempty" msgpack:"text"`
	Line  uint32 `json:"line" msgpack:"line"`
	Col   uint32 `json:"col" msgpack:"col"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
}

// tokenDumpSchemaVersion guards the msgpack payload layout. Increment when
// TokenOutput or TokenDump changes shape.
const tokenDumpSchemaVersion uint16 = 1

// TokenDump is the schema-versioned msgpack payload for a token stream.
type TokenDump struct {
	Schema uint16        `msgpack:"schema"`
	Path   string        `msgpack:"path"`
	Tokens []TokenOutput `msgpack:"tokens"`
}

func toOutputs(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Line:  tok.Line,
			Col:   tok.Col,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// FormatTokensPretty prints one token per line: kind, text, line, column.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-11s %q at %d:%d\n",
			i+1, tok.Kind.String(), tok.Text, tok.Line, tok.Col); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON prints the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toOutputs(tokens))
}

// FormatTokensMsgpack writes the token stream as a schema-versioned msgpack
// payload for downstream tooling.
func FormatTokensMsgpack(w io.Writer, path string, tokens []token.Token) error {
	dump := TokenDump{
		Schema: tokenDumpSchemaVersion,
		Path:   path,
		Tokens: toOutputs(tokens),
	}
	return msgpack.NewEncoder(w).Encode(dump)
}

// DecodeTokenDump reads back a msgpack token dump, validating the schema.
func DecodeTokenDump(r io.Reader) (*TokenDump, error) {
	var dump TokenDump
	if err := msgpack.NewDecoder(r).Decode(&dump); err != nil {
		return nil, err
	}
	if dump.Schema != tokenDumpSchemaVersion {
		return nil, fmt.Errorf("token dump schema %d, expected %d", dump.Schema, tokenDumpSchemaVersion)
	}
	return &dump, nil
}
