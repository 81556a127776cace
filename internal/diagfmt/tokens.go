package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"newt/internal/source"
	"newt/internal/token"
)

// TokenOutput is the serialized form of one token. Value holds the decoded
// payload: the number for IntLit, canonical text for Ident/Operator, the
// verbatim body for StringLit.
type TokenOutput struct {
	Kind   string `json:"kind" msgpack:"kind"`
	Value  any    `json:"value,omitempty" msgpack:"value,omitempty"`
	Native bool   `json:"native,omitempty" msgpack:"native,omitempty"`
	Start  uint32 `json:"start" msgpack:"start"`
	End    uint32 `json:"end" msgpack:"end"`
	Line   uint32 `json:"line,omitempty" msgpack:"line,omitempty"`
	Col    uint32 `json:"col,omitempty" msgpack:"col,omitempty"`
}

// BuildTokenOutput converts a token stream; fs may be nil to skip line/col.
func BuildTokenOutput(tokens []token.Token, fs *source.FileSet) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		to := TokenOutput{Kind: tok.Kind.String(), Start: tok.Span.Start, End: tok.Span.End}
		switch tok.Kind {
		case token.IntLit:
			to.Value = tok.Int
		case token.Ident, token.Operator:
			to.Value = tok.Text()
		case token.StringLit:
			to.Value = tok.Text()
			to.Native = tok.Str == token.StringNative
		}
		if fs != nil {
			pos, _ := fs.Resolve(tok.Span)
			to.Line, to.Col = pos.Line, pos.Col
		}
		out = append(out, to)
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%3d: %-30s at %d:%d-%d:%d\n", i+1, tok.String(),
			startPos.Line, startPos.Col, endPos.Line, endPos.Col); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokenOutput(tokens, fs))
}

// FormatTokensMsgpack пишет поток токенов одним msgpack массивом.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	enc := msgpack.NewEncoder(w)
	enc.SetOmitEmpty(true)
	return enc.Encode(BuildTokenOutput(tokens, fs))
}

// DecodeTokensMsgpack reads what FormatTokensMsgpack wrote.
func DecodeTokensMsgpack(r io.Reader) ([]TokenOutput, error) {
	var out []TokenOutput
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode token stream: %w", err)
	}
	return out, nil
}
