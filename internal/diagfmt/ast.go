package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"newt/internal/ast"
	"newt/internal/source"
	"newt/internal/token"
)

// FormatASTPretty печатает дерево в виде:
//
//	file main.nt: 2 items
//	├─ extern func puts() -> CString  1:1
//	└─ func main() -> Int32  2:1
//	   └─ int 0  2:23
func FormatASTPretty(w io.Writer, file *ast.File, fs *source.FileSet) error {
	var sb strings.Builder
	name := "<unknown>"
	if fs != nil && int(file.Source) < fs.Len() {
		name = fs.Get(file.Source).Path
	}
	fmt.Fprintf(&sb, "file %s: %d items\n", name, len(file.Items))
	for i, fn := range file.Items {
		last := i == len(file.Items)-1
		branch, indent := "├─ ", "│  "
		if last {
			branch, indent = "└─ ", "   "
		}
		sb.WriteString(branch)
		sb.WriteString(funcHeader(fn))
		sb.WriteString(at(fs, fn.Span))
		sb.WriteByte('\n')
		if fn.Body != nil {
			sb.WriteString(indent)
			sb.WriteString("└─ ")
			sb.WriteString(exprText(fn.Body))
			sb.WriteString(at(fs, fn.Body.Span))
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func funcHeader(fn *ast.Func) string {
	prefix := "func "
	if fn.Extern {
		prefix = "extern func "
	}
	return prefix + fn.NameText() + "() -> " + typeText(fn.Result)
}

func typeText(t ast.TypeRef) string {
	if !t.Name.IsValid() {
		return "<missing>"
	}
	return t.Name.Value().String()
}

func exprText(e *ast.Expr) string {
	switch e.Kind {
	case ast.ExprInt:
		return "int " + strconv.FormatUint(e.Int, 10)
	case ast.ExprName:
		if e.Name.IsValid() {
			return "name " + e.Name.Value().String()
		}
	case ast.ExprString:
		text := ""
		if e.Lit != nil {
			text = e.Lit.Text
		}
		if e.Str == token.StringNative {
			return "string c" + strconv.Quote(text)
		}
		return "string " + strconv.Quote(text)
	}
	return e.Kind.String()
}

func at(fs *source.FileSet, sp source.Span) string {
	if fs == nil || int(sp.File) >= fs.Len() {
		return "  " + sp.String()
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("  %d:%d", start.Line, start.Col)
}

// ExprJSON is the serialized form of a function body.
type ExprJSON struct {
	Kind   string `json:"kind"`
	Int    uint64 `json:"int,omitempty"`
	Name   string `json:"name,omitempty"`
	String string `json:"string,omitempty"`
	Native bool   `json:"native,omitempty"`
	Start  uint32 `json:"start"`
	End    uint32 `json:"end"`
}

// FuncJSON is the serialized form of one item.
type FuncJSON struct {
	Name   string    `json:"name"`
	Extern bool      `json:"extern"`
	Result string    `json:"result"`
	Body   *ExprJSON `json:"body,omitempty"`
	Start  uint32    `json:"start"`
	End    uint32    `json:"end"`
}

// FileJSON is the root of FormatASTJSON output.
type FileJSON struct {
	Path  string     `json:"path,omitempty"`
	Items []FuncJSON `json:"items"`
}

// BuildASTOutput converts a syntax tree without encoding it.
func BuildASTOutput(file *ast.File, fs *source.FileSet) FileJSON {
	out := FileJSON{Items: make([]FuncJSON, 0, len(file.Items))}
	if fs != nil && int(file.Source) < fs.Len() {
		out.Path = fs.Get(file.Source).Path
	}
	for _, fn := range file.Items {
		fj := FuncJSON{
			Name:   fn.NameText(),
			Extern: fn.Extern,
			Result: typeText(fn.Result),
			Start:  fn.Span.Start,
			End:    fn.Span.End,
		}
		if e := fn.Body; e != nil {
			ej := &ExprJSON{Kind: e.Kind.String(), Start: e.Span.Start, End: e.Span.End}
			switch e.Kind {
			case ast.ExprInt:
				ej.Int = e.Int
			case ast.ExprName:
				if e.Name.IsValid() {
					ej.Name = e.Name.Value().String()
				}
			case ast.ExprString:
				if e.Lit != nil {
					ej.String = e.Lit.Text
				}
				ej.Native = e.Str == token.StringNative
			}
			fj.Body = ej
		}
		out.Items = append(out.Items, fj)
	}
	return out
}

// FormatASTJSON выводит дерево в JSON формате
func FormatASTJSON(w io.Writer, file *ast.File, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTOutput(file, fs))
}
