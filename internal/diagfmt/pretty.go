package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"newt/internal/diag"
	"newt/internal/source"
)

type palette struct {
	sev   map[diag.Severity]*color.Color
	code  *color.Color
	caret *color.Color
	note  *color.Color
	gut   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		code:  color.New(color.Faint),
		caret: color.New(color.FgRed, color.Bold),
		note:  color.New(color.FgBlue, color.Bold),
		gut:   color.New(color.FgBlue),
	}
	all := []*color.Color{p.code, p.caret, p.note, p.gut}
	for _, c := range p.sev {
		all = append(all, c)
	}
	for _, c := range all {
		// fatih/color сам глушит цвет вне терминала; здесь решает вызывающий
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждой диагностики:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	  3 | func main() -> Int8 { 300 }
//	    |                       ^~~
//
// затем Notes в том же формате, если включены.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := prettyOne(w, d, fs, opts, pal); err != nil {
			return err
		}
	}
	if n := bag.Dropped(); n > 0 {
		_, err := fmt.Fprintf(w, "\n... %d more diagnostics not shown (limit %d)\n", n, bag.Cap())
		return err
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) error {
	var sb strings.Builder
	file := fileOf(fs, d.Code, d.Primary)
	if file != nil {
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(&sb, "%s:%d:%d: ", formatPath(file.Path, opts.PathMode), start.Line, start.Col)
	}
	sev := pal.sev[d.Severity]
	if sev == nil {
		sev = pal.code
	}
	sb.WriteString(sev.Sprint(d.Severity.String()))
	sb.WriteByte(' ')
	sb.WriteString(pal.code.Sprint(d.Code.ID()))
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	sb.WriteByte('\n')
	if file != nil {
		writeSnippet(&sb, fs, file, d.Primary, opts.Context, pal)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			nf := fileOf(fs, d.Code, n.Span)
			sb.WriteString(pal.note.Sprint("note"))
			sb.WriteString(": ")
			if nf != nil {
				start, _ := fs.Resolve(n.Span)
				fmt.Fprintf(&sb, "%s:%d:%d: ", formatPath(nf.Path, opts.PathMode), start.Line, start.Col)
			}
			sb.WriteString(n.Msg)
			sb.WriteByte('\n')
			if nf != nil {
				writeSnippet(&sb, fs, nf, n.Span, 0, pal)
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeSnippet prints the line holding sp with a caret underline. Columns are
// display columns, so wide runes before the span shift the caret correctly.
func writeSnippet(sb *strings.Builder, fs *source.FileSet, file *source.File, sp source.Span, context int, pal palette) {
	start, end := fs.Resolve(sp)
	first := start.Line
	if context > 0 {
		first = uint32(max(1, int(start.Line)-context))
	}
	gutter := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(sb, "%s %s\n", pal.gut.Sprintf("%*d |", gutter, ln), expandTabs(file.GetLine(ln)))
	}

	line := file.GetLine(start.Line)
	col := min(int(start.Col)-1, len(line))
	endCol := len(line)
	if end.Line == start.Line {
		endCol = min(int(end.Col)-1, len(line))
	}
	pad := runewidth.StringWidth(expandTabs(line[:col]))
	width := max(1, runewidth.StringWidth(expandTabs(line[col:max(col, endCol)])))

	fmt.Fprintf(sb, "%s %s%s\n",
		pal.gut.Sprintf("%*s |", gutter, ""),
		strings.Repeat(" ", pad),
		pal.caret.Sprint("^"+strings.Repeat("~", width-1)))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
