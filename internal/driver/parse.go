package driver

import (
	"context"
	"errors"
	"fmt"

	"newt/internal/ast"
	"newt/internal/diag"
	"newt/internal/observ"
	"newt/internal/parser"
	"newt/internal/session"
	"newt/internal/source"
	"newt/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Context *session.Context
	Tree    *ast.File
	Bag     *diag.Bag
	Timer   *observ.Timer
}

// Parse loads path and parses it. Syntax errors land in Bag; the error
// return is for I/O only.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	timer := observ.NewTimer()
	fs := source.NewFileSet()
	file, err := loadFile(ctx, &opts, timer, fs, path)
	if err != nil {
		return nil, err
	}
	return parseFile(ctx, &opts, timer, fs, file), nil
}

// ParseSource parses an in-memory buffer registered under name.
func ParseSource(ctx context.Context, name string, src []byte, opts Options) (*ParseResult, error) {
	timer := observ.NewTimer()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, src))
	return parseFile(ctx, &opts, timer, fs, file), nil
}

func parseFile(ctx context.Context, opts *Options, timer *observ.Timer, fs *source.FileSet, file *source.File) *ParseResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	cx := session.New()
	ph, _ := beginPhase(ctx, opts, timer, trace.ScopePass, PhaseParse, file.Path)
	// лексер и парсер могут сообщить об одном месте дважды
	tree, err := parser.ParseFile(file, cx, parser.Options{
		Reporter:  diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
		MaxErrors: opts.MaxDiagnostics,
	})
	if errors.Is(err, parser.ErrTooManyErrors) {
		bag.Add(diag.New(diag.SevInfo, diag.SynInfo, source.Span{File: file.ID},
			fmt.Sprintf("parsing stopped after %d errors", opts.MaxDiagnostics)))
	}
	ph.end(fmt.Sprintf("%d items", len(tree.Items)), err)
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Context: cx,
		Tree:    tree,
		Bag:     bag,
		Timer:   timer,
	}
}
