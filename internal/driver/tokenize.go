package driver

import (
	"context"
	"fmt"

	"newt/internal/diag"
	"newt/internal/lexer"
	"newt/internal/observ"
	"newt/internal/session"
	"newt/internal/source"
	"newt/internal/token"
	"newt/internal/trace"
)

// TokenizeResult holds the token stream of one file, EOF included.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Context *session.Context
	Tokens  []token.Token
	Bag     *diag.Bag
	Timer   *observ.Timer
}

// Tokenize loads path and lexes it to EOF. Lexical errors land in Bag as
// diagnostics and as Invalid tokens; the error return is for I/O only.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	timer := observ.NewTimer()
	fs := source.NewFileSet()
	file, err := loadFile(ctx, &opts, timer, fs, path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(ctx, &opts, timer, fs, file), nil
}

// TokenizeSource lexes an in-memory buffer registered under name.
func TokenizeSource(ctx context.Context, name string, src []byte, opts Options) (*TokenizeResult, error) {
	timer := observ.NewTimer()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, src))
	return tokenizeFile(ctx, &opts, timer, fs, file), nil
}

func loadFile(ctx context.Context, opts *Options, timer *observ.Timer, fs *source.FileSet, path string) (*source.File, error) {
	ph, _ := beginPhase(ctx, opts, timer, trace.ScopePass, PhaseLoad, path)
	id, err := fs.Load(path)
	if err != nil {
		err = fmt.Errorf("load %s: %w", path, err)
		ph.end("", err)
		return nil, err
	}
	file := fs.Get(id)
	ph.end(fmt.Sprintf("%d bytes", len(file.Content)), nil)
	return file, nil
}

func tokenizeFile(ctx context.Context, opts *Options, timer *observ.Timer, fs *source.FileSet, file *source.File) *TokenizeResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	cx := session.New()
	ph, _ := beginPhase(ctx, opts, timer, trace.ScopePass, PhaseLex, file.Path)
	tokens := lexAll(file, cx, bag)
	ph.end(fmt.Sprintf("%d tokens", len(tokens)), nil)
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Context: cx,
		Tokens:  tokens,
		Bag:     bag,
		Timer:   timer,
	}
}

// lexAll собирает все токены до EOF; ошибки уже ушли в bag через Reporter
func lexAll(file *source.File, cx *session.Context, bag *diag.Bag) []token.Token {
	lx := lexer.New(file, cx, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	var tokens []token.Token
	for tok := range lx.All() {
		tokens = append(tokens, tok)
	}
	return tokens
}
