package driver

import (
	"context"
	"fmt"

	"newt/internal/backend/llvm"
	"newt/internal/diag"
	"newt/internal/module"
	"newt/internal/source"
	"newt/internal/trace"
)

type BuildResult struct {
	*ParseResult
	Module *module.Module // nil if parsing failed
	IR     string         // empty if any phase reported errors
}

// Build runs the whole pipeline on path: load, parse, resolve, emit IR.
// Each phase runs only when the previous one left no errors in Bag.
func Build(ctx context.Context, path string, opts Options) (*BuildResult, error) {
	pr, err := Parse(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	return buildParsed(ctx, &opts, pr)
}

// BuildSource is Build over an in-memory buffer.
func BuildSource(ctx context.Context, name string, src []byte, opts Options) (*BuildResult, error) {
	pr, err := ParseSource(ctx, name, src, opts)
	if err != nil {
		return nil, err
	}
	return buildParsed(ctx, &opts, pr)
}

func buildParsed(ctx context.Context, opts *Options, pr *ParseResult) (*BuildResult, error) {
	res := &BuildResult{ParseResult: pr}
	if pr.Bag.HasErrors() {
		return res, nil
	}

	ph, _ := beginPhase(ctx, opts, pr.Timer, trace.ScopePass, PhaseBuild, pr.File.Path)
	mod, err := module.Build(pr.Context, pr.Tree, module.Options{Reporter: diag.BagReporter{Bag: pr.Bag}})
	ph.end(fmt.Sprintf("%d functions", len(mod.Functions())), err)
	res.Module = mod
	if pr.Bag.HasErrors() {
		return res, nil
	}

	llvm.Initialize()
	ph, _ = beginPhase(ctx, opts, pr.Timer, trace.ScopePass, PhaseEmit, pr.File.Path)
	ir, err := llvm.Emit(mod)
	if err != nil {
		// модуль уже проверен, сюда попадаем только на неподдержанных конструкциях
		pr.Bag.Add(diag.NewError(diag.GenUnsupportedBody, source.Span{File: pr.File.ID}, err.Error()))
		ph.end("", err)
		return res, nil
	}
	ph.end(fmt.Sprintf("%d bytes", len(ir)), nil)
	res.IR = ir
	return res, nil
}
