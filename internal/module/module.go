// Package module resolves a parsed file into a function table: return types
// are interned in the session type arena and every body is checked against
// its declared type.
package module

import (
	"errors"
	"fmt"

	"newt/internal/ast"
	"newt/internal/diag"
	"newt/internal/intern"
	"newt/internal/session"
	"newt/internal/source"
	"newt/internal/types"
)

var (
	ErrUnknownType       = errors.New("unknown type")
	ErrDuplicateFunction = errors.New("duplicate function")
	ErrUnknownFunction   = errors.New("unknown function")
	ErrIntOutOfRange     = errors.New("integer literal out of range")
	ErrTypeMismatch      = errors.New("type mismatch")
)

// Error is a semantic error with the span it was found at.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %v", e.Span, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Span, e.Err, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

type Options struct {
	Reporter diag.Reporter
}

// Function is one resolved item.
type Function struct {
	Name   session.Ident
	Extern bool
	Result session.TypeHandle
	Body   *ast.Expr // nil for externs
	Callee *Function // set when Body names another function
	Decl   *ast.Func
}

// Module is the function table of one file.
type Module struct {
	File   source.FileID
	cx     *session.Context
	funcs  []*Function
	byName map[intern.ID]*Function
}

// Functions returns the table in declaration order.
func (m *Module) Functions() []*Function { return m.funcs }

// Lookup finds a function by name. The name is canonicalized first, so any
// NFC-equivalent spelling matches.
func (m *Module) Lookup(name string) (*Function, bool) {
	id, ok := m.cx.LookupIdentifier(name)
	if !ok {
		return nil, false
	}
	fn, ok := m.byName[id.ID()]
	return fn, ok
}

// Context returns the session the module was built against.
func (m *Module) Context() *session.Context { return m.cx }

// DescribeResult renders the structural return type of fn, e.g. "i32".
func (m *Module) DescribeResult(fn *Function) string { return m.cx.DescribeType(fn.Result) }

// Build resolves every item of file. Items that fail to resolve are left
// out of the table; the error joins one *Error per problem.
func Build(cx *session.Context, file *ast.File, opts Options) (*Module, error) {
	b := &builder{
		cx:   cx,
		opts: opts,
		mod: &Module{
			File:   file.Source,
			cx:     cx,
			byName: make(map[intern.ID]*Function, len(file.Items)),
		},
	}
	// сначала объявления, потом тела: тело может ссылаться на функцию ниже
	for _, item := range file.Items {
		b.declare(item)
	}
	for _, fn := range b.mod.funcs {
		b.checkBody(fn)
	}
	return b.mod, errors.Join(b.errs...)
}

type builder struct {
	cx   *session.Context
	opts Options
	mod  *Module
	errs []error
}

func (b *builder) fail(code diag.Code, sp source.Span, err error, msg string) {
	b.errs = append(b.errs, &Error{Code: code, Span: sp, Msg: msg, Err: err})
	if b.opts.Reporter != nil {
		text := err.Error()
		if msg != "" {
			text += ": " + msg
		}
		diag.ReportError(b.opts.Reporter, code, sp, text).Emit()
	}
}

func (b *builder) declare(item *ast.Func) {
	if prev, dup := b.mod.byName[item.Name.ID()]; dup {
		b.errs = append(b.errs, &Error{
			Code: diag.SemaDuplicateFunction, Span: item.NameSpan, Err: ErrDuplicateFunction,
			Msg: fmt.Sprintf("%q is already declared", item.NameText()),
		})
		if b.opts.Reporter != nil {
			diag.ReportError(b.opts.Reporter, diag.SemaDuplicateFunction, item.NameSpan,
				fmt.Sprintf("function %q is declared twice", item.NameText())).
				WithNote(prev.Decl.NameSpan, "previous declaration is here").
				Emit()
		}
		return
	}
	result, ok := b.resolveType(item.Result)
	if !ok {
		return
	}
	fn := &Function{
		Name:   item.Name,
		Extern: item.Extern,
		Result: result,
		Body:   item.Body,
		Decl:   item,
	}
	b.mod.funcs = append(b.mod.funcs, fn)
	b.mod.byName[item.Name.ID()] = fn
}

// resolveType maps a written type name to an interned descriptor.
func (b *builder) resolveType(ref ast.TypeRef) (session.TypeHandle, bool) {
	name := ""
	if ref.Name.IsValid() {
		name = ref.Name.Value().String()
	}
	var (
		h   session.TypeHandle
		err error
	)
	switch t, ok := types.LookupName(name); {
	case ok:
		h, err = b.cx.Type(t)
	case name == types.CStringName:
		h, err = b.cstring()
	default:
		b.fail(diag.SemaUnknownType, ref.Span, ErrUnknownType, fmt.Sprintf("%q", name))
		return session.TypeHandle{}, false
	}
	if err != nil {
		// интернер типов отказывает только на битых дескрипторах
		panic(fmt.Errorf("intern builtin type %q: %w", name, err))
	}
	return h, true
}

func (b *builder) cstring() (session.TypeHandle, error) {
	elem, err := b.cx.Type(types.MakeSigned(types.Width8))
	if err != nil {
		return session.TypeHandle{}, err
	}
	return b.cx.Type(types.MakePointer(elem.ID(), false))
}

func (b *builder) checkBody(fn *Function) {
	body := fn.Body
	if body == nil {
		return
	}
	result := *fn.Result.Value()
	switch body.Kind {
	case ast.ExprInt:
		if !result.IsInteger() {
			b.fail(diag.SemaTypeMismatch, body.Span, ErrTypeMismatch,
				fmt.Sprintf("integer literal cannot be returned as %s", b.cx.DescribeType(fn.Result)))
			return
		}
		if !result.Fits(body.Int) {
			b.fail(diag.SemaIntOutOfRange, body.Span, ErrIntOutOfRange,
				fmt.Sprintf("%d does not fit in %s", body.Int, b.cx.DescribeType(fn.Result)))
		}
	case ast.ExprName:
		callee, ok := b.mod.byName[body.Name.ID()]
		if !ok {
			b.fail(diag.SemaUnknownFunction, body.Span, ErrUnknownFunction,
				fmt.Sprintf("%q", body.Name.Value().String()))
			return
		}
		if callee.Result != fn.Result {
			b.fail(diag.SemaTypeMismatch, body.Span, ErrTypeMismatch,
				fmt.Sprintf("%q returns %s, expected %s", body.Name.Value().String(),
					b.cx.DescribeType(callee.Result), b.cx.DescribeType(fn.Result)))
			return
		}
		fn.Callee = callee
	case ast.ExprString:
		want, err := b.cstring()
		if err != nil {
			panic(fmt.Errorf("intern CString: %w", err))
		}
		if fn.Result != want {
			b.fail(diag.SemaTypeMismatch, body.Span, ErrTypeMismatch,
				fmt.Sprintf("string literal cannot be returned as %s", b.cx.DescribeType(fn.Result)))
		}
	}
}
