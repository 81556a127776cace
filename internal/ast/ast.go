// Package ast holds the syntax tree produced by internal/parser.
package ast

import (
	"newt/internal/session"
	"newt/internal/source"
	"newt/internal/token"
)

type File struct {
	Source source.FileID
	Span   source.Span
	Items  []*Func
}

// Func is either an extern declaration (Body == nil) or a definition.
type Func struct {
	Extern   bool
	Name     session.Ident
	NameSpan source.Span
	Result   TypeRef
	Body     *Expr
	Span     source.Span
}

// NameText returns the canonical spelling of the function name.
func (f *Func) NameText() string {
	if !f.Name.IsValid() {
		return ""
	}
	return f.Name.Value().String()
}

// TypeRef is a type written by name.
type TypeRef struct {
	Name session.Ident
	Span source.Span
}

type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprInt
	ExprName
	ExprString
)

func (k ExprKind) String() string {
	switch k {
	case ExprInt:
		return "int"
	case ExprName:
		return "name"
	case ExprString:
		return "string"
	}
	return "invalid"
}

// Expr is a function body. Exactly one payload is set, per Kind.
type Expr struct {
	Kind ExprKind
	Span source.Span
	Int  uint64
	Name session.Ident
	Str  token.StringKind
	Lit  *session.Literal
}
