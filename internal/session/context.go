// Package session holds the per-compilation stores: the identifier arena,
// the string-literal log and the type arena.
package session

import (
	"fmt"
	"strings"
	"sync"

	"newt/internal/canon"
	"newt/internal/intern"
	"newt/internal/source"
	"newt/internal/types"
)

type (
	// Ident is a handle to canonical identifier text.
	Ident = intern.Handle[canon.Text]
	// TypeHandle is a handle to an interned type descriptor.
	TypeHandle = intern.Handle[types.Type]
)

// Literal is one occurrence of a string literal. Literals are never shared:
// equal contents at different positions get distinct slots.
type Literal struct {
	Text  string // verbatim, not normalized
	Span  source.Span
	Index int // position in the literal log
}

// Stats reports store sizes.
type Stats struct {
	Identifiers int
	Literals    int
	Types       int
}

// Context is created once per compilation and owns every interned value.
// Handles stay valid for as long as the Context is reachable.
type Context struct {
	mu       *sync.Mutex // nil unless synchronized
	idents   *intern.Arena[string, string, canon.Text]
	literals []*Literal
	types    *intern.Arena[types.Type, types.Type, types.Type]
}

// Option configures a Context.
type Option func(*Context)

// WithSynchronized guards every store with one mutex so several goroutines can
// lex against the same Context.
func WithSynchronized() Option {
	return func(cx *Context) { cx.mu = new(sync.Mutex) }
}

// New creates an empty Context.
func New(opts ...Option) *Context {
	cx := &Context{
		idents: intern.New[string, string, canon.Text](canon.Policy{}),
		types:  intern.New[types.Type, types.Type, types.Type](types.Policy{}),
	}
	for _, opt := range opts {
		opt(cx)
	}
	return cx
}

func (cx *Context) lock() func() {
	if cx.mu == nil {
		return func() {}
	}
	cx.mu.Lock()
	return cx.mu.Unlock
}

// Identifier canonicalizes text and interns it. NFC-equivalent spellings
// return the same handle.
func (cx *Context) Identifier(text string) (Ident, error) {
	defer cx.lock()()
	h, err := cx.idents.Add(text)
	if err != nil {
		return Ident{}, fmt.Errorf("intern identifier: %w", err)
	}
	return h, nil
}

// LookupIdentifier finds an already interned identifier without inserting.
func (cx *Context) LookupIdentifier(text string) (Ident, bool) {
	defer cx.lock()()
	return cx.idents.Lookup(text)
}

// IdentByID resolves an identifier id.
func (cx *Context) IdentByID(id intern.ID) (Ident, bool) {
	defer cx.lock()()
	return cx.idents.Get(id)
}

// StringLiteral appends a literal occurrence to the log. The returned
// pointer stays valid for the Context's lifetime.
func (cx *Context) StringLiteral(text string, at source.Span) *Literal {
	defer cx.lock()()
	lit := &Literal{
		Text:  strings.Clone(text),
		Span:  at,
		Index: len(cx.literals),
	}
	cx.literals = append(cx.literals, lit)
	return lit
}

// Literals returns the literal log in insertion order. The slice must not be modified.
func (cx *Context) Literals() []*Literal {
	defer cx.lock()()
	return cx.literals[:len(cx.literals):len(cx.literals)]
}

// Type interns a structural type descriptor.
func (cx *Context) Type(t types.Type) (TypeHandle, error) {
	defer cx.lock()()
	h, err := cx.types.Add(t)
	if err != nil {
		return TypeHandle{}, fmt.Errorf("intern type: %w", err)
	}
	return h, nil
}

// TypeByID resolves a type id, e.g. a pointer's Elem.
func (cx *Context) TypeByID(id intern.ID) (TypeHandle, bool) {
	defer cx.lock()()
	return cx.types.Get(id)
}

// DescribeType renders the structural description of h for code generation.
func (cx *Context) DescribeType(h TypeHandle) string {
	if !h.IsValid() {
		return "<invalid>"
	}
	return types.Describe(*h.Value(), func(id intern.ID) (types.Type, bool) {
		e, ok := cx.TypeByID(id)
		if !ok {
			return types.Type{}, false
		}
		return *e.Value(), true
	})
}

// Identifiers returns identifier handles sorted by canonical text.
func (cx *Context) Identifiers() []Ident {
	defer cx.lock()()
	return cx.idents.Sorted()
}

// Stats returns the current store sizes.
func (cx *Context) Stats() Stats {
	defer cx.lock()()
	return Stats{
		Identifiers: cx.idents.Len(),
		Literals:    len(cx.literals),
		Types:       cx.types.Len(),
	}
}
