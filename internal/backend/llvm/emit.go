package llvm

import (
	"errors"
	"fmt"
	"strings"

	"newt/internal/ast"
	"newt/internal/module"
	"newt/internal/session"
)

type stringConst struct {
	name string
	data []byte // с завершающим NUL
}

// Emitter renders one module. Use Emit.
type Emitter struct {
	mod     *module.Module
	buf     strings.Builder
	symbols map[*module.Function]string
	sigs    map[*module.Function]string // return type
	strs    map[*session.Literal]*stringConst
	order   []*stringConst
}

// Emit renders mod as an LLVM IR module: one private constant per string
// body, a declare per extern and a define per function.
func Emit(mod *module.Module) (string, error) {
	if !initialized() {
		return "", ErrNotInitialized
	}
	if mod == nil {
		return "", errors.New("nil module")
	}
	e := &Emitter{
		mod:     mod,
		symbols: make(map[*module.Function]string, len(mod.Functions())),
		sigs:    make(map[*module.Function]string, len(mod.Functions())),
		strs:    make(map[*session.Literal]*stringConst),
	}
	if err := e.prepareFunctions(); err != nil {
		return "", err
	}
	e.collectStringConsts()

	e.emitPreamble()
	e.emitStringConsts()
	if err := e.emitFunctions(); err != nil {
		return "", err
	}
	return e.buf.String(), nil
}

func (e *Emitter) prepareFunctions() error {
	for _, fn := range e.mod.Functions() {
		sym, err := symbolName(fn.Name.Value())
		if err != nil {
			return err
		}
		ret, err := llvmType(fn.Result)
		if err != nil {
			return fmt.Errorf("function %s: %w", sym, err)
		}
		e.symbols[fn] = sym
		e.sigs[fn] = ret
	}
	return nil
}

// collectStringConsts numbers string bodies in declaration order.
func (e *Emitter) collectStringConsts() {
	for _, fn := range e.mod.Functions() {
		if fn.Body == nil || fn.Body.Kind != ast.ExprString || fn.Body.Lit == nil {
			continue
		}
		sc := &stringConst{
			name: fmt.Sprintf("@.str.%d", len(e.order)),
			data: append([]byte(fn.Body.Lit.Text), 0),
		}
		e.strs[fn.Body.Lit] = sc
		e.order = append(e.order, sc)
	}
}

func (e *Emitter) emitPreamble() {
	fmt.Fprintf(&e.buf, "target triple = %q\n\n", Triple())
}

func (e *Emitter) emitStringConsts() {
	if len(e.order) == 0 {
		return
	}
	for _, sc := range e.order {
		fmt.Fprintf(&e.buf, "%s = private unnamed_addr constant [%d x i8] %s\n",
			sc.name, len(sc.data), formatLLVMBytes(sc.data))
	}
	e.buf.WriteString("\n")
}

func (e *Emitter) emitFunctions() error {
	for i, fn := range e.mod.Functions() {
		if i > 0 {
			e.buf.WriteString("\n")
		}
		sym, ret := e.symbols[fn], e.sigs[fn]
		if fn.Extern {
			fmt.Fprintf(&e.buf, "declare %s %s()\n", ret, sym)
			continue
		}
		fmt.Fprintf(&e.buf, "define %s %s() {\nentry:\n", ret, sym)
		if err := e.emitBody(fn, ret); err != nil {
			return fmt.Errorf("function %s: %w", sym, err)
		}
		e.buf.WriteString("}\n")
	}
	return nil
}

func (e *Emitter) emitBody(fn *module.Function, ret string) error {
	body := fn.Body
	if body == nil {
		return fmt.Errorf("%w: missing body", ErrUnsupported)
	}
	switch body.Kind {
	case ast.ExprInt:
		fmt.Fprintf(&e.buf, "  ret %s %d\n", ret, int64(body.Int))
	case ast.ExprString:
		sc, ok := e.strs[body.Lit]
		if !ok {
			return fmt.Errorf("%w: string body without literal", ErrUnsupported)
		}
		fmt.Fprintf(&e.buf, "  ret ptr %s\n", sc.name)
	case ast.ExprName:
		if fn.Callee == nil {
			return fmt.Errorf("%w: unresolved call", ErrUnsupported)
		}
		fmt.Fprintf(&e.buf, "  %%0 = call %s %s()\n  ret %s %%0\n", ret, e.symbols[fn.Callee], ret)
	default:
		return fmt.Errorf("%w: %s body", ErrUnsupported, body.Kind)
	}
	return nil
}

func formatLLVMBytes(data []byte) string {
	var sb strings.Builder
	sb.WriteString("c\"")
	writeEscaped(&sb, data)
	sb.WriteString("\"")
	return sb.String()
}
