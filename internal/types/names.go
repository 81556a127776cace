package types

import (
	"strconv"
	"strings"

	"newt/internal/intern"
)

var builtinNames = map[string]Type{
	"Int8":   MakeSigned(Width8),
	"Int16":  MakeSigned(Width16),
	"Int32":  MakeSigned(Width32),
	"Int64":  MakeSigned(Width64),
	"ISize":  MakeSigned(WidthSize),
	"UInt8":  MakeUnsigned(Width8),
	"UInt16": MakeUnsigned(Width16),
	"UInt32": MakeUnsigned(Width32),
	"UInt64": MakeUnsigned(Width64),
	"USize":  MakeUnsigned(WidthSize),
}

// CStringName names an immutable pointer to Int8. It is not in builtinNames
// because a pointer needs its pointee interned first; see session.Context.
const CStringName = "CString"

// LookupName resolves a built-in type name. Names are case sensitive.
func LookupName(name string) (Type, bool) {
	t, ok := builtinNames[name]
	return t, ok
}

// Resolver maps pointee ids back to descriptors.
type Resolver func(intern.ID) (Type, bool)

// Describe renders the canonical structural spelling used by the code
// generator: i32, u8, *mut i8 and so on. Pointer-sized integers render as
// i64/u64.
func Describe(t Type, resolve Resolver) string {
	var sb strings.Builder
	describe(&sb, t, resolve, 0)
	return sb.String()
}

func describe(sb *strings.Builder, t Type, resolve Resolver, depth int) {
	switch t.Kind {
	case KindSignedInt:
		sb.WriteByte('i')
		sb.WriteString(strconv.Itoa(t.Width.Bits()))
	case KindUnsignedInt:
		sb.WriteByte('u')
		sb.WriteString(strconv.Itoa(t.Width.Bits()))
	case KindPointer:
		sb.WriteByte('*')
		if t.Mutable {
			sb.WriteString("mut ")
		}
		elem, ok := Type{}, false
		if resolve != nil && depth < 64 {
			elem, ok = resolve(t.Elem)
		}
		if !ok {
			sb.WriteString("?")
			return
		}
		describe(sb, elem, resolve, depth+1)
	default:
		sb.WriteString("<invalid>")
	}
}
