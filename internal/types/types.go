package types

import (
	"fmt"

	"newt/internal/intern"
)

// Kind enumerates the supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindSignedInt
	KindUnsignedInt
	KindPointer
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindSignedInt:
		return "signed"
	case KindUnsignedInt:
		return "unsigned"
	case KindPointer:
		return "pointer"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width is the size of an integer type.
type Width uint8

const (
	WidthInvalid Width = iota
	Width8
	Width16
	Width32
	Width64
	// WidthSize is pointer sized.
	WidthSize
)

// PointerBits is the pointer width assumed for WidthSize.
const PointerBits = 64

// Bits returns the width in bits.
func (w Width) Bits() int {
	switch w {
	case Width8:
		return 8
	case Width16:
		return 16
	case Width32:
		return 32
	case Width64:
		return 64
	case WidthSize:
		return PointerBits
	default:
		return 0
	}
}

func (w Width) String() string {
	switch w {
	case WidthSize:
		return "size"
	case WidthInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("%d", w.Bits())
	}
}

// Type is a structural type descriptor. It is comparable and serves as its
// own interning key. Pointer types refer to their pointee by arena id.
type Type struct {
	Kind    Kind
	Width   Width     // integers
	Mutable bool      // pointers
	Elem    intern.ID // pointers
}

// MakeSigned describes a signed integer.
func MakeSigned(w Width) Type { return Type{Kind: KindSignedInt, Width: w} }

// MakeUnsigned describes an unsigned integer.
func MakeUnsigned(w Width) Type { return Type{Kind: KindUnsignedInt, Width: w} }

// MakePointer describes *T or *mut T.
func MakePointer(elem intern.ID, mutable bool) Type {
	return Type{Kind: KindPointer, Elem: elem, Mutable: mutable}
}

// IsInteger reports whether t is a signed or unsigned integer.
func (t Type) IsInteger() bool {
	return t.Kind == KindSignedInt || t.Kind == KindUnsignedInt
}

// Fits reports whether v is representable in integer type t.
func (t Type) Fits(v uint64) bool {
	bits := t.Width.Bits()
	switch t.Kind {
	case KindSignedInt:
		return bits > 0 && v <= uint64(1)<<(bits-1)-1
	case KindUnsignedInt:
		if bits == 64 {
			return true
		}
		return bits > 0 && v <= uint64(1)<<bits-1
	default:
		return false
	}
}
