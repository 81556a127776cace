package types

import (
	"cmp"
	"fmt"
)

// Policy interns type descriptors structurally.
type Policy struct{}

func (Policy) Key(t Type) Type { return t }

func (Policy) Make(t Type) (Type, error) {
	switch t.Kind {
	case KindSignedInt, KindUnsignedInt:
		if t.Width == WidthInvalid || t.Width > WidthSize {
			return Type{}, fmt.Errorf("integer type with invalid width %d", t.Width)
		}
	case KindPointer:
		if t.Elem == 0 {
			return Type{}, fmt.Errorf("pointer type without pointee")
		}
	default:
		return Type{}, fmt.Errorf("cannot intern %s type", t.Kind)
	}
	return t, nil
}

func (Policy) Compare(a, b *Type) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Width, b.Width); c != 0 {
		return c
	}
	if a.Mutable != b.Mutable {
		if !a.Mutable {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.Elem, b.Elem)
}
