package llvm

import (
	"fmt"

	"newt/internal/session"
	"newt/internal/types"
)

// llvmType maps a resolved type to its IR spelling. Signedness lives in the
// instructions, not the type, so i32 and u32 both lower to i32.
func llvmType(h session.TypeHandle) (string, error) {
	if !h.IsValid() {
		return "", fmt.Errorf("%w: unresolved type", ErrUnsupported)
	}
	t := h.Value()
	switch t.Kind {
	case types.KindSignedInt, types.KindUnsignedInt:
		return intWidthType(t.Width), nil
	case types.KindPointer:
		return "ptr", nil
	default:
		return "", fmt.Errorf("%w: type kind %s", ErrUnsupported, t.Kind)
	}
}

func intWidthType(width types.Width) string {
	return fmt.Sprintf("i%d", width.Bits())
}
