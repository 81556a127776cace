package llvm

import (
	"bytes"
	"fmt"
	"strings"

	"newt/internal/canon"
)

// symbolName spells a global name. Identifiers made only of
// [-a-zA-Z$._0-9] (not starting with a digit) are written bare, everything
// else is quoted with \XX escapes, so NFC-normalized Unicode names survive.
func symbolName(name *canon.Text) (string, error) {
	raw := name.CString()
	if len(raw) == 0 || raw[len(raw)-1] != 0 {
		return "", fmt.Errorf("%w: symbol %q is not NUL-terminated", ErrUnsupported, name.String())
	}
	raw = raw[:len(raw)-1]
	if len(raw) == 0 || bytes.IndexByte(raw, 0) >= 0 {
		return "", fmt.Errorf("%w: bad symbol %q", ErrUnsupported, name.String())
	}
	if isBareSymbol(raw) {
		return "@" + string(raw), nil
	}
	var sb strings.Builder
	sb.WriteString(`@"`)
	writeEscaped(&sb, raw)
	sb.WriteByte('"')
	return sb.String(), nil
}

func isBareSymbol(raw []byte) bool {
	if raw[0] >= '0' && raw[0] <= '9' {
		return false
	}
	for _, b := range raw {
		switch {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		case b == '-', b == '$', b == '.', b == '_':
		default:
			return false
		}
	}
	return true
}

// writeEscaped writes printable ASCII as is and everything else, plus '"'
// and '\\', as \XX.
func writeEscaped(sb *strings.Builder, data []byte) {
	for _, b := range data {
		if b >= 0x20 && b < 0x7f && b != '"' && b != '\\' {
			sb.WriteByte(b)
			continue
		}
		fmt.Fprintf(sb, "\\%02X", b)
	}
}
