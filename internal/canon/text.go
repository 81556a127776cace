package canon

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// MaxInputLen bounds the raw input accepted by New. NFC may grow a string up
// to roughly three times, so the bound keeps the normalized form addressable
// by a 32-bit length with room to spare.
const MaxInputLen = math.MaxInt32 / 4

var (
	// ErrInputTooLarge reports input whose canonical form would not fit the length field.
	ErrInputTooLarge = errors.New("canonical text: input too large")
	// ErrEmbeddedNUL reports input containing a NUL byte.
	ErrEmbeddedNUL = errors.New("canonical text: embedded NUL byte")
	// ErrInvalidUTF8 reports input that is not well-formed UTF-8.
	ErrInvalidUTF8 = errors.New("canonical text: invalid UTF-8")
)

// Text is NFC-normalized UTF-8 text with a trailing NUL.
type Text struct {
	buf []byte // normalized bytes + 0x00
	str string // copy of buf[:n]
	n   uint32
}

// New canonicalizes raw and returns an owned Text.
func New(raw string) (*Text, error) {
	return newWithLimit(raw, MaxInputLen)
}

func newWithLimit(raw string, limit int) (*Text, error) {
	if len(raw) > limit {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrInputTooLarge, len(raw), limit)
	}
	if !utf8.ValidString(raw) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUTF8, raw)
	}
	if strings.IndexByte(raw, 0) >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmbeddedNUL, raw)
	}

	buf := make([]byte, 0, len(raw)+1)
	buf = norm.NFC.AppendString(buf, raw)
	n, err := safecast.Conv[uint32](len(buf))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputTooLarge, err)
	}
	buf = append(buf, 0)

	return &Text{buf: buf, str: string(buf[:n]), n: n}, nil
}

// MustNew is like New but panics on error. Intended for tables of constants.
func MustNew(raw string) *Text {
	t, err := New(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// Key returns the canonical form of raw for use as a lookup key.
// Already-normalized input is returned as is.
func Key(raw string) string {
	if norm.NFC.IsNormalString(raw) {
		return raw
	}
	return norm.NFC.String(raw)
}

// Len returns the byte length of the canonical text, excluding the NUL.
func (t *Text) Len() int { return int(t.n) }

// Len32 returns the stored 32-bit length.
func (t *Text) Len32() uint32 { return t.n }

func (t *Text) String() string { return t.str }

// Bytes returns the canonical bytes without the terminator. The slice capacity
// is capped so appends never touch the NUL.
func (t *Text) Bytes() []byte { return t.buf[:t.n:t.n] }

// CString returns the canonical bytes including the trailing NUL.
func (t *Text) CString() []byte { return t.buf[: t.n+1 : t.n+1] }

// Equal reports whether t and other hold the same canonical text.
func (t *Text) Equal(other *Text) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.str == other.str
}

// EqualString reports whether raw is canonically equivalent to t.
func (t *Text) EqualString(raw string) bool {
	return t.str == Key(raw)
}

// Compare orders texts by code point sequence. For UTF-8 that is plain byte order.
func Compare(a, b *Text) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}
