package intern

import "fmt"

// ID is the position of a slot inside an Arena. NoID is never assigned.
type ID uint32

// NoID marks the absence of a value.
const NoID ID = 0

// Handle is a cheap, comparable reference to an interned value.
// The zero Handle is invalid.
type Handle[V any] struct {
	id ID
	v  *V
}

// ID returns the slot id of the handle.
func (h Handle[V]) ID() ID { return h.id }

// Value returns the interned value. The result must not be modified.
func (h Handle[V]) Value() *V { return h.v }

// IsValid reports whether the handle refers to a slot.
func (h Handle[V]) IsValid() bool { return h.id != NoID && h.v != nil }

func (h Handle[V]) String() string {
	if !h.IsValid() {
		return "#invalid"
	}
	if s, ok := any(h.v).(fmt.Stringer); ok {
		return fmt.Sprintf("#%d(%s)", h.id, s.String())
	}
	return fmt.Sprintf("#%d", h.id)
}
