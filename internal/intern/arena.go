package intern

import (
	"fmt"
	"iter"
	"slices"

	"fortio.org/safecast"
)

// Internable describes how candidates of type E become stored values of type V.
//
// Key projects a candidate onto the comparable key used for deduplication;
// it must be cheap and must agree with equivalence of the values Make builds.
// Make builds the owned value and may fail, in which case nothing is stored.
// Compare is a total order over stored values.
type Internable[E any, K comparable, V any] interface {
	Key(E) K
	Make(E) (V, error)
	Compare(a, b *V) int
}

// Arena stores deduplicated values. Append-only.
type Arena[E any, K comparable, V any] struct {
	policy Internable[E, K, V]
	slots  []*V     // slots[0] is reserved for NoID
	index  map[K]ID // key -> slot
}

// New creates an empty arena governed by policy.
func New[E any, K comparable, V any](policy Internable[E, K, V]) *Arena[E, K, V] {
	return &Arena[E, K, V]{
		policy: policy,
		slots:  []*V{nil},
		index:  make(map[K]ID, 64),
	}
}

// Add interns candidate and returns its handle. Existing entries are returned
// without allocating; a failing Make leaves the arena unchanged.
func (a *Arena[E, K, V]) Add(candidate E) (Handle[V], error) {
	key := a.policy.Key(candidate)
	if id, ok := a.index[key]; ok {
		return Handle[V]{id: id, v: a.slots[id]}, nil
	}
	v, err := a.policy.Make(candidate)
	if err != nil {
		return Handle[V]{}, err
	}
	n, err := safecast.Conv[uint32](len(a.slots))
	if err != nil {
		return Handle[V]{}, fmt.Errorf("arena slot overflow: %w", err)
	}
	id := ID(n)
	slot := new(V)
	*slot = v
	a.slots = append(a.slots, slot)
	a.index[key] = id
	return Handle[V]{id: id, v: slot}, nil
}

// Lookup finds an existing entry without inserting.
func (a *Arena[E, K, V]) Lookup(candidate E) (Handle[V], bool) {
	id, ok := a.index[a.policy.Key(candidate)]
	if !ok {
		return Handle[V]{}, false
	}
	return Handle[V]{id: id, v: a.slots[id]}, true
}

// Contains reports whether an equivalent candidate is already interned.
func (a *Arena[E, K, V]) Contains(candidate E) bool {
	_, ok := a.index[a.policy.Key(candidate)]
	return ok
}

// Get returns the handle for id.
func (a *Arena[E, K, V]) Get(id ID) (Handle[V], bool) {
	if id == NoID || int(id) >= len(a.slots) {
		return Handle[V]{}, false
	}
	return Handle[V]{id: id, v: a.slots[id]}, true
}

// Len returns the number of interned values.
func (a *Arena[E, K, V]) Len() int {
	return len(a.slots) - 1
}

// All yields handles in insertion order.
func (a *Arena[E, K, V]) All() iter.Seq[Handle[V]] {
	return func(yield func(Handle[V]) bool) {
		for i := 1; i < len(a.slots); i++ {
			if !yield(Handle[V]{id: ID(i), v: a.slots[i]}) { // #nosec G115 -- bounded by Add
				return
			}
		}
	}
}

// Sorted returns all handles ordered by the policy's Compare.
func (a *Arena[E, K, V]) Sorted() []Handle[V] {
	out := slices.Collect(a.All())
	slices.SortFunc(out, func(x, y Handle[V]) int {
		return a.policy.Compare(x.v, y.v)
	})
	return out
}

// Compare orders two handles from this arena by value.
func (a *Arena[E, K, V]) Compare(x, y Handle[V]) int {
	if x == y {
		return 0
	}
	return a.policy.Compare(x.v, y.v)
}
