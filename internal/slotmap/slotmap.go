// Package slotmap implements the fixed-domain "diclen" container the proof
// engine uses for every candidate view: a map from a fixed set of keys to an
// optional occupant, with an O(1) remaining count. No key may be added after
// construction, and no key may be resolved twice.
package slotmap

// Map is a fixed-key container. K is the key domain (a value 1..9, a column
// index, or a flattened local index i*3+j depending on which candidate view
// it backs);
// V is whatever fact or Deduction occupies a resolved slot.
type Map[K comparable, V any] struct {
	keys      []K
	occupants map[K]V
	filled    map[K]bool
	remaining int
}

// New creates a Map over exactly the given keys, all initially unresolved.
func New[K comparable, V any](keys ...K) *Map[K, V] {
	m := &Map[K, V]{
		keys:      append([]K(nil), keys...),
		occupants: make(map[K]V, len(keys)),
		filled:    make(map[K]bool, len(keys)),
		remaining: len(keys),
	}
	for _, k := range keys {
		var zero V
		m.occupants[k] = zero
	}
	return m
}

// Set records occ as the reason key k was eliminated. It is a programmer
// error to call Set on an already-resolved key.
func (m *Map[K, V]) Set(k K, occ V) {
	if m.filled[k] {
		panic("slotmap: key already resolved")
	}
	m.occupants[k] = occ
	m.filled[k] = true
	m.remaining--
}

// Get returns the current occupant of k and whether k is resolved.
func (m *Map[K, V]) Get(k K) (V, bool) {
	return m.occupants[k], m.filled[k]
}

// IsResolved reports whether k has already been eliminated.
func (m *Map[K, V]) IsResolved(k K) bool {
	return m.filled[k]
}

// Len returns the number of keys still unresolved.
func (m *Map[K, V]) Len() int {
	return m.remaining
}

// Sole returns the single remaining unresolved key. It panics if Len() != 1;
// callers must check Len() first, matching spec.md's "valid only when
// remaining == 1" contract.
func (m *Map[K, V]) Sole() K {
	if m.remaining != 1 {
		panic("slotmap: Sole called with remaining != 1")
	}
	for _, k := range m.keys {
		if !m.filled[k] {
			return k
		}
	}
	panic("slotmap: inconsistent remaining count")
}

// Resolved returns the occupants of every resolved slot, in key declaration
// order. These are the facts that "eliminated" the other slots, used as
// premises by the rules that consult this view.
func (m *Map[K, V]) Resolved() []V {
	out := make([]V, 0, len(m.keys)-m.remaining)
	for _, k := range m.keys {
		if m.filled[k] {
			out = append(out, m.occupants[k])
		}
	}
	return out
}

// Unresolved returns the keys that have not yet been eliminated, in key
// declaration order.
func (m *Map[K, V]) Unresolved() []K {
	out := make([]K, 0, m.remaining)
	for _, k := range m.keys {
		if !m.filled[k] {
			out = append(out, k)
		}
	}
	return out
}
