package value

import "iter"

// Mapping is an insertion-ordered map from string keys to values.
// Setting an existing key replaces its value in place.
// A Mapping is not safe for concurrent mutation.
type Mapping struct {
	keys  []string
	index map[string]int
	vals  []Value
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return newMappingCap(0)
}

func newMappingCap(n int) *Mapping {
	return &Mapping{
		keys:  make([]string, 0, n),
		index: make(map[string]int, n),
		vals:  make([]Value, 0, n),
	}
}

// Len returns the number of entries. A nil mapping is empty.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Set stores v under key.
func (m *Mapping) Set(key string, v Value) {
	if i, ok := m.index[key]; ok {
		m.vals[i] = v
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, v)
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	i, ok := m.index[key]
	if !ok {
		return Value{}, false
	}
	return m.vals[i], true
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key, keeping the order of the remaining entries.
func (m *Mapping) Delete(key string) {
	i, ok := m.index[key]
	if !ok {
		return
	}
	delete(m.index, key)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// All iterates over the entries in insertion order.
func (m *Mapping) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if m == nil {
			return
		}
		for i, key := range m.keys {
			if !yield(key, m.vals[i]) {
				return
			}
		}
	}
}

// Clone copies the entries into a new mapping. Values are not cloned.
func (m *Mapping) Clone() *Mapping {
	out := newMappingCap(m.Len())
	for key, v := range m.All() {
		out.Set(key, v)
	}
	return out
}

// Equal reports whether both mappings hold equal entries in the same order.
func (m *Mapping) Equal(other *Mapping) bool {
	if m.Len() != other.Len() {
		return false
	}
	if m.Len() == 0 {
		return true
	}
	for i, key := range m.keys {
		if other.keys[i] != key || !m.vals[i].Equal(other.vals[i]) {
			return false
		}
	}
	return true
}
