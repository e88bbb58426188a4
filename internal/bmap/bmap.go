// Package bmap implements map with []byte key type remembering insertion order.
package bmap

import (
	"unsafe"
)

// BMap implements generic hashmap with []byte key type.
// Keys cannot be deleted.
// Added keys are copied into internal storage, so callers may reuse their slices.
// Values are also kept in insertion order and can be retrieved by index.
type BMap[T any] struct {
	keys   [][]byte
	values []T
	index  map[string]int
}

// New creates bytes map. size is a capacity hint.
func New[T any](size int) *BMap[T] {
	return &BMap[T]{
		keys:   make([][]byte, 0, size),
		values: make([]T, 0, size),
		index:  make(map[string]int, size),
	}
}

func skey(key []byte) string {
	if len(key) == 0 {
		return ""
	}
	return unsafe.String(&key[0], len(key))
}

// Get returns stored value by key and a flag telling whether this key is stored in the map.
// Returns zero value if the key is not present.
func (m *BMap[T]) Get(key []byte) (T, bool) {
	i, has := m.index[skey(key)]
	if !has {
		var zero T
		return zero, false
	}
	return m.values[i], true
}

// Set adds or rewrites value for given key.
// Rewriting keeps the original insertion position.
func (m *BMap[T]) Set(key []byte, value T) {
	if i, has := m.index[skey(key)]; has {
		m.values[i] = value
		return
	}

	stored := append([]byte(nil), key...)
	m.keys = append(m.keys, stored)
	m.values = append(m.values, value)
	m.index[skey(stored)] = len(m.values) - 1
}

// Len returns the number of stored keys.
func (m *BMap[T]) Len() int {
	return len(m.values)
}

// At returns key and value added i-th (zero-based).
func (m *BMap[T]) At(i int) ([]byte, T) {
	return m.keys[i], m.values[i]
}
