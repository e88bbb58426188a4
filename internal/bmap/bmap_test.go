package bmap

import (
	"testing"

	. "github.com/ava12/flang/internal/test"
)

func TestEmptyMap(t *testing.T) {
	m := New[int](1)

	en, found := m.Get([]byte{})
	ExpectInt(t, 0, en)
	ExpectBool(t, false, found)

	en, found = m.Get([]byte{1, 2, 3})
	ExpectInt(t, 0, en)
	ExpectBool(t, false, found)
	ExpectInt(t, 0, m.Len())
}

func TestEmptyKey(t *testing.T) {
	m := New[int](1)
	empty := []byte{}

	m.Set([]byte("foo"), 123)
	en, found := m.Get(empty)
	ExpectInt(t, 0, en)
	ExpectBool(t, false, found)

	m.Set(empty, 345)
	en, found = m.Get(empty)
	ExpectInt(t, 345, en)
	ExpectBool(t, true, found)
	ExpectInt(t, 2, m.Len())
}

func TestKeyIsCopied(t *testing.T) {
	m := New[int](2)
	key := []byte{1, 2, 3}
	m.Set(key, 111)
	key[0] = 9

	_, found := m.Get(key)
	ExpectBool(t, false, found)
	en, found := m.Get([]byte{1, 2, 3})
	ExpectInt(t, 111, en)
	ExpectBool(t, true, found)
}

func TestInsertionOrder(t *testing.T) {
	m := New[string](0)
	m.Set([]byte{3}, "c")
	m.Set([]byte{1}, "a")
	m.Set([]byte{2}, "b")
	m.Set([]byte{1}, "A")

	ExpectInt(t, 3, m.Len())
	expected := []string{"c", "A", "b"}
	keys := []byte{3, 1, 2}
	for i := range expected {
		k, v := m.At(i)
		Assert(t, v == expected[i], "item %d: expecting %q, got %q", i, expected[i], v)
		Assert(t, len(k) == 1 && k[0] == keys[i], "item %d: expecting key %d, got %v", i, keys[i], k)
	}
}
