// Package bits implements set of small non-negative integers over a fixed domain.
package bits

const wordShift = 5 + (^uint(0) >> 32 & 1)
const wordSize = 1 << wordShift

// Set contains integers in range [0, size) where size is defined at creation time.
// Sets with equal size and equal items have equal keys.
type Set struct {
	size  int
	words []uint
}

func wordCount(size int) int {
	return (size + wordSize - 1) >> wordShift
}

func bitMask(item int) uint {
	return 1 << (uint(item) & (wordSize - 1))
}

// New creates empty set for domain [0, size) and adds items to it.
func New(size int, items ...int) *Set {
	s := &Set{size, make([]uint, wordCount(size))}
	s.Add(items...)
	return s
}

// Add adds items to the set; panics if an item is outside the domain.
func (s *Set) Add(items ...int) *Set {
	for _, item := range items {
		if item < 0 || item >= s.size {
			panic("bits: item out of range")
		}
		s.words[item>>wordShift] |= bitMask(item)
	}
	return s
}

// Union adds all items of t to s. Both sets must have the same domain size.
func (s *Set) Union(t *Set) *Set {
	for i, w := range t.words {
		s.words[i] |= w
	}
	return s
}

// Intersects reports whether s and t have at least one common item.
func (s *Set) Intersects(t *Set) bool {
	for i, w := range t.words {
		if s.words[i]&w != 0 {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the set has no items.
func (s *Set) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Len returns number of items.
func (s *Set) Len() int {
	result := 0
	for _, w := range s.words {
		for w != 0 {
			result++
			w &= w - 1
		}
	}
	return result
}

// Items returns set items in ascending order.
func (s *Set) Items() []int {
	result := make([]int, 0, s.Len())
	for i, w := range s.words {
		item := i << wordShift
		for ; w != 0; w >>= 1 {
			if w&1 != 0 {
				result = append(result, item)
			}
			item++
		}
	}
	return result
}

// Key returns canonical byte encoding of the set contents, little-endian by word.
// The returned slice is freshly allocated.
func (s *Set) Key() []byte {
	result := make([]byte, 0, len(s.words)*(wordSize>>3))
	for _, w := range s.words {
		for i := 0; i < wordSize; i += 8 {
			result = append(result, byte(w>>uint(i)))
		}
	}
	return result
}
