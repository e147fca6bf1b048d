// Copyright (c) 2025 Mert Karaca
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package table

// TableSize is the fixed size of the internal marker array (2^16),
// matching the uint16 hash space.
const TableSize = 65536

// PrefixTable stores values under short byte-sequence keys and supports
// walking all stored keys that are prefixes of a lookup sequence.
// A 65536-entry marker array, indexed by a rolling 16-bit hash of the
// key bytes, lets lookups bail out as soon as no stored key can start
// with the bytes seen so far. Hash collisions are resolved through the
// backing map, so the marker array is a filter, never an authority.
type PrefixTable[T any] struct {
	table [TableSize]byte
	elems map[string]T
}

const (
	// none: no stored key hashes to this position.
	none = iota
	// presentMarker: some stored key passes through this position.
	presentMarker
	// elemMarker: a complete stored key terminates at this position.
	elemMarker
)

// New returns an empty PrefixTable.
func New[T any]() *PrefixTable[T] {
	return &PrefixTable[T]{
		elems: make(map[string]T),
	}
}

func hashByte(h uint16, b byte) uint16 {
	return (h << 2) + uint16(b)
}

// Insert stores v under the given key.
// Keys longer than 8 bytes still work, but start aliasing in the
// 16-bit marker space and rely entirely on the map for discrimination.
func (t *PrefixTable[T]) Insert(key []byte, v T) {
	var h uint16
	for _, b := range key {
		h = hashByte(h, b)
		// Do not downgrade a terminating marker set by a shorter key.
		t.table[h] = max(t.table[h], presentMarker)
	}
	t.table[h] = elemMarker
	t.elems[string(key)] = v
}

// Get returns the value stored under key, if any.
func (t *PrefixTable[T]) Get(key []byte) (T, bool) {
	v, found := t.elems[string(key)]
	return v, found
}

// Walk calls onMatch for every stored key that is a prefix of data,
// shortest first. Traversal stops early when no stored key can extend
// the current prefix, or when onMatch returns true.
func (t *PrefixTable[T]) Walk(data []byte, onMatch func(v T) bool) {
	var h uint16
	for i, b := range data {
		h = hashByte(h, b)

		marker := t.table[h]
		if marker == none {
			return
		}

		if marker == elemMarker {
			// The marker may be a hash alias of a different key;
			// the map lookup is what decides.
			v, ok := t.elems[string(data[:i+1])]
			if ok && onMatch(v) {
				return
			}
		}
	}
}

// Size returns the number of stored keys.
func (t *PrefixTable[T]) Size() int {
	return len(t.elems)
}
