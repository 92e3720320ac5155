package mgbloom

import (
	"github.com/steakknife/hamming"
)

// bitset numbers bit 0 as the least-significant bit of word 0.
type bitset []uint64

func newBitset(bits uint64) bitset {
	return make(bitset, (bits+63)/64)
}

func (b bitset) set(i uint64) {
	b[i>>6] |= 1 << (i & 63)
}

func (b bitset) unset(i uint64) {
	b[i>>6] &^= 1 << (i & 63)
}

func (b bitset) test(i uint64) bool {
	return b[i>>6]&(1<<(i&63)) != 0
}

func (b bitset) count() int {
	return hamming.CountBitsUint64s(b)
}

func (b bitset) reset() {
	clear(b)
}

// or requires len(o) == len(b).
func (b bitset) or(o bitset) {
	for i, w := range o {
		b[i] |= w
	}
}
