package bits

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"
	"github.com/cespare/xxhash/v2"
)

// The package-level operations walk stores through the IBitStore interface,
// so mixed concrete/derived pairs behave identically to same-type pairs.
// Concrete stores fast-path each other and fall back here.

// Count walks the store counting set bits.
func Count(s IBitStore) int {
	n := 0
	for i := 0; i < s.Size(); i++ {
		if s.GetBit(i) {
			n++
		}
	}
	return n
}

// Positions lists the indices of set bits in ascending order.
func Positions(s IBitStore) []int {
	var positions []int
	for i := 0; i < s.Size(); i++ {
		if s.GetBit(i) {
			positions = append(positions, i)
		}
	}
	return positions
}

// Contains reports whether every bit set in b is set in a. Stores of unequal
// sizes never contain each other.
func Contains(a, b IBitStore) bool {
	if b == nil || a.Size() != b.Size() {
		return false
	}
	for i := 0; i < a.Size(); i++ {
		if b.GetBit(i) && !a.GetBit(i) {
			return false
		}
	}
	return true
}

// Equal reports bitwise equality of two stores.
func Equal(a, b IBitStore) bool {
	if b == nil || a.Size() != b.Size() {
		return false
	}
	for i := 0; i < a.Size(); i++ {
		if a.GetBit(i) != b.GetBit(i) {
			return false
		}
	}
	return true
}

// Hash digests the size and packed words of a store. Equal stores hash equal
// regardless of their concrete representation.
func Hash(s IBitStore) uint64 {
	size := s.Size()
	words := make([]uint64, (size+63)/64)
	for i := 0; i < size; i++ {
		if s.GetBit(i) {
			words[i/64] |= 1 << (i % 64)
		}
	}
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(size))
	_, _ = d.Write(buf[:])
	for _, w := range words {
		binary.LittleEndian.PutUint64(buf[:], w)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Materialize snapshots any store into a concrete one.
func Materialize(s IBitStore, mutable bool) IBitStore {
	size := s.Size()
	set := bitset.New(uint(size))
	for i := 0; i < size; i++ {
		if s.GetBit(i) {
			set.Set(uint(i))
		}
	}
	return &bitStore{set: set, size: size, mutable: mutable}
}
