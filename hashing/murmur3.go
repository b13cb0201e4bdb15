package hashing

import (
	"math"

	"github.com/twmb/murmur3"
)

// murmur3Hasher hashes the encoded bytes of an element through the 128-bit
// murmur3 digest. The two halves of the digest seed a double-hashing stream,
// so the quantity is effectively unbounded.
type murmur3Hasher[E any] struct {
	encode func(E) []byte
	size   HashSize
}

// NewMurmur3 builds a murmur3-backed hasher over the full 64-bit space. The
// encode function must be deterministic; hashers built from the same encode
// function compare equal.
func NewMurmur3[E any](encode func(E) []byte) IHasher[E] {
	return &murmur3Hasher[E]{encode: encode, size: FullSize()}
}

// Murmur3Int is a murmur3 hasher over big-endian encoded ints.
func Murmur3Int() IHasher[int] {
	return NewMurmur3(IntBytes)
}

// Murmur3String is a murmur3 hasher over raw string bytes.
func Murmur3String() IHasher[string] {
	return NewMurmur3(StringBytes)
}

func (h *murmur3Hasher[E]) Hash(e E) IHashCode {
	h1, h2 := murmur3.Sum128(h.encode(e))
	return newDoubleHashCode(h1, h2, h.size)
}

func (h *murmur3Hasher[E]) Size() HashSize {
	return h.size
}

func (h *murmur3Hasher[E]) Quantity() int {
	return math.MaxInt
}

func (h *murmur3Hasher[E]) Sized(size HashSize) IHasher[E] {
	return &murmur3Hasher[E]{encode: h.encode, size: size}
}

func (h *murmur3Hasher[E]) Equals(other IHasher[E]) bool {
	o, ok := other.(*murmur3Hasher[E])
	return ok && h.size == o.size && sameFunc(h.encode, o.encode)
}

var _ IHasher[int] = (*murmur3Hasher[int])(nil)
