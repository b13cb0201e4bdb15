package hashing

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// xx64Salt is appended to the encoded bytes for the second xxhash64 digest,
// so the two digests seeding the stream differ.
var xx64Salt = []byte{0x9e, 0x37, 0x79, 0xb9}

// xx64Hasher hashes the encoded bytes of an element through xxhash64. A
// salted second digest provides the step of the double-hashing stream.
type xx64Hasher[E any] struct {
	encode func(E) []byte
	size   HashSize
}

// NewXX64 builds an xxhash64-backed hasher over the full 64-bit space.
func NewXX64[E any](encode func(E) []byte) IHasher[E] {
	return &xx64Hasher[E]{encode: encode, size: FullSize()}
}

// XX64String is an xxhash64 hasher over raw string bytes.
func XX64String() IHasher[string] {
	return NewXX64(StringBytes)
}

func (h *xx64Hasher[E]) Hash(e E) IHashCode {
	b := h.encode(e)
	h1 := xxhash.Sum64(b)
	d := xxhash.New()
	_, _ = d.Write(b)
	_, _ = d.Write(xx64Salt)
	return newDoubleHashCode(h1, d.Sum64(), h.size)
}

func (h *xx64Hasher[E]) Size() HashSize {
	return h.size
}

func (h *xx64Hasher[E]) Quantity() int {
	return math.MaxInt
}

func (h *xx64Hasher[E]) Sized(size HashSize) IHasher[E] {
	return &xx64Hasher[E]{encode: h.encode, size: size}
}

func (h *xx64Hasher[E]) Equals(other IHasher[E]) bool {
	o, ok := other.(*xx64Hasher[E])
	return ok && h.size == o.size && sameFunc(h.encode, o.encode)
}

var _ IHasher[string] = (*xx64Hasher[string])(nil)
