package hashing

// identityHasher maps an int to itself reduced into the hash range. It
// carries a quantity of one, so it only supports single-hash configurations.
type identityHasher struct {
	size HashSize
}

// IdentityInt is the identity hasher over ints, unsized.
func IdentityInt() IHasher[int] {
	return &identityHasher{size: FullSize()}
}

func (h *identityHasher) Hash(e int) IHashCode {
	return &constHashCode{value: h.size.reduce(uint64(e))}
}

func (h *identityHasher) Size() HashSize {
	return h.size
}

func (h *identityHasher) Quantity() int {
	return 1
}

func (h *identityHasher) Sized(size HashSize) IHasher[int] {
	return &identityHasher{size: size}
}

func (h *identityHasher) Equals(other IHasher[int]) bool {
	o, ok := other.(*identityHasher)
	return ok && h.size == o.size
}

var _ IHasher[int] = (*identityHasher)(nil)
