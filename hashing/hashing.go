package hashing

// IHashCode is a lazy stream of hash-derived indices. For a hasher whose Size
// is representable as an int, every value returned by IntValue lies in
// [0, size); for the full 64-bit size the raw 64-bit value is converted to an
// int and may be negative. The stream is deterministic per (hasher, element)
// pair.
type IHashCode interface {
	// IntValue returns the next index in the stream and advances it.
	IntValue() int
}

// IHasher produces hash streams for elements of type E. A hasher guarantees at
// least Quantity values per stream.
type IHasher[E any] interface {
	Hash(e E) IHashCode

	// Size is the modulus of the produced stream.
	Size() HashSize

	// Quantity is the minimum number of values a stream carries.
	Quantity() int

	// Sized rebinds the hasher to a new modulus. The derived hasher produces
	// the same underlying hash material reduced into the new range.
	Sized(size HashSize) IHasher[E]

	// Equals reports whether the other hasher is of the same kind and size
	// and hashes elements with the same function.
	Equals(other IHasher[E]) bool
}
