package hashing

// doubleHashCode derives an unbounded index stream from two 64-bit hash
// values (the halves of a 128-bit digest, or two separate digests):
// value(i) = (h1 + i*h2) computed with wrapping 64-bit arithmetic, then
// reduced into [0, size). The second value is forced odd, so over the full
// 64-bit size the stream visits every value before repeating; reduced into a
// smaller range, the indices are not guaranteed to cover it.
type doubleHashCode struct {
	h1, h2 uint64
	size   HashSize
	i      uint64
}

func newDoubleHashCode(h1, h2 uint64, size HashSize) *doubleHashCode {
	return &doubleHashCode{h1: h1, h2: h2 | 1, size: size}
}

func (c *doubleHashCode) IntValue() int {
	v := c.h1 + c.i*c.h2
	c.i++
	return int(c.size.reduce(v))
}

// constHashCode repeats a single reduced value, for hashers of quantity one.
type constHashCode struct {
	value uint64
}

func (c *constHashCode) IntValue() int {
	return int(c.value)
}

var _ IHashCode = (*doubleHashCode)(nil)
var _ IHashCode = (*constHashCode)(nil)
