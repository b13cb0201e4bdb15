package go_bloom

import (
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-bloom/hashing"
)

// BloomConfig is the immutable (hasher, hashCount, capacity) triple every
// Bloom structure is built from. The stored hasher is always sized to the
// capacity, so the indices it produces are valid positions.
//
// Two configs are equal iff their hash counts and hashers are equal; the
// capacity is derivable from the hasher's size and is not an independent
// axis of equality.
type BloomConfig[E any] struct {
	hasher    hashing.IHasher[E]
	hashCount int
	size      hashing.HashSize
	capacity  int
}

// NewConfig derives the capacity from the hasher's own size, which must be
// representable as an int.
func NewConfig[E any](hasher hashing.IHasher[E], hashCount int) (*BloomConfig[E], error) {
	if err := checkHasher(hasher, hashCount); err != nil {
		return nil, err
	}
	size := hasher.Size()
	capacity, err := size.AsInt()
	if err != nil {
		return nil, err
	}
	return &BloomConfig[E]{hasher: hasher, hashCount: hashCount, size: size, capacity: capacity}, nil
}

// NewConfigWithCapacity rebinds the hasher to the requested capacity. The
// hasher's size must not be smaller than the capacity.
func NewConfigWithCapacity[E any](capacity int, hasher hashing.IHasher[E], hashCount int) (*BloomConfig[E], error) {
	if err := checkHasher(hasher, hashCount); err != nil {
		return nil, err
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, capacity)
	}
	size := hashing.SizeFromInt(capacity)
	switch hasher.Size().Compare(size) {
	case -1:
		return nil, fmt.Errorf("%w: hash size %v smaller than capacity %d", ErrInvalidArgument, hasher.Size(), capacity)
	case 1:
		hasher = hasher.Sized(size)
	}
	return &BloomConfig[E]{hasher: hasher, hashCount: hashCount, size: size, capacity: capacity}, nil
}

func checkHasher[E any](hasher hashing.IHasher[E], hashCount int) error {
	if hasher == nil {
		return fmt.Errorf("%w: nil hasher", ErrInvalidArgument)
	}
	if hashCount < 1 {
		return fmt.Errorf("%w: hashCount %d not positive", ErrInvalidArgument, hashCount)
	}
	if hashCount > hasher.Quantity() {
		return fmt.Errorf("%w: hashCount %d exceeds hasher quantity %d", ErrInvalidArgument, hashCount, hasher.Quantity())
	}
	return nil
}

// Capacity is the number of cells backing the collection. It matches the
// size of the stores exposed by IBloomSet.Bits and IBloomMap.Values.
func (c *BloomConfig[E]) Capacity() int {
	return c.capacity
}

func (c *BloomConfig[E]) Hasher() hashing.IHasher[E] {
	return c.hasher
}

func (c *BloomConfig[E]) HashCount() int {
	return c.hashCount
}

// WithCapacity derives a config of the given capacity with the hasher
// rebound accordingly.
func (c *BloomConfig[E]) WithCapacity(capacity int) (*BloomConfig[E], error) {
	if capacity == c.capacity {
		return c, nil
	}
	return NewConfigWithCapacity(capacity, c.hasher, c.hashCount)
}

func (c *BloomConfig[E]) Equals(other *BloomConfig[E]) bool {
	if other == nil {
		return false
	}
	return c.hashCount == other.hashCount && c.hasher.Equals(other.hasher)
}

func (c *BloomConfig[E]) String() string {
	return fmt.Sprintf("hashCount: %d, hasher size: %v", c.hashCount, c.size)
}
