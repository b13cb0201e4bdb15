// Package go_bloom provides probabilistic set and map structures over a
// shared hash-and-bit-mark core: the classical Bloom filter (IBloomSet) and
// its generalization to bounded lattices (IBloomMap, a compact approximator).
// Both answer approximate containment with configurable false-positive
// probability and no false negatives.
package go_bloom

import (
	"github.com/datnguyenzzz/nogodb/lib/go-bloom/bits"
	"github.com/datnguyenzzz/nogodb/lib/go-bloom/lattice"
	"github.com/datnguyenzzz/nogodb/lib/go-bloom/storage"
)

// IBloomSet is a Bloom filter over elements of type E.
//
// Operations involving two sets are only defined for compatible instances:
// two sets are compatible when their configs are equal. Two sets are equal
// when they are compatible and their bits are equal.
type IBloomSet[E any] interface {
	Config() *BloomConfig[E]

	// Bits is a live immutable view of the filter state. It mutates as
	// elements are added but cannot be written externally.
	Bits() bits.IBitStore

	// MightContain returns false only if the element was never added.
	MightContain(e E) bool

	// Add marks the element's bits, reporting whether any bit was newly set.
	Add(e E) (bool, error)

	// AddAll folds Add over every element; a nil slice is rejected.
	AddAll(elems []E) (bool, error)

	// AddAllSet merges a compatible set, reporting whether any bit changed.
	AddAllSet(other IBloomSet[E]) (bool, error)

	// MightContainAll is the conjunction of MightContain over the elements.
	MightContainAll(elems []E) bool

	Clear() error
	IsEmpty() bool
	IsFull() bool

	// ContainsAll reports whether every element of a compatible set is
	// necessarily contained in this one.
	ContainsAll(other IBloomSet[E]) (bool, error)

	// BoundedBy derives the immutable live set containing an element iff the
	// element cannot be present here without also being present in other.
	// When the derived set is full, other contains every element of this set.
	BoundedBy(other IBloomSet[E]) (IBloomSet[E], error)

	// FalsePositiveProbability estimates the chance MightContain returns
	// true for an element never added, assuming optimal hashing.
	FalsePositiveProbability() float64

	IsMutable() bool
	ImmutableView() IBloomSet[E]
	ImmutableCopy() IBloomSet[E]
	MutableCopy() IBloomSet[E]

	Equals(other IBloomSet[E]) bool
	Hash() uint64
}

// IBloomMap generalizes the Bloom filter by replacing its {0,1} cells with
// values from a bounded lattice. Put only ever moves cells upward in the
// store lattice, which is what makes GetSupremum a valid upper bound.
type IBloomMap[K any, V comparable] interface {
	Config() *BloomConfig[K]

	// Lattice is the access lattice values are read and written through.
	Lattice() lattice.ILattice[V]

	// Values is the live access projection of the cell store: an immutable
	// view when the access lattice equals the store lattice, a meet-capped
	// transformed view otherwise.
	Values() storage.IStore[V]

	// Put raises each indexed cell to its join with value and returns the
	// supremum the key had before the update.
	Put(key K, value V) (V, error)

	// GetSupremum returns the tightest upper bound the structure can prove
	// for any value previously put against the key.
	GetSupremum(key K) V

	// MightContain returns false only if no value was ever put for the key.
	MightContain(key K) bool

	// MightContainAll is the conjunction of MightContain over the keys.
	MightContainAll(keys []K) bool

	Clear() error
	IsEmpty() bool
	IsFull() bool

	// Bounds reports whether this map bounds a compatible other map from
	// above, pointwise over the access values.
	Bounds(other IBloomMap[K, V]) (bool, error)

	// BoundedAbove derives a live view whose access lattice is capped at
	// upperBound. The view shares cell storage with the receiver; each sees
	// the other's mutations. The receiver itself is returned when the cap
	// does not narrow the access lattice.
	BoundedAbove(upperBound V) (IBloomMap[K, V], error)

	// Keys is the live read-only projection whose bit i is set iff cell i
	// currently differs from the store-lattice bottom.
	Keys() IBloomSet[K]

	// AsBloomSet is the live projection whose bit i is set iff cell i
	// attains the access-lattice top. Adding a key through it puts the top
	// value. Memoized on first call.
	AsBloomSet() IBloomSet[K]

	IsMutable() bool
	ImmutableView() IBloomMap[K, V]
	ImmutableCopy() IBloomMap[K, V]
	MutableCopy() IBloomMap[K, V]

	Equals(other IBloomMap[K, V]) bool
	Hash() uint64
}
