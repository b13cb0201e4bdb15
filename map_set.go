package go_bloom

import (
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-bloom/bits"
)

// mapBloomSet is the live top-attaining projection of a map: bit i is set
// iff cell i attains the access-lattice top. Adding a key writes the top
// value through the map, so the projection behaves as a Bloom filter whose
// storage is the map's cells.
type mapBloomSet[K any, V comparable] struct {
	m          *bloomMap[K, V]
	top        V
	bits       *mapBits[K, V]
	publicBits bits.IBitStore
}

func newMapBloomSet[K any, V comparable](m *bloomMap[K, V]) *mapBloomSet[K, V] {
	mb := &mapBits[K, V]{m: m, top: m.accessLattice.Top()}
	return &mapBloomSet[K, V]{
		m:          m,
		top:        mb.top,
		bits:       mb,
		publicBits: mb.ImmutableView(),
	}
}

func (s *mapBloomSet[K, V]) Config() *BloomConfig[K] {
	return s.m.config
}

func (s *mapBloomSet[K, V]) Bits() bits.IBitStore {
	return s.publicBits
}

func (s *mapBloomSet[K, V]) MightContain(e K) bool {
	return mightContain(s.m.config, s.bits, e)
}

func (s *mapBloomSet[K, V]) MightContainAll(elems []K) bool {
	return mightContainAll(s.m.config, s.bits, elems)
}

// Add puts the top value for the key; the set mutated iff the key's prior
// supremum was below top.
func (s *mapBloomSet[K, V]) Add(e K) (bool, error) {
	previous, err := s.m.Put(e, s.top)
	if err != nil {
		return false, err
	}
	eq := s.m.accessLattice.Equality()
	return !eq(s.top, previous), nil
}

func (s *mapBloomSet[K, V]) AddAll(elems []K) (bool, error) {
	if elems == nil {
		return false, fmt.Errorf("%w: nil elements", ErrInvalidArgument)
	}
	if !s.IsMutable() {
		return false, fmt.Errorf("%w: add all", ErrImmutable)
	}
	mutated := false
	for _, e := range elems {
		changed, err := s.Add(e)
		if err != nil {
			return mutated, err
		}
		if changed {
			mutated = true
		}
	}
	return mutated, nil
}

// AddAllSet raises to top every cell set in other but not yet attained here.
func (s *mapBloomSet[K, V]) AddAllSet(other IBloomSet[K]) (bool, error) {
	if err := checkCompatibleSets[K](s, other); err != nil {
		return false, err
	}
	if !s.IsMutable() {
		return false, fmt.Errorf("%w: add all", ErrImmutable)
	}
	unattained := s.bits.Flipped()
	mutated := false
	for _, i := range other.Bits().OnesPositions() {
		if !unattained.GetBit(i) {
			continue
		}
		if err := s.bits.SetBit(i, true); err != nil {
			return mutated, err
		}
		mutated = true
	}
	return mutated, nil
}

func (s *mapBloomSet[K, V]) Clear() error {
	return s.m.Clear()
}

func (s *mapBloomSet[K, V]) IsEmpty() bool {
	return s.bits.IsAllZeros()
}

func (s *mapBloomSet[K, V]) IsFull() bool {
	return s.bits.IsAllOnes()
}

func (s *mapBloomSet[K, V]) ContainsAll(other IBloomSet[K]) (bool, error) {
	if err := checkCompatibleSets[K](s, other); err != nil {
		return false, err
	}
	return s.bits.Contains(other.Bits()), nil
}

func (s *mapBloomSet[K, V]) BoundedBy(other IBloomSet[K]) (IBloomSet[K], error) {
	if err := checkCompatibleSets[K](s, other); err != nil {
		return nil, err
	}
	return boundedBy[K](s.m.config, s.bits, other.Bits()), nil
}

func (s *mapBloomSet[K, V]) FalsePositiveProbability() float64 {
	return falsePositiveProbability(s.m.config, s.bits)
}

func (s *mapBloomSet[K, V]) IsMutable() bool {
	return s.m.IsMutable()
}

func (s *mapBloomSet[K, V]) ImmutableView() IBloomSet[K] {
	return newBloomSet(s.publicBits, s.m.config)
}

func (s *mapBloomSet[K, V]) ImmutableCopy() IBloomSet[K] {
	return newBloomSet(s.bits.ImmutableCopy(), s.m.config)
}

func (s *mapBloomSet[K, V]) MutableCopy() IBloomSet[K] {
	return newBloomSet(s.bits.MutableCopy(), s.m.config)
}

func (s *mapBloomSet[K, V]) Equals(other IBloomSet[K]) bool {
	return equalSets[K](s, other)
}

func (s *mapBloomSet[K, V]) Hash() uint64 {
	return s.bits.Hash()
}

var _ IBloomSet[int] = (*mapBloomSet[int, int])(nil)

// mapBits exposes the map's cells as a bit store: bit i reads as whether
// cell i attains the access-lattice top, and setting bit i joins the top
// into the cell. Bits can only be raised; clearing an individual bit has no
// lattice meaning and is rejected.
type mapBits[K any, V comparable] struct {
	m   *bloomMap[K, V]
	top V
}

func (b *mapBits[K, V]) Size() int {
	return b.m.values.Size()
}

func (b *mapBits[K, V]) GetBit(i int) bool {
	return b.m.storeLattice.IsOrdered(b.top, b.m.values.Get(i))
}

func (b *mapBits[K, V]) OnesCount() int {
	return bits.Count(b)
}

func (b *mapBits[K, V]) IsAllZeros() bool {
	return bits.Count(b) == 0
}

func (b *mapBits[K, V]) IsAllOnes() bool {
	return bits.Count(b) == b.Size()
}

func (b *mapBits[K, V]) Contains(other bits.IBitStore) bool {
	return bits.Contains(b, other)
}

func (b *mapBits[K, V]) OnesPositions() []int {
	return bits.Positions(b)
}

func (b *mapBits[K, V]) Flipped() bits.IBitStore {
	return bits.NewReader(b.Size(), func(i int) bool { return !b.GetBit(i) })
}

func (b *mapBits[K, V]) IsMutable() bool {
	return b.m.IsMutable()
}

func (b *mapBits[K, V]) SetBit(i int, v bool) error {
	if !v {
		return fmt.Errorf("%w: cannot clear bits", ErrInvalidArgument)
	}
	if !b.IsMutable() {
		return fmt.Errorf("%w: set at %d", ErrImmutable, i)
	}
	old := b.m.values.Get(i)
	return b.m.values.Set(i, b.m.storeLattice.Join(b.top, old))
}

func (b *mapBits[K, V]) GetThenSetBit(i int, v bool) (bool, error) {
	prev := b.GetBit(i)
	if err := b.SetBit(i, v); err != nil {
		return false, err
	}
	return prev, nil
}

func (b *mapBits[K, V]) ClearWithZeros() error {
	return b.m.Clear()
}

func (b *mapBits[K, V]) OrWith(other bits.IBitStore) error {
	if !b.IsMutable() {
		return fmt.Errorf("%w: or", ErrImmutable)
	}
	for _, i := range other.OnesPositions() {
		if err := b.SetBit(i, true); err != nil {
			return err
		}
	}
	return nil
}

func (b *mapBits[K, V]) ImmutableView() bits.IBitStore {
	return bits.NewReader(b.Size(), b.GetBit)
}

func (b *mapBits[K, V]) ImmutableCopy() bits.IBitStore {
	return bits.Materialize(b, false)
}

func (b *mapBits[K, V]) MutableCopy() bits.IBitStore {
	return bits.Materialize(b, true)
}

func (b *mapBits[K, V]) Equals(other bits.IBitStore) bool {
	return bits.Equal(b, other)
}

func (b *mapBits[K, V]) Hash() uint64 {
	return bits.Hash(b)
}

var _ bits.IBitStore = (*mapBits[int, int])(nil)
