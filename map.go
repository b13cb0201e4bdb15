package go_bloom

import (
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-bloom/bits"
	"github.com/datnguyenzzz/nogodb/lib/go-bloom/lattice"
	"github.com/datnguyenzzz/nogodb/lib/go-bloom/storage"
)

// bloomMap pairs a config with a cell store and two lattices: the store
// lattice the cells live in, and the access lattice reads and writes are
// projected through. The two are equal unless the map is a BoundedAbove
// view, in which case the access lattice is a capped sub-lattice and the
// cell store is shared with the originator.
type bloomMap[K any, V comparable] struct {
	config        *BloomConfig[K]
	storeLattice  lattice.ILattice[V]
	accessLattice lattice.ILattice[V]
	values        storage.IStore[V]
	accessValues  storage.IStore[V]
	bloomSet      *mapBloomSet[K, V]
}

func newBloomMap[K any, V comparable](config *BloomConfig[K], values storage.IStore[V], lat lattice.ILattice[V]) *bloomMap[K, V] {
	m := &bloomMap[K, V]{
		config:        config,
		storeLattice:  lat,
		accessLattice: lat,
		values:        values,
	}
	m.accessValues = m.newAccessStore()
	return m
}

// newBoundedMap derives the live capped view. The cell store is shared, so
// either side observes the other's mutations.
func newBoundedMap[K any, V comparable](that *bloomMap[K, V], accessLattice lattice.ILattice[V]) *bloomMap[K, V] {
	m := &bloomMap[K, V]{
		config:        that.config,
		storeLattice:  that.storeLattice,
		accessLattice: accessLattice,
		values:        that.values,
	}
	m.accessValues = m.newAccessStore()
	return m
}

// newDerivedMap rebuilds a wrapper over replacement storage, keeping both
// lattices. Used by the mutability methods.
func newDerivedMap[K any, V comparable](that *bloomMap[K, V], values storage.IStore[V]) *bloomMap[K, V] {
	m := &bloomMap[K, V]{
		config:        that.config,
		storeLattice:  that.storeLattice,
		accessLattice: that.accessLattice,
		values:        values,
	}
	m.accessValues = m.newAccessStore()
	return m
}

func (m *bloomMap[K, V]) newAccessStore() storage.IStore[V] {
	if m.storeLattice.Equals(m.accessLattice) {
		return m.values.ImmutableView()
	}
	top := m.accessLattice.Top()
	return m.values.TransformedBy(func(v V) V {
		return m.storeLattice.Meet(top, v)
	})
}

func (m *bloomMap[K, V]) Config() *BloomConfig[K] {
	return m.config
}

func (m *bloomMap[K, V]) Lattice() lattice.ILattice[V] {
	return m.accessLattice
}

func (m *bloomMap[K, V]) Values() storage.IStore[V] {
	return m.accessValues
}

func (m *bloomMap[K, V]) Put(key K, value V) (V, error) {
	var zero V
	if !m.accessLattice.Contains(value) {
		return zero, fmt.Errorf("%w: value %v outside access lattice", ErrInvalidArgument, value)
	}
	if !m.IsMutable() {
		return zero, fmt.Errorf("%w: put", ErrImmutable)
	}
	code := m.config.Hasher().Hash(key)
	previous := m.accessLattice.Top()
	for i := 0; i < m.config.HashCount(); i++ {
		idx := code.IntValue()
		v := m.values.Get(idx)
		previous = m.storeLattice.Meet(previous, v)
		if err := m.values.Set(idx, m.storeLattice.Join(value, v)); err != nil {
			return zero, err
		}
	}
	return previous, nil
}

func (m *bloomMap[K, V]) GetSupremum(key K) V {
	code := m.config.Hasher().Hash(key)
	value := m.accessLattice.Top()
	for i := 0; i < m.config.HashCount(); i++ {
		value = m.storeLattice.Meet(value, m.values.Get(code.IntValue()))
	}
	return value
}

func (m *bloomMap[K, V]) MightContain(key K) bool {
	code := m.config.Hasher().Hash(key)
	bottom := m.storeLattice.Bottom()
	eq := m.storeLattice.Equality()
	for i := 0; i < m.config.HashCount(); i++ {
		if eq(m.values.Get(code.IntValue()), bottom) {
			return false
		}
	}
	return true
}

func (m *bloomMap[K, V]) MightContainAll(keys []K) bool {
	for _, key := range keys {
		if !m.MightContain(key) {
			return false
		}
	}
	return true
}

func (m *bloomMap[K, V]) Clear() error {
	if !m.IsMutable() {
		return fmt.Errorf("%w: clear", ErrImmutable)
	}
	return m.values.Fill(m.storeLattice.Bottom())
}

func (m *bloomMap[K, V]) IsEmpty() bool {
	return m.isAll(m.storeLattice.Bottom())
}

func (m *bloomMap[K, V]) IsFull() bool {
	return m.isAll(m.storeLattice.Top())
}

func (m *bloomMap[K, V]) Bounds(other IBloomMap[K, V]) (bool, error) {
	if err := checkCompatibleMaps[K, V](m, other); err != nil {
		return false, err
	}
	those := other.Values()
	for i := 0; i < m.accessValues.Size(); i++ {
		if !m.storeLattice.IsOrdered(those.Get(i), m.accessValues.Get(i)) {
			return false, nil
		}
	}
	return true, nil
}

func (m *bloomMap[K, V]) BoundedAbove(upperBound V) (IBloomMap[K, V], error) {
	sub, err := m.accessLattice.BoundedAbove(upperBound)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if sub.Equals(m.accessLattice) {
		return m, nil
	}
	return newBoundedMap(m, sub), nil
}

// Keys is rebuilt per call; the wrapper is a cheap pair of pointers over the
// live cell store.
func (m *bloomMap[K, V]) Keys() IBloomSet[K] {
	bottom := m.storeLattice.Bottom()
	eq := m.storeLattice.Equality()
	kb := bits.NewReader(m.values.Size(), func(i int) bool {
		return !eq(m.values.Get(i), bottom)
	})
	return &bloomSet[K]{config: m.config, bits: kb, publicBits: kb}
}

func (m *bloomMap[K, V]) AsBloomSet() IBloomSet[K] {
	if m.bloomSet == nil {
		m.bloomSet = newMapBloomSet(m)
	}
	return m.bloomSet
}

func (m *bloomMap[K, V]) IsMutable() bool {
	return m.values.IsMutable()
}

func (m *bloomMap[K, V]) ImmutableView() IBloomMap[K, V] {
	return newDerivedMap(m, m.values.ImmutableView())
}

func (m *bloomMap[K, V]) ImmutableCopy() IBloomMap[K, V] {
	return newDerivedMap(m, m.values.ImmutableCopy())
}

func (m *bloomMap[K, V]) MutableCopy() IBloomMap[K, V] {
	return newDerivedMap(m, m.values.MutableCopy())
}

// Equals compares configs, access lattices and access values. Cell values
// are compared with Go value equality, not lattice equality: a lattice whose
// equivalence is coarser than == could not hash consistently.
func (m *bloomMap[K, V]) Equals(other IBloomMap[K, V]) bool {
	if other == nil {
		return false
	}
	if !m.config.Equals(other.Config()) {
		return false
	}
	if !m.accessLattice.Equals(other.Lattice()) {
		return false
	}
	return m.accessValues.Equals(other.Values())
}

func (m *bloomMap[K, V]) Hash() uint64 {
	return m.accessValues.Hash()
}

func (m *bloomMap[K, V]) isAll(v V) bool {
	eq := m.storeLattice.Equality()
	for i := 0; i < m.values.Size(); i++ {
		if !eq(m.values.Get(i), v) {
			return false
		}
	}
	return true
}

var _ IBloomMap[int, int] = (*bloomMap[int, int])(nil)
