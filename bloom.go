package go_bloom

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/datnguyenzzz/nogodb/lib/go-bloom/bits"
	"github.com/datnguyenzzz/nogodb/lib/go-bloom/hashing"
	"github.com/datnguyenzzz/nogodb/lib/go-bloom/lattice"
	"github.com/datnguyenzzz/nogodb/lib/go-bloom/storage"
)

// Bloom is the entry point: a config bound to a key type, from which sets
// and maps are constructed.
type Bloom[K any] struct {
	config *BloomConfig[K]
}

// WithHasher builds a factory from a hasher and hash count, deriving the
// capacity from the hasher's size.
func WithHasher[K any](hasher hashing.IHasher[K], hashCount int) (*Bloom[K], error) {
	config, err := NewConfig(hasher, hashCount)
	if err != nil {
		return nil, err
	}
	return &Bloom[K]{config: config}, nil
}

// WithConfig builds a factory around an existing config.
func WithConfig[K any](config *BloomConfig[K]) (*Bloom[K], error) {
	if config == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidArgument)
	}
	return &Bloom[K]{config: config}, nil
}

func (b *Bloom[K]) Config() *BloomConfig[K] {
	return b.config
}

// NewSet constructs a set over a freshly allocated bit store of length
// capacity.
func (b *Bloom[K]) NewSet() IBloomSet[K] {
	return newBloomSet(bits.New(b.config.Capacity()), b.config)
}

// NewSetFromBits adopts a caller-supplied mutable bit store. The capacity is
// taken from the store's size and the hasher resized to match.
func (b *Bloom[K]) NewSetFromBits(bs bits.IBitStore) (IBloomSet[K], error) {
	if bs == nil {
		return nil, fmt.Errorf("%w: nil bits", ErrInvalidArgument)
	}
	if !bs.IsMutable() {
		zap.L().Error("cannot adopt immutable bit store", zap.Int("size", bs.Size()))
		return nil, fmt.Errorf("%w: immutable bits", ErrInvalidArgument)
	}
	config, err := b.config.WithCapacity(bs.Size())
	if err != nil {
		return nil, err
	}
	return newBloomSet(bs, config), nil
}

// NewMap adopts a caller-supplied mutable value store of length capacity and
// pairs it with a lattice bounded below. The store is cleared to the lattice
// bottom.
func NewMap[K any, V comparable](b *Bloom[K], values storage.IStore[V], lat lattice.ILattice[V]) (IBloomMap[K, V], error) {
	if err := multierr.Combine(checkMapStore(b, values), checkMapLattice[V](lat)); err != nil {
		zap.L().Error("cannot construct bloom map", zap.Error(err))
		return nil, err
	}
	m := newBloomMap(b.config, values, lat)
	if err := m.Clear(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewMapFromStorage allocates a store of length capacity from the storage
// factory and builds the map over it.
func NewMapFromStorage[K any, V comparable](b *Bloom[K], st storage.Storage[V], lat lattice.ILattice[V]) (IBloomMap[K, V], error) {
	if st == nil {
		return nil, fmt.Errorf("%w: nil storage", ErrInvalidArgument)
	}
	if err := checkMapLattice[V](lat); err != nil {
		return nil, err
	}
	return NewMap(b, st(b.config.Capacity()), lat)
}

func checkMapStore[K any, V comparable](b *Bloom[K], values storage.IStore[V]) error {
	if values == nil {
		return fmt.Errorf("%w: nil values", ErrInvalidArgument)
	}
	var errs error
	if !values.IsMutable() {
		errs = multierr.Append(errs, fmt.Errorf("%w: immutable values", ErrInvalidArgument))
	}
	if values.NullGettable() {
		errs = multierr.Append(errs, fmt.Errorf("%w: values admit null reads", ErrInvalidArgument))
	}
	if values.Size() != b.config.Capacity() {
		errs = multierr.Append(errs, fmt.Errorf("%w: store size %d, capacity %d", ErrInvalidArgument, values.Size(), b.config.Capacity()))
	}
	return errs
}

func checkMapLattice[V comparable](lat lattice.ILattice[V]) error {
	if lat == nil {
		return fmt.Errorf("%w: nil lattice", ErrInvalidArgument)
	}
	if !lat.IsBoundedBelow() {
		return fmt.Errorf("%w: lattice not bounded below", ErrInvalidArgument)
	}
	return nil
}
