package bits

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// bitStore is the canonical bit container: a bitset plus a mutability flag.
// Views built over the same bitset share state.
type bitStore struct {
	set     *bitset.BitSet
	size    int
	mutable bool
}

// New allocates a mutable zero-filled bit store of the given size.
func New(size int) IBitStore {
	if size < 0 {
		size = 0
	}
	return &bitStore{set: bitset.New(uint(size)), size: size, mutable: true}
}

func (b *bitStore) Size() int {
	return b.size
}

func (b *bitStore) GetBit(i int) bool {
	return b.set.Test(uint(i))
}

func (b *bitStore) OnesCount() int {
	return int(b.set.Count())
}

func (b *bitStore) IsAllZeros() bool {
	return b.set.None()
}

func (b *bitStore) IsAllOnes() bool {
	return b.OnesCount() == b.size
}

func (b *bitStore) Contains(other IBitStore) bool {
	if o, ok := other.(*bitStore); ok {
		return b.size == o.size && b.set.IsSuperSet(o.set)
	}
	return Contains(b, other)
}

func (b *bitStore) OnesPositions() []int {
	positions := make([]int, 0, b.OnesCount())
	for i, ok := b.set.NextSet(0); ok; i, ok = b.set.NextSet(i + 1) {
		positions = append(positions, int(i))
	}
	return positions
}

func (b *bitStore) Flipped() IBitStore {
	return NewReader(b.size, func(i int) bool { return !b.GetBit(i) })
}

func (b *bitStore) IsMutable() bool {
	return b.mutable
}

func (b *bitStore) SetBit(i int, v bool) error {
	if err := b.checkWrite(i); err != nil {
		return err
	}
	b.set.SetTo(uint(i), v)
	return nil
}

func (b *bitStore) GetThenSetBit(i int, v bool) (bool, error) {
	if err := b.checkWrite(i); err != nil {
		return false, err
	}
	prev := b.set.Test(uint(i))
	b.set.SetTo(uint(i), v)
	return prev, nil
}

func (b *bitStore) ClearWithZeros() error {
	if !b.mutable {
		return fmt.Errorf("%w: clear", ErrImmutable)
	}
	b.set.ClearAll()
	return nil
}

func (b *bitStore) OrWith(other IBitStore) error {
	if !b.mutable {
		return fmt.Errorf("%w: or", ErrImmutable)
	}
	if o, ok := other.(*bitStore); ok {
		b.set.InPlaceUnion(o.set)
		return nil
	}
	for _, i := range other.OnesPositions() {
		b.set.Set(uint(i))
	}
	return nil
}

func (b *bitStore) ImmutableView() IBitStore {
	return &bitStore{set: b.set, size: b.size, mutable: false}
}

func (b *bitStore) ImmutableCopy() IBitStore {
	return &bitStore{set: b.set.Clone(), size: b.size, mutable: false}
}

func (b *bitStore) MutableCopy() IBitStore {
	return &bitStore{set: b.set.Clone(), size: b.size, mutable: true}
}

func (b *bitStore) Equals(other IBitStore) bool {
	if o, ok := other.(*bitStore); ok {
		return b.size == o.size && b.set.Equal(o.set)
	}
	return Equal(b, other)
}

func (b *bitStore) Hash() uint64 {
	return Hash(b)
}

func (b *bitStore) checkWrite(i int) error {
	if !b.mutable {
		return fmt.Errorf("%w: set at %d", ErrImmutable, i)
	}
	if i < 0 || i >= b.size {
		return fmt.Errorf("%w: %d of %d", ErrInvalidPosition, i, b.size)
	}
	return nil
}

var _ IBitStore = (*bitStore)(nil)
