package bits

import "fmt"

// readerBits is a live read-only view whose bits are computed on every read.
// Implication sets, map projections and complements are all built from it.
type readerBits struct {
	size int
	get  func(i int) bool
}

// NewReader builds a read-only bit store over a per-index read function.
func NewReader(size int, get func(i int) bool) IBitStore {
	return &readerBits{size: size, get: get}
}

func (r *readerBits) Size() int {
	return r.size
}

func (r *readerBits) GetBit(i int) bool {
	return r.get(i)
}

func (r *readerBits) OnesCount() int {
	return Count(r)
}

func (r *readerBits) IsAllZeros() bool {
	return Count(r) == 0
}

func (r *readerBits) IsAllOnes() bool {
	return Count(r) == r.size
}

func (r *readerBits) Contains(other IBitStore) bool {
	return Contains(r, other)
}

func (r *readerBits) OnesPositions() []int {
	return Positions(r)
}

func (r *readerBits) Flipped() IBitStore {
	return NewReader(r.size, func(i int) bool { return !r.get(i) })
}

func (r *readerBits) IsMutable() bool {
	return false
}

func (r *readerBits) SetBit(i int, _ bool) error {
	return fmt.Errorf("%w: set at %d", ErrImmutable, i)
}

func (r *readerBits) GetThenSetBit(i int, _ bool) (bool, error) {
	return false, fmt.Errorf("%w: set at %d", ErrImmutable, i)
}

func (r *readerBits) ClearWithZeros() error {
	return fmt.Errorf("%w: clear", ErrImmutable)
}

func (r *readerBits) OrWith(IBitStore) error {
	return fmt.Errorf("%w: or", ErrImmutable)
}

func (r *readerBits) ImmutableView() IBitStore {
	return r
}

func (r *readerBits) ImmutableCopy() IBitStore {
	return Materialize(r, false)
}

func (r *readerBits) MutableCopy() IBitStore {
	return Materialize(r, true)
}

func (r *readerBits) Equals(other IBitStore) bool {
	return Equal(r, other)
}

func (r *readerBits) Hash() uint64 {
	return Hash(r)
}

var _ IBitStore = (*readerBits)(nil)
