package go_bloom

import (
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/datnguyenzzz/nogodb/lib/go-bloom/bits"
	"github.com/datnguyenzzz/nogodb/lib/go-bloom/hashing"
)

func newIntFactory(t *testing.T, capacity, hashCount int) *Bloom[int] {
	t.Helper()
	hasher := hashing.Murmur3Int().Sized(hashing.SizeFromInt(capacity))
	f, err := WithHasher(hasher, hashCount)
	require.NoError(t, err)
	return f
}

func newIdentityFactory(t *testing.T, capacity int) *Bloom[int] {
	t.Helper()
	hasher := hashing.IdentityInt().Sized(hashing.SizeFromInt(capacity))
	f, err := WithHasher(hasher, 1)
	require.NoError(t, err)
	return f
}

func addRange(t *testing.T, s IBloomSet[int], from, to int) {
	t.Helper()
	for i := from; i < to; i++ {
		_, err := s.Add(i)
		require.NoError(t, err)
	}
}

func Test_BloomSet_Basic_Containment(t *testing.T) {
	s := newIntFactory(t, 1000, 10).NewSet()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0.0, s.FalsePositiveProbability())

	addRange(t, s, 0, 10)

	for i := 0; i < 10; i++ {
		assert.True(t, s.MightContain(i))
	}
	assert.False(t, s.IsEmpty())

	p := s.FalsePositiveProbability()
	assert.Greater(t, p, 0.0)
	assert.Less(t, p, 1.0)
}

func Test_BloomSet_Saturation(t *testing.T) {
	s := newIdentityFactory(t, 10).NewSet()

	p := s.FalsePositiveProbability()
	assert.Equal(t, 0.0, p)
	for i := 0; i < 10; i++ {
		_, err := s.Add(i)
		require.NoError(t, err)
		q := s.FalsePositiveProbability()
		assert.Greater(t, q, p)
		p = q
	}
	assert.Equal(t, 1.0, p)
	assert.True(t, s.IsFull())
}

func Test_BloomSet_Add_Reports_Mutation(t *testing.T) {
	s := newIntFactory(t, 1000, 10).NewSet()

	ones := 0
	for i := 0; i < 10; i++ {
		mutated, err := s.Add(i)
		require.NoError(t, err)
		assert.True(t, mutated)

		again, err := s.Add(i)
		require.NoError(t, err)
		assert.False(t, again)

		newOnes := s.Bits().OnesCount()
		assert.GreaterOrEqual(t, newOnes, ones)
		ones = newOnes
	}
}

func Test_BloomSet_No_False_Negatives(t *testing.T) {
	s := newIntFactory(t, 1000, 10).NewSet()

	for i := 0; i < 100; i++ {
		_, err := s.Add(i)
		require.NoError(t, err)
		assert.True(t, s.MightContain(i))
	}
	assert.True(t, s.MightContainAll([]int{0, 50, 99}))
}

func Test_BloomSet_AddAll_Iterable(t *testing.T) {
	f := newIntFactory(t, 1000, 10)
	one := f.NewSet()
	other := f.NewSet()

	elems := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	addRange(t, one, 0, 10)

	mutated, err := other.AddAll(elems)
	require.NoError(t, err)
	assert.True(t, mutated)
	assert.True(t, one.Equals(other))

	// idempotent after the first success
	mutated, err = other.AddAll(elems)
	require.NoError(t, err)
	assert.False(t, mutated)
	assert.True(t, one.Equals(other))

	_, err = other.AddAll(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func Test_BloomSet_AddAllSet_And_ContainsAll(t *testing.T) {
	f := newIntFactory(t, 1000, 10)
	a := f.NewSet()
	b := f.NewSet()

	addRange(t, a, 0, 10)
	addRange(t, b, 0, 5)

	contains, err := a.ContainsAll(b)
	require.NoError(t, err)
	assert.True(t, contains)

	// merging a contained set is a no-op
	mutated, err := a.AddAllSet(b)
	require.NoError(t, err)
	assert.False(t, mutated)

	addRange(t, b, 10, 20)
	contains, err = a.ContainsAll(b)
	require.NoError(t, err)
	assert.False(t, contains)

	mutated, err = a.AddAllSet(b)
	require.NoError(t, err)
	assert.True(t, mutated)

	contains, err = a.ContainsAll(b)
	require.NoError(t, err)
	assert.True(t, contains)
}

func Test_BloomSet_ContainsAll_Union_Equivalence(t *testing.T) {
	f := newIntFactory(t, 1000, 10)
	a := f.NewSet()
	b := f.NewSet()
	addRange(t, a, 0, 20)
	addRange(t, b, 5, 15)

	union := a.MutableCopy()
	_, err := union.AddAllSet(b)
	require.NoError(t, err)

	contains, err := a.ContainsAll(b)
	require.NoError(t, err)
	assert.Equal(t, contains, union.Bits().Equals(a.Bits()))
	assert.True(t, contains)

	addRange(t, b, 500, 530)
	union = a.MutableCopy()
	_, err = union.AddAllSet(b)
	require.NoError(t, err)

	contains, err = a.ContainsAll(b)
	require.NoError(t, err)
	assert.Equal(t, contains, union.Bits().Equals(a.Bits()))
	assert.False(t, contains)
}

func Test_BloomSet_BoundedBy(t *testing.T) {
	f := newIntFactory(t, 1000, 10)
	a := f.NewSet()
	addRange(t, a, 0, 30)

	self, err := a.BoundedBy(a)
	require.NoError(t, err)
	assert.True(t, self.IsFull())

	b := a.MutableCopy()
	addRange(t, b, 30, 60)

	c, err := a.BoundedBy(b)
	require.NoError(t, err)
	assert.True(t, c.IsFull())
	for i := 0; i < 60; i++ {
		assert.True(t, c.MightContain(i))
	}

	d, err := b.BoundedBy(a)
	require.NoError(t, err)
	assert.False(t, d.IsFull())
	for i := 0; i < 30; i++ {
		assert.True(t, d.MightContain(i))
	}

	// the derived set is immutable and live
	assert.False(t, d.IsMutable())
	_, err = d.Add(1)
	assert.True(t, errors.Is(err, ErrImmutable))
	assert.True(t, errors.Is(d.Clear(), ErrImmutable))
}

func Test_BloomSet_BoundedBy_Is_Live(t *testing.T) {
	f := newIntFactory(t, 1000, 10)
	a := f.NewSet()
	b := f.NewSet()
	addRange(t, a, 0, 10)

	d, err := a.BoundedBy(b)
	require.NoError(t, err)
	assert.False(t, d.IsFull())

	// once b catches up, the implication holds everywhere
	_, err = b.AddAllSet(a)
	require.NoError(t, err)
	assert.True(t, d.IsFull())
}

func Test_BloomSet_Clear(t *testing.T) {
	s := newIntFactory(t, 1000, 10).NewSet()

	require.NoError(t, s.Clear())
	assert.True(t, s.IsEmpty())

	addRange(t, s, 0, 5)
	assert.False(t, s.IsEmpty())

	require.NoError(t, s.Clear())
	assert.True(t, s.IsEmpty())
	require.NoError(t, s.Clear())
	assert.True(t, s.IsEmpty())
}

func Test_BloomSet_Equality_And_Hash(t *testing.T) {
	f := newIntFactory(t, 1000, 10)
	a := f.NewSet()
	b := f.NewSet()

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())

	_, err := a.Add(1)
	require.NoError(t, err)
	assert.False(t, a.Equals(b))

	_, err = b.Add(1)
	require.NoError(t, err)
	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())

	sparse := newIntFactory(t, 1000, 2).NewSet()
	assert.False(t, a.Equals(sparse))
}

func Test_BloomSet_Mutability_Discipline(t *testing.T) {
	s := newIntFactory(t, 1000, 10).NewSet()
	addRange(t, s, 0, 5)

	view := s.ImmutableView()
	assert.False(t, view.IsMutable())
	_, err := view.Add(99)
	assert.True(t, errors.Is(err, ErrImmutable))
	_, err = view.AddAll([]int{99})
	assert.True(t, errors.Is(err, ErrImmutable))
	assert.True(t, errors.Is(view.Clear(), ErrImmutable))

	// the view is live
	_, err = s.Add(99)
	require.NoError(t, err)
	assert.True(t, view.MightContain(99))

	frozen := s.ImmutableCopy()
	assert.True(t, frozen.Equals(s))
	frozenOnes := frozen.Bits().OnesCount()
	mutated, err := s.Add(500)
	require.NoError(t, err)
	assert.Equal(t, frozenOnes, frozen.Bits().OnesCount())
	assert.Equal(t, mutated, !frozen.Equals(s))

	independent := s.MutableCopy()
	assert.True(t, independent.Equals(s))
	_, err = independent.Add(700)
	require.NoError(t, err)
	assert.False(t, s.Equals(independent))
}

func Test_BloomSet_Adopted_Bits(t *testing.T) {
	f := newIntFactory(t, 1000, 10)

	adopted, err := f.NewSetFromBits(bits.New(500))
	require.NoError(t, err)
	assert.Equal(t, 500, adopted.Config().Capacity())
	n, err := adopted.Config().Hasher().Size().AsInt()
	require.NoError(t, err)
	assert.Equal(t, 500, n)

	_, err = f.NewSetFromBits(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = f.NewSetFromBits(bits.New(100).ImmutableView())
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	// a store larger than the hash size cannot be indexed
	_, err = f.NewSetFromBits(bits.New(5000))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func Test_BloomSet_Compatibility_Rejection(t *testing.T) {
	size := hashing.SizeFromInt(1000)
	m10, err := WithHasher(hashing.Murmur3Int().Sized(size), 10)
	require.NoError(t, err)
	m7, err := WithHasher(hashing.Murmur3Int().Sized(size), 7)
	require.NoError(t, err)
	id, err := WithHasher(hashing.IdentityInt().Sized(size), 1)
	require.NoError(t, err)

	a := m10.NewSet()
	b := m7.NewSet()
	c := id.NewSet()

	_, err = a.AddAllSet(b)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = a.ContainsAll(b)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = a.BoundedBy(b)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = a.AddAllSet(c)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = a.AddAllSet(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func Test_BloomSet_String_Elements(t *testing.T) {
	hasher := hashing.Murmur3String().Sized(hashing.SizeFromInt(1000))
	f, err := WithHasher(hasher, 7)
	require.NoError(t, err)
	s := f.NewSet()

	words := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		words = append(words, faker.Word())
	}
	mutated, err := s.AddAll(words)
	require.NoError(t, err)
	assert.True(t, mutated)
	assert.True(t, s.MightContainAll(words))
	assert.Greater(t, s.FalsePositiveProbability(), 0.0)
}

func Test_BloomSet_Concurrent_Readers(t *testing.T) {
	s := newIntFactory(t, 1000, 10).NewSet()
	addRange(t, s, 0, 50)
	frozen := s.ImmutableCopy()

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < 50; i++ {
				if !frozen.MightContain(i) {
					return errors.New("lost an element")
				}
			}
			_ = frozen.FalsePositiveProbability()
			_ = frozen.Bits().OnesCount()
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
