package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SliceStore_Basic(t *testing.T) {
	s := NewSlice[int](5)

	assert.Equal(t, 5, s.Size())
	assert.True(t, s.IsMutable())
	assert.False(t, s.NullGettable())
	assert.Equal(t, 0, s.Get(3))

	require.NoError(t, s.Set(3, 42))
	assert.Equal(t, 42, s.Get(3))

	require.NoError(t, s.Fill(7))
	for i := 0; i < s.Size(); i++ {
		assert.Equal(t, 7, s.Get(i))
	}
}

func Test_SliceStore_ImmutableView_Is_Live(t *testing.T) {
	s := NewSlice[int](3)
	view := s.ImmutableView()

	assert.False(t, view.IsMutable())
	assert.True(t, errors.Is(view.Set(0, 1), ErrImmutable))
	assert.True(t, errors.Is(view.Fill(1), ErrImmutable))

	require.NoError(t, s.Set(0, 9))
	assert.Equal(t, 9, view.Get(0))
}

func Test_SliceStore_Copies(t *testing.T) {
	s := NewSlice[int](3)
	require.NoError(t, s.Set(1, 5))

	frozen := s.ImmutableCopy()
	independent := s.MutableCopy()

	require.NoError(t, s.Set(1, 8))
	assert.Equal(t, 5, frozen.Get(1))
	assert.Equal(t, 5, independent.Get(1))

	require.NoError(t, independent.Set(1, 6))
	assert.Equal(t, 8, s.Get(1))
}

func Test_TransformedBy_Is_Lazy_And_ReadOnly(t *testing.T) {
	s := NewSlice[int](4)
	capped := s.TransformedBy(func(v int) int {
		if v > 10 {
			return 10
		}
		return v
	})

	assert.False(t, capped.IsMutable())
	assert.True(t, errors.Is(capped.Set(0, 1), ErrImmutable))

	require.NoError(t, s.Set(2, 50))
	assert.Equal(t, 10, capped.Get(2))
	require.NoError(t, s.Set(2, 3))
	assert.Equal(t, 3, capped.Get(2))
}

func Test_Transformed_Copies_Materialize(t *testing.T) {
	s := NewSlice[int](3)
	require.NoError(t, s.Fill(20))
	capped := s.TransformedBy(func(v int) int { return v / 2 })

	frozen := capped.ImmutableCopy()
	require.NoError(t, s.Fill(40))
	assert.Equal(t, 10, frozen.Get(0))
	assert.Equal(t, 20, capped.Get(0))

	mc := capped.MutableCopy()
	assert.True(t, mc.IsMutable())
	require.NoError(t, mc.Set(0, 1))
	assert.Equal(t, 40, s.Get(0))
}

func Test_Store_Equals_And_Hash(t *testing.T) {
	a := NewSlice[int](3)
	b := NewSlice[int](3)
	require.NoError(t, a.Set(0, 1))
	require.NoError(t, b.Set(0, 1))

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())

	require.NoError(t, b.Set(2, 9))
	assert.False(t, a.Equals(b))

	short := NewSlice[int](2)
	assert.False(t, a.Equals(short))

	// a transformed view equals a plain store with the same content
	identity := a.TransformedBy(func(v int) int { return v })
	assert.True(t, identity.Equals(a))
	assert.Equal(t, identity.Hash(), a.Hash())
}

func Test_SliceStorage_Allocates_Mutable(t *testing.T) {
	st := SliceStorage[string]()
	s := st(4)
	assert.Equal(t, 4, s.Size())
	assert.True(t, s.IsMutable())
	assert.Equal(t, "", s.Get(0))
}
