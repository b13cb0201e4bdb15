package go_bloom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datnguyenzzz/nogodb/lib/go-bloom/hashing"
)

func Test_BloomConfig_Capacity_From_Hasher(t *testing.T) {
	hasher := hashing.Murmur3Int().Sized(hashing.SizeFromInt(1000))
	config, err := NewConfig(hasher, 10)
	require.NoError(t, err)

	assert.Equal(t, 1000, config.Capacity())
	assert.Equal(t, 10, config.HashCount())
	assert.True(t, config.Hasher().Equals(hasher))
}

func Test_BloomConfig_Unsized_Hasher_Rejected(t *testing.T) {
	_, err := NewConfig(hashing.Murmur3Int(), 10)
	assert.True(t, errors.Is(err, hashing.ErrInvalidState))
}

func Test_BloomConfig_Validation(t *testing.T) {
	sized := hashing.Murmur3Int().Sized(hashing.SizeFromInt(1000))

	tests := []struct {
		name      string
		construct func() error
	}{
		{
			name: "nil hasher",
			construct: func() error {
				_, err := NewConfig[int](nil, 10)
				return err
			},
		},
		{
			name: "zero hash count",
			construct: func() error {
				_, err := NewConfig(sized, 0)
				return err
			},
		},
		{
			name: "hash count exceeds quantity",
			construct: func() error {
				_, err := NewConfig(hashing.IdentityInt().Sized(hashing.SizeFromInt(10)), 2)
				return err
			},
		},
		{
			name: "negative capacity",
			construct: func() error {
				_, err := NewConfigWithCapacity(-1, sized, 10)
				return err
			},
		},
		{
			name: "hash size smaller than capacity",
			construct: func() error {
				_, err := NewConfigWithCapacity(2000, sized, 10)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.construct(), ErrInvalidArgument))
		})
	}
}

func Test_BloomConfig_Rebinds_Larger_Hasher(t *testing.T) {
	hasher := hashing.Murmur3Int().Sized(hashing.SizeFromInt(1000))
	config, err := NewConfigWithCapacity(500, hasher, 10)
	require.NoError(t, err)

	assert.Equal(t, 500, config.Capacity())
	n, err := config.Hasher().Size().AsInt()
	require.NoError(t, err)
	assert.Equal(t, 500, n)
}

func Test_BloomConfig_WithCapacity(t *testing.T) {
	hasher := hashing.Murmur3Int().Sized(hashing.SizeFromInt(1000))
	config, err := NewConfig(hasher, 10)
	require.NoError(t, err)

	same, err := config.WithCapacity(1000)
	require.NoError(t, err)
	assert.Same(t, config, same)

	smaller, err := config.WithCapacity(100)
	require.NoError(t, err)
	assert.Equal(t, 100, smaller.Capacity())
	assert.False(t, smaller.Equals(config))
}

func Test_BloomConfig_Equality(t *testing.T) {
	size := hashing.SizeFromInt(1000)
	m := hashing.Murmur3Int().Sized(size)

	c1, err := NewConfig(m, 10)
	require.NoError(t, err)
	c2, err := NewConfig(hashing.Murmur3Int().Sized(size), 10)
	require.NoError(t, err)
	c3, err := NewConfig(m, 7)
	require.NoError(t, err)
	c4, err := NewConfig(hashing.IdentityInt().Sized(size), 1)
	require.NoError(t, err)

	assert.True(t, c1.Equals(c2))
	assert.False(t, c1.Equals(c3))
	assert.False(t, c1.Equals(c4))
	assert.False(t, c1.Equals(nil))
}
