package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_New(t *testing.T) {
	t.Run("default chunk size", func(t *testing.T) {
		a := NewArena(0)
		defer a.Close()

		assert.Equal(t, DefaultChunkSize, a.chunkSize)
	})

	t.Run("chunk size rounds to power of two", func(t *testing.T) {
		a := NewArena(1000)
		defer a.Close()

		assert.Equal(t, 1024, a.chunkSize)
	})
}

func TestArena_Reallocate(t *testing.T) {
	t.Run("zeroed blocks", func(t *testing.T) {
		a := NewArena(4096)
		defer a.Close()

		buf, err := a.Reallocate(nil, 0, 64, nil)
		require.NoError(t, err)
		require.Len(t, buf, 64)
		for i, b := range buf {
			if b != 0 {
				t.Fatalf("byte at index %d not zero: %d", i, b)
			}
		}
	})

	t.Run("content preserved across moves", func(t *testing.T) {
		a := NewArena(4096)
		defer a.Close()

		buf, err := a.Reallocate(nil, 0, 4, nil)
		require.NoError(t, err)
		copy(buf, []byte{1, 2, 3, 4})

		grown, err := a.Reallocate(buf, 4, 64, nil)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3, 4}, grown[:4])
	})

	t.Run("oversize request gets a dedicated chunk", func(t *testing.T) {
		a := NewArena(4096)
		defer a.Close()

		buf, err := a.Reallocate(nil, 0, 100*1024, nil)
		require.NoError(t, err)
		assert.Len(t, buf, 100*1024)

		stats := a.Stats()
		assert.GreaterOrEqual(t, stats.BytesReserved, uint64(100*1024))
	})

	t.Run("zero size", func(t *testing.T) {
		a := NewArena(4096)
		defer a.Close()

		buf, err := a.Reallocate(nil, 0, 0, nil)
		assert.NoError(t, err)
		assert.Nil(t, buf)
	})

	t.Run("closed arena fails", func(t *testing.T) {
		a := NewArena(4096)
		require.NoError(t, a.Close())

		_, err := a.Reallocate(nil, 0, 8, nil)
		assert.ErrorIs(t, err, ErrAllocationFailed)
	})
}

func TestArena_Stats(t *testing.T) {
	a := NewArena(4096)
	defer a.Close()

	for i := 0; i < 10; i++ {
		_, err := a.Reallocate(nil, 0, 100, nil)
		require.NoError(t, err)
	}

	stats := a.Stats()
	assert.Equal(t, uint64(10), stats.TotalAllocs)
	assert.Equal(t, uint64(1000), stats.BytesUsed)
	assert.Positive(t, stats.ChunksAllocated)
	assert.Positive(t, a.Usage())
	assert.Contains(t, a.String(), "MiB")
}

func TestArena_Close(t *testing.T) {
	a := NewArena(4096)

	_, err := a.Reallocate(nil, 0, 8, nil)
	require.NoError(t, err)

	assert.NoError(t, a.Close())
	assert.NoError(t, a.Close()) // idempotent
	assert.Zero(t, a.Stats().BytesReserved)
}
