package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_Reallocate(t *testing.T) {
	t.Run("zero size is empty, not an error", func(t *testing.T) {
		buf, err := Heap{}.Reallocate(nil, 0, 0, nil)
		assert.NoError(t, err)
		assert.Nil(t, buf)
	})

	t.Run("negative size", func(t *testing.T) {
		_, err := Heap{}.Reallocate(nil, 0, -1, nil)
		assert.ErrorIs(t, err, ErrInvalidSize)

		_, err = Heap{}.Reallocate(nil, -1, 8, nil)
		assert.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("grow preserves prefix and zeroes the rest", func(t *testing.T) {
		buf, err := Heap{}.Reallocate(nil, 0, 4, nil)
		require.NoError(t, err)
		copy(buf, []byte{1, 2, 3, 4})

		grown, err := Heap{}.Reallocate(buf, 4, 8, nil)
		require.NoError(t, err)
		require.Len(t, grown, 8)
		assert.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0}, grown)
	})

	t.Run("shrink preserves prefix", func(t *testing.T) {
		buf, err := Heap{}.Reallocate(nil, 0, 4, nil)
		require.NoError(t, err)
		copy(buf, []byte{1, 2, 3, 4})

		shrunk, err := Heap{}.Reallocate(buf, 4, 2, nil)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2}, shrunk)
	})

	t.Run("same size returns the same block", func(t *testing.T) {
		buf, err := Heap{}.Reallocate(nil, 0, 4, nil)
		require.NoError(t, err)

		same, err := Heap{}.Reallocate(buf, 4, 4, nil)
		require.NoError(t, err)
		assert.Same(t, &buf[0], &same[0])
	})
}
