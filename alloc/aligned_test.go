package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dynavec/internal/mem"
)

func TestAligned_Reallocate(t *testing.T) {
	t.Run("alignment", func(t *testing.T) {
		buf, err := Aligned{}.Reallocate(nil, 0, 100, nil)
		require.NoError(t, err)
		require.Len(t, buf, 100)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Zero(t, addr%mem.Alignment)
	})

	t.Run("zero size", func(t *testing.T) {
		buf, err := Aligned{}.Reallocate(nil, 0, 0, nil)
		assert.NoError(t, err)
		assert.Nil(t, buf)
	})

	t.Run("same size keeps block", func(t *testing.T) {
		buf, err := Aligned{}.Reallocate(nil, 0, 64, nil)
		require.NoError(t, err)

		same, err := Aligned{}.Reallocate(buf, 64, 64, nil)
		require.NoError(t, err)
		assert.Same(t, &buf[0], &same[0])
	})

	t.Run("content preserved across moves", func(t *testing.T) {
		buf, err := Aligned{}.Reallocate(nil, 0, 4, nil)
		require.NoError(t, err)
		copy(buf, []byte{9, 8, 7, 6})

		grown, err := Aligned{}.Reallocate(buf, 4, 128, nil)
		require.NoError(t, err)
		assert.Equal(t, []byte{9, 8, 7, 6}, grown[:4])
	})
}
