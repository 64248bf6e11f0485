//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint64ToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Uint64ToInt(0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid max", func(t *testing.T) {
		got, err := Uint64ToInt(uint64(math.MaxInt))
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToInt(uint64(math.MaxInt) + 1)
		assert.Error(t, err)
	})
}

func TestIntToUint64(t *testing.T) {
	t.Run("valid positive", func(t *testing.T) {
		got, err := IntToUint64(123)
		assert.NoError(t, err)
		assert.Equal(t, uint64(123), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint64(-1)
		assert.Error(t, err)
	})
}

func TestMulInt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := MulInt(8, 32)
		assert.NoError(t, err)
		assert.Equal(t, 256, got)
	})

	t.Run("zero operand", func(t *testing.T) {
		got, err := MulInt(0, math.MaxInt)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := MulInt(math.MaxInt/2+1, 2)
		assert.Error(t, err)
	})

	t.Run("negative operand", func(t *testing.T) {
		_, err := MulInt(-1, 2)
		assert.Error(t, err)
	})
}
