package dynavec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contractViolation struct{ msg string }

func TestSetFailHandler(t *testing.T) {
	defer SetFailHandler(nil)

	SetFailHandler(func(msg string) {
		panic(contractViolation{msg: msg})
	})

	v := New[int, uint]()
	defer v.Destroy()

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			cv, ok := r.(contractViolation)
			require.True(t, ok, "expected the custom handler to report, got %v", r)
			assert.Contains(t, cv.msg, "Pop on empty vector")
		}()
		v.Pop()
	}()

	// nil restores the default panic handler.
	SetFailHandler(nil)
	assert.PanicsWithValue(t, "dynavec: Pop on empty vector", func() { v.Pop() })
}
