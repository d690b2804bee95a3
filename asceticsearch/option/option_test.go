package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		o := Some(42)
		assert.True(t, o.IsSome())
		assert.False(t, o.IsNothing())
		assert.Equal(t, 42, o.Unwrap())
	})

	t.Run("empty string is still some", func(t *testing.T) {
		o := Some("")
		assert.True(t, o.IsSome())
		assert.Equal(t, "", o.Unwrap())
	})
}

func TestNothing(t *testing.T) {
	o := Nothing[string]()
	assert.True(t, o.IsNothing())
	assert.False(t, o.IsSome())

	var zero Option[int]
	assert.True(t, zero.IsNothing())
}

func TestUnwrap(t *testing.T) {
	assert.Equal(t, 7, Some(7).Unwrap())
	assert.PanicsWithValue(t, "called Unwrap on a Nothing Option", func() {
		Nothing[int]().Unwrap()
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "Some(42)", Some(42).String())
	assert.Equal(t, "Nothing", Nothing[int]().String())
}
