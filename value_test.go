package ubjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	assert.True(t, v.IsNull())
	assert.Equal(t, 0, v.Size())
}

func TestSize(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want int
	}{
		{"null", Null(), 0},
		{"bool", NewBool(true), 1},
		{"char", NewChar('x'), 1},
		{"int", NewInt(5), 1},
		{"string", NewString("hi"), 1},
		{"empty array", NewArray(), 0},
		{"array of three", NewArray(NewInt(1), NewInt(2), NewInt(3)), 3},
		{"empty object", NewObject(), 0},
		{"object of one", NewObjectWith("k", NewInt(1)), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.v.Size())
		})
	}
}

func TestKindPredicates(t *testing.T) {
	require.True(t, NewInt(1).IsSignedInt())
	require.True(t, NewInt(1).IsNumeric())
	require.True(t, NewInt(1).IsInteger())
	require.False(t, NewString("x").IsNumeric())
	require.True(t, NewUint(1).IsComparableWith(NewFloat(1)))
	require.False(t, NewString("x").IsComparableWith(NewInt(1)))
	require.True(t, NewString("x").IsComparableWith(NewString("y")))
}

func TestObjectWithConstructorMatchesSet(t *testing.T) {
	a := NewObjectWith("key", NewInt(7))
	b := NewObject()
	b.Set("key", NewInt(7))
	assert.True(t, Equal(a, b))
}

func TestCloneIsDeep(t *testing.T) {
	orig := NewArray(NewBinary([]byte{1, 2, 3}))
	clone := orig.Clone()

	// mutate the clone's binary payload through its own backing array
	bp, err := (&clone.arr[0]).Bytes()
	require.NoError(t, err)
	(*bp)[0] = 0xFF

	origBin, err := (&orig.arr[0]).Bytes()
	require.NoError(t, err)
	assert.Equal(t, byte(1), (*origBin)[0], "clone mutation must not leak into original")
}

func TestTakeResetsSourceToNull(t *testing.T) {
	v := NewString("hello")
	moved := v.Take()
	assert.True(t, v.IsNull())
	assert.Equal(t, "hello", moved.AsString())
}

func TestStringerUsesDump(t *testing.T) {
	v := NewObjectWith("a", NewInt(1))
	assert.Equal(t, v.Dump(false), v.String())
}
