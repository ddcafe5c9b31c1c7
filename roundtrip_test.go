package ubjson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, v Value) Value {
	t.Helper()
	var buf bytes.Buffer
	_, err := NewWriter(DefaultPolicy()).Write(v, &buf)
	require.NoError(t, err)
	got, err := NewReader(&buf, DefaultPolicy()).ReadNext()
	require.NoError(t, err)
	return got
}

func TestRoundTripScalars(t *testing.T) {
	values := []Value{
		Null(), NewBool(true), NewBool(false), NewChar('Q'),
		NewInt(-700), NewInt(42), NewInt(0), NewInt(1 << 40),
		NewUint(0), NewUint(255), NewUint(1000), NewUint(1 << 63),
		NewFloat(1.5), NewFloat(1e300), NewFloat(-1.0),
		NewString(""), NewString("hello"), NewBinary(nil), NewBinary([]byte{1, 2, 3}),
	}
	for _, v := range values {
		got := roundTrip(t, v)
		assert.Truef(t, Equal(v, got), "round trip mismatch for %v: got %v", v, got)
	}
}

func TestRoundTripEmptyContainers(t *testing.T) {
	assert.True(t, Equal(NewArray(), roundTrip(t, NewArray())))
	assert.True(t, Equal(NewObject(), roundTrip(t, NewObject())))
}

// TestNestedObjectScenario is spec scenario 3.
func TestNestedObjectScenario(t *testing.T) {
	v := NewObject()
	v.Set("name", NewString("Ibrahim"))
	v.Set("faves", NewArray(NewInt(453), NewInt(-34), NewChar('@'), NewBool(true)))

	got := roundTrip(t, v)
	assert.True(t, Equal(v, got))

	name, err := got.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "Ibrahim", name.AsString())

	faves, err := got.Get("faves")
	require.NoError(t, err)
	require.Equal(t, 4, faves.Size())
}

func TestRoundTripDeeplyNested(t *testing.T) {
	v := NewArray(NewArray(NewArray(NewObjectWith("k", NewInt(1)))))
	got := roundTrip(t, v)
	assert.True(t, Equal(v, got))
}

func TestWriterOutputIsReadableUnderDefaultPolicy(t *testing.T) {
	v := NewObjectWith("items", NewArray(NewInt(1), NewInt(2), NewInt(3)))
	var buf bytes.Buffer
	written, err := NewWriter(DefaultPolicy()).Write(v, &buf)
	require.NoError(t, err)

	r := NewReader(&buf, DefaultPolicy())
	got, err := r.ReadNext()
	require.NoError(t, err)
	assert.True(t, Equal(v, got))
	assert.Equal(t, written, r.BytesRead())
}
