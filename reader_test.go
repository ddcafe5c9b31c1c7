package ubjson

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readValue(t *testing.T, b []byte, pol Policy) (Value, error) {
	t.Helper()
	return NewReader(bytes.NewReader(b), pol).ReadNext()
}

func TestReadScalarRoundTrip(t *testing.T) {
	// see writer_test.go's note on the corrected payload byte.
	v, err := readValue(t, []byte{byte(markerInt16), 0xFD, 0x44}, DefaultPolicy())
	require.NoError(t, err)
	assert.True(t, Equal(v, NewInt(-700)))
}

func TestReadUint8MarkerYieldsUnsignedInt(t *testing.T) {
	v, err := readValue(t, []byte{byte(markerUint8), 200}, DefaultPolicy())
	require.NoError(t, err)
	require.True(t, v.IsUnsignedInt())
	got, err := v.Uint64()
	require.NoError(t, err)
	assert.EqualValues(t, 200, *got)
}

func TestReadEmptyArrayAndObject(t *testing.T) {
	v, err := readValue(t, []byte{byte(markerArrayStart), byte(markerArrayEnd)}, DefaultPolicy())
	require.NoError(t, err)
	assert.True(t, v.IsArray())
	assert.Equal(t, 0, v.Size())

	v, err = readValue(t, []byte{byte(markerObjectStart), byte(markerObjectEnd)}, DefaultPolicy())
	require.NoError(t, err)
	assert.True(t, v.IsObject())
	assert.Equal(t, 0, v.Size())
}

// TestOptimizedArrayReadScenario is spec scenario 4: `[ $ i # i 3 0x01
// 0x02 0x03` with no closing ']'.
func TestOptimizedArrayReadScenario(t *testing.T) {
	input := []byte{
		byte(markerArrayStart),
		byte(markerOptType), byte(markerInt8),
		byte(markerOptCount), byte(markerInt8), 3,
		1, 2, 3,
	}
	v, err := readValue(t, input, DefaultPolicy())
	require.NoError(t, err)
	require.True(t, v.IsArray())
	require.Equal(t, 3, v.Size())
	for i, want := range []int64{1, 2, 3} {
		e, err := v.At(i)
		require.NoError(t, err)
		assert.EqualValues(t, want, e.AsInt64())
	}
}

func TestCountOnlyContainer(t *testing.T) {
	input := []byte{
		byte(markerArrayStart),
		byte(markerOptCount), byte(markerInt8), 2,
		byte(markerInt8), 10,
		byte(markerInt8), 20,
	}
	v, err := readValue(t, input, DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, 2, v.Size())
	e0, _ := v.At(0)
	e1, _ := v.At(1)
	assert.EqualValues(t, 10, e0.AsInt64())
	assert.EqualValues(t, 20, e1.AsInt64())
}

func TestOptTypeWithoutHashIsParseError(t *testing.T) {
	input := []byte{
		byte(markerArrayStart),
		byte(markerOptType), byte(markerInt8),
		byte(markerInt8), 1, // not '#'
	}
	_, err := readValue(t, input, DefaultPolicy())
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
}

func TestNoOpSkippedAsArrayFiller(t *testing.T) {
	input := []byte{
		byte(markerArrayStart),
		byte(markerNoOp),
		byte(markerInt8), 5,
		byte(markerArrayEnd),
	}
	v, err := readValue(t, input, DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, 1, v.Size())
	e0, _ := v.At(0)
	assert.EqualValues(t, 5, e0.AsInt64())
}

func TestUnknownMarkerIsParseError(t *testing.T) {
	_, err := readValue(t, []byte{0xFF}, DefaultPolicy())
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
}

func TestNegativeCountIsParseError(t *testing.T) {
	input := []byte{byte(markerString), byte(markerInt8), 0xFF} // int8(-1)
	_, err := readValue(t, input, DefaultPolicy())
	require.Error(t, err)
}

// TestPolicyViolationOnOversizedString is spec scenario 5.
func TestPolicyViolationOnOversizedString(t *testing.T) {
	pol := DefaultPolicy()
	pol.MaxStringSize = 16
	input := []byte{
		byte(markerString), byte(markerInt32),
		0x00, 0x00, 0x10, 0x01, // 4097, big-endian int32
	}
	_, err := readValue(t, input, pol)
	require.Error(t, err)
	var pv *PolicyViolation
	require.True(t, errors.As(err, &pv))
	assert.Equal(t, "max_string_size", pv.Limit)

	// a policy violation is also reported as a *ParseError
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
}

// TestDepthCapScenario is spec scenario 6: four nested '[' with
// max_value_depth = 3 fails on the fourth descent.
func TestDepthCapScenario(t *testing.T) {
	pol := DefaultPolicy()
	pol.MaxValueDepth = 3
	input := bytes.Repeat([]byte{byte(markerArrayStart)}, 4)
	_, err := readValue(t, input, pol)
	require.Error(t, err)
	var pv *PolicyViolation
	require.True(t, errors.As(err, &pv))
	assert.Equal(t, "max_value_depth", pv.Limit)
}

func TestOversizedArrayItemCountIsPolicyViolation(t *testing.T) {
	pol := DefaultPolicy()
	pol.MaxArrayItems = 2
	input := []byte{
		byte(markerArrayStart),
		byte(markerOptCount), byte(markerInt8), 3,
	}
	_, err := readValue(t, input, pol)
	require.Error(t, err)
	var pv *PolicyViolation
	require.True(t, errors.As(err, &pv))
	assert.Equal(t, "max_array_items", pv.Limit)
}

func TestTruncatedStreamIsParseError(t *testing.T) {
	_, err := readValue(t, []byte{byte(markerInt32), 0x00, 0x00}, DefaultPolicy())
	require.Error(t, err)
}

func TestHighPrecisionReadsAsString(t *testing.T) {
	input := []byte{byte(markerHighPrecision), byte(markerInt8), 3, '1', '.', '5'}
	v, err := readValue(t, input, DefaultPolicy())
	require.NoError(t, err)
	require.True(t, v.IsString())
	assert.Equal(t, "1.5", v.AsString())
}
