package ubjson

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"
)

// AsBool never fails. Bool returns itself; any numeric kind returns
// whether it is nonzero; Char returns whether it is nonzero; String,
// Binary, Array and Object return whether their size is nonzero; Null
// returns false.
func (v Value) AsBool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindSignedInt:
		return v.i != 0
	case KindUnsignedInt:
		return v.u != 0
	case KindFloat:
		return v.f != 0
	case KindChar:
		return v.ch != 0
	case KindString:
		return len(v.s) > 0
	case KindBinary:
		return len(v.bin) > 0
	case KindArray:
		return len(v.arr) > 0
	case KindObject:
		return len(v.objKeys) > 0
	default: // Null
		return false
	}
}

// AsInt64 never fails. SignedInt returns itself; UnsignedInt returns its
// value if it fits, else 0; Float truncates toward zero if in range, else
// 0; Bool maps to 0/1; Char returns its code point; String parses as a
// base-10 integer, 0 on failure; any other kind returns Size().
func (v Value) AsInt64() int64 {
	switch v.kind {
	case KindSignedInt:
		return v.i
	case KindUnsignedInt:
		if v.u <= math.MaxInt64 {
			return int64(v.u)
		}
		return 0
	case KindFloat:
		if v.f >= math.MinInt64 && v.f <= math.MaxInt64 {
			return int64(v.f)
		}
		return 0
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindChar:
		return int64(v.ch)
	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return int64(v.Size())
	}
}

// AsUint64 never fails and mirrors AsInt64 with an unsigned clamp:
// negative sources yield 0.
func (v Value) AsUint64() uint64 {
	switch v.kind {
	case KindUnsignedInt:
		return v.u
	case KindSignedInt:
		if v.i >= 0 {
			return uint64(v.i)
		}
		return 0
	case KindFloat:
		if v.f >= 0 && v.f <= math.MaxUint64 {
			return uint64(v.f)
		}
		return 0
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindChar:
		return uint64(v.ch)
	case KindString:
		n, err := strconv.ParseUint(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return uint64(v.Size())
	}
}

// AsFloat never fails. Float returns itself; String parses as a base-10
// float, 0 on failure; SignedInt and UnsignedInt widen directly (picking
// whichever of the two matches the receiver's own kind, so negative
// SignedInt values are preserved rather than clamped through AsUint64);
// every other kind widens through AsInt64.
func (v Value) AsFloat() float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0
		}
		return f
	case KindSignedInt:
		return float64(v.i)
	case KindUnsignedInt:
		return float64(v.u)
	default:
		return float64(v.AsInt64())
	}
}

// AsInt32 returns the 64-bit coercion clamped to the int32 range, or 0 if
// it does not fit.
func (v Value) AsInt32() int32 {
	n := v.AsInt64()
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0
	}
	return int32(n)
}

// AsUint32 returns the 64-bit coercion clamped to the uint32 range, or 0
// if it does not fit.
func (v Value) AsUint32() uint32 {
	n := v.AsUint64()
	if n > math.MaxUint32 {
		return 0
	}
	return uint32(n)
}

// AsString never fails. String returns itself; Bool renders "true"/
// "false"; Char renders a one-byte string; numeric kinds render their
// decimal form; every other kind (Null, Binary, Array, Object) returns
// "".
func (v Value) AsString() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindChar:
		return string([]byte{v.ch})
	case KindSignedInt:
		return strconv.FormatInt(v.i, 10)
	case KindUnsignedInt:
		return strconv.FormatUint(v.u, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return ""
	}
}

// AsBinary never fails. Binary returns a copy of itself; any scalar
// numeric kind returns the raw little-endian byte image of its payload;
// String, Null, Array and Object return nil.
func (v Value) AsBinary() []byte {
	switch v.kind {
	case KindBinary:
		return append([]byte(nil), v.bin...)
	case KindBool:
		if v.b {
			return []byte{1}
		}
		return []byte{0}
	case KindChar:
		return []byte{v.ch}
	case KindSignedInt:
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, uint64(v.i))
		return buf
	case KindUnsignedInt:
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, v.u)
		return buf
	case KindFloat:
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v.f))
		return buf
	default: // String, Null, Array, Object
		return nil
	}
}
