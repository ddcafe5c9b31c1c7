package ubjson

import (
	"bytes"
	"math"
)

// epsilon is the binary64 machine epsilon, matching the source's
// numeric-equality tolerance.
const epsilon = 2.220446049250313e-16

// Equal reports whether a and b are structurally and deeply equal. Two
// numeric Values (SignedInt, UnsignedInt, Float, in any combination) are
// equal when their float64 projections differ by no more than epsilon,
// checked before any exact-kind comparison. Otherwise the kinds must
// match exactly: strings and binaries compare byte-for-byte; arrays
// compare element-wise in order; objects compare by key set, independent
// of iteration order.
func Equal(a, b Value) bool {
	if isNumericKind(a.kind) && isNumericKind(b.kind) {
		return math.Abs(a.AsFloat()-b.AsFloat()) <= epsilon
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindChar:
		return a.ch == b.ch
	case KindString:
		return a.s == b.s
	case KindBinary:
		return bytes.Equal(a.bin, b.bin)
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.objKeys) != len(b.objKeys) {
			return false
		}
		for k, av := range a.objMap {
			bv, ok := b.objMap[k]
			if !ok || !Equal(*av, *bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Equal reports whether v and other are structurally equal. See the
// package-level Equal for the exact rule.
func (v Value) Equal(other Value) bool { return Equal(v, other) }
