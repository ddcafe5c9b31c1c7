package ubjson

// Clone returns a deep copy of v: Array and Object children are
// recursively cloned rather than shared, and Binary's backing array is
// duplicated. Scalars (including String, which is immutable in Go) need
// no special handling and are returned as-is.
func (v Value) Clone() Value {
	switch v.kind {
	case KindBinary:
		return Value{kind: v.kind, bin: append([]byte(nil), v.bin...)}
	case KindArray:
		cp := make([]Value, len(v.arr))
		for i, c := range v.arr {
			cp[i] = c.Clone()
		}
		return Value{kind: v.kind, arr: cp}
	case KindObject:
		keys := append([]string(nil), v.objKeys...)
		m := make(map[string]*Value, len(v.objMap))
		for k, c := range v.objMap {
			cc := c.Clone()
			m[k] = &cc
		}
		return Value{kind: v.kind, objKeys: keys, objMap: m}
	default:
		return v
	}
}

// Take destructively moves v's contents into the returned Value, leaving
// v reset to Null — the Go analogue of the source's move constructor.
func (v *Value) Take() Value {
	out := *v
	*v = Null()
	return out
}
