package ubjson

// Iterator is a forward, single-pass cursor over the children of an Array
// or Object Value. Dereferencing yields the child; for an Object entry,
// Key additionally reports the bound key. Iterating any other Kind
// produces an iterator for which Begin equals End immediately.
//
// Mutating the underlying Array/Object through a path other than the
// iterator invalidates outstanding iterators over it, mirroring a plain
// Go slice/map under reallocation.
type Iterator struct {
	arr     []Value
	objKeys []string
	objMap  map[string]*Value
	isObj   bool
	idx     int
}

// Begin returns an iterator positioned at v's first child.
func (v Value) Begin() Iterator {
	switch v.kind {
	case KindArray:
		return Iterator{arr: v.arr}
	case KindObject:
		return Iterator{objKeys: v.objKeys, objMap: v.objMap, isObj: true}
	default:
		return Iterator{}
	}
}

// End returns an iterator positioned one past v's last child.
func (v Value) End() Iterator {
	switch v.kind {
	case KindArray:
		return Iterator{arr: v.arr, idx: len(v.arr)}
	case KindObject:
		return Iterator{objKeys: v.objKeys, objMap: v.objMap, isObj: true, idx: len(v.objKeys)}
	default:
		return Iterator{}
	}
}

// Done reports whether the iterator has advanced past the last child.
func (it Iterator) Done() bool {
	if it.isObj {
		return it.idx >= len(it.objKeys)
	}
	return it.idx >= len(it.arr)
}

// Next advances the iterator by one position.
func (it *Iterator) Next() { it.idx++ }

// Value returns a pointer to the child at the iterator's current
// position. It panics if the iterator is Done, matching dereferencing an
// end iterator in the source.
func (it Iterator) Value() *Value {
	if it.isObj {
		return it.objMap[it.objKeys[it.idx]]
	}
	return &it.arr[it.idx]
}

// Key reports the key of the current Object entry and true, or ("",
// false) when iterating an Array.
func (it Iterator) Key() (string, bool) {
	if it.isObj {
		return it.objKeys[it.idx], true
	}
	return "", false
}

// Equal reports whether it and other are at the same position of the
// same container shape (both Array or both Object iterators). It does not
// check that the two iterators walk the same underlying container.
func (it Iterator) Equal(other Iterator) bool {
	return it.isObj == other.isObj && it.idx == other.idx
}
