package ubjson

// At returns a pointer to the i'th element of an Array Value, bounds
// checked. Non-Array receivers and out-of-range indices fail with
// *ValueError.
func (v *Value) At(i int) (*Value, error) {
	if v.kind != KindArray {
		return nil, &ValueError{Op: "At", Kind: v.kind}
	}
	if i < 0 || i >= len(v.arr) {
		return nil, &ValueError{Op: "At", Kind: v.kind}
	}
	return &v.arr[i], nil
}

// Field returns a mutable pointer to the child bound to key, inserting a
// Null placeholder if key is absent (read-modify-write access). A Null
// receiver is promoted to an empty Object first. Any other non-Object
// receiver fails with *ValueError.
func (v *Value) Field(key string) (*Value, error) {
	if v.kind == KindNull {
		*v = NewObject()
	}
	if v.kind != KindObject {
		return nil, &ValueError{Op: "Field", Kind: v.kind}
	}
	if existing, ok := v.objMap[key]; ok {
		return existing, nil
	}
	child := Null()
	v.objMap[key] = &child
	v.objKeys = append(v.objKeys, key)
	return v.objMap[key], nil
}

// Get returns a pointer to the child bound to key without inserting one.
// It fails with *ValueError for a non-Object receiver or a missing key.
func (v Value) Get(key string) (*Value, error) {
	if v.kind != KindObject {
		return nil, &ValueError{Op: "Get", Kind: v.kind}
	}
	child, ok := v.objMap[key]
	if !ok {
		return nil, &ValueError{Op: "Get", Kind: v.kind}
	}
	return child, nil
}

// Set binds key to a copy of child, replacing (and destroying) any
// previous binding. A Null receiver is promoted to an empty Object
// first; any other non-Object receiver fails with *ValueError.
func (v *Value) Set(key string, child Value) error {
	if v.kind == KindNull {
		*v = NewObject()
	}
	if v.kind != KindObject {
		return &ValueError{Op: "Set", Kind: v.kind}
	}
	if existing, ok := v.objMap[key]; ok {
		*existing = child
		return nil
	}
	cp := child
	v.objMap[key] = &cp
	v.objKeys = append(v.objKeys, key)
	return nil
}

// PushBack appends child to an Array. A Null receiver is promoted to a
// one-element Array. Any other scalar or non-Array receiver is promoted
// by wrapping the previous contents and child as a new two-element
// Array — the source's documented (if surprising) behavior, retained
// here rather than redesigned.
func (v *Value) PushBack(child Value) {
	switch v.kind {
	case KindNull:
		*v = NewArray(child)
	case KindArray:
		v.arr = append(v.arr, child)
	default:
		old := *v
		*v = NewArray(old, child)
	}
}

// Keys returns a defensive copy of an Object's keys in iteration order.
// It returns nil for any other Kind.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	return append([]string(nil), v.objKeys...)
}

// ContainsKey reports whether an Object Value has key bound. It reports
// false for any other Kind.
func (v Value) ContainsKey(key string) bool {
	if v.kind != KindObject {
		return false
	}
	_, ok := v.objMap[key]
	return ok
}

// Contains reports whether v holds target: for Array, by deep equality of
// some element; for Object, target is coerced to a string and treated as
// a key (the source's documented behavior — see FindKey/RemoveKey for the
// coercion-free alternative).
func (v Value) Contains(target Value) bool {
	switch v.kind {
	case KindArray:
		for _, c := range v.arr {
			if Equal(c, target) {
				return true
			}
		}
		return false
	case KindObject:
		return v.ContainsKey(target.AsString())
	default:
		return false
	}
}

// RemoveKey unbinds key from an Object, reporting whether it was present.
func (v *Value) RemoveKey(key string) bool {
	if v.kind != KindObject {
		return false
	}
	if _, ok := v.objMap[key]; !ok {
		return false
	}
	delete(v.objMap, key)
	for i, k := range v.objKeys {
		if k == key {
			v.objKeys = append(v.objKeys[:i], v.objKeys[i+1:]...)
			break
		}
	}
	return true
}

// Remove deletes target from v: for Array, the first element equal to
// target; for Object, target coerced to a string key (see RemoveKey for
// the coercion-free alternative). It reports whether anything was
// removed.
func (v *Value) Remove(target Value) bool {
	switch v.kind {
	case KindArray:
		for i := range v.arr {
			if Equal(v.arr[i], target) {
				v.arr = append(v.arr[:i], v.arr[i+1:]...)
				return true
			}
		}
		return false
	case KindObject:
		return v.RemoveKey(target.AsString())
	default:
		return false
	}
}

// FindKey locates key in an Object without the string-coercion surface
// Find/Remove inherit from the source implementation.
func (v Value) FindKey(key string) (Iterator, bool) {
	if v.kind != KindObject {
		return v.End(), false
	}
	for it := v.Begin(); !it.Done(); it.Next() {
		if k, _ := it.Key(); k == key {
			return it, true
		}
	}
	return v.End(), false
}

// Find locates target in v: for Array, the first element equal to
// target; for Object, target coerced to a string key.
func (v Value) Find(target Value) (Iterator, bool) {
	switch v.kind {
	case KindArray:
		for it := v.Begin(); !it.Done(); it.Next() {
			if Equal(*it.Value(), target) {
				return it, true
			}
		}
		return v.End(), false
	case KindObject:
		return v.FindKey(target.AsString())
	default:
		return v.End(), false
	}
}
