package ubjson

import "strconv"

// Path walks v through a sequence of Object keys and Array indices (an
// Array step is written as its decimal index, e.g. Path("faves", "1")),
// returning the value found and true, or (nil, false) if any step is
// missing or the current node's Kind does not support that step. Path
// never mutates v — it is the read-only counterpart to chaining Field
// calls, useful when a caller wants one bool instead of stopping on the
// first error.
func (v Value) Path(steps ...string) (*Value, bool) {
	cur := &v
	for _, step := range steps {
		switch cur.kind {
		case KindObject:
			child, ok := cur.objMap[step]
			if !ok {
				return nil, false
			}
			cur = child
		case KindArray:
			i, err := strconv.Atoi(step)
			if err != nil || i < 0 || i >= len(cur.arr) {
				return nil, false
			}
			cur = &cur.arr[i]
		default:
			return nil, false
		}
	}
	return cur, true
}
