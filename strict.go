package ubjson

// Strict coercions return a pointer into the Value's own payload and fail
// with a *BadValueCastError when the Kind does not match exactly: no
// widening, no parsing. These are the mutable in-place editing path.

func (v *Value) Bool() (*bool, error) {
	if v.kind != KindBool {
		return nil, &BadValueCastError{Want: KindBool, Got: v.kind}
	}
	return &v.b, nil
}

func (v *Value) Char() (*byte, error) {
	if v.kind != KindChar {
		return nil, &BadValueCastError{Want: KindChar, Got: v.kind}
	}
	return &v.ch, nil
}

func (v *Value) Int64() (*int64, error) {
	if v.kind != KindSignedInt {
		return nil, &BadValueCastError{Want: KindSignedInt, Got: v.kind}
	}
	return &v.i, nil
}

func (v *Value) Uint64() (*uint64, error) {
	if v.kind != KindUnsignedInt {
		return nil, &BadValueCastError{Want: KindUnsignedInt, Got: v.kind}
	}
	return &v.u, nil
}

func (v *Value) Float64() (*float64, error) {
	if v.kind != KindFloat {
		return nil, &BadValueCastError{Want: KindFloat, Got: v.kind}
	}
	return &v.f, nil
}

// Str is the strict accessor for String (named to avoid colliding with
// the Stringer-style String() method).
func (v *Value) Str() (*string, error) {
	if v.kind != KindString {
		return nil, &BadValueCastError{Want: KindString, Got: v.kind}
	}
	return &v.s, nil
}

func (v *Value) Bytes() (*[]byte, error) {
	if v.kind != KindBinary {
		return nil, &BadValueCastError{Want: KindBinary, Got: v.kind}
	}
	return &v.bin, nil
}
