package ubjson

import (
	"encoding/binary"
	"io"
	"math"
)

// Reader parses a stream of UBJSON-encoded values under a Policy. A
// Reader is single-use per logical actor: it is not safe for concurrent
// use by multiple goroutines.
type Reader struct {
	r   io.Reader
	pol Policy

	bytesConsumed int64
	depth         int

	hasPeek bool
	peeked  byte

	lastErr error
}

// NewReader returns a Reader over r enforcing policy.
func NewReader(r io.Reader, policy Policy) *Reader {
	return &Reader{r: r, pol: policy}
}

// BytesRead returns the number of bytes consumed by the most recent
// ReadNext call.
func (rd *Reader) BytesRead() int64 { return rd.bytesConsumed }

// LastError returns a human-readable description of the most recent
// ReadNext failure, or "" if the last call succeeded.
func (rd *Reader) LastError() string {
	if rd.lastErr == nil {
		return ""
	}
	return rd.lastErr.Error()
}

// ReadNext extracts exactly one top-level Value from the stream,
// advancing it past the value. On failure, it returns the zero Value and
// an error of kind *ParseError, *PolicyViolation, or *IOError; the
// stream's position is then considered corrupt. An H high-precision
// literal is accepted and surfaced as a String Value, since this package
// does not decode arbitrary-precision decimals.
func (rd *Reader) ReadNext() (Value, error) {
	rd.bytesConsumed = 0
	rd.depth = 0
	rd.hasPeek = false
	rd.lastErr = nil

	v, err := rd.readValue()
	if err != nil {
		rd.lastErr = err
		return Value{}, err
	}
	return v, nil
}

func (rd *Reader) fail(msg string) error {
	return &ParseError{Offset: rd.bytesConsumed, Msg: msg}
}

func (rd *Reader) readByte() (byte, error) {
	if rd.hasPeek {
		rd.hasPeek = false
		return rd.peeked, nil
	}
	buf, err := rd.readN(1, math.MaxInt64, "")
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (rd *Reader) peekByte() (byte, error) {
	if rd.hasPeek {
		return rd.peeked, nil
	}
	b, err := rd.readByte()
	if err != nil {
		return 0, err
	}
	rd.peeked = b
	rd.hasPeek = true
	return b, nil
}

// readN reads exactly n bytes, enforcing both the whole-value budget
// (MaxObjectSize) and, when limitName is non-empty, the named per-field
// limit — both checked before the underlying read, so a hostile declared
// length never causes an allocation.
func (rd *Reader) readN(n int64, limit int64, limitName string) ([]byte, error) {
	if limitName != "" && n > limit {
		return nil, newPolicyViolation(rd.bytesConsumed, limitName, "declared length exceeds configured limit")
	}
	if rd.bytesConsumed+n > rd.pol.MaxObjectSize {
		return nil, newPolicyViolation(rd.bytesConsumed, "max_object_size", "value exceeds configured total size")
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(rd.r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, rd.fail("unexpected end of stream")
		}
		return nil, &IOError{Err: err}
	}
	rd.bytesConsumed += n
	return buf, nil
}

// readMarkerSkippingNoOp reads markers until it finds one that is not the
// N no-op filler byte.
func (rd *Reader) readMarkerSkippingNoOp() (byte, error) {
	for {
		b, err := rd.readByte()
		if err != nil {
			return 0, err
		}
		if b != byte(markerNoOp) {
			return b, nil
		}
	}
}

func (rd *Reader) readValue() (Value, error) {
	m, err := rd.readMarkerSkippingNoOp()
	if err != nil {
		return Value{}, err
	}
	return rd.readValueForMarker(m)
}

func (rd *Reader) readValueForMarker(m byte) (Value, error) {
	switch marker(m) {
	case markerNull:
		return Null(), nil
	case markerTrue:
		return NewBool(true), nil
	case markerFalse:
		return NewBool(false), nil
	case markerChar:
		buf, err := rd.readN(1, math.MaxInt64, "")
		if err != nil {
			return Value{}, err
		}
		return NewChar(buf[0]), nil
	case markerUint8:
		buf, err := rd.readN(1, math.MaxInt64, "")
		if err != nil {
			return Value{}, err
		}
		return NewUint(uint64(buf[0])), nil
	case markerInt8:
		buf, err := rd.readN(1, math.MaxInt64, "")
		if err != nil {
			return Value{}, err
		}
		return NewInt(int64(int8(buf[0]))), nil
	case markerInt16:
		buf, err := rd.readN(2, math.MaxInt64, "")
		if err != nil {
			return Value{}, err
		}
		return NewInt(int64(int16(binary.BigEndian.Uint16(buf)))), nil
	case markerInt32:
		buf, err := rd.readN(4, math.MaxInt64, "")
		if err != nil {
			return Value{}, err
		}
		return NewInt(int64(int32(binary.BigEndian.Uint32(buf)))), nil
	case markerInt64:
		buf, err := rd.readN(8, math.MaxInt64, "")
		if err != nil {
			return Value{}, err
		}
		return NewInt(int64(binary.BigEndian.Uint64(buf))), nil
	case markerFloat32:
		buf, err := rd.readN(4, math.MaxInt64, "")
		if err != nil {
			return Value{}, err
		}
		return NewFloat(float64(math.Float32frombits(binary.BigEndian.Uint32(buf)))), nil
	case markerFloat64:
		buf, err := rd.readN(8, math.MaxInt64, "")
		if err != nil {
			return Value{}, err
		}
		return NewFloat(math.Float64frombits(binary.BigEndian.Uint64(buf))), nil
	case markerString, markerHighPrecision:
		s, err := rd.readCountedString(rd.pol.MaxStringSize, "max_string_size")
		if err != nil {
			return Value{}, err
		}
		return NewString(s), nil
	case markerBinary:
		n, err := rd.readCount()
		if err != nil {
			return Value{}, err
		}
		buf, err := rd.readN(n, rd.pol.MaxBinarySize, "max_binary_size")
		if err != nil {
			return Value{}, err
		}
		return NewBinary(buf), nil
	case markerObjectStart:
		return rd.readContainer(true)
	case markerArrayStart:
		return rd.readContainer(false)
	default:
		return Value{}, rd.fail("unknown marker byte")
	}
}

// readCount reads the count sub-grammar: an integer marker (i|U|I|l|L)
// immediately followed by its big-endian payload. A negative count is a
// parse error.
func (rd *Reader) readCount() (int64, error) {
	m, err := rd.readByte()
	if err != nil {
		return 0, err
	}
	if !isCountMarker(m) {
		return 0, rd.fail("expected a count marker (i|U|I|l|L)")
	}
	var n int64
	switch marker(m) {
	case markerInt8:
		buf, err := rd.readN(1, math.MaxInt64, "")
		if err != nil {
			return 0, err
		}
		n = int64(int8(buf[0]))
	case markerUint8:
		buf, err := rd.readN(1, math.MaxInt64, "")
		if err != nil {
			return 0, err
		}
		n = int64(buf[0])
	case markerInt16:
		buf, err := rd.readN(2, math.MaxInt64, "")
		if err != nil {
			return 0, err
		}
		n = int64(int16(binary.BigEndian.Uint16(buf)))
	case markerInt32:
		buf, err := rd.readN(4, math.MaxInt64, "")
		if err != nil {
			return 0, err
		}
		n = int64(int32(binary.BigEndian.Uint32(buf)))
	case markerInt64:
		buf, err := rd.readN(8, math.MaxInt64, "")
		if err != nil {
			return 0, err
		}
		n = int64(binary.BigEndian.Uint64(buf))
	default:
		return 0, rd.fail("expected a count marker (i|U|I|l|L)")
	}
	if n < 0 {
		return 0, rd.fail("negative count")
	}
	return n, nil
}

func (rd *Reader) readCountedString(limit int64, limitName string) (string, error) {
	n, err := rd.readCount()
	if err != nil {
		return "", err
	}
	buf, err := rd.readN(n, limit, limitName)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// readContainer implements spec §4.3 step 5 for both { and [. isObject
// selects which end marker / key grammar applies.
func (rd *Reader) readContainer(isObject bool) (Value, error) {
	rd.depth++
	if rd.depth > rd.pol.MaxValueDepth {
		rd.depth--
		return Value{}, newPolicyViolation(rd.bytesConsumed, "max_value_depth", "container nesting exceeds configured depth")
	}
	defer func() { rd.depth-- }()

	peek, err := rd.peekByte()
	if err != nil {
		return Value{}, err
	}

	switch marker(peek) {
	case markerOptCount:
		if _, err := rd.readByte(); err != nil { // consume '#'
			return Value{}, err
		}
		return rd.readCountOnlyContainer(isObject, 0, false)

	case markerOptType:
		if _, err := rd.readByte(); err != nil { // consume '$'
			return Value{}, err
		}
		typeMarker, err := rd.readByte()
		if err != nil {
			return Value{}, err
		}
		hash, err := rd.readByte()
		if err != nil {
			return Value{}, err
		}
		if marker(hash) != markerOptCount {
			return Value{}, rd.fail("'$' type marker not followed by '#'")
		}
		return rd.readCountOnlyContainer(isObject, typeMarker, true)

	default:
		return rd.readDelimitedContainer(isObject)
	}
}

// readCountOnlyContainer reads exactly count children (no end marker),
// as declared by either '#' alone or '$ <type> #'. When typed is true
// every child's marker is the already-consumed typeMarker; otherwise each
// child carries its own marker.
func (rd *Reader) readCountOnlyContainer(isObject bool, typeMarker byte, typed bool) (Value, error) {
	count, err := rd.readCount()
	if err != nil {
		return Value{}, err
	}

	itemLimit := rd.pol.MaxArrayItems
	limitName := "max_array_items"
	if isObject {
		itemLimit = rd.pol.MaxObjectItems
		limitName = "max_object_items"
	}
	if count > itemLimit {
		return Value{}, newPolicyViolation(rd.bytesConsumed, limitName, "declared item count exceeds configured limit")
	}

	if isObject {
		out := NewObject()
		for i := int64(0); i < count; i++ {
			key, err := rd.readCountedString(rd.pol.MaxStringSize, "max_string_size")
			if err != nil {
				return Value{}, err
			}
			var child Value
			if typed {
				child, err = rd.readValueForMarker(typeMarker)
			} else {
				child, err = rd.readValue()
			}
			if err != nil {
				return Value{}, err
			}
			out.Set(key, child)
		}
		return out, nil
	}

	children := make([]Value, 0, count)
	for i := int64(0); i < count; i++ {
		var child Value
		var err error
		if typed {
			child, err = rd.readValueForMarker(typeMarker)
		} else {
			child, err = rd.readValue()
		}
		if err != nil {
			return Value{}, err
		}
		children = append(children, child)
	}
	return Value{kind: KindArray, arr: children}, nil
}

// readDelimitedContainer reads a { ... } or [ ... ] whose children each
// carry their own marker and whose extent is bounded by an explicit end
// marker.
func (rd *Reader) readDelimitedContainer(isObject bool) (Value, error) {
	endMarker := byte(markerArrayEnd)
	itemLimit := rd.pol.MaxArrayItems
	limitName := "max_array_items"
	if isObject {
		endMarker = byte(markerObjectEnd)
		itemLimit = rd.pol.MaxObjectItems
		limitName = "max_object_items"
	}

	out := Null()
	if isObject {
		out = NewObject()
	} else {
		out = Value{kind: KindArray}
	}

	var count int64
	for {
		peek, err := rd.peekByte()
		if err != nil {
			return Value{}, err
		}
		if peek == endMarker {
			_, _ = rd.readByte()
			return out, nil
		}
		count++
		if count > itemLimit {
			return Value{}, newPolicyViolation(rd.bytesConsumed, limitName, "item count exceeds configured limit")
		}

		if isObject {
			key, err := rd.readCountedString(rd.pol.MaxStringSize, "max_string_size")
			if err != nil {
				return Value{}, err
			}
			child, err := rd.readValue()
			if err != nil {
				return Value{}, err
			}
			out.Set(key, child)
		} else {
			child, err := rd.readValue()
			if err != nil {
				return Value{}, err
			}
			out.arr = append(out.arr, child)
		}
	}
}
