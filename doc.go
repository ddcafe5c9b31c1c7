/*
Package ubjson implements a dynamically-typed, self-describing value tree
and a streaming Reader/Writer for a compact binary format derived from the
UBJSON (Universal Binary JSON) Draft-10 specification.

 Wire Format

 A value is one marker byte optionally followed by a payload. Multi-byte
 integers and floats are big-endian.

 Z null          N no-op         T true          F false
 C char (+1)
 i int8 (+1)     U uint8 (+1)    I int16 (+2)    l int32 (+4)   L int64 (+8)
 d float32 (+4)  D float64 (+8)  H high-precision (string, read-only)
 S string        b binary        { object-start  } object-end
 [ array-start   ] array-end
 $ optimized-type                # optimized-count

 A string is S <count> <bytes>, where <count> is an integer marker
 (i|U|I|l|L) immediately followed by its payload — the "count
 sub-grammar". b is identical but for raw bytes and is an extension
 beyond Draft-10.

 { opens an Object: repeated <string-key><value> pairs terminated by }.
 [ opens an Array: repeated <value> terminated by ]. Immediately after {
 or [ the stream may instead present an optimized container header:

	# <count>                 count-only, no end marker
	$ <type-marker> # <count> strongly-typed, no end marker, no per-child
	                          marker byte

 Examples:

	Value(-700)  -> [0x49, 0xFD, 0x44]            ("I", int16 big-endian)
	Value(42)    -> [0x69, 0x2A]                  ("i", int8 — narrowed)

 Value

 A Value holds exactly one of ten kinds: Null, Bool, Char, SignedInt,
 UnsignedInt, Float, String, Binary, Array, Object. Indexing a Null Value
 by key promotes it to Object; PushBack on Null promotes it to Array;
 PushBack on any other scalar wraps the old and new values into a
 two-element Array. Equality is structural and deep; any two numeric
 kinds compare equal when their binary64 projections differ by no more
 than one machine epsilon.

 Total coercions (AsBool, AsInt64, AsUint64, AsFloat, AsString, AsBinary)
 never fail. Strict coercions (Bool, Int64, Uint64, Float64, Char, Str,
 Bytes) return BadValueCastError when the Value's kind does not match
 exactly.

 Reader and Writer

 Reader.ReadNext consumes exactly one top-level value from an io.Reader
 under a configurable Policy bounding recursion depth and per-field byte
 counts — the sole defense against hostile input. Writer.Write emits a
 Value to an io.Writer using the narrowest integer marker that holds each
 integer; a Float is written as d (binary32) whenever its magnitude is
 within the binary32 range, which can drop low-order bits, and as D
 otherwise.

 Round-trip:

	var buf bytes.Buffer
	ubjson.NewWriter(ubjson.DefaultPolicy()).Write(v, &buf)
	got, err := ubjson.NewReader(&buf, ubjson.DefaultPolicy()).ReadNext()
*/
package ubjson
