package ubjson

// Policy bounds the resources a Reader will spend decoding one top-level
// value. It is the sole defense against hostile input — the Reader
// enforces every limit before allocating the memory it guards.
type Policy struct {
	// MaxValueDepth caps container nesting depth.
	MaxValueDepth int
	// MaxBinarySize caps the byte length of any single Binary value.
	MaxBinarySize int64
	// MaxStringSize caps the byte length of any single String value (and
	// of any Object key, and of an H high-precision literal).
	MaxStringSize int64
	// MaxObjectSize caps the total bytes consumed reading one top-level
	// value.
	MaxObjectSize int64
	// MaxArrayItems caps the element count of any single Array.
	MaxArrayItems int64
	// MaxObjectItems caps the entry count of any single Object.
	MaxObjectItems int64
}

// DefaultPolicy returns the limits used by the reference implementation
// this package is derived from: 32 levels of nesting, 64MiB binaries,
// 8MiB strings, 65MiB total per top-level value, and 1024 items per
// array or object.
func DefaultPolicy() Policy {
	return Policy{
		MaxValueDepth:  32,
		MaxBinarySize:  64 * 1024 * 1024,
		MaxStringSize:  8 * 1024 * 1024,
		MaxObjectSize:  65 * 1024 * 1024,
		MaxArrayItems:  1024,
		MaxObjectItems: 1024,
	}
}
