package ubjson

import "fmt"

// BadValueCastError is returned by a strict coercion when the Value's
// Kind does not match the requested target exactly.
type BadValueCastError struct {
	Want Kind
	Got  Kind
}

func (e *BadValueCastError) Error() string {
	return fmt.Sprintf("ubjson: bad value cast: cannot view %s as %s", e.Got, e.Want)
}

// ValueError is returned when an indexing or lookup operation is illegal
// for the Value's current Kind.
type ValueError struct {
	Op   string
	Kind Kind
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("ubjson: %s: value is a %s", e.Op, e.Kind)
}

// ParseError reports malformed wire input: an unknown marker, a negative
// count, a truncated stream, '$' without '#', or an end marker found in
// the wrong container.
type ParseError struct {
	Offset int64
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ubjson: parse error at byte %d: %s", e.Offset, e.Msg)
}

// PolicyViolation is raised when a configured Policy limit (depth, string
// size, binary size, object size, array/object item count) would be
// exceeded. It wraps a *ParseError, so errors.As(err, new(*ParseError))
// matches both a bare parse failure and a policy violation.
type PolicyViolation struct {
	*ParseError
	Limit string
}

func (e *PolicyViolation) Unwrap() error { return e.ParseError }

func (e *PolicyViolation) Error() string {
	return fmt.Sprintf("ubjson: policy violation (%s) at byte %d: %s", e.Limit, e.Offset, e.Msg)
}

func newPolicyViolation(offset int64, limit, msg string) error {
	log.Debugf("policy boundary crossed: %s at byte %d: %s", limit, offset, msg)
	return &PolicyViolation{ParseError: &ParseError{Offset: offset, Msg: msg}, Limit: limit}
}

// IOError wraps a failure propagated from the underlying byte source or
// sink.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("ubjson: io error: %v", e.Err) }
func (e *IOError) Unwrap() error { return e.Err }
