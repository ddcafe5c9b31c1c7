package ubjson

import "github.com/creachadair/mds/mapset"

// marker is a single wire-format tag byte (spec §4.2).
type marker byte

const (
	markerNull          marker = 'Z'
	markerNoOp          marker = 'N'
	markerTrue          marker = 'T'
	markerFalse         marker = 'F'
	markerChar          marker = 'C'
	markerInt8          marker = 'i'
	markerUint8         marker = 'U'
	markerInt16         marker = 'I'
	markerInt32         marker = 'l'
	markerInt64         marker = 'L'
	markerFloat32       marker = 'd'
	markerFloat64       marker = 'D'
	markerHighPrecision marker = 'H'
	markerString        marker = 'S'
	markerBinary        marker = 'b'
	markerObjectStart   marker = '{'
	markerObjectEnd     marker = '}'
	markerArrayStart    marker = '['
	markerArrayEnd      marker = ']'
	markerOptType       marker = '$'
	markerOptCount      marker = '#'
)

// countMarkers is the set of bytes legal as the leading marker of the
// count sub-grammar: an integer marker immediately followed by its
// big-endian payload, used for lengths, item counts, and the optimized
// container header.
var countMarkers = mapset.New(
	byte(markerInt8), byte(markerUint8), byte(markerInt16),
	byte(markerInt32), byte(markerInt64),
)

func isCountMarker(b byte) bool { return countMarkers.Has(b) }
