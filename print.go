package ubjson

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Dump renders v as JSON-shaped text: Null -> null, Bool -> true/false,
// Char -> a one-character quoted string, numerics -> their decimal
// rendering, String -> quoted and escaped per JSON rules, Binary ->
// "BINARY DATA (N bytes)" (the byte length, distinct from Size(), which
// is always 1 for a scalar), Array -> "[ ... ]" comma-separated, Object
// -> `{ "key" : value, ... }`. Compact mode (pretty=false) omits all
// whitespace, emitting bare "," and ":" separators; pretty mode inserts
// a newline and one tab of indentation per nesting level around each
// element, and a spaced " : " around object values.
func (v Value) Dump(pretty bool) string {
	var sb strings.Builder
	dumpValue(&sb, v, pretty, 0)
	return sb.String()
}

func dumpValue(sb *strings.Builder, v Value, pretty bool, depth int) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		if v.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindChar:
		dumpJSONString(sb, string([]byte{v.ch}))
	case KindSignedInt:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindUnsignedInt:
		sb.WriteString(strconv.FormatUint(v.u, 10))
	case KindFloat:
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindString:
		dumpJSONString(sb, v.s)
	case KindBinary:
		fmt.Fprintf(sb, "BINARY DATA (%d bytes)", len(v.bin))
	case KindArray:
		dumpArray(sb, v, pretty, depth)
	case KindObject:
		dumpObject(sb, v, pretty, depth)
	}
}

// dumpJSONString escapes s per JSON rules via encoding/json, which is the
// only reasonable way to get RFC 8259 string escaping right without
// reimplementing it by hand.
func dumpJSONString(sb *strings.Builder, s string) {
	b, err := json.Marshal(s)
	if err != nil {
		sb.WriteByte('"')
		sb.WriteString(s)
		sb.WriteByte('"')
		return
	}
	sb.Write(b)
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteByte('\n')
	for i := 0; i < depth; i++ {
		sb.WriteByte('\t')
	}
}

func dumpArray(sb *strings.Builder, v Value, pretty bool, depth int) {
	sb.WriteByte('[')
	for i, c := range v.arr {
		if i > 0 {
			sb.WriteByte(',')
		}
		if pretty {
			indent(sb, depth+1)
		}
		dumpValue(sb, c, pretty, depth+1)
	}
	if pretty && len(v.arr) > 0 {
		indent(sb, depth)
	}
	sb.WriteByte(']')
}

func dumpObject(sb *strings.Builder, v Value, pretty bool, depth int) {
	sb.WriteByte('{')
	for i, k := range v.objKeys {
		if i > 0 {
			sb.WriteByte(',')
		}
		if pretty {
			indent(sb, depth+1)
		}
		dumpJSONString(sb, k)
		if pretty {
			sb.WriteString(" : ")
		} else {
			sb.WriteByte(':')
		}
		dumpValue(sb, *v.objMap[k], pretty, depth+1)
	}
	if pretty && len(v.objKeys) > 0 {
		indent(sb, depth)
	}
	sb.WriteByte('}')
}
