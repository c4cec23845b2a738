package jsondoc

import (
	"strconv"
	"strings"
)

// newElement builds the Value an Add inserts, from a type tag and the raw
// value text. Accepted tags: bool, null, number, string, array, object (the
// legacy spelling "node" is also honored). An empty tag is a missing
// argument; an unknown tag is an invalid type. Object bodies are parsed as
// nested JSON; null and array ignore the raw value.
func newElement(typeTag, raw string) (*Value, Code) {
	switch strings.ToLower(typeTag) {
	case "":
		return nil, ArgumentNeeded
	case "bool":
		return MakeBool(parseBoolText(raw)), OK
	case "null":
		return MakeNull(), OK
	case "number":
		return MakeNumber(parseNumberText(raw)), OK
	case "string":
		return MakeString(raw), OK
	case "array":
		return MakeArray(), OK
	case "object", "node":
		if raw == "" {
			return MakeObject(), OK
		}
		v, err := Parse(raw)
		if err != nil || v.Type() != TypeObject {
			return nil, InvalidType
		}
		return v, OK
	}
	return nil, InvalidType
}

// parseBoolText maps raw text onto a boolean: false iff empty or one of
// 0, n, no, f, false (case-insensitive); anything else is true.
func parseBoolText(raw string) bool {
	switch strings.ToLower(raw) {
	case "", "0", "n", "no", "f", "false":
		return false
	}
	return true
}

// parseNumberText parses raw as a float64. Unparsable or out-of-range text
// silently becomes 0; callers rely on Set/Add never failing on bad numeric
// input.
func parseNumberText(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}

// addElement inserts elem at the node segs addresses: arrays append (name is
// ignored), objects set name (insert-or-replace). A scalar destination
// cannot hold children and reports AddFailed; an unreachable path reports
// NotFound.
func addElement(root *Value, segs []segment, name string, elem *Value) Code {
	res, ok := resolve(root, segs)
	if !ok {
		return NotFound
	}
	switch res.node.Type() {
	case TypeArray:
		if !res.node.ArrayAppend(elem) {
			return AddFailed
		}
	case TypeObject:
		if !res.node.ObjectSet(name, elem) {
			return AddFailed
		}
	default:
		return AddFailed
	}
	return OK
}
