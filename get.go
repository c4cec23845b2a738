package jsondoc

import (
	"math"
	"strconv"
)

// Get type tags as stored in the TYPE variable. Objects report the
// historical "node" tag, not "object".
const (
	tagBool   = "bool"
	tagNull   = "null"
	tagNumber = "number"
	tagString = "string"
	tagArray  = "array"
	tagNode   = "node"
)

// getElement resolves segs and renders the addressed node as text plus a
// type tag: booleans as "1"/"0", null as empty text, numbers per
// formatNumber, strings verbatim, containers as compact JSON.
func getElement(root *Value, segs []segment) (text, typeTag string, code Code) {
	res, ok := resolve(root, segs)
	if !ok {
		return "", "", NotFound
	}
	v := res.node
	switch v.Type() {
	case TypeBool:
		if v.Bool() {
			return "1", tagBool, OK
		}
		return "0", tagBool, OK
	case TypeNull:
		return "", tagNull, OK
	case TypeNumber:
		return formatNumber(v.Float64()), tagNumber, OK
	case TypeString:
		return v.Str(), tagString, OK
	case TypeArray:
		return Serialize(v), tagArray, OK
	case TypeObject:
		return Serialize(v), tagNode, OK
	}
	return "", "", NotFound
}

// formatNumber renders integral values as plain integers and everything else
// with six fixed decimals, the split the scalar output contract calls for.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', 6, 64)
}
