package jsondoc

import (
	"strconv"
	"strings"
)

// segment is one path component: an object key or an array index.
// index is -1 when the segment addresses an object key.
type segment struct {
	key   string
	index int
}

// parsePath splits a slash-delimited path into segments. One leading and one
// trailing slash are stripped; an empty remainder means the root (zero
// segments). A segment made of decimal digits only is an array index, any
// other segment (including an empty one from a doubled slash) is an object
// key. There is no escaping: keys containing slashes cannot be addressed.
func parsePath(path string) []segment {
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return nil
	}
	pieces := strings.Split(path, "/")
	segs := make([]segment, len(pieces))
	for i, piece := range pieces {
		segs[i] = segment{key: piece, index: indexOf(piece)}
	}
	return segs
}

// indexOf returns the array index a piece encodes, or -1 when the piece is
// not purely numeric. Width is unbounded; values beyond int range fall back
// to key semantics.
func indexOf(piece string) int {
	if piece == "" {
		return -1
	}
	for i := 0; i < len(piece); i++ {
		if piece[i] < '0' || piece[i] > '9' {
			return -1
		}
	}
	// Atoi's error also covers overflow on absurdly long digit runs.
	n, err := strconv.Atoi(piece)
	if err != nil {
		return -1
	}
	return n
}

// resolution is the outcome of a successful path walk: the addressed node
// plus the container it was reached through and the key or index last used.
// The root resolves with a nil parent and index -1.
type resolution struct {
	node   *Value
	parent *Value
	key    string
	index  int
}

// resolve walks segs from root. Arrays accept only index segments, objects
// only key segments; any mismatch, out-of-range index or absent key stops
// the walk and reports false. Nothing is coerced or created along the way.
func resolve(root *Value, segs []segment) (resolution, bool) {
	res := resolution{node: root, index: -1}
	for _, seg := range segs {
		var next *Value
		switch {
		case res.node.Type() == TypeArray && seg.index >= 0:
			next = res.node.ArrayGet(seg.index)
		case res.node.Type() == TypeObject && seg.index < 0:
			next = res.node.ObjectGet(seg.key)
		}
		if next == nil {
			return resolution{}, false
		}
		res = resolution{node: next, parent: res.node, key: seg.key, index: seg.index}
	}
	return res, true
}
