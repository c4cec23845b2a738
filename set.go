package jsondoc

// setElement replaces the node at segs with a value coerced into the node's
// current type; Set never changes a node's JSON type. Bool targets apply the
// boolean text rule, numbers the numeric parse (bad input becomes 0),
// strings take the raw text verbatim, and object targets parse the raw text
// as a nested JSON document. Null and array targets cannot be replaced in
// place and report InvalidType, as does a malformed object body.
//
// The write always rewrites the parent's slot rather than mutating the old
// child: containers own children by value, so replacement means overwriting
// the index or key in the parent.
func setElement(root *Value, segs []segment, raw string) Code {
	if len(segs) == 0 {
		// There is no whole-root replacement.
		return NotFound
	}
	res, ok := resolve(root, segs)
	if !ok {
		return NotFound
	}

	var repl *Value
	switch res.node.Type() {
	case TypeBool:
		repl = MakeBool(parseBoolText(raw))
	case TypeNumber:
		repl = MakeNumber(parseNumberText(raw))
	case TypeString:
		repl = MakeString(raw)
	case TypeObject:
		v, err := Parse(raw)
		if err != nil || v.Type() != TypeObject {
			// The replacement must itself be an object; any other JSON
			// root would change the node's type.
			return InvalidType
		}
		repl = v
	case TypeNull, TypeArray:
		return InvalidType
	}

	switch res.parent.Type() {
	case TypeArray:
		if !res.parent.ArraySet(res.index, repl) {
			return SetFailed
		}
	case TypeObject:
		if !res.parent.ObjectSet(res.key, repl) {
			return SetFailed
		}
	default:
		return SetFailed
	}
	return OK
}
