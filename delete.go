package jsondoc

// deleteElement removes the node at segs from its parent container: arrays
// shift later elements down by one, objects drop the key and leave the
// remaining member order untouched. An empty path is a no-op success
// (deleting the whole document is not supported). A parent that is not a
// container, or a remove the container refuses, reports DeleteFailed.
func deleteElement(root *Value, segs []segment) Code {
	if len(segs) == 0 {
		return OK
	}
	res, ok := resolve(root, segs)
	if !ok {
		return NotFound
	}
	switch res.parent.Type() {
	case TypeArray:
		if !res.parent.ArrayRemove(res.index) {
			return DeleteFailed
		}
	case TypeObject:
		if !res.parent.ObjectDelete(res.key) {
			return DeleteFailed
		}
	default:
		return DeleteFailed
	}
	return OK
}
