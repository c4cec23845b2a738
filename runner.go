package jsondoc

import (
	"log/slog"
	"strconv"

	"github.com/tidwall/gjson"
)

// Store variable names the Runner reports through. Hosts that need other
// names (the historical JSONRESULT/JSONTYPE, say) can wrap their Store and
// remap these.
const (
	ResultVar = "RESULT"
	TypeVar   = "TYPE"
)

// Runner is the operation facade. Every method loads the named document from
// the store, works on a private tree, re-stores the document only on OK, and
// always leaves exactly one result code in the RESULT variable. Logger may be
// nil; when set, every failure branch logs at warn level.
type Runner struct {
	Store  Store
	Logger *slog.Logger
}

// New returns a Runner over store with logging disabled.
func New(store Store) *Runner {
	return &Runner{Store: store}
}

func (r *Runner) warn(msg string, args ...any) {
	if r.Logger != nil {
		r.Logger.Warn(msg, args...)
	}
}

// begin marks the operation in flight. A host that observes Undecided in
// RESULT caught the runner mid-operation or after a crash, never a completed
// call.
func (r *Runner) begin() {
	r.Store.Set(ResultVar, strconv.Itoa(int(Undecided)))
}

func (r *Runner) finish(code Code) Code {
	r.Store.Set(ResultVar, strconv.Itoa(int(code)))
	return code
}

// Pretty re-stores the named document pretty-printed. Cosmetic only.
func (r *Runner) Pretty(docVar string) Code {
	r.begin()
	if docVar == "" {
		r.warn("pretty requires a document variable name")
		return r.finish(ArgumentNeeded)
	}
	text, _ := r.Store.Get(docVar)
	out, err := Pretty([]byte(text))
	if err != nil {
		r.warn("document parsing error", "var", docVar, "err", err)
		return r.finish(ParseError)
	}
	r.Store.Set(docVar, string(out))
	return r.finish(OK)
}

// Compact re-stores the named document minified. Cosmetic only.
func (r *Runner) Compact(docVar string) Code {
	r.begin()
	if docVar == "" {
		r.warn("compact requires a document variable name")
		return r.finish(ArgumentNeeded)
	}
	text, _ := r.Store.Get(docVar)
	out, err := Ugly([]byte(text))
	if err != nil {
		r.warn("document parsing error", "var", docVar, "err", err)
		return r.finish(ParseError)
	}
	r.Store.Set(docVar, string(out))
	return r.finish(OK)
}

// Get reads the element at path and returns its textual rendering; the type
// tag is stored in the TYPE variable. An empty path returns the stored text
// unchanged and reports no type. The document is never mutated.
func (r *Runner) Get(docVar, path string) (string, Code) {
	r.begin()
	if docVar == "" {
		r.warn("get requires a document variable name")
		return "", r.finish(ArgumentNeeded)
	}
	text, _ := r.Store.Get(docVar)
	segs := parsePath(path)
	if len(segs) == 0 {
		if !gjson.Valid(text) {
			r.warn("document parsing error", "var", docVar)
			return "", r.finish(ParseError)
		}
		return text, r.finish(OK)
	}
	root, err := Parse(text)
	if err != nil {
		r.warn("document parsing error", "var", docVar, "err", err)
		return "", r.finish(ParseError)
	}
	value, typeTag, code := getElement(root, segs)
	if code != OK {
		r.warn("path did not resolve", "var", docVar, "path", path)
		return "", r.finish(code)
	}
	r.Store.Set(TypeVar, typeTag)
	return value, r.finish(OK)
}

// Import maps each top-level key of an object document onto a store variable
// of the same name, rendered with the query scalar rules (arrays become the
// "!array!" placeholder). Nested structure is not expanded.
func (r *Runner) Import(docVar string) Code {
	r.begin()
	if docVar == "" {
		r.warn("import requires a document variable name")
		return r.finish(ArgumentNeeded)
	}
	text, _ := r.Store.Get(docVar)
	root, err := Parse(text)
	if err != nil {
		r.warn("document parsing error", "var", docVar, "err", err)
		return r.finish(ParseError)
	}
	if root.Type() != TypeObject {
		r.warn("document root is not an object", "var", docVar, "type", root.Type().String())
		return r.finish(ParseError)
	}
	root.ObjectVisit(func(key string, item *Value) {
		r.Store.Set(key, importText(item))
	})
	return r.finish(OK)
}

// Add inserts a new element of the given type at the node path addresses:
// arrays append (name is ignored), objects gain or replace the named member.
// A missing or empty document synthesizes a fresh root first, an array when
// no name is given and an object otherwise, and the add targets that root.
func (r *Runner) Add(docVar, path, typeTag, name, value string) Code {
	r.begin()
	if docVar == "" {
		r.warn("add requires a document variable name")
		return r.finish(ArgumentNeeded)
	}
	elem, code := newElement(typeTag, value)
	if code != OK {
		r.warn("cannot build element", "type", typeTag, "code", code.String())
		return r.finish(code)
	}
	text, _ := r.Store.Get(docVar)
	segs := parsePath(path)
	var root *Value
	if text == "" {
		if name == "" {
			root = MakeArray()
		} else {
			root = MakeObject()
		}
		segs = nil
	} else {
		var err error
		root, err = Parse(text)
		if err != nil {
			r.warn("document parsing error", "var", docVar, "err", err)
			return r.finish(ParseError)
		}
	}
	if code = addElement(root, segs, name, elem); code != OK {
		r.warn("add did not complete", "var", docVar, "path", path, "code", code.String())
		return r.finish(code)
	}
	r.Store.Set(docVar, Serialize(root))
	return r.finish(OK)
}

// Set replaces the element at path, preserving its JSON type. The path must
// be non-empty; whole-root replacement is not an operation.
func (r *Runner) Set(docVar, path, value string) Code {
	r.begin()
	if docVar == "" {
		r.warn("set requires a document variable name")
		return r.finish(ArgumentNeeded)
	}
	text, _ := r.Store.Get(docVar)
	if text == "" {
		r.warn("document is empty, nothing to set", "var", docVar)
		return r.finish(InvalidType)
	}
	root, err := Parse(text)
	if err != nil {
		r.warn("document parsing error", "var", docVar, "err", err)
		return r.finish(ParseError)
	}
	if code := setElement(root, parsePath(path), value); code != OK {
		r.warn("set did not complete", "var", docVar, "path", path, "code", code.String())
		return r.finish(code)
	}
	r.Store.Set(docVar, Serialize(root))
	return r.finish(OK)
}

// Delete removes the element at path from its parent container. An empty
// path reports OK and leaves the stored text byte-identical; deleting the
// whole document is not supported.
func (r *Runner) Delete(docVar, path string) Code {
	r.begin()
	if docVar == "" {
		r.warn("delete requires a document variable name")
		return r.finish(ArgumentNeeded)
	}
	if len(parsePath(path)) == 0 {
		r.warn("path is empty, not deleting the whole document", "var", docVar)
		return r.finish(OK)
	}
	text, _ := r.Store.Get(docVar)
	if text == "" {
		r.warn("document is empty, delete has no effect", "var", docVar)
		return r.finish(NotFound)
	}
	root, err := Parse(text)
	if err != nil {
		r.warn("document parsing error", "var", docVar, "err", err)
		return r.finish(ParseError)
	}
	if code := deleteElement(root, parsePath(path)); code != OK {
		r.warn("delete did not complete", "var", docVar, "path", path, "code", code.String())
		return r.finish(code)
	}
	r.Store.Set(docVar, Serialize(root))
	return r.finish(OK)
}
