// Package jsondoc mutates JSON documents addressed by slash-delimited paths.
//
// A document is parsed into an owned Value tree, a path such as
// /users/3/name is resolved segment by segment, and the addressed node is
// read, inserted into, replaced (type-preserving) or deleted. The Runner
// facade exposes the operations over a host variable store and reports every
// outcome through a single result Code.
package jsondoc

import (
	"math"
	"strconv"
)

// Type identifies the variant held by a Value.
type Type uint8

const (
	TypeNull Type = iota
	TypeBool
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	}
	return "unknown"
}

// kv is one object member. Object members keep document/insertion order.
type kv struct {
	key   string
	value *Value
}

// Value is a single JSON node. A Value tree is acyclic and owned top-down:
// containers own their children and children are never shared between trees.
type Value struct {
	t Type
	b bool
	n float64
	s string
	a []*Value
	o []kv
}

func MakeNull() *Value { return &Value{t: TypeNull} }

func MakeBool(b bool) *Value { return &Value{t: TypeBool, b: b} }

func MakeNumber(n float64) *Value { return &Value{t: TypeNumber, n: n} }

func MakeString(s string) *Value { return &Value{t: TypeString, s: s} }

func MakeArray() *Value { return &Value{t: TypeArray} }

func MakeObject() *Value { return &Value{t: TypeObject} }

// Type reports the variant; a nil Value reads as null.
func (v *Value) Type() Type {
	if v == nil {
		return TypeNull
	}
	return v.t
}

func (v *Value) Bool() bool { return v.b }

func (v *Value) Float64() float64 { return v.n }

func (v *Value) Str() string { return v.s }

// ArrayLen returns the element count, or 0 when v is not an array.
func (v *Value) ArrayLen() int { return len(v.a) }

// ArrayGet returns the element at i, or nil when v is not an array or i is
// out of range.
func (v *Value) ArrayGet(i int) *Value {
	if v == nil || v.t != TypeArray || i < 0 || i >= len(v.a) {
		return nil
	}
	return v.a[i]
}

// ArrayAppend appends item; it reports false when v is not an array.
func (v *Value) ArrayAppend(item *Value) bool {
	if v == nil || v.t != TypeArray || item == nil {
		return false
	}
	v.a = append(v.a, item)
	return true
}

// ArraySet replaces the element at i; out-of-range indexes report false.
func (v *Value) ArraySet(i int, item *Value) bool {
	if v == nil || v.t != TypeArray || item == nil || i < 0 || i >= len(v.a) {
		return false
	}
	v.a[i] = item
	return true
}

// ArrayRemove removes the element at i, shifting later elements down.
func (v *Value) ArrayRemove(i int) bool {
	if v == nil || v.t != TypeArray || i < 0 || i >= len(v.a) {
		return false
	}
	v.a = append(v.a[:i], v.a[i+1:]...)
	return true
}

// ObjectLen returns the member count, or 0 when v is not an object.
func (v *Value) ObjectLen() int { return len(v.o) }

// ObjectGet returns the value for key, or nil when v is not an object or the
// key is absent.
func (v *Value) ObjectGet(key string) *Value {
	if v == nil || v.t != TypeObject {
		return nil
	}
	for i := range v.o {
		if v.o[i].key == key {
			return v.o[i].value
		}
	}
	return nil
}

// ObjectSet inserts or replaces key. A replaced key keeps its position; a new
// key is appended. It reports false when v is not an object.
func (v *Value) ObjectSet(key string, item *Value) bool {
	if v == nil || v.t != TypeObject || item == nil {
		return false
	}
	for i := range v.o {
		if v.o[i].key == key {
			v.o[i].value = item
			return true
		}
	}
	v.o = append(v.o, kv{key: key, value: item})
	return true
}

// ObjectDelete removes key; absent keys report false.
func (v *Value) ObjectDelete(key string) bool {
	if v == nil || v.t != TypeObject {
		return false
	}
	for i := range v.o {
		if v.o[i].key == key {
			v.o = append(v.o[:i], v.o[i+1:]...)
			return true
		}
	}
	return false
}

// ObjectVisit calls f for every member in document order. The callback must
// not mutate the object it is visiting.
func (v *Value) ObjectVisit(f func(key string, item *Value)) {
	if v == nil || v.t != TypeObject {
		return
	}
	for i := range v.o {
		f(v.o[i].key, v.o[i].value)
	}
}

// MarshalTo appends the compact JSON encoding of v to dst and returns the
// extended buffer.
func (v *Value) MarshalTo(dst []byte) []byte {
	switch v.Type() {
	case TypeNull:
		return append(dst, "null"...)
	case TypeBool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case TypeNumber:
		return appendNumber(dst, v.n)
	case TypeString:
		return appendEscapedString(dst, v.s)
	case TypeArray:
		dst = append(dst, '[')
		for i, item := range v.a {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = item.MarshalTo(dst)
		}
		return append(dst, ']')
	case TypeObject:
		dst = append(dst, '{')
		for i := range v.o {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendEscapedString(dst, v.o[i].key)
			dst = append(dst, ':')
			dst = v.o[i].value.MarshalTo(dst)
		}
		return append(dst, '}')
	}
	return dst
}

// String returns the compact JSON encoding of v.
func (v *Value) String() string {
	return string(v.MarshalTo(nil))
}

func appendNumber(dst []byte, f float64) []byte {
	// Parse never yields NaN/Inf; ParseFloat range errors collapse to 0
	// before a Value is built.
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.AppendInt(dst, int64(f), 10)
	}
	return strconv.AppendFloat(dst, f, 'g', -1, 64)
}

func appendEscapedString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			dst = append(dst, '\\', '"')
		case c == '\\':
			dst = append(dst, '\\', '\\')
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c == '\b':
			dst = append(dst, '\\', 'b')
		case c == '\f':
			dst = append(dst, '\\', 'f')
		case c < 0x20:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		default:
			// Multi-byte UTF-8 sequences pass through byte for byte.
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}

const hexDigits = "0123456789abcdef"
