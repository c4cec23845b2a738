package jsondoc

import (
	"errors"
	"fmt"

	"github.com/valyala/fastjson"
)

// Errors reported by the parse/format layer. Operations communicate through
// result codes; these surface only on the package-level text helpers.
var (
	ErrInvalidJSON = errors.New("invalid json document")
)

// Parse builds an owned Value tree from JSON text. The heavy lifting is
// delegated to fastjson; the tree is copied out so the result does not alias
// parser-internal buffers and can be mutated freely.
func Parse(text string) (*Value, error) {
	var p fastjson.Parser
	fv, err := p.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJSON, err)
	}
	return fromFastjson(fv), nil
}

// Serialize returns the compact JSON encoding of v.
func Serialize(v *Value) string {
	return string(v.MarshalTo(nil))
}

func fromFastjson(fv *fastjson.Value) *Value {
	switch fv.Type() {
	case fastjson.TypeNull:
		return MakeNull()
	case fastjson.TypeTrue:
		return MakeBool(true)
	case fastjson.TypeFalse:
		return MakeBool(false)
	case fastjson.TypeNumber:
		n, _ := fv.Float64()
		return MakeNumber(n)
	case fastjson.TypeString:
		b, _ := fv.StringBytes()
		return MakeString(string(b))
	case fastjson.TypeArray:
		items, _ := fv.Array()
		out := MakeArray()
		for _, item := range items {
			out.a = append(out.a, fromFastjson(item))
		}
		return out
	case fastjson.TypeObject:
		obj, _ := fv.Object()
		out := MakeObject()
		// Object.Visit walks members in document order, which is the
		// order the tree must preserve across mutations.
		obj.Visit(func(key []byte, item *fastjson.Value) {
			out.o = append(out.o, kv{key: string(key), value: fromFastjson(item)})
		})
		return out
	}
	return MakeNull()
}
