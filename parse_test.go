package jsondoc

import (
	"errors"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	docs := []string{
		`null`,
		`true`,
		`42`,
		`-2.5`,
		`"text"`,
		`[]`,
		`{}`,
		`[1,"two",null,true,[3],{"k":4}]`,
		`{"b":1,"a":2,"c":{"z":[1,2,3],"y":"deep"}}`,
	}
	for _, doc := range docs {
		v, err := Parse(doc)
		if err != nil {
			t.Errorf("Parse(%s): %v", doc, err)
			continue
		}
		first := Serialize(v)
		v2, err := Parse(first)
		if err != nil {
			t.Errorf("reparse(%s): %v", first, err)
			continue
		}
		if second := Serialize(v2); second != first {
			t.Errorf("round trip unstable: %s -> %s", first, second)
		}
	}
}

func TestParsePreservesKeyOrder(t *testing.T) {
	doc := `{"zeta":1,"alpha":2,"mid":{"b":1,"a":2}}`
	v, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := Serialize(v); got != doc {
		t.Errorf("key order changed: %s", got)
	}

	var keys []string
	v.ObjectVisit(func(key string, _ *Value) { keys = append(keys, key) })
	if len(keys) != 3 || keys[0] != "zeta" || keys[1] != "alpha" || keys[2] != "mid" {
		t.Errorf("visit order = %v", keys)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, text := range []string{"", "{", `{"a":}`, "tru", `"unterminated`} {
		_, err := Parse(text)
		if err == nil {
			t.Errorf("Parse(%q) succeeded", text)
			continue
		}
		if !errors.Is(err, ErrInvalidJSON) {
			t.Errorf("Parse(%q) error %v does not wrap ErrInvalidJSON", text, err)
		}
	}
}

func TestParseStringEscapes(t *testing.T) {
	v, err := Parse(`{"s":"a\"b\\c\ndé"}`)
	if err != nil {
		t.Fatal(err)
	}
	got := v.ObjectGet("s")
	if got == nil || got.Str() != "a\"b\\c\ndé" {
		t.Errorf("unescaped string = %q", got.Str())
	}
}
