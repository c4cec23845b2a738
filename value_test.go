package jsondoc

import "testing"

func TestObjectSetPreservesOrder(t *testing.T) {
	obj := MakeObject()
	obj.ObjectSet("a", MakeNumber(1))
	obj.ObjectSet("b", MakeNumber(2))
	obj.ObjectSet("c", MakeNumber(3))

	// Replacing an existing key must keep its position.
	obj.ObjectSet("b", MakeString("mid"))
	if got := Serialize(obj); got != `{"a":1,"b":"mid","c":3}` {
		t.Errorf("replace moved the key: %s", got)
	}

	// A new key is appended.
	obj.ObjectSet("d", MakeBool(true))
	if got := Serialize(obj); got != `{"a":1,"b":"mid","c":3,"d":true}` {
		t.Errorf("insert did not append: %s", got)
	}
}

func TestObjectDelete(t *testing.T) {
	obj := MakeObject()
	obj.ObjectSet("a", MakeNumber(1))
	obj.ObjectSet("b", MakeNumber(2))
	obj.ObjectSet("c", MakeNumber(3))

	if !obj.ObjectDelete("b") {
		t.Fatal("expected delete of existing key to succeed")
	}
	if got := Serialize(obj); got != `{"a":1,"c":3}` {
		t.Errorf("unexpected document after delete: %s", got)
	}
	if obj.ObjectDelete("b") {
		t.Error("expected delete of absent key to fail")
	}
}

func TestArrayOps(t *testing.T) {
	arr := MakeArray()
	for i := 0; i < 3; i++ {
		if !arr.ArrayAppend(MakeNumber(float64(i * 10))) {
			t.Fatal("append failed")
		}
	}
	if arr.ArrayLen() != 3 {
		t.Fatalf("expected 3 elements, got %d", arr.ArrayLen())
	}
	if !arr.ArraySet(1, MakeString("x")) {
		t.Fatal("in-range set failed")
	}
	if arr.ArraySet(3, MakeNull()) {
		t.Error("out-of-range set succeeded")
	}
	if arr.ArrayRemove(5) {
		t.Error("out-of-range remove succeeded")
	}
	if !arr.ArrayRemove(0) {
		t.Fatal("in-range remove failed")
	}
	if got := Serialize(arr); got != `["x",20]` {
		t.Errorf("unexpected array after mutations: %s", got)
	}
}

func TestContainerOpsOnWrongType(t *testing.T) {
	num := MakeNumber(7)
	if num.ArrayAppend(MakeNull()) {
		t.Error("append on a number succeeded")
	}
	if num.ObjectSet("k", MakeNull()) {
		t.Error("object set on a number succeeded")
	}
	if num.ObjectGet("k") != nil {
		t.Error("object get on a number returned a value")
	}
	if num.ArrayGet(0) != nil {
		t.Error("array get on a number returned a value")
	}
}

func TestMarshalScalars(t *testing.T) {
	cases := []struct {
		v    *Value
		want string
	}{
		{MakeNull(), "null"},
		{MakeBool(true), "true"},
		{MakeBool(false), "false"},
		{MakeNumber(42), "42"},
		{MakeNumber(-3), "-3"},
		{MakeNumber(2.5), "2.5"},
		{MakeString("plain"), `"plain"`},
		{MakeString(`say "hi"\`), `"say \"hi\"\\"`},
		{MakeString("line\nbreak\ttab"), `"line\nbreak\ttab"`},
		{MakeString("ctrl\x01"), "\"ctrl\\u0001\""},
		{MakeString("héllo"), `"héllo"`},
	}
	for _, tc := range cases {
		if got := Serialize(tc.v); got != tc.want {
			t.Errorf("Serialize = %s, want %s", got, tc.want)
		}
	}
}

func TestNilValueReadsAsNull(t *testing.T) {
	var v *Value
	if v.Type() != TypeNull {
		t.Errorf("nil value type = %s", v.Type())
	}
}
