package jsondoc

import (
	"strconv"
	"testing"
)

// recordingStore captures every RESULT write so tests can observe the
// Undecided-then-final protocol.
type recordingStore struct {
	MemStore
	results []string
}

func (s *recordingStore) Set(name, value string) {
	if name == ResultVar {
		s.results = append(s.results, value)
	}
	s.MemStore.Set(name, value)
}

func TestResultProtocol(t *testing.T) {
	store := &recordingStore{MemStore: MemStore{"doc": `{"a":1}`}}
	r := New(store)

	if _, code := r.Get("doc", "/a"); code != OK {
		t.Fatalf("Get = %s", code)
	}
	if len(store.results) != 2 {
		t.Fatalf("expected 2 RESULT writes, got %v", store.results)
	}
	if store.results[0] != strconv.Itoa(int(Undecided)) {
		t.Errorf("first RESULT write = %q, want undecided", store.results[0])
	}
	if store.results[1] != strconv.Itoa(int(OK)) {
		t.Errorf("final RESULT write = %q, want ok", store.results[1])
	}
}

func TestResultSetOnEveryBranch(t *testing.T) {
	run := func(f func(r *Runner) Code) Code {
		store := MemStore{"doc": `{"a":1}`, "bad": `{"broken":`}
		r := New(store)
		code := f(r)
		stored, ok := store.Get(ResultVar)
		if !ok {
			t.Fatal("RESULT was never written")
		}
		if stored != strconv.Itoa(int(code)) {
			t.Errorf("RESULT = %q but call returned %s", stored, code)
		}
		return code
	}

	cases := []struct {
		name string
		f    func(r *Runner) Code
		want Code
	}{
		{"pretty ok", func(r *Runner) Code { return r.Pretty("doc") }, OK},
		{"pretty no arg", func(r *Runner) Code { return r.Pretty("") }, ArgumentNeeded},
		{"compact parse error", func(r *Runner) Code { return r.Compact("bad") }, ParseError},
		{"get ok", func(r *Runner) Code { _, c := r.Get("doc", "/a"); return c }, OK},
		{"get not found", func(r *Runner) Code { _, c := r.Get("doc", "/z"); return c }, NotFound},
		{"import ok", func(r *Runner) Code { return r.Import("doc") }, OK},
		{"add ok", func(r *Runner) Code { return r.Add("doc", "", "number", "b", "2") }, OK},
		{"add invalid type", func(r *Runner) Code { return r.Add("doc", "", "float", "b", "2") }, InvalidType},
		{"add failed", func(r *Runner) Code { return r.Add("doc", "/a", "number", "b", "2") }, AddFailed},
		{"set ok", func(r *Runner) Code { return r.Set("doc", "/a", "5") }, OK},
		{"set not found", func(r *Runner) Code { return r.Set("doc", "", "5") }, NotFound},
		{"delete ok", func(r *Runner) Code { return r.Delete("doc", "/a") }, OK},
		{"delete empty path", func(r *Runner) Code { return r.Delete("doc", "") }, OK},
	}
	for _, tc := range cases {
		if got := run(tc.f); got != tc.want {
			t.Errorf("%s = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestCodeStrings(t *testing.T) {
	codes := []Code{OK, Undecided, ArgumentNeeded, ParseError, NotFound,
		InvalidType, AddFailed, SetFailed, DeleteFailed}
	for i, code := range codes {
		if int(code) != i {
			t.Errorf("code %s has value %d, want %d", code, int(code), i)
		}
		if code.String() == "" {
			t.Errorf("code %d has no name", i)
		}
	}
	if Code(99).String() != "code(99)" {
		t.Errorf("unknown code string = %s", Code(99))
	}
}
