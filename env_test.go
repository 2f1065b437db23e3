// env_test.go
package lox

import "testing"

func Test_Env_Define_And_Get(t *testing.T) {
	e := NewEnv(nil)
	e.Define("a", Num(1))
	v, ok := e.Get("a")
	if !ok || !v.Equals(Num(1)) {
		t.Fatalf("got %v %v", v, ok)
	}
	if _, ok := e.Get("b"); ok {
		t.Fatal("unbound name must not resolve")
	}
}

func Test_Env_Redefine_Overwrites(t *testing.T) {
	e := NewEnv(nil)
	e.Define("a", Num(1))
	e.Define("a", Str("two"))
	v, _ := e.Get("a")
	if !v.Equals(Str("two")) {
		t.Fatalf("got %v", v)
	}
}

func Test_Env_Lookup_Walks_Outward(t *testing.T) {
	outer := NewEnv(nil)
	outer.Define("a", Num(1))
	inner := NewEnv(outer)
	v, ok := inner.Get("a")
	if !ok || !v.Equals(Num(1)) {
		t.Fatalf("got %v %v", v, ok)
	}
}

func Test_Env_Shadowing(t *testing.T) {
	outer := NewEnv(nil)
	outer.Define("a", Num(1))
	inner := NewEnv(outer)
	inner.Define("a", Num(2))
	v, _ := inner.Get("a")
	if !v.Equals(Num(2)) {
		t.Fatalf("inner sees %v", v)
	}
	v, _ = outer.Get("a")
	if !v.Equals(Num(1)) {
		t.Fatalf("outer sees %v", v)
	}
}

func Test_Env_Assign_Targets_Nearest_Defining_Scope(t *testing.T) {
	outer := NewEnv(nil)
	outer.Define("a", Num(1))
	inner := NewEnv(outer)
	if !inner.Assign("a", Num(9)) {
		t.Fatal("assign through inner frame failed")
	}
	v, _ := outer.Get("a")
	if !v.Equals(Num(9)) {
		t.Fatalf("outer sees %v", v)
	}
}

func Test_Env_Assign_Never_Declares(t *testing.T) {
	e := NewEnv(nil)
	if e.Assign("ghost", Num(1)) {
		t.Fatal("assignment must not declare")
	}
	if _, ok := e.Get("ghost"); ok {
		t.Fatal("ghost must stay unbound")
	}
}
