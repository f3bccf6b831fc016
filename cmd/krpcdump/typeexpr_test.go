package main

import "testing"

func TestParseTypeExpr(t *testing.T) {
	for _, s := range []string{
		"bool",
		"string",
		"list(sint32)",
		"set(uint64)",
		"dict(string, list(double))",
		"tuple(bool, string)",
		"tuple(bool, string, float, uint32)",
		"list(list(tuple(sint64, string)))",
	} {
		if _, err := parseTypeExpr(s); err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
	}
}

func TestParseTypeExprString(t *testing.T) {
	in := "dict(string, list(tuple(bool, sint32)))"
	te, err := parseTypeExpr(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if te.String() != "dict(string,list(tuple(bool,sint32)))" {
		t.Fatalf("render: %s", te)
	}
}

func TestParseTypeExprRejects(t *testing.T) {
	for _, s := range []string{
		"",
		"int",                   // unknown name
		"list",                  // missing args
		"list(bool,bool)",       // wrong arity
		"tuple(bool)",           // below minimum arity
		"tuple(a,b,c,d,e)",      // unknown names and too many
		"set(list(bool))",       // non-primitive set element
		"dict(list(bool),bool)", // non-primitive dict key
		"bool trailing",
	} {
		if _, err := parseTypeExpr(s); err == nil {
			t.Fatalf("parse %q: want error", s)
		}
	}
}
