package main

import (
	"fmt"
	"strings"
)

// typeExpr is a parsed result type expression. The grammar mirrors the
// codec's supported shapes:
//
//	primitive: bool sint32 sint64 uint32 uint64 float double string unit
//	composite: list(T) set(T) dict(K,V) tuple(A,B[,C[,D]])
//
// Set elements and dictionary keys must be primitives, matching the
// equality requirement of the typed codec.
type typeExpr struct {
	name string
	args []*typeExpr
}

var primitiveNames = map[string]bool{
	"bool":   true,
	"sint32": true,
	"sint64": true,
	"uint32": true,
	"uint64": true,
	"float":  true,
	"double": true,
	"string": true,
	"unit":   true,
}

func (t *typeExpr) primitive() bool { return primitiveNames[t.name] }

func (t *typeExpr) String() string {
	if len(t.args) == 0 {
		return t.name
	}
	parts := make([]string, len(t.args))
	for i, a := range t.args {
		parts[i] = a.String()
	}
	return t.name + "(" + strings.Join(parts, ",") + ")"
}

// parseTypeExpr parses s into a typeExpr, rejecting unknown names, wrong
// arities, and non-primitive set elements or dictionary keys.
func parseTypeExpr(s string) (*typeExpr, error) {
	p := &exprParser{in: s}
	t, err := p.parse()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.in) {
		return nil, fmt.Errorf("trailing input at %d: %q", p.pos, p.in[p.pos:])
	}
	return t, nil
}

type exprParser struct {
	in  string
	pos int
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.in) && p.in[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) ident() string {
	start := p.pos
	for p.pos < len(p.in) {
		c := p.in[p.pos]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			break
		}
		p.pos++
	}
	return p.in[start:p.pos]
}

func (p *exprParser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.in) || p.in[p.pos] != c {
		return fmt.Errorf("expected %q at %d", string(c), p.pos)
	}
	p.pos++
	return nil
}

func (p *exprParser) parse() (*typeExpr, error) {
	p.skipSpace()
	name := p.ident()
	if name == "" {
		return nil, fmt.Errorf("expected type name at %d", p.pos)
	}
	if primitiveNames[name] {
		return &typeExpr{name: name}, nil
	}

	var minArity, maxArity int
	switch name {
	case "list", "set":
		minArity, maxArity = 1, 1
	case "dict":
		minArity, maxArity = 2, 2
	case "tuple":
		minArity, maxArity = 2, 4
	default:
		return nil, fmt.Errorf("unknown type %q", name)
	}

	if err := p.expect('('); err != nil {
		return nil, err
	}
	t := &typeExpr{name: name}
	for {
		arg, err := p.parse()
		if err != nil {
			return nil, err
		}
		t.args = append(t.args, arg)
		p.skipSpace()
		if p.pos < len(p.in) && p.in[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	if len(t.args) < minArity || len(t.args) > maxArity {
		return nil, fmt.Errorf("%s takes %d-%d type arguments, got %d", name, minArity, maxArity, len(t.args))
	}
	if name == "set" && !t.args[0].primitive() {
		return nil, fmt.Errorf("set element must be a primitive, got %s", t.args[0])
	}
	if name == "dict" && !t.args[0].primitive() {
		return nil, fmt.Errorf("dict key must be a primitive, got %s", t.args[0])
	}
	return t, nil
}
