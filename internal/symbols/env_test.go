package symbols

import (
	"testing"

	"ucc/internal/diag"
	"ucc/internal/source"
	"ucc/internal/types"
)

func TestGlobalEnvSeeding(t *testing.T) {
	g := NewGlobalEnv()
	for _, name := range []string{"int", "long", "float", "string", "boolean", "void", "null"} {
		if _, ok := g.TryType(name); !ok {
			t.Errorf("builtin type %s not seeded", name)
		}
	}
	for _, name := range []string{"string_to_int", "length", "substr", "println", "readline", "pow"} {
		if _, ok := g.TryFunction(name); !ok {
			t.Errorf("builtin function %s not seeded", name)
		}
	}
}

func TestAddTypeRedefinition(t *testing.T) {
	g := NewGlobalEnv()
	bag := diag.NewBag(8)
	r := diag.BagReporter{Bag: bag}

	first := g.AddType(r, 1, source.Pos{Line: 1}, "point")
	if bag.Len() != 0 {
		t.Fatalf("fresh definition reported diagnostics")
	}
	second := g.AddType(r, 1, source.Pos{Line: 5}, "point")
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SemRedefinedType {
		t.Fatalf("expected redefinition diagnostic, got %v", bag.Items())
	}
	if first != second {
		t.Fatalf("redefinition must return the original binding")
	}

	// Colliding with a builtin is a redefinition too.
	g.AddType(r, 1, source.Pos{Line: 7}, "int")
	if bag.Len() != 2 {
		t.Fatalf("builtin collision not reported")
	}
}

func TestAddFunctionRedefinition(t *testing.T) {
	g := NewGlobalEnv()
	bag := diag.NewBag(8)
	r := diag.BagReporter{Bag: bag}

	first := g.AddFunction(r, 1, source.Pos{Line: 1}, "f")
	second := g.AddFunction(r, 1, source.Pos{Line: 2}, "f")
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SemRedefinedFunction {
		t.Fatalf("expected redefinition diagnostic, got %v", bag.Items())
	}
	if first != second {
		t.Fatalf("redefinition must return the original binding")
	}
}

func TestLookupRecovery(t *testing.T) {
	g := NewGlobalEnv()
	bag := diag.NewBag(8)
	r := diag.BagReporter{Bag: bag}

	got := g.LookupType(r, 2, source.Pos{Line: 3}, "nope")
	if !types.Same(got, types.Int) {
		t.Fatalf("type lookup must recover to int, got %s", got.Name())
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SemUndefinedType {
		t.Fatalf("expected undefined-type diagnostic, got %v", bag.Items())
	}

	f := g.LookupFunction(r, 3, source.Pos{Line: 4}, "nope")
	if f == nil || f.Name() != "string_to_int" {
		t.Fatalf("function lookup must recover to string_to_int")
	}
	if bag.Len() != 2 || bag.Items()[1].Code != diag.SemUndefinedFunction {
		t.Fatalf("expected undefined-function diagnostic, got %v", bag.Items())
	}
}

func TestVarEnv(t *testing.T) {
	g := NewGlobalEnv()
	v := NewVarEnv(g)
	bag := diag.NewBag(8)
	r := diag.BagReporter{Bag: bag}

	v.AddVariable(r, 4, source.Pos{Line: 1}, "x", types.Int, BindVariable)
	if !v.Contains("x") {
		t.Fatalf("x not bound")
	}
	v.AddVariable(r, 4, source.Pos{Line: 2}, "x", types.String, BindParameter)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SemRedeclaredName {
		t.Fatalf("expected redeclaration diagnostic, got %v", bag.Items())
	}
	// First binding wins.
	if got := v.GetType(r, 6, source.Pos{Line: 3}, "x"); !types.Same(got, types.Int) {
		t.Fatalf("expected original int binding, got %s", got.Name())
	}

	got := v.GetType(r, 6, source.Pos{Line: 4}, "missing")
	if !types.Same(got, types.Int) {
		t.Fatalf("missing variable must recover to int")
	}
	if bag.Len() != 2 || bag.Items()[1].Code != diag.SemUndefinedVariable {
		t.Fatalf("expected undefined-variable diagnostic, got %v", bag.Items())
	}
}
