package source

import "testing"

func TestFileSetAdd(t *testing.T) {
	fs := NewFileSet()
	a := fs.Add("a.uc")
	b := fs.Add("b.uc")
	if a != 1 || b != 2 {
		t.Fatalf("ids must be sequential and 1-based, got %d, %d", a, b)
	}
	if fs.Add("a.uc") != a {
		t.Fatalf("re-adding a path must return the original id")
	}
	if fs.Len() != 2 {
		t.Fatalf("len = %d, want 2", fs.Len())
	}
	if fs.Name(a) != "a.uc" || fs.Name(b) != "b.uc" {
		t.Fatalf("names not preserved")
	}
	if fs.Name(NoFileID) != "" || fs.Name(99) != "" {
		t.Fatalf("unknown ids must resolve to the empty string")
	}
}

func TestPos(t *testing.T) {
	if NoPos.IsValid() {
		t.Fatalf("NoPos must be invalid")
	}
	p := Pos{File: 1, Line: 3}
	if !p.IsValid() {
		t.Fatalf("positions with a line are valid")
	}
	if !p.Before(Pos{File: 1, Line: 4}) {
		t.Fatalf("line order ignored")
	}
	if !p.Before(Pos{File: 2, Line: 1}) {
		t.Fatalf("file order must dominate line order")
	}
	if p.Before(p) {
		t.Fatalf("a position does not sort before itself")
	}
	if p.String() != "1:3" {
		t.Fatalf("String = %q", p.String())
	}
}
