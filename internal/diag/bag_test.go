package diag

import (
	"testing"

	"ucc/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 5; i++ {
		bag.Add(Diagnostic{Severity: SevError, Code: SemTypeMismatch})
	}
	if bag.Len() != 2 {
		t.Fatalf("limit not honoured: %d", bag.Len())
	}
	if bag.Add(Diagnostic{}) {
		t.Fatalf("Add past the limit must report false")
	}
}

func TestHasErrors(t *testing.T) {
	bag := NewBag(8)
	if bag.HasErrors() {
		t.Fatalf("empty bag has errors")
	}
	bag.Add(Diagnostic{Severity: SevWarning})
	if bag.HasErrors() {
		t.Fatalf("warnings alone are not errors")
	}
	bag.Add(Diagnostic{Severity: SevError})
	if !bag.HasErrors() {
		t.Fatalf("error not detected")
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := NewBag(8)
	bag.Add(Diagnostic{Phase: 6, Severity: SevError, Pos: source.Pos{File: 1, Line: 9}})
	bag.Add(Diagnostic{Phase: 1, Severity: SevError, Pos: source.Pos{File: 1, Line: 3}})
	bag.Add(Diagnostic{Phase: 5, Severity: SevError, Pos: source.Pos{File: 1, Line: 3}})
	bag.Add(Diagnostic{Phase: 2, Severity: SevError, Pos: source.Pos{File: 2, Line: 1}})
	bag.Sort()

	items := bag.Items()
	if items[0].Pos.Line != 3 || items[0].Phase != 1 {
		t.Fatalf("wrong first item: %+v", items[0])
	}
	if items[1].Pos.Line != 3 || items[1].Phase != 5 {
		t.Fatalf("same line must order by phase: %+v", items[1])
	}
	if items[2].Pos.Line != 9 {
		t.Fatalf("wrong third item: %+v", items[2])
	}
	if items[3].Pos.File != 2 {
		t.Fatalf("files must group: %+v", items[3])
	}
}

func TestBagMerge(t *testing.T) {
	a := NewBag(1)
	a.Add(Diagnostic{Phase: 1})
	b := NewBag(2)
	b.Add(Diagnostic{Phase: 2})
	b.Add(Diagnostic{Phase: 3})
	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("merge lost diagnostics: %d", a.Len())
	}
}
