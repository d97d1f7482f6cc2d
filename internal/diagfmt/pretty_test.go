package diagfmt

import (
	"strings"
	"testing"

	"ucc/internal/ast"
	"ucc/internal/diag"
	"ucc/internal/source"
)

func TestPrettyAlignment(t *testing.T) {
	fset := source.NewFileSet()
	short := fset.Add("a.uc")
	long := fset.Add("examples/longer.uc")

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Phase: 1, Code: diag.SemRedefinedType, Severity: diag.SevError,
		Pos: source.Pos{File: short, Line: 3}, Message: "redefinition of type point",
	})
	bag.Add(diag.Diagnostic{
		Phase: 6, Code: diag.SemBadCondition, Severity: diag.SevWarning,
		Pos: source.Pos{File: long, Line: 12}, Message: "suspicious condition",
	})
	bag.Sort()

	var sb strings.Builder
	Pretty(&sb, bag, fset, PrettyOpts{})

	// The location column pads to the widest entry, 21 columns here.
	want := "a.uc:3" + strings.Repeat(" ", 15) + "  ERROR[1001] phase 1: redefinition of type point\n" +
		"examples/longer.uc:12  WARNING[1210] phase 6: suspicious condition\n"
	if sb.String() != want {
		t.Fatalf("output mismatch\n--- got ---\n%s--- want ---\n%s", sb.String(), want)
	}
}

func TestPrettyBasename(t *testing.T) {
	fset := source.NewFileSet()
	id := fset.Add("deep/nested/file.uc")
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Phase: 2, Code: diag.SemUndefinedType, Severity: diag.SevError,
		Pos: source.Pos{File: id, Line: 7}, Message: "undefined type foo",
	})

	var sb strings.Builder
	Pretty(&sb, bag, fset, PrettyOpts{PathMode: PathModeBasename})
	if !strings.HasPrefix(sb.String(), "file.uc:7  ") {
		t.Fatalf("basename mode not applied: %q", sb.String())
	}
}

func TestPrettyUnknownFile(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Phase: 1, Code: diag.SemRedefinedType, Severity: diag.SevError,
		Pos: source.Pos{Line: 1}, Message: "x",
	})
	var sb strings.Builder
	Pretty(&sb, bag, source.NewFileSet(), PrettyOpts{})
	if !strings.HasPrefix(sb.String(), "<unknown>:1") {
		t.Fatalf("unknown file not labelled: %q", sb.String())
	}
}

func TestSummaryPlain(t *testing.T) {
	var sb strings.Builder
	Summary(&sb, SummaryStats{Files: 3, Clean: 2, Errors: 1, Warnings: 4}, false)
	want := "files 3  clean 2  errors 1  warnings 4  failed\n"
	if sb.String() != want {
		t.Fatalf("got %q, want %q", sb.String(), want)
	}

	sb.Reset()
	Summary(&sb, SummaryStats{Files: 1, Clean: 1}, false)
	if sb.String() != "files 1  clean 1  errors 0  warnings 0  ok\n" {
		t.Fatalf("got %q", sb.String())
	}
}

func miniProgram(b *ast.Builder) *ast.Program {
	pos := source.Pos{File: 1, Line: 1}
	fn := b.NewFuncDecl(pos,
		b.NewSimpleTypeName(pos, b.NewName(pos, "void")),
		b.NewName(pos, "f"),
		nil, nil,
		b.NewBlock(pos, []ast.Stmt{
			b.NewReturn(pos, nil),
		}))
	return b.NewProgram(pos, []ast.Decl{fn})
}

func TestTree(t *testing.T) {
	b := ast.NewBuilder(0)
	prog := miniProgram(b)

	var sb strings.Builder
	Tree(&sb, prog)

	want := `Program {
  FuncDecl f {
    TypeName void {
      Name void
    }
    Name f
    Block {
      Return
    }
  }
}
`
	if sb.String() != want {
		t.Fatalf("tree mismatch\n--- got ---\n%s--- want ---\n%s", sb.String(), want)
	}
}

func TestGraph(t *testing.T) {
	b := ast.NewBuilder(0)
	prog := miniProgram(b)

	var sb strings.Builder
	Graph(&sb, prog)
	out := sb.String()

	if !strings.HasPrefix(out, "digraph ucast {\n") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("not a digraph: %q", out)
	}
	for _, want := range []string{
		`[label="Program"]`,
		`[label="FuncDecl f"]`,
		`[label="Return"]`,
		" -> ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("graph missing %q:\n%s", want, out)
		}
	}
}
