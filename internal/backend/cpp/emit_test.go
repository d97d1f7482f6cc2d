package cpp

import (
	"strings"
	"testing"

	"ucc/internal/ast"
	"ucc/internal/diag"
	"ucc/internal/sema"
	"ucc/internal/source"
	"ucc/internal/symbols"
)

func epos(line uint32) source.Pos {
	return source.Pos{File: 1, Line: line}
}

func tn(b *ast.Builder, line uint32, name string) ast.TypeName {
	return b.NewSimpleTypeName(epos(line), b.NewName(epos(line), name))
}

// analyzed runs semantic analysis and fails the test on any diagnostic;
// emission is only defined over clean trees.
func analyzed(t *testing.T, b *ast.Builder, decls ...ast.Decl) *ast.Program {
	t.Helper()
	prog := b.NewProgram(epos(1), decls)
	bag := diag.NewBag(64)
	sema.Analyze(prog, symbols.NewGlobalEnv(), diag.BagReporter{Bag: bag})
	if bag.Len() != 0 {
		t.Fatalf("analysis reported %d diagnostics: %v", bag.Len(), bag.Items())
	}
	return prog
}

func TestEmitProgram(t *testing.T) {
	b := ast.NewBuilder(0)

	point := b.NewStructDecl(epos(1), b.NewName(epos(1), "point"), []*ast.VarDecl{
		b.NewVarDecl(epos(2), tn(b, 2, "int"), b.NewName(epos(2), "x")),
		b.NewVarDecl(epos(3), tn(b, 3, "int"), b.NewName(epos(3), "y")),
	})

	add2 := b.NewFuncDecl(epos(6), tn(b, 6, "int"), b.NewName(epos(6), "add2"),
		[]*ast.Param{
			b.NewParam(epos(6), tn(b, 6, "int"), b.NewName(epos(6), "a")),
			b.NewParam(epos(6), tn(b, 6, "int"), b.NewName(epos(6), "b")),
		},
		nil,
		b.NewBlock(epos(6), []ast.Stmt{
			b.NewReturn(epos(7), b.NewBinary(epos(7), ast.BinAdd,
				b.NewIdent(epos(7), b.NewName(epos(7), "a")),
				b.NewIdent(epos(7), b.NewName(epos(7), "b")))),
		}))

	ident := func(line uint32, name string) ast.Expr {
		return b.NewIdent(epos(line), b.NewName(epos(line), name))
	}
	num := func(line uint32, text string) ast.Expr {
		return b.NewLiteral(epos(line), ast.LitInt, text)
	}

	mainBody := []ast.Stmt{
		b.NewExprStmt(epos(14), b.NewBinary(epos(14), ast.BinAssign, ident(14, "p"),
			b.NewNewObject(epos(14), b.NewName(epos(14), "point"),
				[]ast.Expr{num(14, "1"), num(14, "2")}))),
		b.NewExprStmt(epos(15), b.NewBinary(epos(15), ast.BinAssign, ident(15, "a"),
			b.NewNewArray(epos(15), tn(b, 15, "int"),
				[]ast.Expr{num(15, "1"), num(15, "2")}))),
		b.NewExprStmt(epos(16), b.NewBinary(epos(16), ast.BinPush, ident(16, "a"), num(16, "3"))),
		b.NewExprStmt(epos(17), b.NewBinary(epos(17), ast.BinAssign, ident(17, "i"),
			b.NewIndex(epos(17), ident(17, "a"), num(17, "0")))),
		b.NewWhile(epos(18),
			b.NewBinary(epos(18), ast.BinLt, ident(18, "i"),
				b.NewFieldAccess(epos(18), ident(18, "p"), b.NewName(epos(18), "x"))),
			b.NewBlock(epos(18), []ast.Stmt{
				b.NewExprStmt(epos(19), b.NewBinary(epos(19), ast.BinAssign, ident(19, "i"),
					b.NewBinary(epos(19), ast.BinAdd, ident(19, "i"), num(19, "1")))),
			})),
		b.NewFor(epos(21),
			b.NewBinary(epos(21), ast.BinAssign, ident(21, "i"), num(21, "0")),
			b.NewBinary(epos(21), ast.BinLt, ident(21, "i"),
				b.NewFieldAccess(epos(21), ident(21, "a"), b.NewName(epos(21), "length"))),
			b.NewUnary(epos(21), ast.UnaryIncr, ident(21, "i")),
			b.NewBlock(epos(21), []ast.Stmt{
				b.NewExprStmt(epos(22), b.NewCall(epos(22), b.NewName(epos(22), "print"),
					[]ast.Expr{b.NewCall(epos(22), b.NewName(epos(22), "int_to_string"),
						[]ast.Expr{ident(22, "i")})})),
			})),
		b.NewIf(epos(24),
			b.NewBinary(epos(24), ast.BinEq, ident(24, "i"), num(24, "2")),
			b.NewBlock(epos(24), []ast.Stmt{
				b.NewExprStmt(epos(25), b.NewCall(epos(25), b.NewName(epos(25), "println"),
					[]ast.Expr{b.NewLiteral(epos(25), ast.LitString, `"done"`)})),
			}),
			b.NewBlock(epos(26), []ast.Stmt{
				b.NewReturn(epos(27), nil),
			})),
	}
	main := b.NewFuncDecl(epos(10), tn(b, 10, "void"), b.NewName(epos(10), "main"),
		[]*ast.Param{
			b.NewParam(epos(10), b.NewArrayTypeName(epos(10), tn(b, 10, "string")),
				b.NewName(epos(10), "args")),
		},
		[]*ast.VarDecl{
			b.NewVarDecl(epos(11), tn(b, 11, "point"), b.NewName(epos(11), "p")),
			b.NewVarDecl(epos(12), tn(b, 12, "int"), b.NewName(epos(12), "i")),
			b.NewVarDecl(epos(13), b.NewArrayTypeName(epos(13), tn(b, 13, "int")),
				b.NewName(epos(13), "a")),
		},
		b.NewBlock(epos(10), mainBody))

	prog := analyzed(t, b, point, add2, main)
	got := EmitProgram(prog)

	want := `#include "defs.h"
#include "ref.h"
#include "array.h"
#include "library.h"
#include "expr.h"

namespace uc {

  // Forward type declarations

  struct UC_TYPEDEF(point);

  // Forward function declarations

  UC_PRIMITIVE(int)
    UC_FUNCTION(add2)(UC_PRIMITIVE(int) UC_VAR(a),UC_PRIMITIVE(int) UC_VAR(b));
  UC_PRIMITIVE(void)
    UC_FUNCTION(main)(UC_ARRAY(UC_PRIMITIVE(string)) UC_VAR(args));

  // Full type definitions

  struct UC_TYPEDEF(point) {
    UC_PRIMITIVE(int) UC_VAR(x);
    UC_PRIMITIVE(int) UC_VAR(y);
    UC_TYPEDEF(point)() = default;
    UC_TYPEDEF(point)(const UC_PRIMITIVE(int) &var0, const UC_PRIMITIVE(int) &var1) {
      UC_VAR(x) = var0;
      UC_VAR(y) = var1;
    }
    UC_PRIMITIVE(boolean) operator==(const UC_TYPEDEF(point) &rhs) const {
      return UC_VAR(x) == rhs.UC_VAR(x) && UC_VAR(y) == rhs.UC_VAR(y);
    }
    UC_PRIMITIVE(boolean) operator!=(const UC_TYPEDEF(point) &rhs) const {
      return !((*this)==rhs);
    }
  };

  // Full function definitions

  UC_PRIMITIVE(int)
    UC_FUNCTION(add2)(UC_PRIMITIVE(int) UC_VAR(a),UC_PRIMITIVE(int) UC_VAR(b)) {
      return uc_add(UC_VAR(a), UC_VAR(b));
  }
  UC_PRIMITIVE(void)
    UC_FUNCTION(main)(UC_ARRAY(UC_PRIMITIVE(string)) UC_VAR(args)) {
      UC_REFERENCE(point) UC_VAR(p);
      UC_PRIMITIVE(int) UC_VAR(i);
      UC_ARRAY(UC_PRIMITIVE(int)) UC_VAR(a);
      UC_VAR(p) = uc_make_object<UC_REFERENCE(point)>(1, 2);
      UC_VAR(a) = uc_make_array_of<UC_PRIMITIVE(int)>(1, 2);
      uc_array_push(UC_VAR(a), 3);
      UC_VAR(i) = uc_array_index(UC_VAR(a), 0);
      while ((UC_VAR(i)) < (UC_VAR(p)->UC_VAR(x))) {
        UC_VAR(i) = uc_add(UC_VAR(i), 1);
      }
      for (UC_VAR(i) = 0; (UC_VAR(i)) < (uc_length_field(UC_VAR(a))); ++(UC_VAR(i))) {
        UC_FUNCTION(print)(UC_FUNCTION(int_to_string)(UC_VAR(i)));
      }
      if ((UC_VAR(i)) == (2)) {
        UC_FUNCTION(println)("done"s);
      } else {
        return ;
      }
  }
} // namespace uc

int main(int argc, char **argv) {
  uc::UC_ARRAY(uc::UC_PRIMITIVE(string)) args = uc::uc_make_array_of<uc::UC_PRIMITIVE(string)>();
  for (int i = 1; i < argc; i++) {
    uc::uc_array_push(args, uc::UC_PRIMITIVE(string)(argv[i]));
  }
  uc::UC_FUNCTION(main)(args);
  return 0;
}
`
	if got != want {
		t.Fatalf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestEmitEmptyStruct(t *testing.T) {
	b := ast.NewBuilder(0)
	empty := b.NewStructDecl(epos(1), b.NewName(epos(1), "unit"), nil)
	prog := analyzed(t, b, empty)
	got := EmitProgram(prog)

	wantDef := `  struct UC_TYPEDEF(unit) {
    UC_TYPEDEF(unit)() = default;
    UC_PRIMITIVE(boolean) operator==(const UC_TYPEDEF(unit) &rhs) const {
      return true;
    }
    UC_PRIMITIVE(boolean) operator!=(const UC_TYPEDEF(unit) &rhs) const {
      return !((*this)==rhs);
    }
  };
`
	if !strings.Contains(got, wantDef) {
		t.Fatalf("empty struct definition missing or wrong:\n%s", got)
	}
}

func TestEmitForWithOmittedParts(t *testing.T) {
	b := ast.NewBuilder(0)
	loop := b.NewFor(epos(2), nil, nil, nil,
		b.NewBlock(epos(2), []ast.Stmt{b.NewBreak(epos(3))}))
	fn := b.NewFuncDecl(epos(1), tn(b, 1, "void"), b.NewName(epos(1), "f"),
		nil, nil, b.NewBlock(epos(1), []ast.Stmt{loop}))
	prog := analyzed(t, b, fn)
	got := EmitProgram(prog)

	want := `      for (; ; ) {
        break;
      }
`
	if !strings.Contains(got, want) {
		t.Fatalf("for loop with omitted parts emitted wrong:\n%s", got)
	}
}
