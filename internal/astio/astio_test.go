package astio

import (
	"bytes"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"ucc/internal/ast"
	"ucc/internal/source"
)

// buildProgram covers every declaration, statement, and expression kind
// the wire format carries.
func buildProgram(b *ast.Builder) *ast.Program {
	pos := func(line uint32) source.Pos { return source.Pos{File: 1, Line: line} }
	tn := func(line uint32, name string) ast.TypeName {
		return b.NewSimpleTypeName(pos(line), b.NewName(pos(line), name))
	}
	ident := func(line uint32, name string) ast.Expr {
		return b.NewIdent(pos(line), b.NewName(pos(line), name))
	}

	point := b.NewStructDecl(pos(1), b.NewName(pos(1), "point"), []*ast.VarDecl{
		b.NewVarDecl(pos(2), tn(2, "int"), b.NewName(pos(2), "x")),
		b.NewVarDecl(pos(3), b.NewArrayTypeName(pos(3), tn(3, "float")), b.NewName(pos(3), "w")),
	})

	body := []ast.Stmt{
		b.NewExprStmt(pos(7), b.NewBinary(pos(7), ast.BinAssign, ident(7, "p"),
			b.NewNewObject(pos(7), b.NewName(pos(7), "point"), nil))),
		b.NewExprStmt(pos(8), b.NewBinary(pos(8), ast.BinAssign, ident(8, "a"),
			b.NewNewArray(pos(8), tn(8, "int"),
				[]ast.Expr{b.NewLiteral(pos(8), ast.LitInt, "1")}))),
		b.NewIf(pos(9),
			b.NewBinary(pos(9), ast.BinNe, ident(9, "p"), b.NewNullLiteral(pos(9))),
			b.NewBlock(pos(9), []ast.Stmt{
				b.NewExprStmt(pos(10), b.NewBinary(pos(10), ast.BinAssign,
					b.NewFieldAccess(pos(10), ident(10, "p"), b.NewName(pos(10), "x")),
					b.NewIndex(pos(10), ident(10, "a"), b.NewLiteral(pos(10), ast.LitInt, "0")))),
			}),
			b.NewBlock(pos(11), []ast.Stmt{
				b.NewReturn(pos(12), nil),
			})),
		b.NewWhile(pos(13), b.NewLiteral(pos(13), ast.LitBool, "true"),
			b.NewBlock(pos(13), []ast.Stmt{b.NewBreak(pos(14))})),
		b.NewFor(pos(15), nil,
			b.NewBinary(pos(15), ast.BinLt, ident(15, "n"), b.NewLiteral(pos(15), ast.LitInt, "10L")),
			b.NewUnary(pos(15), ast.UnaryIncr, ident(15, "n")),
			b.NewBlock(pos(15), []ast.Stmt{b.NewContinue(pos(16))})),
		b.NewExprStmt(pos(17), b.NewCall(pos(17), b.NewName(pos(17), "println"),
			[]ast.Expr{b.NewLiteral(pos(17), ast.LitString, `"hi"`)})),
		b.NewExprStmt(pos(18), b.NewUnary(pos(18), ast.UnaryID, ident(18, "p"))),
	}
	fn := b.NewFuncDecl(pos(5), tn(5, "void"), b.NewName(pos(5), "main"),
		[]*ast.Param{
			b.NewParam(pos(5), b.NewArrayTypeName(pos(5), tn(5, "string")),
				b.NewName(pos(5), "args")),
		},
		[]*ast.VarDecl{
			b.NewVarDecl(pos(6), tn(6, "point"), b.NewName(pos(6), "p")),
			b.NewVarDecl(pos(6), b.NewArrayTypeName(pos(6), tn(6, "int")), b.NewName(pos(6), "a")),
			b.NewVarDecl(pos(6), tn(6, "long"), b.NewName(pos(6), "n")),
		},
		b.NewBlock(pos(5), body))

	return b.NewProgram(pos(1), []ast.Decl{point, fn})
}

func TestRoundTrip(t *testing.T) {
	b := ast.NewBuilder(0)
	prog := buildProgram(b)

	var first bytes.Buffer
	if err := Encode(&first, "demo.uc", prog); err != nil {
		t.Fatalf("encode: %v", err)
	}

	fset := source.NewFileSet()
	decoded, file, err := Decode(bytes.NewReader(first.Bytes()), ast.NewBuilder(0), fset)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fset.Name(file) != "demo.uc" {
		t.Fatalf("recorded path lost: %q", fset.Name(file))
	}
	if len(decoded.Decls) != 2 {
		t.Fatalf("got %d decls, want 2", len(decoded.Decls))
	}
	fn, ok := decoded.Decls[1].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("second decl is %T, want *ast.FuncDecl", decoded.Decls[1])
	}
	if fn.Pos().File != file || fn.Pos().Line != 5 {
		t.Fatalf("position not restored: %+v", fn.Pos())
	}

	// Re-encoding the decoded tree must reproduce the payload exactly;
	// wire encoding is deterministic, so byte equality means structural
	// equality.
	var second bytes.Buffer
	if err := Encode(&second, "demo.uc", decoded); err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatalf("round trip changed the payload: %d bytes vs %d bytes",
			first.Len(), second.Len())
	}
}

func TestDecodeRejectsBadHeader(t *testing.T) {
	cases := []struct {
		name string
		file wireFile
	}{
		{"bad magic", wireFile{Magic: "nope", Version: Version}},
		{"bad version", wireFile{Magic: Magic, Version: Version + 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := msgpack.NewEncoder(&buf).Encode(&c.file); err != nil {
				t.Fatalf("encode: %v", err)
			}
			_, _, err := Decode(&buf, ast.NewBuilder(0), source.NewFileSet())
			if err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte{0xc1, 0xff, 0x00}), ast.NewBuilder(0), source.NewFileSet())
	if err == nil {
		t.Fatalf("expected an error")
	}
}

func TestDecodeMissingPathFallsBack(t *testing.T) {
	var buf bytes.Buffer
	wf := wireFile{Magic: Magic, Version: Version}
	if err := msgpack.NewEncoder(&buf).Encode(&wf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	fset := source.NewFileSet()
	_, file, err := Decode(&buf, ast.NewBuilder(0), fset)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fset.Name(file) != "<unknown>" {
		t.Fatalf("missing path not defaulted: %q", fset.Name(file))
	}
}
