package astio

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"ucc/internal/ast"
)

// Encode serializes prog as a .ucast payload. path records the source
// file the tree was parsed from and is carried through for diagnostics.
func Encode(w io.Writer, path string, prog *ast.Program) error {
	wf := &wireFile{
		Magic:   Magic,
		Version: Version,
		Path:    path,
	}
	for _, d := range prog.Decls {
		wd, err := encodeDecl(d)
		if err != nil {
			return err
		}
		wf.Decls = append(wf.Decls, wd)
	}
	return msgpack.NewEncoder(w).Encode(wf)
}

func encodeDecl(d ast.Decl) (*wireDecl, error) {
	switch d := d.(type) {
	case *ast.StructDecl:
		wd := &wireDecl{Kind: "struct", Line: d.Pos().Line, Name: d.Name.Raw}
		for _, f := range d.Fields {
			wd.Fields = append(wd.Fields, encodeVar(f.Pos().Line, f.Name.Raw, f.VarType))
		}
		return wd, nil
	case *ast.FuncDecl:
		wd := &wireDecl{
			Kind: "func",
			Line: d.Pos().Line,
			Name: d.Name.Raw,
			Ret:  encodeType(d.RetType),
		}
		for _, p := range d.Params {
			wd.Params = append(wd.Params, encodeVar(p.Pos().Line, p.Name.Raw, p.VarType))
		}
		for _, v := range d.Vars {
			wd.Vars = append(wd.Vars, encodeVar(v.Pos().Line, v.Name.Raw, v.VarType))
		}
		wd.Body = encodeStmts(d.Body)
		return wd, nil
	}
	return nil, fmt.Errorf("astio: unknown declaration %T", d)
}

func encodeVar(line uint32, name string, tn ast.TypeName) *wireVar {
	return &wireVar{Line: line, Name: name, Type: encodeType(tn)}
}

func encodeType(tn ast.TypeName) *wireType {
	switch t := tn.(type) {
	case *ast.SimpleTypeName:
		return &wireType{Line: t.Pos().Line, Name: t.Name.Raw}
	case *ast.ArrayTypeName:
		return &wireType{Line: t.Pos().Line, Array: encodeType(t.Elem)}
	}
	return nil
}

func encodeStmts(b *ast.Block) []*wireStmt {
	if b == nil {
		return nil
	}
	out := make([]*wireStmt, 0, len(b.Stmts))
	for _, s := range b.Stmts {
		out = append(out, encodeStmt(s))
	}
	return out
}

func encodeStmt(s ast.Stmt) *wireStmt {
	switch s := s.(type) {
	case *ast.If:
		return &wireStmt{
			Kind: stmtIf, Line: s.Pos().Line,
			Test: encodeExpr(s.Test),
			Body: encodeStmts(s.Then),
			Else: encodeStmts(s.Else),
		}
	case *ast.While:
		return &wireStmt{
			Kind: stmtWhile, Line: s.Pos().Line,
			Test: encodeExpr(s.Test),
			Body: encodeStmts(s.Body),
		}
	case *ast.For:
		return &wireStmt{
			Kind: stmtFor, Line: s.Pos().Line,
			Init:   encodeExpr(s.Init),
			Test:   encodeExpr(s.Test),
			Update: encodeExpr(s.Update),
			Body:   encodeStmts(s.Body),
		}
	case *ast.Break:
		return &wireStmt{Kind: stmtBreak, Line: s.Pos().Line}
	case *ast.Continue:
		return &wireStmt{Kind: stmtContinue, Line: s.Pos().Line}
	case *ast.Return:
		return &wireStmt{Kind: stmtReturn, Line: s.Pos().Line, Expr: encodeExpr(s.Expr)}
	case *ast.ExprStmt:
		return &wireStmt{Kind: stmtExpr, Line: s.Pos().Line, Expr: encodeExpr(s.Expr)}
	}
	return nil
}

func encodeExpr(e ast.Expr) *wireExpr {
	if e == nil {
		return nil
	}
	switch e := e.(type) {
	case *ast.Literal:
		return &wireExpr{Kind: litNames[e.Kind], Line: e.Pos().Line, Text: e.Text}
	case *ast.Ident:
		return &wireExpr{Kind: exprIdent, Line: e.Pos().Line, Name: e.Name.Raw}
	case *ast.Call:
		return &wireExpr{
			Kind: exprCall, Line: e.Pos().Line,
			Name: e.Name.Raw, Args: encodeExprs(e.Args),
		}
	case *ast.NewObject:
		return &wireExpr{
			Kind: exprNew, Line: e.Pos().Line,
			Name: e.Name.Raw, Args: encodeExprs(e.Args),
		}
	case *ast.NewArray:
		return &wireExpr{
			Kind: exprNewArray, Line: e.Pos().Line,
			Elem: encodeType(e.Elem), Args: encodeExprs(e.Args),
		}
	case *ast.FieldAccess:
		return &wireExpr{
			Kind: exprField, Line: e.Pos().Line,
			Recv: encodeExpr(e.Receiver), Name: e.Field.Raw,
		}
	case *ast.Index:
		return &wireExpr{
			Kind: exprIndex, Line: e.Pos().Line,
			Recv: encodeExpr(e.Receiver), Index: encodeExpr(e.Index),
		}
	case *ast.Unary:
		return &wireExpr{
			Kind: exprUnary, Line: e.Pos().Line,
			Op: e.Op.String(), Args: []*wireExpr{encodeExpr(e.Operand)},
		}
	case *ast.Binary:
		return &wireExpr{
			Kind: exprBinary, Line: e.Pos().Line,
			Op: e.Op.String(), LHS: encodeExpr(e.LHS), RHS: encodeExpr(e.RHS),
		}
	}
	return nil
}

func encodeExprs(exprs []ast.Expr) []*wireExpr {
	out := make([]*wireExpr, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, encodeExpr(e))
	}
	return out
}
