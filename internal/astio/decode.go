package astio

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"ucc/internal/ast"
	"ucc/internal/source"
)

// decoder rebuilds tree nodes through a Builder, stamping every node
// with the file the payload was recorded for.
type decoder struct {
	b    *ast.Builder
	file source.FileID
}

// Decode reads a .ucast payload and rebuilds the tree through b. The
// source path recorded at encode time is registered in fset so that
// node positions render against the original source file. Decode must
// not run concurrently with other writers of fset.
func Decode(r io.Reader, b *ast.Builder, fset *source.FileSet) (*ast.Program, source.FileID, error) {
	var wf wireFile
	if err := msgpack.NewDecoder(r).Decode(&wf); err != nil {
		return nil, source.NoFileID, fmt.Errorf("astio: decode: %w", err)
	}
	if wf.Magic != Magic {
		return nil, source.NoFileID, fmt.Errorf("astio: bad magic %q", wf.Magic)
	}
	if wf.Version != Version {
		return nil, source.NoFileID, fmt.Errorf("astio: unsupported version %d (want %d)", wf.Version, Version)
	}

	path := wf.Path
	if path == "" {
		path = "<unknown>"
	}
	file := fset.Add(path)

	d := &decoder{b: b, file: file}
	decls := make([]ast.Decl, 0, len(wf.Decls))
	var pos source.Pos
	for i, wd := range wf.Decls {
		decl, err := d.decodeDecl(wd)
		if err != nil {
			return nil, file, err
		}
		if i == 0 {
			pos = decl.Pos()
		}
		decls = append(decls, decl)
	}
	return d.b.NewProgram(pos, decls), file, nil
}

func (d *decoder) pos(line uint32) source.Pos {
	return source.Pos{File: d.file, Line: line}
}

func (d *decoder) decodeDecl(wd *wireDecl) (ast.Decl, error) {
	switch wd.Kind {
	case "struct":
		fields, err := d.decodeVars(wd.Fields)
		if err != nil {
			return nil, err
		}
		return d.b.NewStructDecl(d.pos(wd.Line), d.b.NewName(d.pos(wd.Line), wd.Name), fields), nil
	case "func":
		ret, err := d.decodeType(wd.Ret)
		if err != nil {
			return nil, err
		}
		params := make([]*ast.Param, 0, len(wd.Params))
		for _, wp := range wd.Params {
			tn, err := d.decodeType(wp.Type)
			if err != nil {
				return nil, err
			}
			params = append(params,
				d.b.NewParam(d.pos(wp.Line), tn, d.b.NewName(d.pos(wp.Line), wp.Name)))
		}
		vars, err := d.decodeVars(wd.Vars)
		if err != nil {
			return nil, err
		}
		body, err := d.decodeBlock(wd.Line, wd.Body)
		if err != nil {
			return nil, err
		}
		return d.b.NewFuncDecl(d.pos(wd.Line), ret,
			d.b.NewName(d.pos(wd.Line), wd.Name), params, vars, body), nil
	}
	return nil, fmt.Errorf("astio: unknown declaration kind %q", wd.Kind)
}

func (d *decoder) decodeVars(ws []*wireVar) ([]*ast.VarDecl, error) {
	out := make([]*ast.VarDecl, 0, len(ws))
	for _, wv := range ws {
		tn, err := d.decodeType(wv.Type)
		if err != nil {
			return nil, err
		}
		out = append(out,
			d.b.NewVarDecl(d.pos(wv.Line), tn, d.b.NewName(d.pos(wv.Line), wv.Name)))
	}
	return out, nil
}

func (d *decoder) decodeType(wt *wireType) (ast.TypeName, error) {
	if wt == nil {
		return nil, fmt.Errorf("astio: missing type name")
	}
	if wt.Array != nil {
		elem, err := d.decodeType(wt.Array)
		if err != nil {
			return nil, err
		}
		return d.b.NewArrayTypeName(d.pos(wt.Line), elem), nil
	}
	return d.b.NewSimpleTypeName(d.pos(wt.Line), d.b.NewName(d.pos(wt.Line), wt.Name)), nil
}

func (d *decoder) decodeBlock(line uint32, ws []*wireStmt) (*ast.Block, error) {
	stmts := make([]ast.Stmt, 0, len(ws))
	for _, w := range ws {
		s, err := d.decodeStmt(w)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return d.b.NewBlock(d.pos(line), stmts), nil
}

func (d *decoder) decodeStmt(w *wireStmt) (ast.Stmt, error) {
	switch w.Kind {
	case stmtIf:
		test, err := d.decodeExpr(w.Test)
		if err != nil {
			return nil, err
		}
		then, err := d.decodeBlock(w.Line, w.Body)
		if err != nil {
			return nil, err
		}
		els, err := d.decodeBlock(w.Line, w.Else)
		if err != nil {
			return nil, err
		}
		return d.b.NewIf(d.pos(w.Line), test, then, els), nil
	case stmtWhile:
		test, err := d.decodeExpr(w.Test)
		if err != nil {
			return nil, err
		}
		body, err := d.decodeBlock(w.Line, w.Body)
		if err != nil {
			return nil, err
		}
		return d.b.NewWhile(d.pos(w.Line), test, body), nil
	case stmtFor:
		init, err := d.decodeExpr(w.Init)
		if err != nil {
			return nil, err
		}
		test, err := d.decodeExpr(w.Test)
		if err != nil {
			return nil, err
		}
		update, err := d.decodeExpr(w.Update)
		if err != nil {
			return nil, err
		}
		body, err := d.decodeBlock(w.Line, w.Body)
		if err != nil {
			return nil, err
		}
		return d.b.NewFor(d.pos(w.Line), init, test, update, body), nil
	case stmtBreak:
		return d.b.NewBreak(d.pos(w.Line)), nil
	case stmtContinue:
		return d.b.NewContinue(d.pos(w.Line)), nil
	case stmtReturn:
		expr, err := d.decodeExpr(w.Expr)
		if err != nil {
			return nil, err
		}
		return d.b.NewReturn(d.pos(w.Line), expr), nil
	case stmtExpr:
		expr, err := d.decodeExpr(w.Expr)
		if err != nil {
			return nil, err
		}
		return d.b.NewExprStmt(d.pos(w.Line), expr), nil
	}
	return nil, fmt.Errorf("astio: unknown statement kind %q", w.Kind)
}

func (d *decoder) decodeExpr(w *wireExpr) (ast.Expr, error) {
	if w == nil {
		return nil, nil
	}
	if kind, ok := litKinds[w.Kind]; ok {
		return d.b.NewLiteral(d.pos(w.Line), kind, w.Text), nil
	}
	switch w.Kind {
	case exprIdent:
		return d.b.NewIdent(d.pos(w.Line), d.b.NewName(d.pos(w.Line), w.Name)), nil
	case exprCall:
		args, err := d.decodeExprs(w.Args)
		if err != nil {
			return nil, err
		}
		return d.b.NewCall(d.pos(w.Line), d.b.NewName(d.pos(w.Line), w.Name), args), nil
	case exprNew:
		args, err := d.decodeExprs(w.Args)
		if err != nil {
			return nil, err
		}
		return d.b.NewNewObject(d.pos(w.Line), d.b.NewName(d.pos(w.Line), w.Name), args), nil
	case exprNewArray:
		elem, err := d.decodeType(w.Elem)
		if err != nil {
			return nil, err
		}
		args, err := d.decodeExprs(w.Args)
		if err != nil {
			return nil, err
		}
		return d.b.NewNewArray(d.pos(w.Line), elem, args), nil
	case exprField:
		recv, err := d.decodeExpr(w.Recv)
		if err != nil {
			return nil, err
		}
		return d.b.NewFieldAccess(d.pos(w.Line), recv, d.b.NewName(d.pos(w.Line), w.Name)), nil
	case exprIndex:
		recv, err := d.decodeExpr(w.Recv)
		if err != nil {
			return nil, err
		}
		index, err := d.decodeExpr(w.Index)
		if err != nil {
			return nil, err
		}
		return d.b.NewIndex(d.pos(w.Line), recv, index), nil
	case exprUnary:
		op, ok := unaryOps[w.Op]
		if !ok {
			return nil, fmt.Errorf("astio: unknown unary operator %q", w.Op)
		}
		if len(w.Args) != 1 {
			return nil, fmt.Errorf("astio: unary operator %q needs one operand, got %d", w.Op, len(w.Args))
		}
		operand, err := d.decodeExpr(w.Args[0])
		if err != nil {
			return nil, err
		}
		return d.b.NewUnary(d.pos(w.Line), op, operand), nil
	case exprBinary:
		op, ok := binaryOps[w.Op]
		if !ok {
			return nil, fmt.Errorf("astio: unknown binary operator %q", w.Op)
		}
		lhs, err := d.decodeExpr(w.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := d.decodeExpr(w.RHS)
		if err != nil {
			return nil, err
		}
		return d.b.NewBinary(d.pos(w.Line), op, lhs, rhs), nil
	}
	return nil, fmt.Errorf("astio: unknown expression kind %q", w.Kind)
}

func (d *decoder) decodeExprs(ws []*wireExpr) ([]ast.Expr, error) {
	out := make([]ast.Expr, 0, len(ws))
	for _, w := range ws {
		e, err := d.decodeExpr(w)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
