package sema

import (
	"ucc/internal/ast"
	"ucc/internal/diag"
	"ucc/internal/types"
)

// resolveTypes resolves every type name in the tree to a concrete type,
// fills in function return and parameter types, and types the allocation
// expressions whose type is syntactically determined.
func resolveTypes(prog *ast.Program, ctx Context) {
	for _, decl := range prog.Decls {
		switch d := decl.(type) {
		case *ast.StructDecl:
			resolveStructTypes(d, ctx)
		case *ast.FuncDecl:
			resolveFuncTypes(d, ctx)
		}
	}
}

func resolveStructTypes(d *ast.StructDecl, ctx Context) {
	fields := make([]types.Field, 0, len(d.Fields))
	for _, f := range d.Fields {
		resolveTypeName(f.VarType, ctx)
		fields = append(fields, types.Field{Name: f.Name.Raw, Type: f.VarType.Resolved()})
	}
	// Copy the resolved field list onto the type object so that field
	// lookups and constructor checks need no access to the declaration.
	if ut, ok := d.Type.(*types.User); ok {
		ut.SetFields(fields)
	}
}

func resolveFuncTypes(d *ast.FuncDecl, ctx Context) {
	rctx := ctx
	rctx.InReturn = true
	resolveTypeName(d.RetType, rctx)
	d.Func.Ret = d.RetType.Resolved()

	// Rebuilt from scratch so a repeated run cannot double the list.
	d.Func.ResetParams()
	for _, p := range d.Params {
		resolveTypeName(p.VarType, ctx)
		d.Func.AddParamTypes(p.VarType.Resolved())
	}
	for _, v := range d.Vars {
		resolveTypeName(v.VarType, ctx)
	}
	resolveBlockTypes(d.Body, ctx)
}

func resolveTypeName(tn ast.TypeName, ctx Context) {
	switch t := tn.(type) {
	case *ast.SimpleTypeName:
		if t.Name.Raw == "void" && !ctx.InReturn {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemVoidUsage, t.Pos(),
				"void can only be used as return type")
		}
		t.SetResolved(ctx.Globals.LookupType(ctx.Reporter, ctx.Phase, t.Pos(), t.Name.Raw))
	case *ast.ArrayTypeName:
		resolveTypeName(t.Elem, ctx)
		t.SetResolved(types.ArrayOf(t.Elem.Resolved()))
	}
}

func resolveBlockTypes(b *ast.Block, ctx Context) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		resolveStmtTypes(s, ctx)
	}
}

func resolveStmtTypes(s ast.Stmt, ctx Context) {
	switch s := s.(type) {
	case *ast.Block:
		resolveBlockTypes(s, ctx)
	case *ast.If:
		resolveExprTypes(s.Test, ctx)
		resolveBlockTypes(s.Then, ctx)
		resolveBlockTypes(s.Else, ctx)
	case *ast.While:
		resolveExprTypes(s.Test, ctx)
		resolveBlockTypes(s.Body, ctx)
	case *ast.For:
		resolveExprTypes(s.Init, ctx)
		resolveExprTypes(s.Test, ctx)
		resolveExprTypes(s.Update, ctx)
		resolveBlockTypes(s.Body, ctx)
	case *ast.Return:
		resolveExprTypes(s.Expr, ctx)
	case *ast.ExprStmt:
		resolveExprTypes(s.Expr, ctx)
	}
}

func resolveExprTypes(e ast.Expr, ctx Context) {
	if e == nil {
		return
	}
	switch e := e.(type) {
	case *ast.Call:
		for _, a := range e.Args {
			resolveExprTypes(a, ctx)
		}
	case *ast.NewObject:
		for _, a := range e.Args {
			resolveExprTypes(a, ctx)
		}
		e.SetType(ctx.Globals.LookupType(ctx.Reporter, ctx.Phase, e.Pos(), e.Name.Raw))
		if types.IsPrimitive(e.Type()) {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemPrimitiveAllocation, e.Pos(),
				"simple allocations of primitives are not allowed")
		}
	case *ast.NewArray:
		for _, a := range e.Args {
			resolveExprTypes(a, ctx)
		}
		resolveTypeName(e.Elem, ctx)
		e.SetType(types.ArrayOf(e.Elem.Resolved()))
	case *ast.FieldAccess:
		resolveExprTypes(e.Receiver, ctx)
	case *ast.Index:
		resolveExprTypes(e.Receiver, ctx)
		resolveExprTypes(e.Index, ctx)
	case *ast.Unary:
		resolveExprTypes(e.Operand, ctx)
	case *ast.Binary:
		resolveExprTypes(e.LHS, ctx)
		resolveExprTypes(e.RHS, ctx)
	}
}
