package sema

import "ucc/internal/ast"

// resolveCalls matches every call expression to the function it names.
// Unknown names are reported and recovered to the string_to_int builtin so
// the call still carries a usable function object.
func resolveCalls(prog *ast.Program, ctx Context) {
	for _, decl := range prog.Decls {
		if d, ok := decl.(*ast.FuncDecl); ok {
			resolveCallsBlock(d.Body, ctx)
		}
	}
}

func resolveCallsBlock(b *ast.Block, ctx Context) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		resolveCallsStmt(s, ctx)
	}
}

func resolveCallsStmt(s ast.Stmt, ctx Context) {
	switch s := s.(type) {
	case *ast.Block:
		resolveCallsBlock(s, ctx)
	case *ast.If:
		resolveCallsExpr(s.Test, ctx)
		resolveCallsBlock(s.Then, ctx)
		resolveCallsBlock(s.Else, ctx)
	case *ast.While:
		resolveCallsExpr(s.Test, ctx)
		resolveCallsBlock(s.Body, ctx)
	case *ast.For:
		resolveCallsExpr(s.Init, ctx)
		resolveCallsExpr(s.Test, ctx)
		resolveCallsExpr(s.Update, ctx)
		resolveCallsBlock(s.Body, ctx)
	case *ast.Return:
		resolveCallsExpr(s.Expr, ctx)
	case *ast.ExprStmt:
		resolveCallsExpr(s.Expr, ctx)
	}
}

func resolveCallsExpr(e ast.Expr, ctx Context) {
	if e == nil {
		return
	}
	switch e := e.(type) {
	case *ast.Call:
		if e.Func == nil { // already resolved on a re-run
			e.Func = ctx.Globals.LookupFunction(ctx.Reporter, ctx.Phase, e.Pos(), e.Name.Raw)
		}
		for _, a := range e.Args {
			resolveCallsExpr(a, ctx)
		}
	case *ast.NewObject:
		for _, a := range e.Args {
			resolveCallsExpr(a, ctx)
		}
	case *ast.NewArray:
		for _, a := range e.Args {
			resolveCallsExpr(a, ctx)
		}
	case *ast.FieldAccess:
		resolveCallsExpr(e.Receiver, ctx)
	case *ast.Index:
		resolveCallsExpr(e.Receiver, ctx)
		resolveCallsExpr(e.Index, ctx)
	case *ast.Unary:
		resolveCallsExpr(e.Operand, ctx)
	case *ast.Binary:
		resolveCallsExpr(e.LHS, ctx)
		resolveCallsExpr(e.RHS, ctx)
	}
}
