package sema

import (
	"ucc/internal/ast"
	"ucc/internal/diag"
)

// basicControl validates break and continue placement: both must occur
// inside a loop body. Loop nodes set the in-loop flag on a copied context,
// so the flag never leaks to siblings.
func basicControl(prog *ast.Program, ctx Context) {
	for _, decl := range prog.Decls {
		if d, ok := decl.(*ast.FuncDecl); ok {
			controlBlock(d.Body, ctx)
		}
	}
}

func controlBlock(b *ast.Block, ctx Context) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		controlStmt(s, ctx)
	}
}

func controlStmt(s ast.Stmt, ctx Context) {
	switch s := s.(type) {
	case *ast.Block:
		controlBlock(s, ctx)
	case *ast.If:
		controlBlock(s.Then, ctx)
		controlBlock(s.Else, ctx)
	case *ast.While:
		lctx := ctx
		lctx.InLoop = true
		controlBlock(s.Body, lctx)
	case *ast.For:
		lctx := ctx
		lctx.InLoop = true
		controlBlock(s.Body, lctx)
	case *ast.Break:
		if !ctx.InLoop {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBreakOutsideLoop, s.Pos(),
				"break statement must occur within a loop")
		}
	case *ast.Continue:
		if !ctx.InLoop {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemContinueOutsideLoop, s.Pos(),
				"continue statement must occur within a loop")
		}
	}
}
