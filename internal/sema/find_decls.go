package sema

import "ucc/internal/ast"

// findDecls registers every top-level struct and function into the global
// environment. Redefinitions are reported and the declaration keeps the
// pre-existing binding, so later phases always have something to consult.
func findDecls(prog *ast.Program, ctx Context) {
	for _, decl := range prog.Decls {
		switch d := decl.(type) {
		case *ast.StructDecl:
			if d.Type != nil {
				continue // already registered
			}
			d.Type = ctx.Globals.AddType(ctx.Reporter, ctx.Phase, d.Pos(), d.Name.Raw)
		case *ast.FuncDecl:
			if d.Func != nil {
				continue
			}
			d.Func = ctx.Globals.AddFunction(ctx.Reporter, ctx.Phase, d.Pos(), d.Name.Raw)
		}
	}
}
