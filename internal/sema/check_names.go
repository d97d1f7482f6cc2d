package sema

import (
	"ucc/internal/ast"
	"ucc/internal/symbols"
)

// checkNames builds the flat local scope of every declaration and checks
// the introduced names for uniqueness. Each insertion may report a
// redeclaration; the scope keeps the first binding. Scopes are read-only
// once this phase completes.
func checkNames(prog *ast.Program, ctx Context) {
	for _, decl := range prog.Decls {
		switch d := decl.(type) {
		case *ast.StructDecl:
			if d.Scope != nil {
				continue // already built
			}
			d.Scope = symbols.NewVarEnv(ctx.Globals)
			for _, f := range d.Fields {
				d.Scope.AddVariable(ctx.Reporter, ctx.Phase, d.Pos(),
					f.Name.Raw, f.VarType.Resolved(), symbols.BindField)
			}
		case *ast.FuncDecl:
			if d.Scope != nil {
				continue
			}
			d.Scope = symbols.NewVarEnv(ctx.Globals)
			for _, p := range d.Params {
				d.Scope.AddVariable(ctx.Reporter, ctx.Phase, d.Pos(),
					p.Name.Raw, p.VarType.Resolved(), symbols.BindParameter)
			}
			for _, v := range d.Vars {
				d.Scope.AddVariable(ctx.Reporter, ctx.Phase, d.Pos(),
					v.Name.Raw, v.VarType.Resolved(), symbols.BindVariable)
			}
		}
	}
}
