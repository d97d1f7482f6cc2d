package sema

import "ucc/internal/ast"

// advancedControl is the hook for flow analyses that need resolved names
// and loop structure: definite-return checking and unreachable-code
// detection are the intended candidates. The traversal is in place so a
// future check only needs to fill in the statement cases; nothing is
// reported yet.
func advancedControl(prog *ast.Program, ctx Context) {
	for _, decl := range prog.Decls {
		if d, ok := decl.(*ast.FuncDecl); ok {
			advancedBlock(d.Body, ctx)
		}
	}
}

func advancedBlock(b *ast.Block, ctx Context) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		advancedStmt(s, ctx)
	}
}

func advancedStmt(s ast.Stmt, ctx Context) {
	switch s := s.(type) {
	case *ast.Block:
		advancedBlock(s, ctx)
	case *ast.If:
		advancedBlock(s.Then, ctx)
		advancedBlock(s.Else, ctx)
	case *ast.While:
		advancedBlock(s.Body, ctx)
	case *ast.For:
		advancedBlock(s.Body, ctx)
	}
}
