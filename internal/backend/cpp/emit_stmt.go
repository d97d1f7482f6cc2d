package cpp

import "ucc/internal/ast"

// emitBlock lowers each statement on its own line at the given indent.
// Nested blocks re-enter with two more spaces.
func (e *Emitter) emitBlock(b *ast.Block, indent string) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		e.raw(indent)
		e.emitStmt(s, indent)
	}
}

func (e *Emitter) emitStmt(s ast.Stmt, indent string) {
	switch s := s.(type) {
	case *ast.Block:
		// A bare nested block keeps the current indent for its brace-less
		// statement list.
		e.emitBlock(s, indent)
	case *ast.If:
		e.raw("if (")
		e.emitExpr(s.Test)
		e.raw(") {\n")
		e.emitBlock(s.Then, indent+"  ")
		e.raw(indent + "} else {\n")
		e.emitBlock(s.Else, indent+"  ")
		e.raw(indent + "}\n")
	case *ast.While:
		e.raw("while (")
		e.emitExpr(s.Test)
		e.raw(") {\n")
		e.emitBlock(s.Body, indent+"  ")
		e.raw(indent + "}\n")
	case *ast.For:
		e.raw("for (")
		if s.Init != nil {
			e.emitExpr(s.Init)
		}
		e.raw("; ")
		if s.Test != nil {
			e.emitExpr(s.Test)
		}
		e.raw("; ")
		if s.Update != nil {
			e.emitExpr(s.Update)
		}
		e.raw(") {\n")
		e.emitBlock(s.Body, indent+"  ")
		e.raw(indent + "}\n")
	case *ast.Break:
		e.raw("break;\n")
	case *ast.Continue:
		e.raw("continue;\n")
	case *ast.Return:
		e.raw("return ")
		if s.Expr != nil {
			e.emitExpr(s.Expr)
		}
		e.raw(";\n")
	case *ast.ExprStmt:
		e.emitExpr(s.Expr)
		e.raw(";\n")
	}
}
