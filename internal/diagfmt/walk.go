package diagfmt

import (
	"fmt"

	"ucc/internal/ast"
)

// label renders a one-line description of a node: its kind, the name or
// text it carries, and the computed type when one is attached.
func label(n ast.Node) string {
	var s string
	switch n := n.(type) {
	case *ast.Program:
		s = "Program"
	case *ast.Name:
		s = "Name " + n.Raw
	case *ast.SimpleTypeName:
		s = "TypeName " + n.Name.Raw
	case *ast.ArrayTypeName:
		s = "ArrayTypeName"
	case *ast.VarDecl:
		s = "VarDecl " + n.Name.Raw
	case *ast.Param:
		s = "Param " + n.Name.Raw
	case *ast.StructDecl:
		s = "StructDecl " + n.Name.Raw
	case *ast.FuncDecl:
		s = "FuncDecl " + n.Name.Raw
	case *ast.Block:
		s = "Block"
	case *ast.If:
		s = "If"
	case *ast.While:
		s = "While"
	case *ast.For:
		s = "For"
	case *ast.Break:
		s = "Break"
	case *ast.Continue:
		s = "Continue"
	case *ast.Return:
		s = "Return"
	case *ast.ExprStmt:
		s = "ExprStmt"
	case *ast.Literal:
		s = "Literal " + n.Text
	case *ast.Ident:
		s = "Ident " + n.Name.Raw
	case *ast.Call:
		s = "Call " + n.Name.Raw
	case *ast.NewObject:
		s = "New " + n.Name.Raw
	case *ast.NewArray:
		s = "NewArray"
	case *ast.FieldAccess:
		s = "FieldAccess ." + n.Field.Raw
	case *ast.Index:
		s = "Index"
	case *ast.Unary:
		s = fmt.Sprintf("Unary %s", n.Op)
	case *ast.Binary:
		s = fmt.Sprintf("Binary %s", n.Op)
	default:
		s = fmt.Sprintf("%T", n)
	}
	if e, ok := n.(ast.Expr); ok && e.Type() != nil {
		s += ": " + e.Type().Name()
	}
	if tn, ok := n.(ast.TypeName); ok && tn.Resolved() != nil {
		s += ": " + tn.Resolved().Name()
	}
	return s
}

// children returns a node's direct structural children in source order.
// Optional slots that are absent contribute nothing.
func children(n ast.Node) []ast.Node {
	var out []ast.Node
	add := func(ns ...ast.Node) {
		for _, c := range ns {
			if c != nil {
				out = append(out, c)
			}
		}
	}
	switch n := n.(type) {
	case *ast.Program:
		for _, d := range n.Decls {
			add(d)
		}
	case *ast.SimpleTypeName:
		add(n.Name)
	case *ast.ArrayTypeName:
		add(n.Elem)
	case *ast.VarDecl:
		add(n.VarType, n.Name)
	case *ast.Param:
		add(n.VarType, n.Name)
	case *ast.StructDecl:
		add(n.Name)
		for _, f := range n.Fields {
			add(f)
		}
	case *ast.FuncDecl:
		add(n.RetType, n.Name)
		for _, p := range n.Params {
			add(p)
		}
		for _, v := range n.Vars {
			add(v)
		}
		add(n.Body)
	case *ast.Block:
		for _, s := range n.Stmts {
			add(s)
		}
	case *ast.If:
		add(n.Test, n.Then)
		// Else is a concrete pointer; a nil one would still box into a
		// non-nil Node through add.
		if n.Else != nil {
			add(n.Else)
		}
	case *ast.While:
		add(n.Test, n.Body)
	case *ast.For:
		add(n.Init, n.Test, n.Update, n.Body)
	case *ast.Return:
		add(n.Expr)
	case *ast.ExprStmt:
		add(n.Expr)
	case *ast.Ident:
		add(n.Name)
	case *ast.Call:
		add(n.Name)
		for _, a := range n.Args {
			add(a)
		}
	case *ast.NewObject:
		add(n.Name)
		for _, a := range n.Args {
			add(a)
		}
	case *ast.NewArray:
		add(n.Elem)
		for _, a := range n.Args {
			add(a)
		}
	case *ast.FieldAccess:
		add(n.Receiver, n.Field)
	case *ast.Index:
		add(n.Receiver, n.Index)
	case *ast.Unary:
		add(n.Operand)
	case *ast.Binary:
		add(n.LHS, n.RHS)
	}
	return out
}
