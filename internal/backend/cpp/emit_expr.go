package cpp

import "ucc/internal/ast"

func (e *Emitter) emitExpr(x ast.Expr) {
	switch x := x.(type) {
	case *ast.Literal:
		// String literals go through the runtime string constructor via
		// the standard-library literal suffix.
		if x.Kind == ast.LitString {
			e.raw(x.Text + "s")
		} else {
			e.raw(x.Text)
		}
	case *ast.Ident:
		e.rawf("UC_VAR(%s)", x.Name.Raw)
	case *ast.Call:
		e.raw(x.Func.Mangle())
		e.emitArgs(x.Args)
	case *ast.NewObject:
		e.rawf("uc_make_object<%s>", x.Type().Mangle())
		e.emitArgs(x.Args)
	case *ast.NewArray:
		e.rawf("uc_make_array_of<%s>", x.Elem.Resolved().Mangle())
		e.emitArgs(x.Args)
	case *ast.FieldAccess:
		if x.Field.Raw == "length" {
			e.raw("uc_length_field(")
			e.emitExpr(x.Receiver)
			e.raw(")")
		} else {
			e.emitExpr(x.Receiver)
			e.rawf("->UC_VAR(%s)", x.Field.Raw)
		}
	case *ast.Index:
		e.raw("uc_array_index(")
		e.emitExpr(x.Receiver)
		e.raw(", ")
		e.emitExpr(x.Index)
		e.raw(")")
	case *ast.Unary:
		e.emitUnary(x)
	case *ast.Binary:
		e.emitBinary(x)
	}
}

func (e *Emitter) emitArgs(args []ast.Expr) {
	e.raw("(")
	for i, a := range args {
		if i > 0 {
			e.raw(", ")
		}
		e.emitExpr(a)
	}
	e.raw(")")
}

func (e *Emitter) emitUnary(x *ast.Unary) {
	// The identity operator has no C++ spelling and lowers to a runtime
	// call; every other prefix operator wraps its operand directly.
	if x.Op == ast.UnaryID {
		e.raw("uc_id(")
		e.emitExpr(x.Operand)
		e.raw(")")
		return
	}
	e.raw(x.Op.String())
	e.raw("(")
	e.emitExpr(x.Operand)
	e.raw(")")
}

func (e *Emitter) emitBinary(x *ast.Binary) {
	switch x.Op {
	case ast.BinAdd:
		// uc_add handles the mixed string/numeric concatenation cases.
		e.raw("uc_add(")
		e.emitExpr(x.LHS)
		e.raw(", ")
		e.emitExpr(x.RHS)
		e.raw(")")
	case ast.BinAssign:
		e.emitExpr(x.LHS)
		e.raw(" = ")
		e.emitExpr(x.RHS)
	case ast.BinPush:
		e.raw("uc_array_push(")
		e.emitExpr(x.LHS)
		e.raw(", ")
		e.emitExpr(x.RHS)
		e.raw(")")
	case ast.BinPop:
		e.raw("uc_array_pop(")
		e.emitExpr(x.LHS)
		e.raw(", ")
		e.emitExpr(x.RHS)
		e.raw(")")
	default:
		e.raw("(")
		e.emitExpr(x.LHS)
		e.rawf(") %s (", x.Op)
		e.emitExpr(x.RHS)
		e.raw(")")
	}
}
