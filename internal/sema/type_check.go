package sema

import (
	"strings"

	"ucc/internal/ast"
	"ucc/internal/diag"
	"ucc/internal/types"
)

// typeCheck computes a type for every expression and checks the typing
// rules of every statement. Expressions that fail a rule still get a type
// so that enclosing expressions can keep checking; the recovery type is
// int unless the rule dictates otherwise.
func typeCheck(prog *ast.Program, ctx Context) {
	for _, decl := range prog.Decls {
		// Struct bodies carry no expressions; their field types were
		// resolved and checked in earlier phases.
		if d, ok := decl.(*ast.FuncDecl); ok {
			fctx := ctx
			fctx.Locals = d.Scope
			fctx.RetType = d.Func.Ret
			typeCheckBlock(d.Body, fctx)
		}
	}
}

func typeCheckBlock(b *ast.Block, ctx Context) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		typeCheckStmt(s, ctx)
	}
}

func typeCheckStmt(s ast.Stmt, ctx Context) {
	switch s := s.(type) {
	case *ast.Block:
		typeCheckBlock(s, ctx)
	case *ast.If:
		typeCheckExpr(s.Test, ctx)
		checkCondition(s.Test, ctx)
		typeCheckBlock(s.Then, ctx)
		typeCheckBlock(s.Else, ctx)
	case *ast.While:
		typeCheckExpr(s.Test, ctx)
		checkCondition(s.Test, ctx)
		typeCheckBlock(s.Body, ctx)
	case *ast.For:
		typeCheckExpr(s.Init, ctx)
		typeCheckExpr(s.Test, ctx)
		if s.Test != nil {
			checkCondition(s.Test, ctx)
		}
		typeCheckExpr(s.Update, ctx)
		typeCheckBlock(s.Body, ctx)
	case *ast.Return:
		typeCheckExpr(s.Expr, ctx)
		checkReturn(s, ctx)
	case *ast.ExprStmt:
		typeCheckExpr(s.Expr, ctx)
	}
}

func checkCondition(test ast.Expr, ctx Context) {
	if !types.Same(test.Type(), types.Boolean) {
		diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadCondition, test.Pos(),
			"type of test expression must be boolean, but was given %s", test.Type().Name())
	}
}

func checkReturn(s *ast.Return, ctx Context) {
	if s.Expr == nil {
		return
	}
	if types.Same(ctx.RetType, types.Void) {
		diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemReturnMismatch, s.Pos(),
			"function with void return type cannot return a value")
		return
	}
	if !types.Same(s.Expr.Type(), ctx.RetType) {
		diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemReturnMismatch, s.Pos(),
			"returned value has type %s, but function has return type %s",
			s.Expr.Type().Name(), ctx.RetType.Name())
	}
}

func typeCheckExpr(e ast.Expr, ctx Context) {
	if e == nil {
		return
	}
	switch e := e.(type) {
	case *ast.Literal:
		typeCheckLiteral(e)
	case *ast.Ident:
		e.SetType(ctx.Locals.GetType(ctx.Reporter, ctx.Phase, e.Pos(), e.Name.Raw))
	case *ast.Call:
		args := typeCheckArgs(e.Args, ctx)
		e.Func.CheckArgs(ctx.Reporter, ctx.Phase, e.Pos(), args)
		e.SetType(e.Func.Ret)
	case *ast.NewObject:
		args := typeCheckArgs(e.Args, ctx)
		e.Type().CheckArgs(ctx.Reporter, ctx.Phase, e.Pos(), args)
	case *ast.NewArray:
		args := typeCheckArgs(e.Args, ctx)
		e.Type().CheckArgs(ctx.Reporter, ctx.Phase, e.Pos(), args)
	case *ast.FieldAccess:
		typeCheckExpr(e.Receiver, ctx)
		rt := e.Receiver.Type()
		if types.IsPrimitive(rt) {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadReceiver, e.Pos(),
				"receiver must be user-defined type or array type, but was %s", rt.Name())
			e.SetType(types.Int)
			return
		}
		e.SetType(rt.LookupField(ctx.Reporter, ctx.Phase, e.Pos(), e.Field.Raw))
	case *ast.Index:
		typeCheckIndex(e, ctx)
	case *ast.Unary:
		typeCheckUnary(e, ctx)
	case *ast.Binary:
		typeCheckBinary(e, ctx)
	}
}

func typeCheckArgs(args []ast.Expr, ctx Context) []types.Type {
	ts := make([]types.Type, 0, len(args))
	for _, a := range args {
		typeCheckExpr(a, ctx)
		ts = append(ts, a.Type())
	}
	return ts
}

func typeCheckLiteral(e *ast.Literal) {
	switch e.Kind {
	case ast.LitInt:
		if strings.HasSuffix(e.Text, "l") || strings.HasSuffix(e.Text, "L") {
			e.SetType(types.Long)
		} else {
			e.SetType(types.Int)
		}
	case ast.LitFloat:
		e.SetType(types.Float)
	case ast.LitString:
		e.SetType(types.String)
	case ast.LitBool:
		e.SetType(types.Boolean)
	case ast.LitNull:
		e.SetType(types.Null)
	}
}

func typeCheckIndex(e *ast.Index, ctx Context) {
	typeCheckExpr(e.Receiver, ctx)
	typeCheckExpr(e.Index, ctx)
	arr, ok := e.Receiver.Type().(*types.Array)
	if !ok {
		diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadIndex, e.Pos(),
			"cannot index into non-array type %s", e.Receiver.Type().Name())
		e.SetType(types.Int)
		return
	}
	if !types.Same(e.Index.Type(), types.Int) {
		diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadIndex, e.Pos(),
			"array index expects type int, but got type %s", e.Index.Type().Name())
		e.SetType(types.Int)
		return
	}
	e.SetType(arr.Elem())
}

func typeCheckUnary(e *ast.Unary, ctx Context) {
	typeCheckExpr(e.Operand, ctx)
	ot := e.Operand.Type()
	switch e.Op {
	case ast.UnaryPlus, ast.UnaryMinus:
		if !types.IsNumeric(ot) {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadOperand, e.Pos(),
				"operand of unary %s must be numeric, but was %s", e.Op, ot.Name())
		}
		e.SetType(ot)
	case ast.UnaryNot:
		if !types.Same(ot, types.Boolean) {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadOperand, e.Pos(),
				"operand of unary %s must be boolean, but was %s", e.Op, ot.Name())
		}
		e.SetType(types.Boolean)
	case ast.UnaryIncr, ast.UnaryDecr:
		if !types.IsNumeric(ot) || !e.Operand.IsLValue() {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadOperand, e.Pos(),
				"subexpression of %s must be a numeric l-value", e.Op)
		}
		e.SetType(ot)
	case ast.UnaryID:
		if types.IsPrimitive(ot) {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadOperand, e.Pos(),
				"operand of %s must be of reference type, but was %s", e.Op, ot.Name())
		}
		e.SetType(types.Long)
	}
}

func typeCheckBinary(e *ast.Binary, ctx Context) {
	typeCheckExpr(e.LHS, ctx)
	typeCheckExpr(e.RHS, ctx)
	lt, rt := e.LHS.Type(), e.RHS.Type()
	switch e.Op {
	case ast.BinAdd:
		typeCheckPlus(e, ctx, lt, rt)
	case ast.BinSub, ast.BinMul, ast.BinDiv:
		if !types.IsNumeric(lt) || !types.IsNumeric(rt) {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadOperand, e.Pos(),
				"operands of %s must be numeric, but were %s and %s", e.Op, lt.Name(), rt.Name())
			e.SetType(types.Int)
			return
		}
		e.SetType(types.Join(ctx.Reporter, ctx.Phase, e.Pos(), lt, rt))
	case ast.BinRem:
		if !types.IsIntegral(lt) || !types.IsIntegral(rt) {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadOperand, e.Pos(),
				"operands of %s must be integral, but were %s and %s", e.Op, lt.Name(), rt.Name())
			e.SetType(types.Int)
			return
		}
		e.SetType(types.Join(ctx.Reporter, ctx.Phase, e.Pos(), lt, rt))
	case ast.BinOr, ast.BinAnd:
		if !types.Same(lt, types.Boolean) || !types.Same(rt, types.Boolean) {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadOperand, e.Pos(),
				"operands of %s must be boolean, but were %s and %s", e.Op, lt.Name(), rt.Name())
		}
		e.SetType(types.Boolean)
	case ast.BinLt, ast.BinLe, ast.BinGt, ast.BinGe:
		numeric := types.IsNumeric(lt) && types.IsNumeric(rt)
		textual := types.Same(lt, types.String) && types.Same(rt, types.String)
		if !numeric && !textual {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadOperand, e.Pos(),
				"operands of %s must both be numeric or both string, but were %s and %s",
				e.Op, lt.Name(), rt.Name())
		}
		e.SetType(types.Boolean)
	case ast.BinEq, ast.BinNe:
		if !types.IsCompatible(lt, rt) && !types.IsCompatible(rt, lt) {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadOperand, e.Pos(),
				"lhs and rhs cannot be compared, types %s and %s", lt.Name(), rt.Name())
		}
		e.SetType(types.Boolean)
	case ast.BinAssign:
		if !types.IsCompatible(rt, lt) {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemTypeMismatch, e.Pos(),
				"rhs operand must be implicitly convertible to lhs operand, but got types %s and %s",
				rt.Name(), lt.Name())
			e.SetType(types.Int)
		} else if !e.LHS.IsLValue() {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemNotLValue, e.Pos(),
				"lhs operand of %s must produce l-value", e.Op)
			e.SetType(types.Int)
		} else {
			e.SetType(lt)
		}
	case ast.BinPush:
		typeCheckPush(e, ctx, lt, rt)
	case ast.BinPop:
		typeCheckPop(e, ctx, lt, rt)
	}
}

// typeCheckPlus handles +, whose special cases run before the numeric
// join: a string on either side concatenates, with booleans converted to
// string on demand.
func typeCheckPlus(e *ast.Binary, ctx Context, lt, rt types.Type) {
	if !types.IsPrimitive(lt) || !types.IsPrimitive(rt) {
		diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadOperand, e.Pos(),
			"operands of %s must be primitive, but were %s and %s", e.Op, lt.Name(), rt.Name())
		e.SetType(types.Int)
		return
	}
	if types.Same(lt, types.Void) || types.Same(rt, types.Void) ||
		types.Same(lt, types.Null) || types.Same(rt, types.Null) {
		diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadOperand, e.Pos(),
			"operands of %s cannot be void or null, but were %s and %s", e.Op, lt.Name(), rt.Name())
		e.SetType(types.Int)
		return
	}
	if types.Same(lt, types.Boolean) || types.Same(rt, types.Boolean) {
		if !types.Same(lt, types.String) && !types.Same(rt, types.String) {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadOperand, e.Pos(),
				"boolean operand of %s requires a string operand on the other side", e.Op)
			e.SetType(types.Int)
			return
		}
		e.SetType(types.String)
		return
	}
	if types.Same(lt, types.String) || types.Same(rt, types.String) {
		e.SetType(types.String)
		return
	}
	e.SetType(types.Join(ctx.Reporter, ctx.Phase, e.Pos(), lt, rt))
}

func typeCheckPush(e *ast.Binary, ctx Context, lt, rt types.Type) {
	arr, ok := lt.(*types.Array)
	if !ok {
		diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadOperand, e.Pos(),
			"lhs operand of %s must be an array, but was %s", e.Op, lt.Name())
		e.SetType(types.Int)
		return
	}
	if !types.IsCompatible(rt, arr.Elem()) {
		diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemTypeMismatch, e.Pos(),
			"cannot push %s onto array of %s", rt.Name(), arr.Elem().Name())
		e.SetType(types.Int)
		return
	}
	e.SetType(lt)
}

func typeCheckPop(e *ast.Binary, ctx Context, lt, rt types.Type) {
	arr, ok := lt.(*types.Array)
	if !ok {
		diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemBadOperand, e.Pos(),
			"lhs operand of %s must be an array, but was %s", e.Op, lt.Name())
		e.SetType(types.Int)
		return
	}
	if e.RHS.IsLValue() {
		if !types.IsCompatible(arr.Elem(), rt) {
			diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemTypeMismatch, e.Pos(),
				"cannot pop %s into target of type %s", arr.Elem().Name(), rt.Name())
			e.SetType(types.Int)
			return
		}
	} else if !types.Same(rt, types.Null) {
		diag.Errorf(ctx.Reporter, ctx.Phase, diag.SemNotLValue, e.Pos(),
			"rhs operand of %s must be an l-value or null", e.Op)
		e.SetType(types.Int)
		return
	}
	e.SetType(lt)
}
