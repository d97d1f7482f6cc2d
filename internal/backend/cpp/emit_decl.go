package cpp

import "ucc/internal/ast"

func (e *Emitter) emitTypeDecls(prog *ast.Program) {
	e.banner("Forward type declarations")
	for _, decl := range prog.Decls {
		if d, ok := decl.(*ast.StructDecl); ok {
			e.linef("struct UC_TYPEDEF(%s);", d.Name.Raw)
		}
	}
	e.blank()
}

func (e *Emitter) emitFunctionDecls(prog *ast.Program) {
	e.banner("Forward function declarations")
	for _, decl := range prog.Decls {
		if d, ok := decl.(*ast.FuncDecl); ok {
			e.line(d.Func.Ret.Mangle())
			e.raw(e.indent + "  " + d.Func.Mangle())
			e.emitParamList(d)
			e.raw(";\n")
		}
	}
	e.blank()
}

// emitParamList writes the parenthesized parameter list without a
// trailing terminator; declarations and definitions differ only in what
// follows the closing parenthesis.
func (e *Emitter) emitParamList(d *ast.FuncDecl) {
	e.raw("(")
	for i, p := range d.Params {
		if i > 0 {
			e.raw(",")
		}
		e.rawf("%s UC_VAR(%s)", p.VarType.Resolved().Mangle(), p.Name.Raw)
	}
	e.raw(")")
}

func (e *Emitter) emitTypeDefs(prog *ast.Program) {
	e.banner("Full type definitions")
	for _, decl := range prog.Decls {
		if d, ok := decl.(*ast.StructDecl); ok {
			e.emitStructDef(d)
		}
	}
}

func (e *Emitter) emitStructDef(d *ast.StructDecl) {
	e.linef("struct UC_TYPEDEF(%s) {", d.Name.Raw)
	inner := e.indent + "  "
	body := e.indent + "    "

	for _, f := range d.Fields {
		e.raw(inner)
		e.rawf("%s UC_VAR(%s);\n", f.VarType.Resolved().Mangle(), f.Name.Raw)
	}

	e.raw(inner)
	e.rawf("UC_TYPEDEF(%s)() = default;\n", d.Name.Raw)

	// Field-wise constructor, only when there is something to assign.
	if len(d.Fields) > 0 {
		e.raw(inner)
		e.rawf("UC_TYPEDEF(%s)(", d.Name.Raw)
		for i, f := range d.Fields {
			if i > 0 {
				e.raw(", ")
			}
			e.rawf("const %s &var%d", f.VarType.Resolved().Mangle(), i)
		}
		e.raw(") {\n")
		for i, f := range d.Fields {
			e.raw(body)
			e.rawf("UC_VAR(%s) = var%d;\n", f.Name.Raw, i)
		}
		e.raw(inner + "}\n")
	}

	// Structural equality and its negation.
	e.raw(inner)
	e.rawf("UC_PRIMITIVE(boolean) operator==(const UC_TYPEDEF(%s) &rhs) const {\n", d.Name.Raw)
	e.raw(body + "return ")
	if len(d.Fields) == 0 {
		e.raw("true")
	}
	for i, f := range d.Fields {
		if i > 0 {
			e.raw(" && ")
		}
		e.rawf("UC_VAR(%s) == rhs.UC_VAR(%s)", f.Name.Raw, f.Name.Raw)
	}
	e.raw(";\n")
	e.raw(inner + "}\n")

	e.raw(inner)
	e.rawf("UC_PRIMITIVE(boolean) operator!=(const UC_TYPEDEF(%s) &rhs) const {\n", d.Name.Raw)
	e.raw(body + "return !((*this)==rhs);\n")
	e.raw(inner + "}\n")

	e.line("};")
	e.blank()
}

func (e *Emitter) emitFunctionDefs(prog *ast.Program) {
	e.banner("Full function definitions")
	for _, decl := range prog.Decls {
		if d, ok := decl.(*ast.FuncDecl); ok {
			e.emitFuncDef(d)
		}
	}
}

func (e *Emitter) emitFuncDef(d *ast.FuncDecl) {
	e.line(d.Func.Ret.Mangle())
	e.raw(e.indent + "  " + d.Func.Mangle())
	e.emitParamList(d)
	e.raw(" {\n")

	inner := e.indent + "    "
	for _, v := range d.Vars {
		e.raw(inner)
		e.rawf("%s UC_VAR(%s);\n", v.VarType.Resolved().Mangle(), v.Name.Raw)
	}
	e.emitBlock(d.Body, inner)

	e.line("}")
}
