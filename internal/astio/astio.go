// Package astio reads and writes .ucast files, the serialized form of a
// parsed source file. The frontend writes one .ucast per source file;
// the driver decodes them into trees for analysis and lowering.
//
// The on-disk format is a msgpack-encoded wireFile with a small header
// for format and version checks.
package astio

import (
	"ucc/internal/ast"
)

const (
	// Magic identifies a .ucast payload.
	Magic = "ucast"
	// Version is bumped on any incompatible wire change.
	Version = 1
)

type wireFile struct {
	Magic   string      `msgpack:"magic"`
	Version int         `msgpack:"version"`
	Path    string      `msgpack:"path"`
	Decls   []*wireDecl `msgpack:"decls"`
}

// wireDecl is the variant record for top-level declarations. Kind is
// "struct" or "func"; unused fields stay at their zero values.
type wireDecl struct {
	Kind   string     `msgpack:"kind"`
	Line   uint32     `msgpack:"line"`
	Name   string     `msgpack:"name"`
	Ret    *wireType  `msgpack:"ret,omitempty"`
	Fields []*wireVar `msgpack:"fields,omitempty"`
	Params []*wireVar `msgpack:"params,omitempty"`
	Vars   []*wireVar `msgpack:"vars,omitempty"`
	Body   []*wireStmt `msgpack:"body,omitempty"`
}

type wireVar struct {
	Line uint32    `msgpack:"line"`
	Name string    `msgpack:"name"`
	Type *wireType `msgpack:"type"`
}

// wireType is a type name: either a simple name or an array of an
// element type, with Array nesting arbitrarily.
type wireType struct {
	Line  uint32    `msgpack:"line"`
	Name  string    `msgpack:"name,omitempty"`
	Array *wireType `msgpack:"array,omitempty"`
}

type wireStmt struct {
	Kind   string      `msgpack:"kind"`
	Line   uint32      `msgpack:"line"`
	Expr   *wireExpr   `msgpack:"expr,omitempty"`
	Init   *wireExpr   `msgpack:"init,omitempty"`
	Test   *wireExpr   `msgpack:"test,omitempty"`
	Update *wireExpr   `msgpack:"update,omitempty"`
	Body   []*wireStmt `msgpack:"body,omitempty"`
	Else   []*wireStmt `msgpack:"else,omitempty"`
}

type wireExpr struct {
	Kind  string      `msgpack:"kind"`
	Line  uint32      `msgpack:"line"`
	Text  string      `msgpack:"text,omitempty"`
	Name  string      `msgpack:"name,omitempty"`
	Op    string      `msgpack:"op,omitempty"`
	Elem  *wireType   `msgpack:"elem,omitempty"`
	Args  []*wireExpr `msgpack:"args,omitempty"`
	Recv  *wireExpr   `msgpack:"recv,omitempty"`
	Index *wireExpr   `msgpack:"index,omitempty"`
	LHS   *wireExpr   `msgpack:"lhs,omitempty"`
	RHS   *wireExpr   `msgpack:"rhs,omitempty"`
}

// Statement kinds.
const (
	stmtIf       = "if"
	stmtWhile    = "while"
	stmtFor      = "for"
	stmtBreak    = "break"
	stmtContinue = "continue"
	stmtReturn   = "return"
	stmtExpr     = "expr"
)

// Expression kinds.
const (
	exprLitInt    = "int"
	exprLitFloat  = "float"
	exprLitString = "string"
	exprLitBool   = "boolean"
	exprLitNull   = "null"
	exprIdent     = "ident"
	exprCall      = "call"
	exprNew       = "new"
	exprNewArray  = "new_array"
	exprField     = "field"
	exprIndex     = "index"
	exprUnary     = "unary"
	exprBinary    = "binary"
)

var litKinds = map[string]ast.LitKind{
	exprLitInt:    ast.LitInt,
	exprLitFloat:  ast.LitFloat,
	exprLitString: ast.LitString,
	exprLitBool:   ast.LitBool,
	exprLitNull:   ast.LitNull,
}

var litNames = map[ast.LitKind]string{
	ast.LitInt:    exprLitInt,
	ast.LitFloat:  exprLitFloat,
	ast.LitString: exprLitString,
	ast.LitBool:   exprLitBool,
	ast.LitNull:   exprLitNull,
}

var unaryOps = map[string]ast.UnaryOp{
	"+":  ast.UnaryPlus,
	"-":  ast.UnaryMinus,
	"!":  ast.UnaryNot,
	"++": ast.UnaryIncr,
	"--": ast.UnaryDecr,
	"#":  ast.UnaryID,
}

var binaryOps = map[string]ast.BinaryOp{
	"+":  ast.BinAdd,
	"-":  ast.BinSub,
	"*":  ast.BinMul,
	"/":  ast.BinDiv,
	"%":  ast.BinRem,
	"||": ast.BinOr,
	"&&": ast.BinAnd,
	"<":  ast.BinLt,
	"<=": ast.BinLe,
	">":  ast.BinGt,
	">=": ast.BinGe,
	"==": ast.BinEq,
	"!=": ast.BinNe,
	"=":  ast.BinAssign,
	"<<": ast.BinPush,
	">>": ast.BinPop,
}
