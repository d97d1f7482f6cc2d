package ast

import "ucc/internal/source"

// Builder allocates nodes for one compilation. Every node passes through
// the arena, which assigns its NodeID; the arena also lets tooling (graph
// dumps) enumerate all nodes of a tree.
type Builder struct {
	nodes *Arena[Node]
}

// NewBuilder creates a Builder with the arena preallocated to capHint
// nodes. If capHint is 0 a default of 1<<8 is used.
func NewBuilder(capHint uint) *Builder {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Builder{
		nodes: NewArena[Node](capHint),
	}
}

// Nodes returns every node allocated so far, in allocation order.
func (b *Builder) Nodes() []Node {
	return b.nodes.Slice()
}

// Len returns the number of allocated nodes.
func (b *Builder) Len() uint32 {
	return b.nodes.Len()
}

func (b *Builder) register(n Node, base *node) {
	base.id = NodeID(b.nodes.Allocate(n))
}

// NewProgram creates the root node over the given declarations.
func (b *Builder) NewProgram(pos source.Pos, decls []Decl) *Program {
	n := &Program{node: node{pos: pos}, Decls: decls}
	b.register(n, &n.node)
	return n
}

// NewName creates a raw identifier node.
func (b *Builder) NewName(pos source.Pos, raw string) *Name {
	n := &Name{node: node{pos: pos}, Raw: raw}
	b.register(n, &n.node)
	return n
}

// NewSimpleTypeName creates a type reference by name.
func (b *Builder) NewSimpleTypeName(pos source.Pos, name *Name) *SimpleTypeName {
	n := &SimpleTypeName{node: node{pos: pos}, Name: name}
	b.register(n, &n.node)
	return n
}

// NewArrayTypeName creates an array-of type reference.
func (b *Builder) NewArrayTypeName(pos source.Pos, elem TypeName) *ArrayTypeName {
	n := &ArrayTypeName{node: node{pos: pos}, Elem: elem}
	b.register(n, &n.node)
	return n
}

// NewVarDecl creates a field or local-variable declaration.
func (b *Builder) NewVarDecl(pos source.Pos, varType TypeName, name *Name) *VarDecl {
	n := &VarDecl{node: node{pos: pos}, VarType: varType, Name: name}
	b.register(n, &n.node)
	return n
}

// NewParam creates a parameter declaration.
func (b *Builder) NewParam(pos source.Pos, varType TypeName, name *Name) *Param {
	n := &Param{node: node{pos: pos}, VarType: varType, Name: name}
	b.register(n, &n.node)
	return n
}

// NewStructDecl creates a struct declaration.
func (b *Builder) NewStructDecl(pos source.Pos, name *Name, fields []*VarDecl) *StructDecl {
	n := &StructDecl{node: node{pos: pos}, Name: name, Fields: fields}
	b.register(n, &n.node)
	return n
}

// NewFuncDecl creates a function declaration.
func (b *Builder) NewFuncDecl(pos source.Pos, retType TypeName, name *Name, params []*Param, vars []*VarDecl, body *Block) *FuncDecl {
	n := &FuncDecl{node: node{pos: pos}, RetType: retType, Name: name, Params: params, Vars: vars, Body: body}
	b.register(n, &n.node)
	return n
}

// NewBlock creates a statement block.
func (b *Builder) NewBlock(pos source.Pos, stmts []Stmt) *Block {
	n := &Block{node: node{pos: pos}, Stmts: stmts}
	b.register(n, &n.node)
	return n
}

// NewIf creates an if/else statement.
func (b *Builder) NewIf(pos source.Pos, test Expr, then, els *Block) *If {
	n := &If{node: node{pos: pos}, Test: test, Then: then, Else: els}
	b.register(n, &n.node)
	return n
}

// NewWhile creates a while loop.
func (b *Builder) NewWhile(pos source.Pos, test Expr, body *Block) *While {
	n := &While{node: node{pos: pos}, Test: test, Body: body}
	b.register(n, &n.node)
	return n
}

// NewFor creates a for loop; init, test, and update may be nil.
func (b *Builder) NewFor(pos source.Pos, init, test, update Expr, body *Block) *For {
	n := &For{node: node{pos: pos}, Init: init, Test: test, Update: update, Body: body}
	b.register(n, &n.node)
	return n
}

// NewBreak creates a break statement.
func (b *Builder) NewBreak(pos source.Pos) *Break {
	n := &Break{node: node{pos: pos}}
	b.register(n, &n.node)
	return n
}

// NewContinue creates a continue statement.
func (b *Builder) NewContinue(pos source.Pos) *Continue {
	n := &Continue{node: node{pos: pos}}
	b.register(n, &n.node)
	return n
}

// NewReturn creates a return statement; expr may be nil.
func (b *Builder) NewReturn(pos source.Pos, expr Expr) *Return {
	n := &Return{node: node{pos: pos}, Expr: expr}
	b.register(n, &n.node)
	return n
}

// NewExprStmt creates an expression statement.
func (b *Builder) NewExprStmt(pos source.Pos, expr Expr) *ExprStmt {
	n := &ExprStmt{node: node{pos: pos}, Expr: expr}
	b.register(n, &n.node)
	return n
}

// NewLiteral creates a literal expression with the given textual form.
func (b *Builder) NewLiteral(pos source.Pos, kind LitKind, text string) *Literal {
	n := &Literal{exprBase: exprBase{node: node{pos: pos}}, Kind: kind, Text: text}
	b.register(n, &n.node)
	return n
}

// NewNullLiteral creates the null literal; its text lowers to nullptr.
func (b *Builder) NewNullLiteral(pos source.Pos) *Literal {
	return b.NewLiteral(pos, LitNull, "nullptr")
}

// NewIdent creates a name expression.
func (b *Builder) NewIdent(pos source.Pos, name *Name) *Ident {
	n := &Ident{exprBase: exprBase{node: node{pos: pos}}, Name: name}
	b.register(n, &n.node)
	return n
}

// NewCall creates a function-call expression.
func (b *Builder) NewCall(pos source.Pos, name *Name, args []Expr) *Call {
	n := &Call{exprBase: exprBase{node: node{pos: pos}}, Name: name, Args: args}
	b.register(n, &n.node)
	return n
}

// NewNewObject creates an object-allocation expression.
func (b *Builder) NewNewObject(pos source.Pos, name *Name, args []Expr) *NewObject {
	n := &NewObject{exprBase: exprBase{node: node{pos: pos}}, Name: name, Args: args}
	b.register(n, &n.node)
	return n
}

// NewNewArray creates an array-allocation expression.
func (b *Builder) NewNewArray(pos source.Pos, elem TypeName, args []Expr) *NewArray {
	n := &NewArray{exprBase: exprBase{node: node{pos: pos}}, Elem: elem, Args: args}
	b.register(n, &n.node)
	return n
}

// NewFieldAccess creates a field-access expression.
func (b *Builder) NewFieldAccess(pos source.Pos, receiver Expr, field *Name) *FieldAccess {
	n := &FieldAccess{exprBase: exprBase{node: node{pos: pos}}, Receiver: receiver, Field: field}
	b.register(n, &n.node)
	return n
}

// NewIndex creates an array-index expression.
func (b *Builder) NewIndex(pos source.Pos, receiver, index Expr) *Index {
	n := &Index{exprBase: exprBase{node: node{pos: pos}}, Receiver: receiver, Index: index}
	b.register(n, &n.node)
	return n
}

// NewUnary creates a unary prefix expression.
func (b *Builder) NewUnary(pos source.Pos, op UnaryOp, operand Expr) *Unary {
	n := &Unary{exprBase: exprBase{node: node{pos: pos}}, Op: op, Operand: operand}
	b.register(n, &n.node)
	return n
}

// NewBinary creates a binary infix expression.
func (b *Builder) NewBinary(pos source.Pos, op BinaryOp, lhs, rhs Expr) *Binary {
	n := &Binary{exprBase: exprBase{node: node{pos: pos}}, Op: op, LHS: lhs, RHS: rhs}
	b.register(n, &n.node)
	return n
}
