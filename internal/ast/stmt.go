package ast

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Block is an ordered statement sequence.
type Block struct {
	node
	Stmts []Stmt
}

// If is an if/else statement. Both branches are always present; an omitted
// else arrives as an empty block.
type If struct {
	node
	Test Expr
	Then *Block
	Else *Block
}

// While is a while loop.
type While struct {
	node
	Test Expr
	Body *Block
}

// For is a C-style for loop. Init, Test, and Update may each be nil.
type For struct {
	node
	Init   Expr
	Test   Expr
	Update Expr
	Body   *Block
}

// Break exits the innermost loop.
type Break struct {
	node
}

// Continue restarts the innermost loop.
type Continue struct {
	node
}

// Return returns from the enclosing function; Expr is nil for a bare
// return.
type Return struct {
	node
	Expr Expr
}

// ExprStmt evaluates an expression for its effect.
type ExprStmt struct {
	node
	Expr Expr
}

func (*Block) stmtNode()    {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
func (*For) stmtNode()      {}
func (*Break) stmtNode()    {}
func (*Continue) stmtNode() {}
func (*Return) stmtNode()   {}
func (*ExprStmt) stmtNode() {}
