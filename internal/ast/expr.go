package ast

import "ucc/internal/types"

// Expr is implemented by every expression node. Type returns nil until
// type checking has computed it (or type resolution, for allocations whose
// type is syntactically determined).
type Expr interface {
	Node
	Type() types.Type
	SetType(types.Type)
	// IsLValue reports whether the expression designates assignable
	// storage. For field accesses this depends on the receiver's computed
	// type, so it is only meaningful once type checking has reached the
	// node.
	IsLValue() bool
	exprNode()
}

type exprBase struct {
	node
	typ types.Type
}

func (e *exprBase) Type() types.Type     { return e.typ }
func (e *exprBase) SetType(t types.Type) { e.typ = t }
func (e *exprBase) IsLValue() bool       { return false }
func (e *exprBase) exprNode()            {}

// LitKind enumerates the literal variants.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitBool
	LitNull
)

// Literal is a literal expression. Text is the literal's textual form,
// kept verbatim for code generation; int and long literals are told apart
// by a trailing 'l'/'L' in Text.
type Literal struct {
	exprBase
	Kind LitKind
	Text string
}

// Ident is a name expression referring to a field, parameter, or variable.
type Ident struct {
	exprBase
	Name *Name
}

func (*Ident) IsLValue() bool { return true }

// Call is a function call. Func is resolved during call resolution.
type Call struct {
	exprBase
	Name *Name
	Args []Expr

	Func *types.Function
}

// NewObject allocates an object of a named type. Its type attribute is set
// during type resolution.
type NewObject struct {
	exprBase
	Name *Name
	Args []Expr
}

// NewArray allocates an array of the element type with the given initial
// elements. Its type attribute is set during type resolution.
type NewArray struct {
	exprBase
	Elem TypeName
	Args []Expr
}

// FieldAccess accesses a field of an object, or the synthetic length
// pseudo-field of an array.
type FieldAccess struct {
	exprBase
	Receiver Expr
	Field    *Name
}

// IsLValue reports false for the array length pseudo-field and true for
// ordinary object fields.
func (e *FieldAccess) IsLValue() bool {
	if _, ok := e.Receiver.Type().(*types.Array); ok {
		return false
	}
	return true
}

// Index indexes into an array.
type Index struct {
	exprBase
	Receiver Expr
	Index    Expr
}

func (*Index) IsLValue() bool { return true }

// UnaryOp enumerates the prefix operators.
type UnaryOp uint8

const (
	UnaryPlus UnaryOp = iota
	UnaryMinus
	UnaryNot
	UnaryIncr
	UnaryDecr
	UnaryID
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryPlus:
		return "+"
	case UnaryMinus:
		return "-"
	case UnaryNot:
		return "!"
	case UnaryIncr:
		return "++"
	case UnaryDecr:
		return "--"
	case UnaryID:
		return "#"
	}
	return "?"
}

// Unary is a unary prefix operation.
type Unary struct {
	exprBase
	Op      UnaryOp
	Operand Expr
}

// BinaryOp enumerates the binary infix operators.
type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinOr
	BinAnd
	BinLt
	BinLe
	BinGt
	BinGe
	BinEq
	BinNe
	BinAssign
	BinPush
	BinPop
)

func (op BinaryOp) String() string {
	switch op {
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	case BinRem:
		return "%"
	case BinOr:
		return "||"
	case BinAnd:
		return "&&"
	case BinLt:
		return "<"
	case BinLe:
		return "<="
	case BinGt:
		return ">"
	case BinGe:
		return ">="
	case BinEq:
		return "=="
	case BinNe:
		return "!="
	case BinAssign:
		return "="
	case BinPush:
		return "<<"
	case BinPop:
		return ">>"
	}
	return "?"
}

// Binary is a binary infix operation.
type Binary struct {
	exprBase
	Op  BinaryOp
	LHS Expr
	RHS Expr
}
