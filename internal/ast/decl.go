package ast

import (
	"ucc/internal/symbols"
	"ucc/internal/types"
)

// Decl is a top-level declaration: a struct or a function.
type Decl interface {
	Node
	declNode()
}

// Program is an ordered sequence of top-level declarations.
type Program struct {
	node
	Decls []Decl
}

// TypeName is a syntactic reference to a type: a simple name or an
// array-of. Resolved returns nil until type resolution has run; reading it
// earlier is a bug in the compiler, not a legitimate state.
type TypeName interface {
	Node
	Resolved() types.Type
	SetResolved(types.Type)
	typeNameNode()
}

// SimpleTypeName names a type directly.
type SimpleTypeName struct {
	node
	Name *Name

	resolved types.Type
}

func (t *SimpleTypeName) Resolved() types.Type      { return t.resolved }
func (t *SimpleTypeName) SetResolved(tt types.Type) { t.resolved = tt }
func (t *SimpleTypeName) typeNameNode()             {}

// ArrayTypeName is the array of an element type name.
type ArrayTypeName struct {
	node
	Elem TypeName

	resolved types.Type
}

func (t *ArrayTypeName) Resolved() types.Type      { return t.resolved }
func (t *ArrayTypeName) SetResolved(tt types.Type) { t.resolved = tt }
func (t *ArrayTypeName) typeNameNode()             {}

// VarDecl declares a field or a local variable.
type VarDecl struct {
	node
	VarType TypeName
	Name    *Name
}

// Param declares one function parameter.
type Param struct {
	node
	VarType TypeName
	Name    *Name
}

// StructDecl declares a user type with an ordered field list.
//
// Type is registered during declaration collection; Scope is built during
// name checking and read-only afterwards.
type StructDecl struct {
	node
	Name   *Name
	Fields []*VarDecl

	Type  types.Type
	Scope *symbols.VarEnv
}

func (*StructDecl) declNode() {}

// FuncDecl declares a function: return type, parameters, local variables,
// and a body block.
//
// Func is registered during declaration collection and completed during
// type resolution; Scope is built during name checking.
type FuncDecl struct {
	node
	RetType TypeName
	Name    *Name
	Params  []*Param
	Vars    []*VarDecl
	Body    *Block

	Func  *types.Function
	Scope *symbols.VarEnv
}

func (*FuncDecl) declNode() {}
