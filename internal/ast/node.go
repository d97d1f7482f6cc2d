// Package ast defines the uC syntax tree consumed by the semantic phases
// and the backend. Nodes are plain structs sharing an embedded base; a
// Builder allocates them and assigns arena-backed node IDs. Structural
// fields are set at construction; analysis attributes (resolved types,
// functions, scopes) start nil and are populated by the phase that owns
// them.
package ast

import "ucc/internal/source"

// Node is implemented by every tree element.
type Node interface {
	ID() NodeID
	Pos() source.Pos
}

type node struct {
	id  NodeID
	pos source.Pos
}

func (n *node) ID() NodeID      { return n.id }
func (n *node) Pos() source.Pos { return n.pos }

// Name is a raw identifier occurrence.
type Name struct {
	node
	Raw string
}
