// Package sema implements the ordered semantic phases of the uC compiler:
// declaration collection, type resolution, call resolution, name-uniqueness
// checking, control-flow validation, and type checking. Each phase is one
// complete pre-order traversal; later phases rely on attributes the earlier
// ones populated, so the order is fixed.
package sema

import (
	"ucc/internal/diag"
	"ucc/internal/symbols"
	"ucc/internal/types"
)

// Context is the per-phase, per-subtree state threaded through a traversal.
// It is passed by value: entering a nested scope means copying the context
// and overriding one field, never mutating shared state, so sibling
// subtrees cannot observe each other's overrides.
type Context struct {
	Phase    uint8
	Globals  *symbols.GlobalEnv
	Reporter diag.Reporter

	// Locals is the active flat scope during type checking.
	Locals *symbols.VarEnv
	// RetType is the enclosing function's declared return type during type
	// checking.
	RetType types.Type
	// InLoop is set while traversing a loop body during control-flow
	// checking.
	InLoop bool
	// InReturn marks the return-type position during type resolution; only
	// there may the void type name appear.
	InReturn bool
}
