// Package symbols holds the name-resolution environments of one uC
// compilation: the program-wide GlobalEnv and the flat per-declaration
// VarEnv. Lookups never fail hard; missing names are reported and replaced
// with a recovery default so later phases keep running.
package symbols

import (
	"sort"

	"ucc/internal/diag"
	"ucc/internal/source"
	"ucc/internal/types"
)

// GlobalEnv maps names to types and to functions for a whole program.
// It is written during declaration collection and read-only afterwards.
type GlobalEnv struct {
	types     map[string]types.Type
	functions map[string]*types.Function
}

// NewGlobalEnv creates an environment pre-seeded with the built-in types
// and functions.
func NewGlobalEnv() *GlobalEnv {
	g := &GlobalEnv{
		types:     make(map[string]types.Type, 32),
		functions: make(map[string]*types.Function, 64),
	}
	types.AddBuiltinTypes(g.types)
	types.AddBuiltinFunctions(g.functions, g.types)
	return g
}

// AddType registers a user type under name. On redefinition the existing
// binding is kept, a diagnostic is reported, and the existing type is
// returned.
func (g *GlobalEnv) AddType(r diag.Reporter, phase uint8, pos source.Pos, name string) types.Type {
	if existing, ok := g.types[name]; ok {
		diag.Errorf(r, phase, diag.SemRedefinedType, pos, "redefinition of type %s", name)
		return existing
	}
	t := types.NewUser(name)
	g.types[name] = t
	return t
}

// AddFunction registers a user function under name, with the same
// redefinition contract as AddType.
func (g *GlobalEnv) AddFunction(r diag.Reporter, phase uint8, pos source.Pos, name string) *types.Function {
	if existing, ok := g.functions[name]; ok {
		diag.Errorf(r, phase, diag.SemRedefinedFunction, pos, "redefinition of function %s", name)
		return existing
	}
	f := types.NewUserFunction(name)
	g.functions[name] = f
	return f
}

// LookupType returns the type bound to name. An unknown name is reported
// and recovered to int.
func (g *GlobalEnv) LookupType(r diag.Reporter, phase uint8, pos source.Pos, name string) types.Type {
	if t, ok := g.types[name]; ok {
		return t
	}
	diag.Errorf(r, phase, diag.SemUndefinedType, pos, "undefined type %s", name)
	return g.types["int"]
}

// TryType is the non-committal lookup: no diagnostic, nil when absent.
func (g *GlobalEnv) TryType(name string) (types.Type, bool) {
	t, ok := g.types[name]
	return t, ok
}

// LookupFunction returns the function bound to name. An unknown name is
// reported and recovered to the built-in string_to_int conversion.
func (g *GlobalEnv) LookupFunction(r diag.Reporter, phase uint8, pos source.Pos, name string) *types.Function {
	if f, ok := g.functions[name]; ok {
		return f
	}
	diag.Errorf(r, phase, diag.SemUndefinedFunction, pos, "undefined function %s", name)
	return g.functions["string_to_int"]
}

// TryFunction is the non-committal lookup: no diagnostic, nil when absent.
func (g *GlobalEnv) TryFunction(name string) (*types.Function, bool) {
	f, ok := g.functions[name]
	return f, ok
}

// TypeNames returns the sorted names of all bound types.
func (g *GlobalEnv) TypeNames() []string {
	names := make([]string, 0, len(g.types))
	for name := range g.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FunctionNames returns the sorted names of all bound functions.
func (g *GlobalEnv) FunctionNames() []string {
	names := make([]string, 0, len(g.functions))
	for name := range g.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BindKind says what kind of entity a VarEnv binding is; it only affects
// diagnostic wording.
type BindKind uint8

const (
	BindField BindKind = iota
	BindVariable
	BindParameter
)

func (k BindKind) String() string {
	switch k {
	case BindField:
		return "field"
	case BindVariable:
		return "variable"
	case BindParameter:
		return "parameter"
	}
	return "name"
}

// VarEnv is the flat local scope of one declaration: a struct's fields or a
// function's parameters and locals. Scopes never nest; there is no
// shadowing inside a declaration.
type VarEnv struct {
	global *GlobalEnv
	vars   map[string]types.Type
}

// NewVarEnv creates an empty local environment. The global environment
// supplies the recovery default for failed lookups.
func NewVarEnv(global *GlobalEnv) *VarEnv {
	return &VarEnv{
		global: global,
		vars:   make(map[string]types.Type, 8),
	}
}

// AddVariable binds name to t. A name already bound in this scope is
// reported and the original binding kept.
func (v *VarEnv) AddVariable(r diag.Reporter, phase uint8, pos source.Pos, name string, t types.Type, kind BindKind) {
	if _, ok := v.vars[name]; ok {
		diag.Errorf(r, phase, diag.SemRedeclaredName, pos, "redeclaration of %s %s", kind, name)
		return
	}
	v.vars[name] = t
}

// Contains reports whether name is bound in this scope.
func (v *VarEnv) Contains(name string) bool {
	_, ok := v.vars[name]
	return ok
}

// GetType returns the type bound to name, reporting and recovering to int
// when the name is unbound.
func (v *VarEnv) GetType(r diag.Reporter, phase uint8, pos source.Pos, name string) types.Type {
	if t, ok := v.vars[name]; ok {
		return t
	}
	diag.Errorf(r, phase, diag.SemUndefinedVariable, pos, "undefined variable %s", name)
	return v.global.LookupType(r, phase, pos, "int")
}
