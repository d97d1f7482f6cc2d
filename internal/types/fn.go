package types

import (
	"fmt"

	"ucc/internal/diag"
	"ucc/internal/source"
)

// FuncKind distinguishes built-in functions from user-declared ones.
type FuncKind uint8

const (
	FuncPrimitive FuncKind = iota
	FuncUser
)

// Function is a uC function: a name, a return type, and an ordered
// parameter-type list. User functions start empty and are filled in during
// declaration collection and type resolution.
type Function struct {
	Kind   FuncKind
	name   string
	Ret    Type
	Params []Type
}

// NewPrimitiveFunction creates a fully formed built-in function.
func NewPrimitiveFunction(name string, ret Type, params ...Type) *Function {
	return &Function{Kind: FuncPrimitive, name: name, Ret: ret, Params: params}
}

// NewUserFunction creates a user function with no return or parameter types
// yet; type resolution fills them in.
func NewUserFunction(name string) *Function {
	return &Function{Kind: FuncUser, name: name}
}

func (f *Function) Name() string   { return f.name }
func (f *Function) Mangle() string { return fmt.Sprintf("UC_FUNCTION(%s)", f.name) }

// AddParamTypes appends parameter types in declaration order.
func (f *Function) AddParamTypes(params ...Type) {
	f.Params = append(f.Params, params...)
}

// ResetParams clears the accumulated parameter list so that re-running type
// resolution over an already-resolved tree rebuilds it instead of doubling it.
func (f *Function) ResetParams() {
	f.Params = f.Params[:0]
}

// CheckArgs compares the given argument types against the parameter list.
// An arity mismatch is reported once, with no per-argument diagnostics;
// otherwise each incompatible argument is reported independently.
func (f *Function) CheckArgs(r diag.Reporter, phase uint8, pos source.Pos, args []Type) {
	if len(args) != len(f.Params) {
		diag.Errorf(r, phase, diag.SemArityMismatch, pos,
			"function %s expected %d argument(s), but got %d",
			f.name, len(f.Params), len(args))
		return
	}
	for i, arg := range args {
		if arg == nil {
			continue
		}
		if !IsCompatible(arg, f.Params[i]) {
			diag.Errorf(r, phase, diag.SemTypeMismatch, pos,
				"type %s of argument is not compatible with parameter of type %s",
				arg.Name(), f.Params[i].Name())
		}
	}
}

// makeConversion builds the built-in conversion from src to dst.
func makeConversion(dst, src string, env map[string]Type) *Function {
	return NewPrimitiveFunction(src+"_to_"+dst, env[dst], env[src])
}

// addConversions registers every ordered-pair conversion among int, long,
// float, and string, plus string<->boolean.
func addConversions(funcs map[string]*Function, env map[string]Type) {
	names := []string{"int", "long", "float", "string"}
	for _, dst := range names {
		for _, src := range names {
			if dst == src {
				continue
			}
			f := makeConversion(dst, src, env)
			funcs[f.Name()] = f
		}
	}
	f := makeConversion("boolean", "string", env)
	funcs[f.Name()] = f
	f = makeConversion("string", "boolean", env)
	funcs[f.Name()] = f
}

// AddBuiltinFunctions seeds a function environment with the uC intrinsics:
// conversions, string and numeric operations, and I/O.
func AddBuiltinFunctions(funcs map[string]*Function, env map[string]Type) {
	addConversions(funcs, env)

	// string functions
	funcs["length"] = NewPrimitiveFunction("length", env["int"], env["string"])
	funcs["substr"] = NewPrimitiveFunction("substr", env["string"], env["string"], env["int"], env["int"])
	funcs["ordinal"] = NewPrimitiveFunction("ordinal", env["int"], env["string"])
	funcs["character"] = NewPrimitiveFunction("character", env["string"], env["int"])

	// numeric functions
	funcs["pow"] = NewPrimitiveFunction("pow", env["float"], env["float"], env["float"])
	funcs["sqrt"] = NewPrimitiveFunction("sqrt", env["float"], env["float"])
	funcs["ceil"] = NewPrimitiveFunction("ceil", env["float"], env["float"])
	funcs["floor"] = NewPrimitiveFunction("floor", env["float"], env["float"])

	// output
	funcs["print"] = NewPrimitiveFunction("print", env["void"], env["string"])
	funcs["println"] = NewPrimitiveFunction("println", env["void"], env["string"])

	// input
	funcs["peekchar"] = NewPrimitiveFunction("peekchar", env["string"])
	funcs["readchar"] = NewPrimitiveFunction("readchar", env["string"])
	funcs["readline"] = NewPrimitiveFunction("readline", env["string"])
}
