package types

import (
	"ucc/internal/diag"
	"ucc/internal/source"
)

// Built-in primitive types. These are immutable and shared across
// compilations; per-compilation state (user types, array descriptors) is
// allocated fresh.
var (
	Int     = &Primitive{name: "int"}
	Long    = &Primitive{name: "long"}
	Float   = &Primitive{name: "float"}
	String  = &Primitive{name: "string"}
	Boolean = &Primitive{name: "boolean"}
	Void    = &Primitive{name: "void"}
	Null    = &Primitive{name: "null"}
)

// AddBuiltinTypes seeds a type environment with the built-in primitives.
func AddBuiltinTypes(env map[string]Type) {
	for _, t := range []*Primitive{Int, Long, Float, String, Boolean, Void, Null} {
		env[t.Name()] = t
	}
}

// Same reports whether a and b are the same type. Identity is by canonical
// name: array descriptors are allocated freely, user types are unique per
// compilation.
func Same(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Name() == b.Name()
}

// IsPrimitive reports whether t is a built-in non-aggregate type.
func IsPrimitive(t Type) bool {
	_, ok := t.(*Primitive)
	return ok
}

// IsNumeric reports whether t is int, long, or float.
func IsNumeric(t Type) bool {
	return Same(t, Int) || Same(t, Long) || Same(t, Float)
}

// IsIntegral reports whether t is int or long.
func IsIntegral(t Type) bool {
	return Same(t, Int) || Same(t, Long)
}

// IsCompatible reports whether a value of type from is implicitly
// convertible to type to: identical types, numeric widening (int to long,
// int to float, long to float), or null to any reference type.
func IsCompatible(from, to Type) bool {
	if from == nil || to == nil {
		return false
	}
	if Same(from, to) {
		return true
	}
	if Same(from, Int) && (Same(to, Long) || Same(to, Float)) {
		return true
	}
	if Same(from, Long) && Same(to, Float) {
		return true
	}
	if Same(from, Null) {
		switch to.(type) {
		case *User, *Array:
			return true
		}
	}
	return false
}

// Join returns the result type of a binary arithmetic operation on a and b:
// the same type when they are identical, the wider numeric type when both
// are numeric, and int (with a diagnostic) otherwise.
func Join(r diag.Reporter, phase uint8, pos source.Pos, a, b Type) Type {
	if Same(a, b) {
		return a
	}
	if IsNumeric(a) && IsNumeric(b) {
		if Same(a, Float) || Same(b, Float) {
			return Float
		}
		if Same(a, Long) || Same(b, Long) {
			return Long
		}
		return Int
	}
	diag.Errorf(r, phase, diag.SemTypeMismatch, pos,
		"no common type for %s and %s", a.Name(), b.Name())
	return Int
}
