package types

import (
	"fmt"

	"ucc/internal/diag"
	"ucc/internal/source"
)

// Type is a uC type: a primitive, an array, or a user-defined struct.
// Types are identified by their canonical name, so two independently built
// descriptors of the same type compare equal through Same.
type Type interface {
	// Name returns the uC-level name ("int", "foo", "int[]").
	Name() string
	// Mangle returns the name used for value occurrences in generated code.
	Mangle() string
	// CheckArgs validates constructor arguments against this type. args are
	// the already-computed argument types. Problems are reported, never
	// returned.
	CheckArgs(r diag.Reporter, phase uint8, pos source.Pos, args []Type)
	// LookupField returns the type of the named field, reporting and
	// recovering to int when the field does not exist.
	LookupField(r diag.Reporter, phase uint8, pos source.Pos, field string) Type
}

// Primitive is a built-in non-aggregate type.
type Primitive struct {
	name string
}

func (t *Primitive) Name() string   { return t.name }
func (t *Primitive) Mangle() string { return fmt.Sprintf("UC_PRIMITIVE(%s)", t.name) }

func (t *Primitive) CheckArgs(r diag.Reporter, phase uint8, pos source.Pos, args []Type) {
	if len(args) != 0 {
		diag.Errorf(r, phase, diag.SemArityMismatch, pos,
			"primitive type %s does not take constructor arguments", t.name)
	}
}

func (t *Primitive) LookupField(r diag.Reporter, phase uint8, pos source.Pos, field string) Type {
	diag.Errorf(r, phase, diag.SemUndefinedField, pos,
		"primitive type %s has no field %s", t.name, field)
	return Int
}

// Array is the array type of some element type.
type Array struct {
	elem Type
}

// ArrayOf returns the array type with the given element type.
func ArrayOf(elem Type) *Array { return &Array{elem: elem} }

func (t *Array) Elem() Type     { return t.elem }
func (t *Array) Name() string   { return t.elem.Name() + "[]" }
func (t *Array) Mangle() string { return fmt.Sprintf("UC_ARRAY(%s)", t.elem.Mangle()) }

// CheckArgs validates the initial elements of an array allocation: any
// number of arguments, each implicitly convertible to the element type.
func (t *Array) CheckArgs(r diag.Reporter, phase uint8, pos source.Pos, args []Type) {
	for _, arg := range args {
		if arg == nil {
			continue
		}
		if !IsCompatible(arg, t.elem) {
			diag.Errorf(r, phase, diag.SemTypeMismatch, pos,
				"type %s of element is not compatible with element type %s",
				arg.Name(), t.elem.Name())
		}
	}
}

// LookupField resolves the synthetic length pseudo-field; anything else is
// an error recovered to int.
func (t *Array) LookupField(r diag.Reporter, phase uint8, pos source.Pos, field string) Type {
	if field == "length" {
		return Int
	}
	diag.Errorf(r, phase, diag.SemUndefinedField, pos,
		"array type %s has no field %s", t.Name(), field)
	return Int
}

// Field is one field of a user type, in declaration order.
type Field struct {
	Name string
	Type Type
}

// User is a user-defined struct type. Its field list is filled in once the
// declaration's type names have been resolved.
type User struct {
	name   string
	fields []Field
}

// NewUser creates a user type with an empty field list.
func NewUser(name string) *User { return &User{name: name} }

func (t *User) Name() string   { return t.name }
func (t *User) Mangle() string { return fmt.Sprintf("UC_REFERENCE(%s)", t.name) }

// Fields returns the ordered field list.
func (t *User) Fields() []Field { return t.fields }

// SetFields records the ordered fields of this type. Called once type
// resolution has computed every field type.
func (t *User) SetFields(fields []Field) { t.fields = fields }

// CheckArgs validates constructor arguments: either none (default
// constructor) or exactly one per field, each implicitly convertible to the
// field's type. Arity is checked first and alone.
func (t *User) CheckArgs(r diag.Reporter, phase uint8, pos source.Pos, args []Type) {
	if len(args) == 0 {
		return
	}
	if len(args) != len(t.fields) {
		diag.Errorf(r, phase, diag.SemArityMismatch, pos,
			"constructor of %s expected %d argument(s), but got %d",
			t.name, len(t.fields), len(args))
		return
	}
	for i, arg := range args {
		if arg == nil {
			continue
		}
		if !IsCompatible(arg, t.fields[i].Type) {
			diag.Errorf(r, phase, diag.SemTypeMismatch, pos,
				"type %s of argument is not compatible with field %s of type %s",
				arg.Name(), t.fields[i].Name, t.fields[i].Type.Name())
		}
	}
}

func (t *User) LookupField(r diag.Reporter, phase uint8, pos source.Pos, field string) Type {
	for i := range t.fields {
		if t.fields[i].Name == field {
			return t.fields[i].Type
		}
	}
	diag.Errorf(r, phase, diag.SemUndefinedField, pos,
		"type %s has no field %s", t.name, field)
	return Int
}
