package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Redefinitions (one name, one table)
	SemRedefinedType     Code = 1001
	SemRedefinedFunction Code = 1002
	SemRedeclaredName    Code = 1003

	// Undefined names
	SemUndefinedType     Code = 1101
	SemUndefinedFunction Code = 1102
	SemUndefinedVariable Code = 1103
	SemUndefinedField    Code = 1104

	// Type errors
	SemVoidUsage           Code = 1201
	SemPrimitiveAllocation Code = 1202
	SemTypeMismatch        Code = 1203
	SemNotLValue           Code = 1204
	SemBadReceiver         Code = 1205
	SemBadIndex            Code = 1206
	SemBadOperand          Code = 1207
	SemArityMismatch       Code = 1208
	SemReturnMismatch      Code = 1209
	SemBadCondition        Code = 1210

	// Control flow
	SemBreakOutsideLoop    Code = 1301
	SemContinueOutsideLoop Code = 1302
)

func (c Code) String() string {
	switch c {
	case SemRedefinedType:
		return "SemRedefinedType"
	case SemRedefinedFunction:
		return "SemRedefinedFunction"
	case SemRedeclaredName:
		return "SemRedeclaredName"
	case SemUndefinedType:
		return "SemUndefinedType"
	case SemUndefinedFunction:
		return "SemUndefinedFunction"
	case SemUndefinedVariable:
		return "SemUndefinedVariable"
	case SemUndefinedField:
		return "SemUndefinedField"
	case SemVoidUsage:
		return "SemVoidUsage"
	case SemPrimitiveAllocation:
		return "SemPrimitiveAllocation"
	case SemTypeMismatch:
		return "SemTypeMismatch"
	case SemNotLValue:
		return "SemNotLValue"
	case SemBadReceiver:
		return "SemBadReceiver"
	case SemBadIndex:
		return "SemBadIndex"
	case SemBadOperand:
		return "SemBadOperand"
	case SemArityMismatch:
		return "SemArityMismatch"
	case SemReturnMismatch:
		return "SemReturnMismatch"
	case SemBadCondition:
		return "SemBadCondition"
	case SemBreakOutsideLoop:
		return "SemBreakOutsideLoop"
	case SemContinueOutsideLoop:
		return "SemContinueOutsideLoop"
	case UnknownCode:
		return "UnknownCode"
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}
