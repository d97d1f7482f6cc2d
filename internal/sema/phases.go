package sema

import (
	"ucc/internal/ast"
	"ucc/internal/diag"
	"ucc/internal/symbols"
)

// Phase numbers, used in diagnostics.
const (
	PhaseDecls        uint8 = 1
	PhaseTypes        uint8 = 2
	PhaseCalls        uint8 = 3
	PhaseNames        uint8 = 4
	PhaseControl      uint8 = 5
	PhaseTypeCheck    uint8 = 6
	PhaseCount              = 6
)

// Analyze runs every semantic phase over prog in order. The global
// environment is written during declaration collection and read-only
// afterwards; diagnostics accumulate in r and never abort a phase.
//
// Re-running Analyze over an already-resolved tree is a no-op: phases guard
// on the attributes they own.
func Analyze(prog *ast.Program, globals *symbols.GlobalEnv, r diag.Reporter) {
	findDecls(prog, Context{Phase: PhaseDecls, Globals: globals, Reporter: r})
	resolveTypes(prog, Context{Phase: PhaseTypes, Globals: globals, Reporter: r})
	resolveCalls(prog, Context{Phase: PhaseCalls, Globals: globals, Reporter: r})
	checkNames(prog, Context{Phase: PhaseNames, Globals: globals, Reporter: r})
	basicControl(prog, Context{Phase: PhaseControl, Globals: globals, Reporter: r})
	advancedControl(prog, Context{Phase: PhaseControl, Globals: globals, Reporter: r})
	typeCheck(prog, Context{Phase: PhaseTypeCheck, Globals: globals, Reporter: r})
}
