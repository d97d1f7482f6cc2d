package diag

import (
	"fmt"

	"ucc/internal/source"
)

// Diagnostic is one reported problem. Phase is the compiler phase (1-6) that
// discovered it; 0 means outside the analysis phases.
type Diagnostic struct {
	Phase    uint8
	Severity Severity
	Code     Code
	Pos      source.Pos
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s[%s] (phase %d) at %s: %s",
		d.Severity, d.Code, d.Phase, d.Pos, d.Message)
}
