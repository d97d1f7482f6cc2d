package diag

import (
	"fmt"

	"ucc/internal/source"
)

// Reporter is the minimal contract for receiving diagnostics from the
// phases. Implementations: BagReporter (appends to a Bag), NopReporter.
// Reporting never aborts the caller.
type Reporter interface {
	Report(phase uint8, code Code, sev Severity, pos source.Pos, msg string)
}

// Errorf reports an error-severity diagnostic with a formatted message.
func Errorf(r Reporter, phase uint8, code Code, pos source.Pos, format string, args ...any) {
	if r == nil {
		return
	}
	r.Report(phase, code, SevError, pos, fmt.Sprintf(format, args...))
}

// Warningf reports a warning-severity diagnostic with a formatted message.
func Warningf(r Reporter, phase uint8, code Code, pos source.Pos, format string, args ...any) {
	if r == nil {
		return
	}
	r.Report(phase, code, SevWarning, pos, fmt.Sprintf(format, args...))
}

// BagReporter appends every diagnostic to a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(phase uint8, code Code, sev Severity, pos source.Pos, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Phase: phase, Severity: sev, Code: code, Pos: pos, Message: msg,
	})
}

// NopReporter drops every diagnostic.
type NopReporter struct{}

func (NopReporter) Report(uint8, Code, Severity, source.Pos, string) {}
