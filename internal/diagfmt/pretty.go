package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ucc/internal/diag"
	"ucc/internal/source"
)

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
	infoLabel    = color.New(color.FgCyan)
)

// Pretty renders diagnostics one per line:
//
//	<path>:<line>  <severity>[<code>] phase <n>: <message>
//
// The location column is padded to a common width so messages line up.
// Expects the bag to be sorted already.
func Pretty(w io.Writer, bag *diag.Bag, fset *source.FileSet, opts PrettyOpts) {
	items := bag.Items()
	locs := make([]string, len(items))
	width := 0
	for i, d := range items {
		locs[i] = fmt.Sprintf("%s:%d", displayPath(fset, d.Pos.File, opts.PathMode), d.Pos.Line)
		if lw := runewidth.StringWidth(locs[i]); lw > width {
			width = lw
		}
	}
	for i, d := range items {
		fmt.Fprintf(w, "%s  %s[%04d] phase %d: %s\n",
			runewidth.FillRight(locs[i], width),
			severityLabel(d.Severity, opts.Color), uint16(d.Code), d.Phase, d.Message)
	}
}

func displayPath(fset *source.FileSet, id source.FileID, mode PathMode) string {
	name := fset.Name(id)
	if name == "" {
		name = "<unknown>"
	}
	if mode == PathModeBasename {
		return filepath.Base(name)
	}
	return name
}

func severityLabel(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return errorLabel.Sprint(sev.String())
	case diag.SevWarning:
		return warningLabel.Sprint(sev.String())
	default:
		return infoLabel.Sprint(sev.String())
	}
}
