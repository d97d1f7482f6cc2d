package diagfmt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// SummaryStats aggregates the outcome of a batch run.
type SummaryStats struct {
	Files    int
	Clean    int
	Errors   int
	Warnings int
}

var (
	summaryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	summaryOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	summaryFail = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Summary renders a one-box batch summary. With color disabled the box
// is rendered without styling so output stays pipe-friendly.
func Summary(w io.Writer, s SummaryStats, colored bool) {
	verdict := "ok"
	if s.Errors > 0 {
		verdict = "failed"
	}
	body := fmt.Sprintf("files %d  clean %d  errors %d  warnings %d  %s",
		s.Files, s.Clean, s.Errors, s.Warnings, verdict)
	if !colored {
		fmt.Fprintln(w, body)
		return
	}
	style := summaryOK
	if s.Errors > 0 {
		style = summaryFail
	}
	fmt.Fprintln(w, summaryBox.Render(style.Render(body)))
}
