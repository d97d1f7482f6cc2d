package main

import (
	"os"

	"github.com/spf13/cobra"

	"ucc/internal/diag"
	"ucc/internal/diagfmt"
	"ucc/internal/driver"
	"ucc/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.ucast>...",
	Short: "Run semantic analysis without generating code",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := driverOptions(cmd)
		fset := source.NewFileSet()
		results, err := driver.AnalyzeAll(cmd.Context(), fset, args, opts)
		if err != nil {
			return err
		}
		if reportResults(cmd, fset, results) {
			return exitError{}
		}
		return nil
	},
}

// driverOptions collects the persistent flags shared by every
// pipeline-running command.
func driverOptions(cmd *cobra.Command) driver.Options {
	maxDiags, _ := cmd.Flags().GetInt("max-diagnostics")
	jobs, _ := cmd.Flags().GetInt("jobs")
	return driver.Options{MaxDiagnostics: maxDiags, Jobs: jobs}
}

// reportResults prints diagnostics and the batch summary, returning
// true when any file had errors.
func reportResults(cmd *cobra.Command, fset *source.FileSet, results []*driver.Result) bool {
	colored := colorEnabled(cmd)
	popts := diagfmt.PrettyOpts{Color: colored}
	stats := diagfmt.SummaryStats{Files: len(results)}
	for _, res := range results {
		diagfmt.Pretty(os.Stderr, res.Bag, fset, popts)
		hadError := false
		for _, d := range res.Bag.Items() {
			if d.Severity >= diag.SevError {
				stats.Errors++
				hadError = true
			} else {
				stats.Warnings++
			}
		}
		if !hadError {
			stats.Clean++
		}
	}
	diagfmt.Summary(os.Stderr, stats, colored)
	return stats.Errors > 0
}
