package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ucc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "ucc",
	Short:         "uC compiler middle and back end",
	Long:          `ucc analyzes parsed uC programs (.ucast files) and lowers them to C++`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics per file (0 = default)")
	rootCmd.PersistentFlags().Int("jobs", 0, "number of files to process in parallel (0 = all CPUs)")

	if err := rootCmd.Execute(); err != nil {
		if _, silent := err.(exitError); !silent {
			rootCmd.PrintErrln("Error:", err)
		}
		os.Exit(1)
	}
}

// exitError signals a non-zero exit whose cause was already reported
// through diagnostics.
type exitError struct{}

func (exitError) Error() string { return "exit" }

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves the --color flag against the output terminal.
func colorEnabled(cmd *cobra.Command) bool {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
