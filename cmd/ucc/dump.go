package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ucc/internal/diagfmt"
	"ucc/internal/driver"
	"ucc/internal/source"
)

var dumpFormat string

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "tree", "dump format (tree|dot)")
}

var dumpCmd = &cobra.Command{
	Use:   "dump <file.ucast>",
	Short: "Dump the analyzed tree of a program",
	Long: `Dump runs semantic analysis over one input and prints the resolved
tree, either as an indented listing or as a Graphviz digraph.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fset := source.NewFileSet()
		res, err := driver.AnalyzeFile(fset, args[0], driverOptions(cmd))
		if err != nil {
			return err
		}
		diagfmt.Pretty(os.Stderr, res.Bag, fset, diagfmt.PrettyOpts{Color: colorEnabled(cmd)})
		switch dumpFormat {
		case "tree":
			diagfmt.Tree(cmd.OutOrStdout(), res.Program)
		case "dot":
			diagfmt.Graph(cmd.OutOrStdout(), res.Program)
		default:
			return fmt.Errorf("unsupported format %q (must be tree or dot)", dumpFormat)
		}
		return nil
	},
}
