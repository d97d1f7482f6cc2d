package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ucc/internal/driver"
	"ucc/internal/source"
)

var compileOutDir string

func init() {
	compileCmd.Flags().StringVarP(&compileOutDir, "out-dir", "o", "", "directory for generated .cpp files (default: alongside inputs)")
}

var compileCmd = &cobra.Command{
	Use:   "compile <file.ucast>...",
	Short: "Analyze and lower programs to C++",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := driverOptions(cmd)
		fset := source.NewFileSet()
		results, err := driver.CompileAll(cmd.Context(), fset, args, opts)
		if err != nil {
			return err
		}
		failed := reportResults(cmd, fset, results)
		if err := writeOutputs(cmd, compileOutDir, results); err != nil {
			return err
		}
		if failed {
			return exitError{}
		}
		return nil
	},
}

// writeOutputs writes the generated C++ of every clean result next to
// its input or into outDir.
func writeOutputs(cmd *cobra.Command, outDir string, results []*driver.Result) error {
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
	}
	for _, res := range results {
		if res.Output == "" {
			continue
		}
		dst := driver.OutputPath(outDir, res.Path)
		if err := os.WriteFile(dst, []byte(res.Output), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), dst)
	}
	return nil
}
