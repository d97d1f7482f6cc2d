package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ucc/internal/driver"
	"ucc/internal/project"
	"ucc/internal/source"
)

var buildCmd = &cobra.Command{
	Use:   "build [dir]",
	Short: "Compile the project described by uc.toml",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		startDir := "."
		if len(args) == 1 {
			startDir = args[0]
		}
		manifestPath, ok, err := project.Find(startDir)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no %s found from %s upwards", project.ManifestName, startDir)
		}
		manifest, err := project.Load(manifestPath)
		if err != nil {
			return err
		}
		sources, err := manifest.SourcePaths()
		if err != nil {
			return err
		}
		if len(sources) == 0 {
			return fmt.Errorf("%s: no sources", manifestPath)
		}

		opts := driverOptions(cmd)
		if opts.Jobs == 0 {
			opts.Jobs = manifest.Jobs
		}
		fset := source.NewFileSet()
		results, err := driver.CompileAll(cmd.Context(), fset, sources, opts)
		if err != nil {
			return err
		}
		failed := reportResults(cmd, fset, results)
		if err := writeOutputs(cmd, manifest.OutDir(), results); err != nil {
			return err
		}
		if failed {
			return exitError{}
		}
		return nil
	},
}
