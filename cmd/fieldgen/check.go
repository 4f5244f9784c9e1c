package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fieldgen/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check <listing...>",
	Short: "Validate entity grouping in listings without generating",
	Args:  cobra.MinimumNArgs(1),
	RunE:  checkExecution,
}

func checkExecution(cmd *cobra.Command, args []string) error {
	opts, _, g, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	paths, err := driver.ExpandPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("no listings found")
	}

	results, err := driver.CheckFiles(cmd.Context(), paths, opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, res := range results {
		printDiagnostics(out, res.Bag)
		if !g.quiet && !res.Bag.HasErrors() {
			fmt.Fprintf(out, "%s: %d function(s), %d entit(ies)\n", res.Path, res.Functions, res.Entities)
		}
	}
	if driver.HasErrors(results) {
		return errors.New("check failed")
	}
	return nil
}
