package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldgen/internal/driver"
	"fieldgen/internal/observ"
	"fieldgen/internal/project"
)

type globalFlags struct {
	quiet          bool
	timings        bool
	maxDiagnostics int
}

func readGlobalFlags(cmd *cobra.Command) (globalFlags, error) {
	flags := cmd.Root().PersistentFlags()
	var (
		g   globalFlags
		err error
	)
	if g.quiet, err = flags.GetBool("quiet"); err != nil {
		return g, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if g.timings, err = flags.GetBool("timings"); err != nil {
		return g, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if g.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return g, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return g, nil
}

// loadOptions builds driver options from fieldgen.toml (or the defaults)
// and the global flags. Command flags are applied by the caller.
func loadOptions(cmd *cobra.Command) (driver.Options, *project.Manifest, globalFlags, error) {
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return driver.Options{}, nil, g, err
	}
	manifest, _, err := project.Load(".")
	if err != nil {
		return driver.Options{}, nil, g, err
	}
	opts := driver.OptionsFromConfig(manifest)
	opts.MaxDiagnostics = g.maxDiagnostics
	if g.timings {
		opts.Timer = observ.NewTimer()
	}
	return opts, manifest, g, nil
}
