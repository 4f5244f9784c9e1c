package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fieldgen/internal/listing"
)

var packCmd = &cobra.Command{
	Use:   "pack <in> <out>",
	Short: "Convert a listing between .toml and .fnpack",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, out := args[0], args[1]
		l, _, err := listing.Load(in)
		if err != nil {
			return err
		}
		format, err := listing.FormatFromPath(out)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := listing.Encode(&buf, l, format); err != nil {
			return fmt.Errorf("encode %s: %w", out, err)
		}
		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			return err
		}
		quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "packed %d function(s) into %s (%s)\n", len(l.Functions), out, format)
		}
		return nil
	},
}
