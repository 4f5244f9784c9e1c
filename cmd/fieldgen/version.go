package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"fieldgen/internal/version"
)

// buildInfo is what `fieldgen version` knows about the running binary.
// Values set with -ldflags win over the VCS stamps recorded by the Go
// toolchain.
type buildInfo struct {
	Tool     string `json:"tool"`
	Version  string `json:"version"`
	Commit   string `json:"commit,omitempty"`
	Modified bool   `json:"modified,omitempty"`
	Date     string `json:"date,omitempty"`
	Go       string `json:"go,omitempty"`
}

func readBuildInfo() buildInfo {
	info := buildInfo{
		Tool:    "fieldgen",
		Version: strings.TrimSpace(version.Version),
		Commit:  strings.TrimSpace(version.GitCommit),
		Date:    strings.TrimSpace(version.BuildDate),
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.Go = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// only keeps the fields asked for; the tool and version always stay.
func (b buildInfo) only(commit, date bool) buildInfo {
	if !commit {
		b.Commit, b.Modified = "", false
	}
	if !date {
		b.Date = ""
	}
	if !commit || !date {
		b.Go = ""
	}
	return b
}

func (b buildInfo) writePretty(out io.Writer) {
	fmt.Fprintf(out, "fieldgen %s\n", version.Colored())
	if b.Commit != "" {
		commit := b.Commit
		if b.Modified {
			commit += " (dirty)"
		}
		fmt.Fprintf(out, "  commit  %s\n", commit)
	}
	if b.Date != "" {
		fmt.Fprintf(out, "  built   %s\n", b.Date)
	}
	if b.Go != "" {
		fmt.Fprintf(out, "  go      %s\n", b.Go)
	}
}

func newVersionCmd() *cobra.Command {
	var (
		format            string
		commit, date, all bool
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print fieldgen build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := readBuildInfo().only(commit || all, date || all)
			switch strings.ToLower(format) {
			case "pretty":
				info.writePretty(cmd.OutOrStdout())
				return nil
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
		},
	}
	cmd.Flags().BoolVar(&commit, "hash", false, "include the commit")
	cmd.Flags().BoolVar(&date, "date", false, "include the build date")
	cmd.Flags().BoolVar(&all, "full", false, "include commit, date and Go version")
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return cmd
}
