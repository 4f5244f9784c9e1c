package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fieldgen/internal/driver"
)

var genCmd = &cobra.Command{
	Use:   "gen [flags] <listing...>",
	Short: "Generate entity scripts from function listings",
	Long: `Generate entity scripts from .toml or .fnpack function listings.
Directories are searched recursively for listings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: genExecution,
}

func init() {
	genCmd.Flags().StringP("out", "o", "", "output directory (default from fieldgen.toml)")
	genCmd.Flags().Bool("stdout", false, "print generated scripts instead of writing files")
	genCmd.Flags().IntP("jobs", "j", 0, "parallel workers (0 = GOMAXPROCS)")
	genCmd.Flags().Int("indent", 0, "spaces per indentation level")
	genCmd.Flags().Bool("tabs", false, "indent with tabs")
	genCmd.Flags().Bool("cache", false, "reuse generated output from the user cache")
	genCmd.Flags().Bool("clear-cache", false, "empty the user cache before generating (implies --cache)")
	genCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
}

func genExecution(cmd *cobra.Command, args []string) error {
	opts, manifest, g, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()

	if flags.Changed("out") {
		if opts.OutDir, err = flags.GetString("out"); err != nil {
			return err
		}
	}
	if opts.Stdout, err = flags.GetBool("stdout"); err != nil {
		return err
	}
	if flags.Changed("jobs") {
		if opts.Jobs, err = flags.GetInt("jobs"); err != nil {
			return err
		}
	}
	if flags.Changed("indent") {
		if opts.Lines.IndentWidth, err = flags.GetInt("indent"); err != nil {
			return err
		}
	}
	if flags.Changed("tabs") {
		if opts.Lines.UseTabs, err = flags.GetBool("tabs"); err != nil {
			return err
		}
	}
	useCache := manifest.Config.Generate.Cache
	if flags.Changed("cache") {
		if useCache, err = flags.GetBool("cache"); err != nil {
			return err
		}
	}
	clearCache, err := flags.GetBool("clear-cache")
	if err != nil {
		return err
	}
	useCache = useCache || clearCache
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return err
	}
	mode, err := parseProgressMode(uiValue)
	if err != nil {
		return err
	}

	if useCache {
		cache, cacheErr := driver.OpenDiskCache("fieldgen")
		if cacheErr != nil {
			return fmt.Errorf("open cache: %w", cacheErr)
		}
		if clearCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
		}
		opts.Cache = cache
	}

	paths, err := driver.ExpandPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("no listings found")
	}

	ctx := cmd.Context()
	var results []driver.FileResult
	if useProgressView(mode, opts.Stdout, g.quiet) {
		results, err = runGenerateWithUI(ctx, "generating scripts", paths, opts)
	} else {
		results, err = driver.GenerateFiles(ctx, paths, opts)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed, cached := 0, 0
	for _, res := range results {
		printDiagnostics(cmd.ErrOrStderr(), res.Bag)
		if res.Err != nil {
			failed++
			if res.Bag == nil || res.Bag.Len() == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %v\n", errorLabel.Sprint("ERROR"), res.Path, res.Err)
			}
			continue
		}
		if res.Cached {
			cached++
		}
		if opts.Stdout {
			writeStdout(out, res, len(results) > 1)
		}
	}

	if !g.quiet && !opts.Stdout {
		fmt.Fprintf(out, "generated %d of %d listing(s)", len(results)-failed, len(results))
		if cached > 0 {
			fmt.Fprintf(out, " (%d cached)", cached)
		}
		fmt.Fprintln(out)
	}
	if g.timings {
		printTimings(cmd.ErrOrStderr(), opts.Timer)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d listing(s) failed", failed, len(results))
	}
	return nil
}

// writeStdout prints one generated script; batches get a Lua comment header
// per listing.
func writeStdout(out io.Writer, res driver.FileResult, header bool) {
	if header {
		fmt.Fprintf(out, "-- %s\n", res.Path)
	}
	_, _ = out.Write(res.Output)
}
