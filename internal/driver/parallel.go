package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"fieldgen/internal/diag"
	"fieldgen/internal/listing"
	"fieldgen/internal/project"
	"fieldgen/internal/trace"
)

// ExpandPaths replaces directories with the listings they contain (sorted
// for a deterministic order) and keeps plain files as given. Project
// manifests found while walking are not listings and are skipped.
func ExpandPaths(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		var found []string
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || d.Name() == project.ManifestName {
				return nil
			}
			if _, ferr := listing.FormatFromPath(path); ferr == nil {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}

// GenerateFiles generates every listing in parallel. Results keep the order
// of paths. The error is non-nil only when ctx is cancelled; per-file
// failures live in the results.
func GenerateFiles(ctx context.Context, paths []string, opts Options) ([]FileResult, error) {
	opts = opts.withDefaults()
	results := make([]FileResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "generate", trace.CurrentSpan(ctx).SpanID)
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: span.ID()})
	defer span.WithExtra("files", strconv.Itoa(len(paths))).End("")

	for _, p := range paths {
		emit(opts.Progress, Event{File: p, Stage: StageLoad, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns results[i]; no locking needed.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = GenerateFile(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// CheckResult is the outcome of validating one listing.
type CheckResult struct {
	Path      string
	Functions int
	Entities  int
	Bag       *diag.Bag
}

// CheckFiles validates listings without generating anything.
func CheckFiles(ctx context.Context, paths []string, opts Options) ([]CheckResult, error) {
	opts = opts.withDefaults()
	results := make([]CheckResult, len(paths))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(path, opts)
			return nil
		})
	}
	return results, g.Wait()
}
