package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fieldgen/internal/codegen"
	"fieldgen/internal/diag"
	"fieldgen/internal/lines"
	"fieldgen/internal/listing"
	"fieldgen/internal/project"
	"fieldgen/internal/script"
	"fieldgen/internal/trace"
)

// FileResult is the outcome of generating one listing.
type FileResult struct {
	Path    string
	OutPath string // empty with Options.Stdout
	Output  []byte
	Stats   codegen.Stats
	Cached  bool
	Bag     *diag.Bag
	Err     error
}

// GenerateFile loads one listing, generates its script and writes it.
// Failures are returned in FileResult.Err and as diagnostics in the bag.
func GenerateFile(ctx context.Context, path string, opts Options) FileResult {
	opts = opts.withDefaults()
	start := time.Now()
	res := FileResult{Path: path, Bag: diag.NewBag(opts.MaxDiagnostics)}
	reporter := &diag.BagReporter{Bag: res.Bag}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "file:"+filepath.Base(path), trace.CurrentSpan(ctx).SpanID)
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: span.ID()})
	defer func() {
		detail := "ok"
		if res.Err != nil {
			detail = res.Err.Error()
		}
		span.WithExtra("functions", strconv.Itoa(res.Stats.Functions)).
			WithExtra("cached", strconv.FormatBool(res.Cached)).
			End(detail)
	}()

	fail := func(stage Stage, err error) FileResult {
		res.Err = err
		emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		return res
	}

	// load
	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
	endLoad := opts.Timer.Begin(string(StageLoad))
	lst, raw, err := listing.Load(path)
	endLoad("")
	if err != nil {
		reportIO(reporter, diag.IOLoadFile, path, err)
		return fail(StageLoad, err)
	}
	funcs := lst.Funcs()

	// generate, unless cached
	emit(opts.Progress, Event{File: path, Stage: StageGenerate, Status: StatusWorking})
	key := project.Combine(project.Sum(raw), opts.digest())
	var cached CachedOutput
	hit, err := opts.Cache.Get(key, &cached)
	if err != nil {
		trace.Point(tracer, trace.ScopeFile, "cache:corrupt", span.ID(), err.Error())
		hit = false
	}
	if hit {
		res.Cached = true
		res.Output = cached.Output
		res.Stats = codegen.Stats{Functions: cached.Functions, Entities: cached.Entities, Lines: cached.Lines}
	} else {
		endGen := opts.Timer.Begin(string(StageGenerate))
		out, stats, err := generate(ctx, funcs, opts)
		endGen("")
		res.Stats = stats
		if err != nil {
			if ctx.Err() == nil && reportViolations(reporter, path, funcs) == 0 {
				reporter.Report(diag.Diagnostic{Severity: diag.SevError, Message: err.Error(), Path: path, Index: -1})
			}
			return fail(StageGenerate, fmt.Errorf("%s: %w", path, err))
		}
		res.Output = out
		if err := opts.Cache.Put(key, &CachedOutput{
			Source:    lst.Source,
			Output:    out,
			Functions: stats.Functions,
			Entities:  stats.Entities,
			Lines:     stats.Lines,
		}); err != nil {
			trace.Point(tracer, trace.ScopeFile, "cache:put-failed", span.ID(), err.Error())
		}
	}

	if opts.Stdout {
		emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusDone, Elapsed: time.Since(start)})
		return res
	}

	// write
	emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
	endWrite := opts.Timer.Begin(string(StageWrite))
	res.OutPath = OutputPath(path, opts)
	err = writeAtomic(res.OutPath, res.Output)
	endWrite("")
	if err != nil {
		reportIO(reporter, diag.IOWriteFile, path, err)
		return fail(StageWrite, err)
	}
	emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusDone, Elapsed: time.Since(start)})
	return res
}

func generate(ctx context.Context, funcs []*script.Function, opts Options) ([]byte, codegen.Stats, error) {
	w := lines.NewWriter(opts.Lines)
	em := codegen.NewFieldEmitter(w, opts.Syntax)
	stats, err := codegen.NewGenerator(w, em, codegen.StaticBody{}).Generate(ctx, funcs)
	if err != nil {
		return nil, stats, err
	}
	return w.Bytes(), stats, nil
}

// OutputPath returns <OutDir>/<listing basename><Extension>.
func OutputPath(path string, opts Options) string {
	opts = opts.withDefaults()
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return filepath.Join(opts.OutDir, base+opts.Extension)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".fieldgen-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
