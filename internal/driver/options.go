package driver

import (
	"fmt"

	"fieldgen/internal/codegen"
	"fieldgen/internal/lines"
	"fieldgen/internal/observ"
	"fieldgen/internal/project"
)

// Options configures a generation or check run.
type Options struct {
	OutDir         string // where generated scripts go; ignored with Stdout
	Extension      string // output extension, default ".lua"
	Stdout         bool   // keep output in memory instead of writing files
	Lines          lines.Options
	Syntax         codegen.Syntax
	Jobs           int // <= 0 means GOMAXPROCS
	MaxDiagnostics int
	Cache          *DiskCache
	Progress       ProgressSink
	Timer          *observ.Timer
}

func (o Options) withDefaults() Options {
	if o.Extension == "" {
		o.Extension = ".lua"
	}
	if o.OutDir == "" {
		o.OutDir = "."
	}
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = 100
	}
	return o
}

// OptionsFromConfig maps a project manifest onto driver options.
func OptionsFromConfig(m *project.Manifest) Options {
	cfg := m.Config
	return Options{
		OutDir:    m.OutputDir(),
		Extension: cfg.Output.Extension,
		Lines: lines.Options{
			IndentWidth: cfg.Output.Indent,
			UseTabs:     cfg.Output.Tabs,
		},
		Syntax: codegen.Syntax{
			Container:     cfg.Dialect.Container,
			DefaultReturn: cfg.Dialect.DefaultReturn,
		},
		Jobs: cfg.Generate.Jobs,
	}
}

// digest captures every option that changes generated text, for cache keys.
func (o Options) digest() project.Digest {
	lo := o.Lines
	if lo.IndentWidth <= 0 {
		lo.IndentWidth = 4
	}
	syn := o.Syntax
	def := codegen.DefaultSyntax()
	if syn.Container == "" {
		syn.Container = def.Container
	}
	if syn.DefaultReturn == "" {
		syn.DefaultReturn = def.DefaultReturn
	}
	key := fmt.Sprintf("v%d|%d|%t|%q|%q", diskCacheSchemaVersion, lo.IndentWidth, lo.UseTabs, syn.Container, syn.DefaultReturn)
	return project.Sum([]byte(key))
}
