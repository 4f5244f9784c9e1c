// Package trace records what a generation run is doing.
//
// Enable tracing via command-line flags:
//
//	fieldgen gen --trace=- --trace-level=detail md1stin.toml
//
// Two tracers exist: a no-op tracer used when tracing is off and a stream
// tracer writing text or NDJSON to a file or stderr.
//
// # Levels and scopes
//
// Events carry a scope, from coarse to fine: ScopeDriver (CLI command),
// ScopeFile (one listing), ScopeEntity (entity containers) and
// ScopeFunction (single functions). The level decides the finest scope
// that is written: phase keeps driver and file events, detail adds entity
// events, debug adds everything.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "gen:door.toml", 0)
//	defer span.End("")
package trace
