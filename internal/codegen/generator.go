package codegen

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"fieldgen/internal/lines"
	"fieldgen/internal/script"
	"fieldgen/internal/trace"
)

// Stats summarises one generation run.
type Stats struct {
	Functions int
	Entities  int
	Lines     int
}

// Generator walks a function stream and drives an Emitter over it.
type Generator struct {
	w    *lines.Writer
	em   Emitter
	body BodyEmitter
}

// NewGenerator wires a sink, a dialect and a body renderer together. A nil
// body renderer falls back to StaticBody.
func NewGenerator(w *lines.Writer, em Emitter, body BodyEmitter) *Generator {
	if body == nil {
		body = StaticBody{}
	}
	return &Generator{w: w, em: em, body: body}
}

// Generate emits every function in order and stops at the first violation.
func (g *Generator) Generate(ctx context.Context, funcs []*script.Function) (Stats, error) {
	var stats Stats

	for i, fn := range funcs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if fn == nil {
			return stats, fmt.Errorf("codegen: nil function at index %d", i)
		}
		if err := g.emitFunction(ctx, fn, i); err != nil {
			return stats, err
		}
		stats.Functions++
	}

	if fin, ok := g.em.(Finisher); ok {
		if err := fin.Finish(); err != nil {
			return stats, err
		}
	}
	if ec, ok := g.em.(interface{ Entities() int }); ok {
		stats.Entities = ec.Entities()
	}
	stats.Lines = g.w.Len()
	return stats, nil
}

// emitFunction runs one function through the emitter. Trace points follow
// the output order: entity open, function, entity close.
func (g *Generator) emitFunction(ctx context.Context, fn *script.Function, index int) error {
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID
	md, mdErr := fn.Meta()

	if err := g.em.BeforeStartFunction(fn); err != nil {
		return err
	}
	if mdErr == nil && md.IsStart() {
		trace.Point(tracer, trace.ScopeEntity, "entity:"+md.EntityName(), parent, "open")
	}
	g.w.AddLine(g.em.ConstructFuncSignature(fn), false, true)
	if err := g.em.StartFunction(fn); err != nil {
		return err
	}
	if err := g.body.EmitBody(g.w, fn); err != nil {
		return fmt.Errorf("codegen: %s: body: %w", fn.Name, err)
	}
	if err := g.em.EndFunction(fn); err != nil {
		return err
	}
	trace.Point(tracer, trace.ScopeFunction, "fn:"+fn.Name, parent, "index "+strconv.Itoa(index))
	if mdErr == nil && md.IsEnd() {
		trace.Point(tracer, trace.ScopeEntity, "entity:"+md.EntityName(), parent, "close")
	}
	return nil
}

// Violation is one structural problem found by Validate.
type Violation struct {
	Index int // position in the stream, -1 for end-of-stream problems
	Err   *Error
}

// Validate runs the entity state machine over funcs without emitting
// anything and returns every violation, not just the first.
func Validate(funcs []*script.Function) []Violation {
	var (
		tracker EntityTracker
		out     []Violation
	)
	record := func(i int, err error) {
		var se *Error
		if errors.As(err, &se) {
			out = append(out, Violation{Index: i, Err: se})
		}
	}

	for i, fn := range funcs {
		if fn == nil {
			continue
		}
		md, err := fn.Meta()
		if err != nil {
			record(i, &Error{Kind: KindBadMetadata, Function: fn.Name, Err: err})
			continue
		}
		if _, err := tracker.Enter(fn.Name, md); err != nil {
			record(i, err)
			tracker.resync(md)
			// an empty name was already reported for this function
			if KindOf(err) == KindEmptyEntity {
				continue
			}
		}
		if _, err := tracker.Leave(fn.Name, md); err != nil {
			record(i, err)
			if md.IsEnd() {
				tracker.state = EntityClosed
				tracker.entity = ""
			}
		}
	}
	if err := tracker.Finish(); err != nil {
		record(-1, err)
	}
	return out
}
