package codegen

import (
	"fieldgen/internal/lines"
	"fieldgen/internal/script"
)

// Emitter is a target dialect. The generator calls the hooks once per
// function, in stream order.
type Emitter interface {
	// BeforeStartFunction runs before the signature; it may open an entity.
	BeforeStartFunction(fn *script.Function) error
	// StartFunction runs after the signature and before the body.
	StartFunction(fn *script.Function) error
	// EndFunction closes the function and, for the last function of an
	// entity, the entity as well.
	EndFunction(fn *script.Function) error
	// ConstructFuncSignature returns the declaration line of fn. It must
	// not have side effects.
	ConstructFuncSignature(fn *script.Function) string
}

// Finisher is implemented by emitters that can verify the end of a stream.
type Finisher interface {
	Finish() error
}

// BodyEmitter renders a function's statements into the sink.
type BodyEmitter interface {
	EmitBody(w *lines.Writer, fn *script.Function) error
}

// StaticBody writes the pre-rendered Function.Body lines verbatim at the
// current depth.
type StaticBody struct{}

// EmitBody implements BodyEmitter.
func (StaticBody) EmitBody(w *lines.Writer, fn *script.Function) error {
	for _, line := range fn.Body {
		w.AddLine(line, false, false)
	}
	return nil
}
