package codegen

import (
	"strings"

	"fieldgen/internal/lines"
	"fieldgen/internal/script"
)

// Syntax holds the literal pieces of the field-script dialect that may be
// configured.
type Syntax struct {
	Container     string
	DefaultReturn string
}

// DefaultSyntax returns the stock field-script syntax.
func DefaultSyntax() Syntax {
	return Syntax{
		Container:     "EntityContainer",
		DefaultReturn: "return 0",
	}
}

func (s Syntax) withDefaults() Syntax {
	def := DefaultSyntax()
	if strings.TrimSpace(s.Container) == "" {
		s.Container = def.Container
	}
	if strings.TrimSpace(s.DefaultReturn) == "" {
		s.DefaultReturn = def.DefaultReturn
	}
	return s
}

const (
	functionCloser = "end,"
	entityCloser   = "}"
)

// FieldEmitter renders entities as table containers and functions as
// self-bound closures:
//
//	EntityContainer[ "door_01" ] = {
//	    door_01 = nil,
//
//	    init = function( self )
//	        ...
//	        return 0
//	    end,
//	}
//
// A FieldEmitter belongs to a single generation run.
type FieldEmitter struct {
	w       *lines.Writer
	syntax  Syntax
	tracker EntityTracker
}

// NewFieldEmitter creates an emitter writing into w.
func NewFieldEmitter(w *lines.Writer, syntax Syntax) *FieldEmitter {
	return &FieldEmitter{w: w, syntax: syntax.withDefaults()}
}

// BeforeStartFunction opens the entity container when fn is the first
// function of its entity.
func (e *FieldEmitter) BeforeStartFunction(fn *script.Function) error {
	md, err := fn.Meta()
	if err != nil {
		return &Error{Kind: KindBadMetadata, Function: fn.Name, Err: err}
	}
	opened, err := e.tracker.Enter(fn.Name, md)
	if err != nil || !opened {
		return err
	}

	// the key is pasted raw so it matches the binding line below
	e.w.AddLine(e.syntax.Container+`[ "`+md.EntityName()+`" ] = {`, false, true)
	if md.HasCharacter() {
		e.w.AddLine(md.EntityName()+" = nil,", false, false)
	}
	e.w.AddLine("", false, false)
	return nil
}

// StartFunction emits nothing for this dialect.
func (e *FieldEmitter) StartFunction(*script.Function) error { return nil }

// EndFunction appends the default return and the function closer, then
// the entity closer for the last function of an entity. The default return
// is written even after an explicit one; it is unreachable there.
func (e *FieldEmitter) EndFunction(fn *script.Function) error {
	e.w.AddLine(e.syntax.DefaultReturn, false, false)
	e.w.AddLine(functionCloser, true, false)

	md, err := fn.Meta()
	if err != nil {
		return &Error{Kind: KindBadMetadata, Function: fn.Name, Err: err}
	}
	closed, err := e.tracker.Leave(fn.Name, md)
	if err != nil || !closed {
		return err
	}
	e.w.AddLine(entityCloser, true, false)
	return nil
}

// ConstructFuncSignature returns "<name> = function( self )".
func (e *FieldEmitter) ConstructFuncSignature(fn *script.Function) string {
	return fn.Name + " = function( self )"
}

// Finish reports an entity left open at the end of the stream.
func (e *FieldEmitter) Finish() error { return e.tracker.Finish() }

// Entities returns how many entity containers were opened.
func (e *FieldEmitter) Entities() int { return e.tracker.Opened() }
