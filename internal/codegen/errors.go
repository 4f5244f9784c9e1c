package codegen

import (
	"errors"
	"fmt"
)

// Kind classifies a structural violation of the function stream.
type Kind uint8

const (
	// KindBadMetadata: the metadata record could not be parsed.
	KindBadMetadata Kind = iota + 1
	// KindEntityAlreadyOpen: a start flag while another entity is open.
	KindEntityAlreadyOpen
	// KindNoEntityOpen: an end flag or entity member with nothing open.
	KindNoEntityOpen
	// KindEntityMismatch: a function of one entity inside another one.
	KindEntityMismatch
	// KindEmptyEntity: a start or end flag without an entity name.
	KindEmptyEntity
	// KindUnclosedEntity: the stream ended with an entity still open.
	KindUnclosedEntity
)

func (k Kind) String() string {
	switch k {
	case KindBadMetadata:
		return "bad-metadata"
	case KindEntityAlreadyOpen:
		return "entity-already-open"
	case KindNoEntityOpen:
		return "no-entity-open"
	case KindEntityMismatch:
		return "entity-mismatch"
	case KindEmptyEntity:
		return "empty-entity"
	case KindUnclosedEntity:
		return "unclosed-entity"
	default:
		return "unknown"
	}
}

// Error describes a stream that does not nest.
type Error struct {
	Kind     Kind
	Function string // offending function, empty for end-of-stream errors
	Entity   string // entity named by the function's metadata
	Open     string // entity open at the time, if any
	Err      error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindBadMetadata:
		msg = fmt.Sprintf("bad metadata: %v", e.Err)
	case KindEntityAlreadyOpen:
		msg = fmt.Sprintf("entity %q starts while %q is still open", e.Entity, e.Open)
	case KindNoEntityOpen:
		msg = fmt.Sprintf("entity %q is not open", e.Entity)
	case KindEntityMismatch:
		msg = fmt.Sprintf("function of entity %q inside entity %q", e.Entity, e.Open)
	case KindEmptyEntity:
		msg = "entity boundary without an entity name"
	case KindUnclosedEntity:
		msg = fmt.Sprintf("entity %q is never closed", e.Open)
	default:
		msg = "unknown stream error"
	}
	if e.Function != "" {
		return "codegen: " + e.Function + ": " + msg
	}
	return "codegen: " + msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the violation kind from err, or 0 when err is not a
// stream error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}
