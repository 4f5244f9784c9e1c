// Package codegen turns an ordered stream of decompiled functions into
// nested field-script source.
//
// Entity boundaries are not marked in the stream itself. Each function's
// metadata says whether it is the first or last routine of its entity, and
// an EntityTracker turns those flags into explicit open/close transitions.
// The Emitter interface carries the dialect: which lines open and close an
// entity container, how a function signature looks and how a body ends.
// Generator drives an Emitter over a stream in the fixed per-function order
//
//	BeforeStartFunction, signature, StartFunction, body, EndFunction
//
// and checks after the last function that no entity is left open.
package codegen
