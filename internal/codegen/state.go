package codegen

import "fieldgen/internal/script"

// EntityState is the lifecycle position of the entity tracker.
type EntityState uint8

const (
	// EntityClosed: no entity container is open.
	EntityClosed EntityState = iota
	// EntityOpen: functions are emitted into an entity container.
	EntityOpen
)

func (s EntityState) String() string {
	if s == EntityOpen {
		return "open"
	}
	return "closed"
}

// EntityTracker is the two-state machine behind entity boundaries.
// Transitions that would nest containers incorrectly are rejected and leave
// the state untouched.
type EntityTracker struct {
	state  EntityState
	entity string
	opened int
}

// State returns the current state.
func (t *EntityTracker) State() EntityState { return t.state }

// Entity returns the open entity, empty when closed.
func (t *EntityTracker) Entity() string { return t.entity }

// Opened counts the entities opened so far.
func (t *EntityTracker) Opened() int { return t.opened }

// Enter is consulted before a function's signature. It reports whether the
// function opens a new entity.
func (t *EntityTracker) Enter(fn string, md script.MetaData) (bool, error) {
	name := md.EntityName()
	if md.IsStart() {
		if name == "" {
			return false, &Error{Kind: KindEmptyEntity, Function: fn}
		}
		if t.state == EntityOpen {
			return false, &Error{Kind: KindEntityAlreadyOpen, Function: fn, Entity: name, Open: t.entity}
		}
		t.state = EntityOpen
		t.entity = name
		t.opened++
		return true, nil
	}

	switch t.state {
	case EntityOpen:
		if name != t.entity {
			return false, &Error{Kind: KindEntityMismatch, Function: fn, Entity: name, Open: t.entity}
		}
	case EntityClosed:
		if name != "" {
			return false, &Error{Kind: KindNoEntityOpen, Function: fn, Entity: name}
		}
	}
	return false, nil
}

// Leave is consulted after a function's closer. It reports whether the
// function closes its entity.
func (t *EntityTracker) Leave(fn string, md script.MetaData) (bool, error) {
	if !md.IsEnd() {
		return false, nil
	}
	name := md.EntityName()
	if name == "" {
		return false, &Error{Kind: KindEmptyEntity, Function: fn}
	}
	if t.state != EntityOpen {
		return false, &Error{Kind: KindNoEntityOpen, Function: fn, Entity: name}
	}
	if name != t.entity {
		return false, &Error{Kind: KindEntityMismatch, Function: fn, Entity: name, Open: t.entity}
	}
	t.state = EntityClosed
	t.entity = ""
	return true, nil
}

// Finish checks the end of the stream.
func (t *EntityTracker) Finish() error {
	if t.state == EntityOpen {
		return &Error{Kind: KindUnclosedEntity, Open: t.entity}
	}
	return nil
}

// resync forces the tracker to the state implied by md so that validation
// can keep going after a violation.
func (t *EntityTracker) resync(md script.MetaData) {
	if md.EntityName() == "" {
		t.state = EntityClosed
		t.entity = ""
		return
	}
	if t.state != EntityOpen || t.entity != md.EntityName() {
		t.opened++
	}
	t.state = EntityOpen
	t.entity = md.EntityName()
}
