package ecs

import (
	"fmt"

	"github.com/rotisserie/eris"
)

var (
	// ErrInvalidId is returned when creating an entity with an id <= 0.
	ErrInvalidId = eris.New("invalid entity id")
	// ErrIdInUse is returned when creating an entity with the id of a live entity.
	ErrIdInUse = eris.New("entity id already in use")
	// ErrEntityNotFound is returned by operations on ids that are not alive.
	ErrEntityNotFound = eris.New("entity not found")
	// ErrForeignArchetype is returned when an archetype of another Storage is used.
	ErrForeignArchetype = eris.New("archetype belongs to another storage")
	// ErrMissingComponent is the sentinel wrapped by MissingComponentError.
	ErrMissingComponent = eris.New("missing component")
	// ErrMissingAdd is returned when reading a creation batch value that was never staged.
	ErrMissingAdd = eris.New("component type was not added to the batch")
	// ErrApplyMisuse is returned by Batch.Apply on a batch that is not bound to an entity.
	ErrApplyMisuse = eris.New("batch is not bound to an entity")
	// ErrImmutableFilter is returned when changing a frozen QueryFilter.
	ErrImmutableFilter = eris.New("query filter is frozen")
	// ErrUnknownComponent is returned for component types outside a query signature
	// and for values of unregistered types.
	ErrUnknownComponent = eris.New("unknown component")
	// ErrAmbiguousMatch is returned by single-result finds that match several entities.
	ErrAmbiguousMatch = eris.New("more than one entity matches")
	// ErrNoMatch is returned by single-result finds that match nothing.
	ErrNoMatch = eris.New("no entity matches")
)

// MissingComponentError lists the components a SetComponent call required but
// the entity did not carry.
type MissingComponentError struct {
	Entity  EntityId
	Missing ComponentSet
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("entity %d: missing components %s", e.Entity, e.Missing)
}

func (e *MissingComponentError) Unwrap() error {
	return ErrMissingComponent
}
