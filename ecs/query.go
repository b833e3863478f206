package ecs

import (
	"iter"
	"sync"

	"github.com/rotisserie/eris"
)

// Query selects every archetype that has all of a signature's component
// types and passes an optional QueryFilter. The set of matching archetypes is
// cached and extended incrementally as the storage creates new archetypes,
// so a query stays valid for the lifetime of its storage.
//
// A Query must not be copied after first use.
type Query struct {
	storage   *Storage
	signature ComponentSet
	types     []ComponentType
	filters   []*QueryFilter
	readOnly  ComponentSet

	mu      sync.Mutex
	seen    int
	matched []*Archetype
}

// NewQuery creates a query over the given required components. Filters are
// frozen and must all match.
func NewQuery(storage *Storage, signature ComponentSet, filters ...*QueryFilter) *Query {
	q := &Query{}
	q.init(storage, signature, signature.Types(), filters)
	return q
}

func (q *Query) init(storage *Storage, signature ComponentSet, types []ComponentType, filters []*QueryFilter) {
	q.filters = q.filters[:0]
	for _, f := range filters {
		if f != nil {
			f.Freeze()
			q.filters = append(q.filters, f)
		}
	}
	q.storage = storage
	q.signature = signature
	q.types = types
	q.seen = 0
	q.matched = q.matched[:0]
}

func (q *Query) matches(a *Archetype) bool {
	if !a.components.HasAll(q.signature) {
		return false
	}
	for _, f := range q.filters {
		if !f.Matches(a.components, a.tags) {
			return false
		}
	}
	return true
}

// matching brings the archetype cache up to date and returns it.
func (q *Query) matching() []*Archetype {
	q.mu.Lock()
	defer q.mu.Unlock()

	archetypes := q.storage.archetypes
	for ; q.seen < len(archetypes); q.seen++ {
		if a := archetypes[q.seen]; q.matches(a) {
			q.matched = append(q.matched, a)
		}
	}
	return q.matched
}

// Signature returns the required component types.
func (q *Query) Signature() ComponentSet {
	return q.signature
}

// ReadOnly marks a required component as only read by jobs over this query.
// The job runner lets jobs that only read a type run alongside each other.
func (q *Query) ReadOnly(ct ComponentType) error {
	if !q.signature.Has(ct) {
		return eris.Wrapf(ErrUnknownComponent, "%s is not part of query %s", ct, q.signature)
	}
	q.readOnly = q.readOnly.Add(ct)
	return nil
}

// ReadOnly marks component T as read-only on q.
func ReadOnly[T any](q interface{ ReadOnly(ComponentType) error }) error {
	return q.ReadOnly(ComponentTypeOf[T]())
}

// Access returns the component types jobs over this query read and write.
func (q *Query) Access() (reads, writes ComponentSet) {
	return q.readOnly, q.signature.Difference(q.readOnly)
}

// Archetypes returns the archetypes currently matched. The slice must not be modified.
func (q *Query) Archetypes() []*Archetype {
	return q.matching()
}

// EntityCount returns the number of entities currently matched.
func (q *Query) EntityCount() int {
	n := 0
	for _, a := range q.matching() {
		n += a.EntityCount()
	}
	return n
}

// AppendEntities appends the ids of every matched entity to dst.
func (q *Query) AppendEntities(dst []EntityId) []EntityId {
	for _, a := range q.matching() {
		dst = append(dst, a.entities...)
	}
	return dst
}

// ToEntityList snapshots the matched entity ids. Structural changes made
// while walking the snapshot do not affect it.
func (q *Query) ToEntityList() []EntityId {
	return q.AppendEntities(make([]EntityId, 0, q.EntityCount()))
}

// FindEntity returns the single matched entity. It fails with ErrNoMatch or
// ErrAmbiguousMatch when the query matches zero or several entities.
func (q *Query) FindEntity() (EntityId, error) {
	var found EntityId
	count := 0
	for _, a := range q.matching() {
		count += a.EntityCount()
		if count > 1 {
			return 0, eris.Wrapf(ErrAmbiguousMatch, "query %s", q.signature)
		}
		if a.EntityCount() == 1 {
			found = a.entities[0]
		}
	}
	if count == 0 {
		return 0, eris.Wrapf(ErrNoMatch, "query %s", q.signature)
	}
	return found, nil
}

// Chunk is a contiguous range of rows within one archetype.
type Chunk struct {
	Entities  []EntityId
	archetype *Archetype
	start     int
}

func (c Chunk) Len() int {
	return len(c.Entities)
}

func (c Chunk) Archetype() *Archetype {
	return c.archetype
}

// Offset returns the row of the first entity of the chunk within its archetype.
func (c Chunk) Offset() int {
	return c.start
}

// ChunkColumn returns the T values of the chunk, aligned with c.Entities.
// It panics if the chunk's archetype has no T column.
func ChunkColumn[T any](c Chunk) []T {
	return columnSlice[T](c.archetype, ComponentTypeOf[T](), c.start, c.start+len(c.Entities))
}

func (q *Query) chunkAt(a *Archetype, start, end int) Chunk {
	return Chunk{Entities: a.entities[start:end:end], archetype: a, start: start}
}

// Chunks iterates one chunk per non-empty matched archetype. The sequence is
// lazy and can be ranged over more than once.
func (q *Query) Chunks() iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		for _, a := range q.matching() {
			if n := a.EntityCount(); n > 0 && !yield(q.chunkAt(a, 0, n)) {
				return
			}
		}
	}
}

// ForEachEntity calls fn for every matched entity.
func (q *Query) ForEachEntity(fn func(EntityId)) {
	for _, a := range q.matching() {
		for _, id := range a.entities {
			fn(id)
		}
	}
}
