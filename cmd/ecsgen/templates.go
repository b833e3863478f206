package main

import "text/template"

const header = `// Code generated by ecsgen. DO NOT EDIT.

package ecs
`

var arityTemplate = template.Must(template.New("arity").Parse(header + `
{{- range . }}
{{ $n := .N }}
// ComponentSetOf{{ $n }} returns the set of component types {{ .TypeArgs }}.
func ComponentSetOf{{ $n }}[{{ .TypeParams }}]() ComponentSet {
	return ComponentSetOf({{ .ComponentTypes }})
}

// TagSetOf{{ $n }} returns the set of tag types {{ .TypeArgs }}.
func TagSetOf{{ $n }}[{{ .TypeParams }}]() TagSet {
	return TagSetOf({{ .TagTypes }})
}

// AddComponents{{ $n }} adds components {{ .TypeArgs }} and the given tags in a single transition.
// Components the entity already has are overwritten and reported as updates.
func AddComponents{{ $n }}[{{ .TypeParams }}](s *Storage, id EntityId, {{ .Params }}, tags ...TagType) error {
	order := [...]ComponentType{ {{- .ComponentTypes -}} }
	res, err := s.applyChange(id, change{addComponents: ComponentSetOf(order[:]...), addTags: TagSetOf(tags...)})
	if err != nil {
		return err
	}
{{- range $i, $k := .Seq }}
	writeComponent(res.loc, order[{{ $i }}], c{{ $k }})
{{- end }}
	s.notify(&res, order[:], nil)
	return nil
}

// SetComponents{{ $n }} overwrites the existing components {{ .TypeArgs }}.
func SetComponents{{ $n }}[{{ .TypeParams }}](s *Storage, id EntityId, {{ .Params }}) error {
	order := [...]ComponentType{ {{- .ComponentTypes -}} }
	loc, err := s.requireComponents(id, ComponentSetOf(order[:]...))
	if err != nil {
		return err
	}
{{- range $i, $k := .Seq }}
	writeComponent(loc, order[{{ $i }}], c{{ $k }})
{{- end }}
	s.notifyUpdated(id, loc, order[:])
	return nil
}

// RemoveComponents{{ $n }} removes components {{ .TypeArgs }} and the given tags in a single transition.
func RemoveComponents{{ $n }}[{{ .TypeParams }}](s *Storage, id EntityId, tags ...TagType) error {
	order := [...]ComponentType{ {{- .ComponentTypes -}} }
	res, err := s.applyChange(id, change{removeComponents: ComponentSetOf(order[:]...), removeTags: TagSetOf(tags...)})
	if err != nil {
		return err
	}
	s.notify(&res, nil, order[:])
	return nil
}

// AddTags{{ $n }} adds tags {{ .TypeArgs }}.
func AddTags{{ $n }}[{{ .TypeParams }}](s *Storage, id EntityId) error {
	return s.AddTags(id, {{ .TagTypes }})
}

// RemoveTags{{ $n }} removes tags {{ .TypeArgs }}.
func RemoveTags{{ $n }}[{{ .TypeParams }}](s *Storage, id EntityId) error {
	return s.RemoveTags(id, {{ .TagTypes }})
}
{{- end }}
`))

var queryTemplate = template.Must(template.New("query").Parse(header + `
{{- range . }}
{{ $n := .N }}{{ $args := .TypeArgs }}
// Query{{ $n }} matches entities with components {{ $args }} and exposes them as typed columns.
type Query{{ $n }}[{{ .TypeParams }}] struct {
	Query
{{- range .Seq }}
	t{{ . }} ComponentType
{{- end }}
}

// NewQuery{{ $n }} creates a query over components {{ $args }}.
func NewQuery{{ $n }}[{{ .TypeParams }}](storage *Storage, filters ...*QueryFilter) *Query{{ $n }}[{{ $args }}] {
	q := &Query{{ $n }}[{{ $args }}]{}
	q.init(storage, filters)
	return q
}

// Init binds the query to storage. The Scheduler calls it for query fields of systems.
func (q *Query{{ $n }}[{{ $args }}]) Init(storage *Storage) {
	q.init(storage, q.filters)
}

func (q *Query{{ $n }}[{{ $args }}]) init(storage *Storage, filters []*QueryFilter) {
{{- range .Seq }}
	q.t{{ . }} = ComponentTypeOf[T{{ . }}]()
{{- end }}
	types := []ComponentType{ {{- .Join "q.t#" ", " -}} }
	q.Query.init(storage, ComponentSetOf(types...), types, filters)
}

// Chunk{{ $n }} is a contiguous range of entities of one archetype with their {{ $args }} columns.
type Chunk{{ $n }}[{{ .TypeParams }}] struct {
	Entities []EntityId
{{- range .Seq }}
	C{{ . }}       []T{{ . }}
{{- end }}
}

func (c Chunk{{ $n }}[{{ $args }}]) Len() int {
	return len(c.Entities)
}

func (q *Query{{ $n }}[{{ $args }}]) chunkAt(a *Archetype, start, end int) Chunk{{ $n }}[{{ $args }}] {
	return Chunk{{ $n }}[{{ $args }}]{
		Entities: a.entities[start:end:end],
{{- range .Seq }}
		C{{ . }}:       columnSlice[T{{ . }}](a, q.t{{ . }}, start, end),
{{- end }}
	}
}

// Chunks iterates one chunk per non-empty matched archetype.
func (q *Query{{ $n }}[{{ $args }}]) Chunks() iter.Seq[Chunk{{ $n }}[{{ $args }}]] {
	return func(yield func(Chunk{{ $n }}[{{ $args }}]) bool) {
		for _, a := range q.matching() {
			if n := a.EntityCount(); n > 0 && !yield(q.chunkAt(a, 0, n)) {
				return
			}
		}
	}
}

// ForEachEntity calls fn with pointers to the components of every matched entity.
func (q *Query{{ $n }}[{{ $args }}]) ForEachEntity(fn func(EntityId, {{ .PointerArgs }})) {
	for chunk := range q.Chunks() {
		for idx, id := range chunk.Entities {
			fn(id{{ range .Seq }}, &chunk.C{{ . }}[idx]{{ end }})
		}
	}
}
{{- end }}
`))
