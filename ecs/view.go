package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// iface is the memory layout of an interface value.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// viewField is one pointer field of a view struct.
type viewField struct {
	name     string
	ct       ComponentType
	offset   uintptr
	optional bool
}

// View gives struct-of-pointers access to an entity's components. T must be
// a struct whose fields are pointers to registered component types. Named
// fields tagged `ecs:"optional"` are set to nil when the component is
// missing; embedded fields are always required.
type View[T any] struct {
	storage *Storage
	fields  []viewField
	query   *Query
}

// NewView builds a view for T. It panics if T is not a struct of pointers to
// registered components or carries an unknown ecs tag.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	fields := make([]viewField, 0, structType.NumField())
	var required ComponentSet
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}
		ct, ok := LookupComponentType(field.Type.Elem())
		if !ok {
			panic("View field " + field.Name + " refers to unregistered component " + field.Type.Elem().String())
		}

		vf := viewField{name: field.Name, ct: ct, offset: field.Offset}
		if tag := field.Tag.Get("ecs"); tag != "" && !field.Anonymous {
			if tag != "optional" {
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
			vf.optional = true
		}
		if !vf.optional {
			required = required.Add(ct)
		}
		fields = append(fields, vf)
	}

	return &View[T]{
		storage: storage,
		fields:  fields,
		query:   NewQuery(storage, required),
	}
}

// Fill points the fields of dst at the entity's components. It returns false
// if the entity is not alive or lacks a required component.
func (v *View[T]) Fill(id EntityId, dst *T) bool {
	loc, ok := v.storage.entities.Get(id)
	if !ok {
		return false
	}
	return v.populate(unsafe.Pointer(dst), loc.archetype, loc.row, nil)
}

// Get returns a populated view of the entity, or nil.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

func (v *View[T]) columns(a *Archetype, dst []int) []int {
	dst = dst[:0]
	for _, f := range v.fields {
		dst = append(dst, a.storageIndex(f.ct))
	}
	return dst
}

// populate writes a pointer into row of a for every field. columns caches
// the column index per field and may be nil.
func (v *View[T]) populate(dst unsafe.Pointer, a *Archetype, row int, columns []int) bool {
	for i, f := range v.fields {
		slot := (*unsafe.Pointer)(unsafe.Add(dst, f.offset))

		var col int
		if columns != nil {
			col = columns[i]
		} else {
			col = a.storageIndex(f.ct)
		}
		if col < 0 {
			if !f.optional {
				return false
			}
			*slot = nil
			continue
		}

		// The column hands out a *T boxed in an interface; keep only its data word.
		component := a.storages[col].Get(row)
		*slot = (*iface)(unsafe.Pointer(&component)).data
	}
	return true
}

// Iter yields every entity that has the view's required components together
// with its populated view.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		var columns []int
		var result T
		for _, a := range v.query.matching() {
			if a.EntityCount() == 0 {
				continue
			}
			columns = v.columns(a, columns)
			for row, id := range a.entities {
				v.populate(unsafe.Pointer(&result), a, row, columns)
				if !yield(id, result) {
					return
				}
			}
		}
	}
}

// Values is Iter without the entity ids.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Spawn creates an entity from copies of the components the view struct
// points at. Nil optional fields are skipped; a nil required field panics.
func (v *View[T]) Spawn(data T) EntityId {
	base := unsafe.Pointer(&data)

	values := make([]any, 0, len(v.fields))
	for _, f := range v.fields {
		ptr := *(*unsafe.Pointer)(unsafe.Add(base, f.offset))
		if ptr == nil {
			if !f.optional {
				panic("required component " + f.name + " is nil in View.Spawn")
			}
			continue
		}
		values = append(values, reflect.NewAt(f.ct.Type(), ptr).Elem().Interface())
	}
	return v.storage.Spawn(values...)
}
