package ecs

//go:generate go run ../cmd/ecsgen -dir .

import (
	"fmt"
	"reflect"
	"sync"
)

const (
	// MaxComponentTypes is the number of distinct component types a process can register.
	MaxComponentTypes = 256
	// MaxTagTypes is the number of distinct tag types a process can register.
	MaxTagTypes = 256
)

// ComponentType is the stable index the registry assigns to a component type.
// Indices are assigned in registration order and never change for the lifetime
// of the process, so they define the canonical ordering of component sets.
type ComponentType uint8

// TagType is the stable index of a tag type. Tags live in their own index space.
type TagType uint8

type componentInfo struct {
	typ     reflect.Type
	name    string
	factory func() iComponentStorage
}

type tagInfo struct {
	typ  reflect.Type
	name string
}

// typeRegistry assigns indices to component and tag types. It is shared by
// every Storage in the process so that ComponentSet values are comparable
// across stores.
type typeRegistry struct {
	mu             sync.RWMutex
	components     map[reflect.Type]ComponentType
	componentInfos [MaxComponentTypes]componentInfo
	componentCount int
	tags           map[reflect.Type]TagType
	tagInfos       [MaxTagTypes]tagInfo
	tagCount       int
}

var registry = &typeRegistry{
	components: make(map[reflect.Type]ComponentType, 64),
	tags:       make(map[reflect.Type]TagType, 16),
}

// RegisterComponent registers T as a component type and returns its index.
// Registering an already known type returns the existing index.
func RegisterComponent[T any]() ComponentType {
	t := reflect.TypeFor[T]()

	registry.mu.RLock()
	ct, ok := registry.components[t]
	registry.mu.RUnlock()
	if ok {
		return ct
	}

	return registry.registerComponent(t, func() iComponentStorage {
		return &genericComponentStorage[T]{}
	})
}

// ComponentTypeOf returns the index of component type T, registering T the
// first time it is referenced.
func ComponentTypeOf[T any]() ComponentType {
	return RegisterComponent[T]()
}

// RegisterTag registers T as a tag type and returns its index. Tags carry no
// data, so T must be zero-sized (typically an empty struct).
func RegisterTag[T any]() TagType {
	t := reflect.TypeFor[T]()

	registry.mu.RLock()
	tt, ok := registry.tags[t]
	registry.mu.RUnlock()
	if ok {
		return tt
	}

	return registry.registerTag(t)
}

// TagTypeOf returns the index of tag type T, registering T on first reference.
func TagTypeOf[T any]() TagType {
	return RegisterTag[T]()
}

// LookupComponentType returns the index of a previously registered component type.
func LookupComponentType(t reflect.Type) (ComponentType, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	ct, ok := registry.components[t]
	return ct, ok
}

// LookupTagType returns the index of a previously registered tag type.
func LookupTagType(t reflect.Type) (TagType, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	tt, ok := registry.tags[t]
	return tt, ok
}

func (r *typeRegistry) registerComponent(t reflect.Type, factory func() iComponentStorage) ComponentType {
	// Components can be structs or primitives (int, string, etc.)
	// But not pointers, maps, channels, or functions (those aren't value types)
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		panic("components cannot be pointers, maps, channels, functions or interfaces: " + t.String())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if ct, ok := r.components[t]; ok {
		return ct
	}
	if r.componentCount >= MaxComponentTypes {
		panic(fmt.Sprintf("cannot register component %s: maximum number of component types (%d) reached", t, MaxComponentTypes))
	}

	ct := ComponentType(r.componentCount)
	r.componentInfos[ct] = componentInfo{
		typ:     t,
		name:    typeName(t),
		factory: factory,
	}
	r.componentCount++
	r.components[t] = ct
	return ct
}

func (r *typeRegistry) registerTag(t reflect.Type) TagType {
	if t.Size() != 0 {
		panic("tag types must be zero-sized: " + t.String())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if tt, ok := r.tags[t]; ok {
		return tt
	}
	if r.tagCount >= MaxTagTypes {
		panic(fmt.Sprintf("cannot register tag %s: maximum number of tag types (%d) reached", t, MaxTagTypes))
	}

	tt := TagType(r.tagCount)
	r.tagInfos[tt] = tagInfo{typ: t, name: typeName(t)}
	r.tagCount++
	r.tags[t] = tt
	return tt
}

func typeName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// Info slots are written before the index is published through the registry
// maps, so reading them for an index obtained from the registry is safe.

// Type returns the Go type registered under this index.
func (ct ComponentType) Type() reflect.Type {
	return registry.componentInfos[ct].typ
}

// Name returns the short display name of the component type.
func (ct ComponentType) Name() string {
	return registry.componentInfos[ct].name
}

func (ct ComponentType) String() string {
	return ct.Name()
}

func (ct ComponentType) newStorage() iComponentStorage {
	factory := registry.componentInfos[ct].factory
	if factory == nil {
		panic(fmt.Sprintf("component type index %d not registered", ct))
	}
	return factory()
}

// Type returns the Go type registered under this index.
func (tt TagType) Type() reflect.Type {
	return registry.tagInfos[tt].typ
}

// Name returns the display name of the tag, without the leading '#'.
func (tt TagType) Name() string {
	return registry.tagInfos[tt].name
}

func (tt TagType) String() string {
	return "#" + tt.Name()
}
