package ecs

import "reflect"

// AddSingleton stores value (T or *T) as the store's single instance of its
// type. Singletons are not attached to any entity. An existing singleton of
// the same type is overwritten in place, so pointers handed out earlier stay
// valid.
func (s *Storage) AddSingleton(value any) {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if existing, ok := s.singletons[v.Type()]; ok {
		reflect.ValueOf(existing).Elem().Set(v)
		return
	}
	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	s.singletons[v.Type()] = ptr.Interface()
}

func lookupSingleton[T any](s *Storage) *T {
	ptr, _ := s.singletons[reflect.TypeFor[T]()].(*T)
	return ptr
}

// Singleton is a cached accessor for the store's T singleton. Use it for
// global state such as clocks or configuration.
type Singleton[T any] struct {
	storage *Storage
	ptr     *T
}

// NewSingleton returns an accessor for T, creating the singleton from the
// initializer (or the zero value) if the storage does not hold one yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if lookupSingleton[T](storage) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(&value)
	}
	return &Singleton[T]{storage: storage, ptr: lookupSingleton[T](storage)}
}

// Init binds the accessor to storage without creating the singleton. The
// Scheduler calls it for Singleton fields of systems.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.ptr = lookupSingleton[T](storage)
}

// Get returns the singleton, or nil if the storage has none.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil && s.storage != nil {
		s.ptr = lookupSingleton[T](s.storage)
	}
	return s.ptr
}

func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
