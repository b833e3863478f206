package ecs

// genericComponentStorage is a generic implementation of iComponentStorage.
// It stores components of a specific type `T` in a single contiguous slice so
// that query chunks can hand out sub-slices without copying.
type genericComponentStorage[T any] struct {
	items []T
}

// Append adds a component to storage and returns its row.
func (cs *genericComponentStorage[T]) Append(item any) int {
	var concreteItem T
	if ptr, ok := item.(*T); ok {
		concreteItem = *ptr
	} else if val, ok := item.(T); ok {
		concreteItem = val
	} else {
		return -1 // Invalid type
	}

	cs.items = append(cs.items, concreteItem)
	return len(cs.items) - 1
}

func (cs *genericComponentStorage[T]) AppendZero() int {
	var zero T
	cs.items = append(cs.items, zero)
	return len(cs.items) - 1
}

func (cs *genericComponentStorage[T]) AppendFrom(src iComponentStorage, row int) int {
	from := src.(*genericComponentStorage[T])
	cs.items = append(cs.items, from.items[row])
	return len(cs.items) - 1
}

// Delete removes the row, keeping the slice dense. The last row takes its place.
func (cs *genericComponentStorage[T]) Delete(row int) {
	last := len(cs.items) - 1
	if row < 0 || row > last {
		return
	}
	if row != last {
		cs.items[row] = cs.items[last]
	}
	var zero T
	cs.items[last] = zero // Release references held by the vacated slot
	cs.items = cs.items[:last]
}

// Get returns a pointer to the component at the given row.
func (cs *genericComponentStorage[T]) Get(row int) any {
	if row < 0 || row >= len(cs.items) {
		return nil
	}
	return &cs.items[row]
}

func (cs *genericComponentStorage[T]) Clone(row int) any {
	if row < 0 || row >= len(cs.items) {
		return nil
	}
	return cs.items[row]
}

func (cs *genericComponentStorage[T]) Set(row int, item any) bool {
	if row < 0 || row >= len(cs.items) {
		return false
	}
	if ptr, ok := item.(*T); ok {
		cs.items[row] = *ptr
		return true
	}
	if val, ok := item.(T); ok {
		cs.items[row] = val
		return true
	}
	return false
}

func (cs *genericComponentStorage[T]) Len() int {
	return len(cs.items)
}

// Grow makes room for n more rows without further allocation.
func (cs *genericComponentStorage[T]) Grow(n int) {
	if n <= 0 || cap(cs.items)-len(cs.items) >= n {
		return
	}
	grown := make([]T, len(cs.items), len(cs.items)+n)
	copy(grown, cs.items)
	cs.items = grown
}

// writeComponent stores value into the column for ct at the entity's row.
func writeComponent[T any](loc entityLocation, ct ComponentType, value T) {
	a := loc.archetype
	a.storages[a.storageIndex(ct)].(*genericComponentStorage[T]).items[loc.row] = value
}

// componentPointer returns a pointer to the entity's T value. The archetype must contain ct.
func componentPointer[T any](loc entityLocation, ct ComponentType) *T {
	a := loc.archetype
	return &a.storages[a.storageIndex(ct)].(*genericComponentStorage[T]).items[loc.row]
}

// columnSlice returns rows [start, end) of the T column of an archetype.
func columnSlice[T any](a *Archetype, ct ComponentType, start, end int) []T {
	idx := a.storageIndex(ct)
	if idx < 0 {
		panic("component " + ct.Name() + " not present in archetype " + a.String())
	}
	items := a.storages[idx].(*genericComponentStorage[T]).items
	return items[start:end:end]
}
