package ecs

// ComponentChangeKind distinguishes the three component notifications.
type ComponentChangeKind uint8

const (
	// ComponentAdded is fired when a component becomes present on an entity.
	ComponentAdded ComponentChangeKind = iota
	// ComponentUpdated is fired when an add or set call writes a component the
	// entity already carried.
	ComponentUpdated
	// ComponentRemoved is fired when a component is dropped from an entity.
	ComponentRemoved
)

func (k ComponentChangeKind) String() string {
	switch k {
	case ComponentAdded:
		return "added"
	case ComponentUpdated:
		return "updated"
	case ComponentRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// ComponentChange describes one component notification.
//
// For added and updated changes Value is a pointer (*T) into the entity's
// column and is only valid until the next structural change. For removed
// changes Value holds a copy of the prior value boxed as T.
type ComponentChange struct {
	Entity EntityId
	Kind   ComponentChangeKind
	Type   ComponentType
	Value  any
}

// TagsChange aggregates every tag added or removed by a single call.
type TagsChange struct {
	Entity  EntityId
	Tags    TagSet
	Added   TagSet
	Removed TagSet
}

type listener[E any] struct {
	id uint64
	fn func(E)
}

// listeners is a copy-on-write callback list. Delivery iterates a snapshot
// so that unsubscribing from inside a callback does not disturb the loop.
type listeners[E any] struct {
	items []listener[E]
}

func (l *listeners[E]) add(id uint64, fn func(E)) {
	items := make([]listener[E], len(l.items), len(l.items)+1)
	copy(items, l.items)
	l.items = append(items, listener[E]{id: id, fn: fn})
}

func (l *listeners[E]) remove(id uint64) {
	for idx, item := range l.items {
		if item.id != id {
			continue
		}
		items := make([]listener[E], 0, len(l.items)-1)
		items = append(items, l.items[:idx]...)
		l.items = append(items, l.items[idx+1:]...)
		return
	}
}

func (l *listeners[E]) empty() bool {
	return len(l.items) == 0
}

func (l *listeners[E]) fire(event E) {
	for _, item := range l.items {
		item.fn(event)
	}
}

// notifier is the store-owned notification channel.
type notifier struct {
	nextId  uint64
	added   listeners[ComponentChange]
	removed listeners[ComponentChange]
	tags    listeners[TagsChange]
	created listeners[EntityId]
	deleted listeners[EntityId]
}

// Subscription is returned by the On* registration methods.
type Subscription struct {
	unsubscribe func()
}

// Unsubscribe removes the callback. Calling it more than once, or on the
// zero Subscription, does nothing.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.unsubscribe == nil {
		return
	}
	s.unsubscribe()
	s.unsubscribe = nil
}

func subscribe[E any](n *notifier, l *listeners[E], fn func(E)) Subscription {
	n.nextId++
	id := n.nextId
	l.add(id, fn)
	return Subscription{unsubscribe: func() { l.remove(id) }}
}

// OnComponentAdded registers fn for both added and updated component changes.
// Inspect ComponentChange.Kind to tell them apart.
func (s *Storage) OnComponentAdded(fn func(ComponentChange)) Subscription {
	return subscribe(&s.events, &s.events.added, fn)
}

// OnComponentRemoved registers fn for removed component changes.
func (s *Storage) OnComponentRemoved(fn func(ComponentChange)) Subscription {
	return subscribe(&s.events, &s.events.removed, fn)
}

// OnTagsChanged registers fn for aggregated tag changes.
func (s *Storage) OnTagsChanged(fn func(TagsChange)) Subscription {
	return subscribe(&s.events, &s.events.tags, fn)
}

// OnEntityCreated registers fn to run after an entity is created.
func (s *Storage) OnEntityCreated(fn func(EntityId)) Subscription {
	return subscribe(&s.events, &s.events.created, fn)
}

// OnEntityDeleted registers fn to run after an entity is deleted.
func (s *Storage) OnEntityDeleted(fn func(EntityId)) Subscription {
	return subscribe(&s.events, &s.events.deleted, fn)
}
