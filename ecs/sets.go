package ecs

import (
	"iter"
	"strings"
)

// ComponentSet is an immutable set of component types backed by a fixed-width
// bitset. Two sets holding the same types compare equal with ==, which makes
// ComponentSet usable as a map key.
type ComponentSet struct {
	mask bitmask256
}

// ComponentSetOf returns the set containing the given component types.
func ComponentSetOf(types ...ComponentType) ComponentSet {
	var s ComponentSet
	for _, ct := range types {
		s.mask = s.mask.with(uint8(ct))
	}
	return s
}

// ComponentSetOf1 returns the set containing only component type T1.
func ComponentSetOf1[T1 any]() ComponentSet {
	return ComponentSet{}.Add(ComponentTypeOf[T1]())
}

// Add returns a copy of the set with the given types added.
func (s ComponentSet) Add(types ...ComponentType) ComponentSet {
	for _, ct := range types {
		s.mask = s.mask.with(uint8(ct))
	}
	return s
}

// Remove returns a copy of the set with the given types removed.
func (s ComponentSet) Remove(types ...ComponentType) ComponentSet {
	for _, ct := range types {
		s.mask = s.mask.without(uint8(ct))
	}
	return s
}

func (s ComponentSet) Has(ct ComponentType) bool {
	return s.mask.has(uint8(ct))
}

// HasAll reports whether s is a superset of other.
func (s ComponentSet) HasAll(other ComponentSet) bool {
	return s.mask.contains(other.mask)
}

// HasAny reports whether s and other share at least one type.
func (s ComponentSet) HasAny(other ComponentSet) bool {
	return s.mask.intersects(other.mask)
}

func (s ComponentSet) Union(other ComponentSet) ComponentSet {
	return ComponentSet{mask: s.mask.or(other.mask)}
}

func (s ComponentSet) Intersect(other ComponentSet) ComponentSet {
	return ComponentSet{mask: s.mask.and(other.mask)}
}

// Difference returns the types in s that are not in other.
func (s ComponentSet) Difference(other ComponentSet) ComponentSet {
	return ComponentSet{mask: s.mask.andNot(other.mask)}
}

func (s ComponentSet) Len() int {
	return s.mask.count()
}

func (s ComponentSet) IsEmpty() bool {
	return s.mask.isZero()
}

// All iterates the set in canonical order (ascending type index).
func (s ComponentSet) All() iter.Seq[ComponentType] {
	return func(yield func(ComponentType) bool) {
		s.mask.each(func(bit uint8) bool {
			return yield(ComponentType(bit))
		})
	}
}

// Types returns the members of the set in canonical order.
func (s ComponentSet) Types() []ComponentType {
	types := make([]ComponentType, 0, s.Len())
	s.mask.each(func(bit uint8) bool {
		types = append(types, ComponentType(bit))
		return true
	})
	return types
}

// String renders the set as "[A, B]" using canonical order.
func (s ComponentSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	s.writeNames(&sb)
	sb.WriteByte(']')
	return sb.String()
}

func (s ComponentSet) writeNames(sb *strings.Builder) {
	first := true
	s.mask.each(func(bit uint8) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(ComponentType(bit).Name())
		return true
	})
}

// TagSet is an immutable set of tag types with the same value semantics as ComponentSet.
type TagSet struct {
	mask bitmask256
}

// TagSetOf returns the set containing the given tag types.
func TagSetOf(tags ...TagType) TagSet {
	var s TagSet
	for _, tt := range tags {
		s.mask = s.mask.with(uint8(tt))
	}
	return s
}

// TagSetOf1 returns the set containing only tag type T1.
func TagSetOf1[T1 any]() TagSet {
	return TagSet{}.Add(TagTypeOf[T1]())
}

func (s TagSet) Add(tags ...TagType) TagSet {
	for _, tt := range tags {
		s.mask = s.mask.with(uint8(tt))
	}
	return s
}

func (s TagSet) Remove(tags ...TagType) TagSet {
	for _, tt := range tags {
		s.mask = s.mask.without(uint8(tt))
	}
	return s
}

func (s TagSet) Has(tt TagType) bool {
	return s.mask.has(uint8(tt))
}

func (s TagSet) HasAll(other TagSet) bool {
	return s.mask.contains(other.mask)
}

func (s TagSet) HasAny(other TagSet) bool {
	return s.mask.intersects(other.mask)
}

func (s TagSet) Union(other TagSet) TagSet {
	return TagSet{mask: s.mask.or(other.mask)}
}

func (s TagSet) Intersect(other TagSet) TagSet {
	return TagSet{mask: s.mask.and(other.mask)}
}

func (s TagSet) Difference(other TagSet) TagSet {
	return TagSet{mask: s.mask.andNot(other.mask)}
}

func (s TagSet) Len() int {
	return s.mask.count()
}

func (s TagSet) IsEmpty() bool {
	return s.mask.isZero()
}

func (s TagSet) All() iter.Seq[TagType] {
	return func(yield func(TagType) bool) {
		s.mask.each(func(bit uint8) bool {
			return yield(TagType(bit))
		})
	}
}

func (s TagSet) Types() []TagType {
	tags := make([]TagType, 0, s.Len())
	s.mask.each(func(bit uint8) bool {
		tags = append(tags, TagType(bit))
		return true
	})
	return tags
}

// String renders the set as "[#A, #B]".
func (s TagSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	s.writeNames(&sb)
	sb.WriteByte(']')
	return sb.String()
}

func (s TagSet) writeNames(sb *strings.Builder) {
	first := true
	s.mask.each(func(bit uint8) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(TagType(bit).String())
		return true
	})
}
