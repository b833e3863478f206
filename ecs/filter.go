package ecs

import (
	"strings"

	"github.com/rotisserie/eris"
)

type predicateKind uint8

const (
	predicateAllComponents predicateKind = iota
	predicateAnyComponents
	predicateWithoutAllComponents
	predicateWithoutAnyComponents
	predicateAllTags
	predicateAnyTags
	predicateWithoutAllTags
	predicateWithoutAnyTags
)

var predicateNames = [...]string{
	predicateAllComponents:        "AllComponents",
	predicateAnyComponents:        "AnyComponents",
	predicateWithoutAllComponents: "WithoutAllComponents",
	predicateWithoutAnyComponents: "WithoutAnyComponents",
	predicateAllTags:              "AllTags",
	predicateAnyTags:              "AnyTags",
	predicateWithoutAllTags:       "WithoutAllTags",
	predicateWithoutAnyTags:       "WithoutAnyTags",
}

// Predicate is a single archetype test. A predicate built from an empty set
// matches every archetype.
type Predicate struct {
	kind       predicateKind
	components ComponentSet
	tags       TagSet
}

// AllComponents matches archetypes that have every component in s.
func AllComponents(s ComponentSet) Predicate {
	return Predicate{kind: predicateAllComponents, components: s}
}

// AnyComponents matches archetypes that have at least one component in s.
func AnyComponents(s ComponentSet) Predicate {
	return Predicate{kind: predicateAnyComponents, components: s}
}

// WithoutAllComponents excludes archetypes that have every component in s.
func WithoutAllComponents(s ComponentSet) Predicate {
	return Predicate{kind: predicateWithoutAllComponents, components: s}
}

// WithoutAnyComponents excludes archetypes that have any component in s.
func WithoutAnyComponents(s ComponentSet) Predicate {
	return Predicate{kind: predicateWithoutAnyComponents, components: s}
}

func AllTags(s TagSet) Predicate {
	return Predicate{kind: predicateAllTags, tags: s}
}

func AnyTags(s TagSet) Predicate {
	return Predicate{kind: predicateAnyTags, tags: s}
}

func WithoutAllTags(s TagSet) Predicate {
	return Predicate{kind: predicateWithoutAllTags, tags: s}
}

func WithoutAnyTags(s TagSet) Predicate {
	return Predicate{kind: predicateWithoutAnyTags, tags: s}
}

// Matches evaluates the predicate against an archetype signature.
func (p Predicate) Matches(components ComponentSet, tags TagSet) bool {
	switch p.kind {
	case predicateAllComponents:
		return components.HasAll(p.components)
	case predicateAnyComponents:
		return p.components.IsEmpty() || components.HasAny(p.components)
	case predicateWithoutAllComponents:
		return p.components.IsEmpty() || !components.HasAll(p.components)
	case predicateWithoutAnyComponents:
		return !components.HasAny(p.components)
	case predicateAllTags:
		return tags.HasAll(p.tags)
	case predicateAnyTags:
		return p.tags.IsEmpty() || tags.HasAny(p.tags)
	case predicateWithoutAllTags:
		return p.tags.IsEmpty() || !tags.HasAll(p.tags)
	case predicateWithoutAnyTags:
		return !tags.HasAny(p.tags)
	default:
		return false
	}
}

func (p Predicate) String() string {
	if p.kind >= predicateAllTags {
		return predicateNames[p.kind] + p.tags.String()
	}
	return predicateNames[p.kind] + p.components.String()
}

// QueryFilter is a conjunction of predicates. Once frozen, which happens when
// a query is built from it, it can no longer be changed.
type QueryFilter struct {
	predicates []Predicate
	frozen     bool
}

func NewQueryFilter(predicates ...Predicate) *QueryFilter {
	return &QueryFilter{predicates: append([]Predicate(nil), predicates...)}
}

// Add appends a predicate. It fails with ErrImmutableFilter once the filter is frozen.
func (f *QueryFilter) Add(p Predicate) error {
	if f.frozen {
		return eris.Wrapf(ErrImmutableFilter, "cannot add %s", p)
	}
	f.predicates = append(f.predicates, p)
	return nil
}

func (f *QueryFilter) Freeze() {
	f.frozen = true
}

func (f *QueryFilter) IsFrozen() bool {
	return f.frozen
}

// Matches reports whether an archetype with the given signature passes every
// predicate. A nil filter matches everything.
func (f *QueryFilter) Matches(components ComponentSet, tags TagSet) bool {
	if f == nil {
		return true
	}
	for _, p := range f.predicates {
		if !p.Matches(components, tags) {
			return false
		}
	}
	return true
}

func (f *QueryFilter) String() string {
	if f == nil || len(f.predicates) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for idx, p := range f.predicates {
		if idx > 0 {
			sb.WriteString(" && ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
