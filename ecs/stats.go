package ecs

import (
	"reflect"
	"sort"

	"github.com/rs/zerolog"
)

// StorageStats is a snapshot of what a Storage holds.
type StorageStats struct {
	ArchetypeCount     int
	TotalEntityCount   int
	SingletonCount     int
	ArchetypeBreakdown []ArchetypeStats
	SingletonTypes     []string
}

// ArchetypeStats describes a single archetype.
type ArchetypeStats struct {
	ID          uint32
	Signature   string
	Components  []string
	Tags        []string
	EntityCount int
}

// CollectStats gathers statistics about the storage. Archetypes without
// entities are counted but left out of the breakdown.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		ArchetypeCount:   len(s.archetypes),
		TotalEntityCount: s.EntityCount(),
		SingletonCount:   len(s.singletons),
	}

	for _, a := range s.archetypes {
		if a.EntityCount() == 0 {
			continue
		}
		arch := ArchetypeStats{
			ID:          a.id,
			Signature:   a.String(),
			EntityCount: a.EntityCount(),
		}
		for ct := range a.components.All() {
			arch.Components = append(arch.Components, ct.Name())
		}
		for tt := range a.tags.All() {
			arch.Tags = append(arch.Tags, tt.Name())
		}
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, arch)
	}

	stats.SingletonTypes = make([]string, 0, len(s.singletons))
	for t := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, singletonName(t))
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}

func singletonName(t reflect.Type) string {
	if ct, ok := LookupComponentType(t); ok {
		return ct.Name()
	}
	return typeName(t)
}

// LogArchetypes writes one event listing every non-empty archetype at the given level.
func (s *Storage) LogArchetypes(level zerolog.Level) {
	event := s.logger.WithLevel(level)
	if event == nil {
		return
	}

	arr := zerolog.Arr()
	for _, a := range s.archetypes {
		if a.EntityCount() == 0 {
			continue
		}
		arr.Dict(zerolog.Dict().
			Uint32("id", a.id).
			Str("signature", a.String()).
			Int("entities", a.EntityCount()))
	}

	event.
		Int("archetype_count", len(s.archetypes)).
		Int("entity_count", s.EntityCount()).
		Array("archetypes", arr).
		Msg("storage archetypes")
}
