package ecs

import "github.com/rs/zerolog"

// Option configures a Storage.
type Option func(s *Storage)

// WithLogger sets the logger used for storage diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Storage) {
		s.logger = logger
	}
}

// WithIdPolicy selects how automatically assigned ids are chosen.
func WithIdPolicy(policy IdPolicy) Option {
	return func(s *Storage) {
		s.idPolicy = policy
	}
}

// WithInitialCapacity pre-sizes the entity index.
func WithInitialCapacity(capacity int) Option {
	return func(s *Storage) {
		if capacity > 0 {
			s.capacity = capacity
		}
	}
}

// CreateOption configures a single CreateEntity call.
type CreateOption func(c *createConfig)

type createConfig struct {
	id        EntityId
	explicit  bool
	archetype *Archetype
}

// WithId requests an explicit entity id instead of an automatically assigned one.
func WithId(id EntityId) CreateOption {
	return func(c *createConfig) {
		c.id = id
		c.explicit = true
	}
}

// InArchetype creates the entity directly in the given archetype with zero
// values for all of its components.
func InArchetype(a *Archetype) CreateOption {
	return func(c *createConfig) {
		c.archetype = a
	}
}
