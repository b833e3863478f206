package ecs

// EntityId identifies an entity within one Storage. Valid ids are positive.
type EntityId int64

// IsValid reports whether the id is in the valid (positive) range. It says
// nothing about whether an entity with this id is alive.
func (e EntityId) IsValid() bool {
	return e > 0
}

// entityLocation is the place an entity's data currently lives.
type entityLocation struct {
	archetype *Archetype
	row       int
}

// IdPolicy controls how automatically assigned entity ids are chosen.
type IdPolicy uint8

const (
	// IdPolicyMonotonic hands out ever increasing ids and never recycles them.
	IdPolicyMonotonic IdPolicy = iota
	// IdPolicyRecycle reuses the ids of deleted entities, most recently freed first.
	IdPolicyRecycle
)

func (p IdPolicy) String() string {
	switch p {
	case IdPolicyMonotonic:
		return "monotonic"
	case IdPolicyRecycle:
		return "recycle"
	default:
		return "unknown"
	}
}
